package instrument

import "context"

const invalidCorrelationID = "[invalid_chain_id]"

type correlationIDKey struct{}

// SetCorrelationID stores the request correlation id in ctx.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cID)
}

// GetCorrelationID returns the correlation id stored in ctx or "[invalid_chain_id]" when absent.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return invalidCorrelationID
	}

	cID, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || cID == "" {
		return invalidCorrelationID
	}

	return cID
}
