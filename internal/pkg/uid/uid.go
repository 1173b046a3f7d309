// Package uid provides the identifier generators used across the service:
// snowflake numbers for records, ULIDs for OTP tokens and object keys, and
// UUID v7 strings for correlation and token ids.
package uid

// NumberID generates unique int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
