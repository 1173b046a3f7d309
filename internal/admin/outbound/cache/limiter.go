package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultCooldown = 30 * time.Second
	DefaultWindow   = 15 * time.Minute
	DefaultMax      = 5
)

type LimiterConfig struct {
	Cooldown time.Duration
	Window   time.Duration
	Max      int
}

// Limiter throttles OTP issuance per email and context: one request per
// cooldown, at most Max per window, and a block of three windows once the
// window count is exceeded.
type Limiter struct {
	client   redis.UniversalClient
	ins      instrument.Instrumentation
	cooldown time.Duration
	window   time.Duration
	max      int64
}

func NewLimiter(client redis.UniversalClient, ins instrument.Instrumentation, cfg LimiterConfig) *Limiter {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Max <= 0 {
		cfg.Max = DefaultMax
	}

	return &Limiter{
		client:   client,
		ins:      ins,
		cooldown: cfg.Cooldown,
		window:   cfg.Window,
		max:      int64(cfg.Max),
	}
}

func keys(email string, oc entity.OtpContext) (block, last, count string) {
	subject := strings.ToLower(email) + ":" + oc.String()
	return "otp:block:" + subject, "otp:last:" + subject, "otp:count:" + subject
}

func (l *Limiter) AllowOTP(ctx context.Context, email string, oc entity.OtpContext) (_ bool, err error) {
	ctx, span := l.ins.Tracer("admin.outbound.cache").Start(ctx, "AllowOTP")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	blockKey, lastKey, countKey := keys(email, oc)

	blocked, err := l.client.Exists(ctx, blockKey, lastKey).Result()
	if err != nil {
		return false, err
	}
	if blocked > 0 {
		span.SetAttributes(attribute.String("otp.limit", "cooldown_or_block"))
		return false, nil
	}

	count, err := l.client.Incr(ctx, countKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, countKey, l.window).Err(); err != nil {
			return false, err
		}
	}

	if count > l.max {
		if err := l.client.Set(ctx, blockKey, "1", 3*l.window).Err(); err != nil {
			return false, err
		}
		span.SetAttributes(attribute.String("otp.limit", "window"))
		return false, nil
	}

	if err := l.client.Set(ctx, lastKey, "1", l.cooldown).Err(); err != nil {
		return false, err
	}

	return true, nil
}
