// Package requestcontext carries request-scoped values from middleware to
// services without services importing net/http.
//
//	caller := requestcontext.Caller(ctx)
//	now := requestcontext.Now(ctx)
package requestcontext

import (
	"context"
	"time"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
)

type (
	callerKey      struct{}
	clientIPKey    struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

func value[T any](ctx context.Context, key any) T {
	v, _ := ctx.Value(key).(T)
	return v
}

// Caller returns the authenticated caller, or the zero Principal for an
// anonymous request.
func Caller(ctx context.Context) domain.Principal {
	return value[domain.Principal](ctx, callerKey{})
}

func WithCaller(ctx context.Context, caller domain.Principal) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// RequireCaller returns the authenticated caller or an unauthorized error.
func RequireCaller(ctx context.Context) (domain.Principal, error) {
	caller := Caller(ctx)
	if caller.IsNil() {
		return "", dErrors.New(dErrors.CodeUnauthorized, "caller is required")
	}
	return caller, nil
}

func ClientIP(ctx context.Context) string {
	return value[string](ctx, clientIPKey{})
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func RequestID(ctx context.Context) string {
	return value[string](ctx, requestIDKey{})
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now returns the time pinned for the request, or time.Now outside one
// (startup seeding, workers).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the request time. Tests use it to drive the clock height
// source deterministically.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
