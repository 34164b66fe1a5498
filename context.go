package goACL

import "context"

type callerContextKey struct{}

// WithCaller attaches the caller's account identifier to ctx. The host
// framework sets it once per invocation before dispatching into guarded
// methods; the Engine reads it for admin gating and policy checks.
//
// An absent or empty caller never satisfies any check: mutators return
// ErrUnauthorized and Check returns ErrAuthorizationDenied.
func WithCaller(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, callerContextKey{}, account)
}

// Caller returns the account identifier attached by [WithCaller], or ""
// when none is set.
func Caller(ctx context.Context) string {
	return callerFromContext(ctx)
}

func callerFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	account, _ := ctx.Value(callerContextKey{}).(string)
	return account
}
