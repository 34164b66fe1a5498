package goACL

import "errors"

var (
	// ErrUnauthorized is returned by mutating engine operations when the
	// caller lacks admin status for the target role. Pure queries never
	// return it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAuthorizationDenied is returned by [Engine.Check] when the caller
	// fails a method's declared policy. Distinct from ErrUnauthorized: it
	// gates method execution, not membership mutation.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrUnknownRole is returned when an operation names a role that was
	// never registered.
	ErrUnknownRole = errors.New("unknown role")
	// ErrPolicyEmpty is returned by [Engine.Check] for a policy with no
	// roles; an empty policy is a host configuration error, not a denial.
	ErrPolicyEmpty = errors.New("policy has no roles")
	// ErrEnumerationUnsupported is returned by Grantees/Admins when the
	// configured store cannot list its accounts.
	ErrEnumerationUnsupported = errors.New("membership store does not support enumeration")
	// ErrEngineNotReady is returned when an Engine is used before Build.
	ErrEngineNotReady = errors.New("engine not initialized")
)
