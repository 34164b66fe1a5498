package goACL

import (
	"context"
	"errors"

	"github.com/MrEthical07/goACL/role"
)

// Check evaluates a policy against the caller attached to ctx. It returns
// nil when the caller satisfies the policy and ErrAuthorizationDenied when
// it does not; the guarded method must not run on a non-nil result.
//
// The caller's mask is read exactly once, so evaluation sees a consistent
// snapshot of membership state taken at the start of the check. Any-of
// evaluation short-circuits on the first satisfied role, all-of on the
// first missing one.
func (e *Engine) Check(ctx context.Context, p Policy) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}
	if len(p.Roles) == 0 {
		return ErrPolicyEmpty
	}

	caller := callerFromContext(ctx)
	if caller == "" {
		e.metricInc(MetricCheckDenied)
		return ErrAuthorizationDenied
	}

	mask, err := e.loadMask(ctx, caller)
	if err != nil {
		return err
	}

	satisfied, err := e.evaluate(p, mask)
	if err != nil {
		return err
	}

	if !satisfied {
		e.metricInc(MetricCheckDenied)
		return ErrAuthorizationDenied
	}

	e.metricInc(MetricCheckAllowed)
	return nil
}

func (e *Engine) evaluate(p Policy, mask role.Mask) (bool, error) {
	allOf := p.Kind == PolicyAllOf

	for _, name := range p.Roles {
		r, err := e.resolveRole(name)
		if err != nil {
			return false, err
		}

		has := mask.Has(r.MemberBit())
		if p.Admin {
			has = mask.Has(role.SuperAdminBit) || mask.Has(r.AdminBit())
		}

		if allOf {
			if !has {
				return false, nil
			}
			continue
		}
		if has {
			return true, nil
		}
	}

	// Any-of exhausted without a hit; all-of never missed.
	return allOf, nil
}

// Allowed is the boolean form of [Engine.Check] for hosts that handle the
// deny signal themselves. Configuration errors (unknown role, empty policy,
// store failures) still surface as errors.
func (e *Engine) Allowed(ctx context.Context, p Policy) (bool, error) {
	err := e.Check(ctx, p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAuthorizationDenied):
		return false, nil
	default:
		return false, err
	}
}

// Method is a guarded contract method body.
type Method func(ctx context.Context) error

// Guarded wraps a contract method so the policy check runs before the body.
// On deny the body never executes and ErrAuthorizationDenied propagates to
// the contract's caller.
func (e *Engine) Guarded(p Policy, m Method) Method {
	return func(ctx context.Context) error {
		if err := e.Check(ctx, p); err != nil {
			return err
		}
		return m(ctx)
	}
}
