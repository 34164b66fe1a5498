package goACL

import "context"

// GrantRole marks account as a member of roleName. The caller (from ctx)
// must be an admin of roleName, otherwise ErrUnauthorized is returned and
// the store is untouched. Returns whether the account was newly granted;
// re-granting is idempotent.
func (e *Engine) GrantRole(ctx context.Context, roleName, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	allowed, err := e.isAdminOf(ctx, r, callerFromContext(ctx))
	if err != nil {
		return false, err
	}
	if !allowed {
		e.metricInc(MetricUnauthorizedMutation)
		return false, ErrUnauthorized
	}

	return e.setBit(ctx, account, r.MemberBit(), true, EventRoleGranted, r.Name(), MetricRoleGranted)
}

// RevokeRole removes account's membership of roleName under the same admin
// gating as [Engine.GrantRole]. Revoking a non-member is a no-op.
func (e *Engine) RevokeRole(ctx context.Context, roleName, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	allowed, err := e.isAdminOf(ctx, r, callerFromContext(ctx))
	if err != nil {
		return false, err
	}
	if !allowed {
		e.metricInc(MetricUnauthorizedMutation)
		return false, ErrUnauthorized
	}

	return e.setBit(ctx, account, r.MemberBit(), false, EventRoleRevoked, r.Name(), MetricRoleRevoked)
}

// RenounceRole drops the caller's own membership of roleName. No admin
// gating: an account may always give up its own role. Returns whether the
// caller was a member.
func (e *Engine) RenounceRole(ctx context.Context, roleName string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	caller := callerFromContext(ctx)
	if caller == "" {
		return false, ErrUnauthorized
	}

	return e.setBit(ctx, caller, r.MemberBit(), false, EventRoleRevoked, r.Name(), MetricRoleRevoked)
}

// HasRole reports whether account is a member of roleName. Pure query: no
// caller identity required, never returns ErrUnauthorized. Unknown accounts
// are simply not members.
func (e *Engine) HasRole(ctx context.Context, roleName, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	mask, err := e.loadMask(ctx, account)
	if err != nil {
		return false, err
	}

	return mask.Has(r.MemberBit()), nil
}
