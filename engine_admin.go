package goACL

import (
	"context"

	"github.com/MrEthical07/goACL/role"
)

// AddAdminUnchecked grants admin status for roleName without checking the
// caller's permissions. Reserved for contract initialization; the host
// framework is responsible for restricting it to the one-time init routine.
// [Builder.WithAdmins] invokes it during Build so normal hosts never call
// it directly. Idempotent.
func (e *Engine) AddAdminUnchecked(ctx context.Context, roleName, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	return e.setBit(ctx, account, r.AdminBit(), true, EventAdminAdded, r.Name(), MetricAdminAdded)
}

// AddSuperAdminUnchecked grants the super-admin flag without checking the
// caller's permissions. A super-admin passes IsAdmin for every registered
// role and may therefore mutate any membership; it does NOT hold or imply
// membership of any role. Reserved for contract initialization.
func (e *Engine) AddSuperAdminUnchecked(ctx context.Context, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	return e.setBit(ctx, account, role.SuperAdminBit, true, EventSuperAdminAdded, "", MetricAdminAdded)
}

// AddAdmin grants account admin status for roleName. The caller must
// already be an admin of roleName.
func (e *Engine) AddAdmin(ctx context.Context, roleName, account string) (bool, error) {
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

	return e.setBit(ctx, account, r.AdminBit(), true, EventAdminAdded, r.Name(), MetricAdminAdded)
}

// RemoveAdmin revokes account's admin status for roleName. The caller must
// be an admin of roleName; admins may remove themselves. Nothing prevents
// removing the last admin of a role — after that the role's membership can
// no longer be mutated through the checked API. Keeping at least one admin
// alive is the caller's responsibility.
func (e *Engine) RemoveAdmin(ctx context.Context, roleName, account string) (bool, error) {
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

	return e.setBit(ctx, account, r.AdminBit(), false, EventAdminRevoked, r.Name(), MetricAdminRevoked)
}

// RenounceAdmin drops the caller's own admin status for roleName. Same
// last-admin caveat as [Engine.RemoveAdmin].
func (e *Engine) RenounceAdmin(ctx context.Context, roleName string) (bool, error) {
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

	return e.setBit(ctx, caller, r.AdminBit(), false, EventAdminRevoked, r.Name(), MetricAdminRevoked)
}

// IsAdmin reports whether account is an admin of roleName, either through
// the role's admin bit or the super-admin flag. Pure query.
func (e *Engine) IsAdmin(ctx context.Context, roleName, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return false, err
	}

	return e.isAdminOf(ctx, r, account)
}

// IsSuperAdmin reports whether account holds the super-admin flag.
func (e *Engine) IsSuperAdmin(ctx context.Context, account string) (bool, error) {
	if e == nil || e.store == nil {
		return false, ErrEngineNotReady
	}

	mask, err := e.loadMask(ctx, account)
	if err != nil {
		return false, err
	}

	return mask.Has(role.SuperAdminBit), nil
}
