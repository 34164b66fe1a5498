package goACL

import (
	"context"
	"sort"

	"github.com/MrEthical07/goACL/store"
)

// Grantees lists the accounts holding membership of roleName, sorted for
// stable output. Requires a store implementing [store.Scanner]; otherwise
// ErrEnumerationUnsupported is returned.
func (e *Engine) Grantees(ctx context.Context, roleName string) ([]string, error) {
	return e.enumerate(ctx, roleName, false)
}

// Admins lists the accounts holding the admin bit for roleName. Accounts
// that are admins only through the super-admin flag are not listed; use
// [Engine.IsAdmin] for effective admin checks.
func (e *Engine) Admins(ctx context.Context, roleName string) ([]string, error) {
	return e.enumerate(ctx, roleName, true)
}

func (e *Engine) enumerate(ctx context.Context, roleName string, admin bool) ([]string, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}

	r, err := e.resolveRole(roleName)
	if err != nil {
		return nil, err
	}

	scanner, ok := e.store.(store.Scanner)
	if !ok {
		return nil, ErrEnumerationUnsupported
	}

	accounts, err := scanner.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	bit := r.MemberBit()
	if admin {
		bit = r.AdminBit()
	}

	var out []string
	for _, account := range accounts {
		mask, err := e.loadMask(ctx, account)
		if err != nil {
			return nil, err
		}
		if mask.Has(bit) {
			out = append(out, account)
		}
	}

	sort.Strings(out)
	return out, nil
}
