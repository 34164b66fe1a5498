package goACL

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/MrEthical07/goACL/role"
	"github.com/MrEthical07/goACL/store"
	"github.com/google/uuid"
)

const accountLockShards = 64

// Engine is the access-control core. Build one through [Builder]; all
// methods are safe for concurrent use after Build. Mutations targeting the
// same account are serialized inside the engine, so concurrent grants never
// lose bits to an interleaved read-modify-write. That serialization is
// per-process: hosts sharing one store across processes must serialize
// writes themselves.
type Engine struct {
	config   Config
	registry *role.Registry
	store    store.Store
	audit    *auditDispatcher
	metrics  *Metrics

	// accountLocks stripes the per-account mutation lock. Queries never
	// take it; they read a single mask snapshot.
	accountLocks [accountLockShards]sync.Mutex
}

// Close flushes and stops the audit dispatcher. The engine must not be used
// afterwards.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// Roles lists the registered role names in registration order.
func (e *Engine) Roles() []string {
	if e == nil || e.registry == nil {
		return nil
	}

	roles := e.registry.Roles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.Name())
	}
	return out
}

// AuditDropped reports how many audit events were dropped because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) resolveRole(name string) (role.Role, error) {
	r, ok := e.registry.Lookup(name)
	if !ok {
		return role.Role{}, ErrUnknownRole
	}
	return r, nil
}

// loadMask reads the caller-visible snapshot of an account's permissions.
// An account the store has never seen decodes to an empty mask.
func (e *Engine) loadMask(ctx context.Context, account string) (role.Mask, error) {
	blob, err := e.store.Load(ctx, account)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return e.registry.NewMask(), nil
	}
	return role.DecodeMask(blob)
}

func (e *Engine) saveMask(ctx context.Context, account string, mask role.Mask) error {
	blob, err := role.EncodeMask(mask)
	if err != nil {
		return err
	}
	return e.store.Save(ctx, account, blob)
}

func (e *Engine) accountMu(account string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(account))
	return &e.accountLocks[h.Sum32()%accountLockShards]
}

// setBit is the single mutation path: it flips one permission bit and, only
// when the bit actually changed, persists the mask and emits the audit
// event. The returned bool reports whether state changed (idempotent
// re-grants and no-op revokes return false, nil). The load-modify-save is
// serialized per account so concurrent mutations cannot drop each other's
// bits.
func (e *Engine) setBit(
	ctx context.Context,
	account string,
	bit int,
	present bool,
	eventType string,
	roleName string,
	metric MetricID,
) (bool, error) {
	mu := e.accountMu(account)
	mu.Lock()
	defer mu.Unlock()

	mask, err := e.loadMask(ctx, account)
	if err != nil {
		return false, err
	}

	if mask.Has(bit) == present {
		return false, nil
	}

	if present {
		mask.Set(bit)
	} else {
		mask.Clear(bit)
	}

	if err := e.saveMask(ctx, account, mask); err != nil {
		return false, err
	}

	e.metricInc(metric)
	e.emit(ctx, eventType, roleName, account)
	return true, nil
}

func (e *Engine) emit(ctx context.Context, eventType, roleName, account string) {
	if e.audit == nil {
		return
	}

	e.audit.Emit(ctx, AclEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Role:      roleName,
		Account:   account,
		Caller:    callerFromContext(ctx),
	})
}

// isAdminOf reports whether account holds the admin bit for r or the
// super-admin flag. An empty account never qualifies.
func (e *Engine) isAdminOf(ctx context.Context, r role.Role, account string) (bool, error) {
	if account == "" {
		return false, nil
	}

	mask, err := e.loadMask(ctx, account)
	if err != nil {
		return false, err
	}

	return mask.Has(role.SuperAdminBit) || mask.Has(r.AdminBit()), nil
}
