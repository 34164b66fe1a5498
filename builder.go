package goACL

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrEthical07/goACL/role"
	"github.com/MrEthical07/goACL/store"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Construction is allocation-only; Build
// performs the one-time initialization writes (seeded admins) and freezes
// the role set. A Builder is single-use.
type Builder struct {
	config Config
	redis  *redis.Client
	store  store.Store

	roles       []string
	admins      map[string][]string
	superAdmins []string

	auditSink AuditSink

	built bool
}

// New creates a Builder with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		admins: make(map[string][]string),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis selects a Redis-backed membership store. Ignored when
// [Builder.WithStore] supplies a custom store.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithStore supplies a custom membership store, typically an adapter over
// the host framework's storage mechanism.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithRoles declares the contract's closed role set, in order. The set is
// frozen at Build; at least one role is required.
func (b *Builder) WithRoles(names ...string) *Builder {
	b.roles = append(b.roles, names...)
	return b
}

// WithAdmins seeds initial admins for a role. Seeding runs inside Build via
// the unchecked bootstrap path, which is the one phase where unchecked
// grants are legitimate.
func (b *Builder) WithAdmins(roleName string, accounts ...string) *Builder {
	b.admins[roleName] = append(b.admins[roleName], accounts...)
	return b
}

// WithSuperAdmins seeds accounts holding the super-admin flag.
func (b *Builder) WithSuperAdmins(accounts ...string) *Builder {
	b.superAdmins = append(b.superAdmins, accounts...)
	return b
}

// WithAuditSink sets the destination for audit events and enables auditing.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles the engine counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, freezes the role registry, wires the
// store, and seeds the configured admins.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := validateConfig(&b.config); err != nil {
		return nil, err
	}

	if len(b.roles) == 0 {
		return nil, errors.New("no roles registered")
	}

	registry, err := role.NewRegistry(b.config.Roles.MaxBits)
	if err != nil {
		return nil, err
	}
	for _, name := range b.roles {
		if _, err := registry.Register(name); err != nil {
			return nil, fmt.Errorf("register role %q: %w", name, err)
		}
	}
	registry.Freeze()

	st := b.store
	if st == nil {
		if b.redis != nil {
			st = store.NewRedisStore(b.redis, b.config.Store.RedisPrefix)
		} else {
			st = store.NewMemoryStore()
		}
	}

	engine := &Engine{
		config:   b.config,
		registry: registry,
		store:    st,
		audit:    newAuditDispatcher(b.config.Audit, b.auditSink),
		metrics:  newMetrics(b.config.Metrics),
	}

	if err := b.seed(engine); err != nil {
		engine.Close()
		return nil, err
	}

	b.built = true
	return engine, nil
}

func (b *Builder) seed(engine *Engine) error {
	// Validate every admin key before the first write so a typoed role
	// name fails the Build without leaving partial state in a persistent
	// store.
	for roleName := range b.admins {
		if _, ok := engine.registry.Lookup(roleName); !ok {
			return fmt.Errorf("seed admins: %w: %q", ErrUnknownRole, roleName)
		}
	}

	ctx := context.Background()

	for _, account := range b.superAdmins {
		if _, err := engine.AddSuperAdminUnchecked(ctx, account); err != nil {
			return fmt.Errorf("seed super admin %q: %w", account, err)
		}
	}

	// Deterministic seeding order: roles as registered, accounts as given.
	for _, roleName := range b.roles {
		for _, account := range b.admins[roleName] {
			if _, err := engine.AddAdminUnchecked(ctx, roleName, account); err != nil {
				return fmt.Errorf("seed admin %q for role %q: %w", account, roleName, err)
			}
		}
	}

	return nil
}
