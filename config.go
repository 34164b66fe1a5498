package goACL

import "errors"

// Config carries the engine's static configuration. Configure it before
// [Builder.Build]; the engine treats it as immutable afterwards.
type Config struct {
	Roles   RolesConfig
	Store   StoreConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
ROLES CONFIG
====================================
*/

// RolesConfig selects the permission mask width. MaxBits must be 64 or 128;
// the registry holds up to (MaxBits-1)/2 roles.
type RolesConfig struct {
	MaxBits int
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig configures the Redis membership store backend. Ignored when a
// custom store is supplied via [Builder.WithStore].
type StoreConfig struct {
	RedisPrefix string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig configures the buffered audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is full.
	// Dropped counts are observable via [Engine.AuditDropped].
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig enables the engine's internal counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration an empty [Builder] starts from.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Roles: RolesConfig{
			MaxBits: 64,
		},
		Store: StoreConfig{
			RedisPrefix: "goacl",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Roles.MaxBits == 0 {
		cfg.Roles.MaxBits = 64
	}
	if cfg.Roles.MaxBits != 64 && cfg.Roles.MaxBits != 128 {
		return errors.New("config: Roles.MaxBits must be 64 or 128")
	}

	if cfg.Store.RedisPrefix == "" {
		cfg.Store.RedisPrefix = "goacl"
	}

	if cfg.Audit.BufferSize <= 0 {
		cfg.Audit.BufferSize = 256
	}

	return nil
}
