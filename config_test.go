package goACL

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrEthical07/goACL/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Roles.MaxBits != 64 {
		t.Fatalf("Roles.MaxBits = %d, want 64", cfg.Roles.MaxBits)
	}
	if cfg.Store.RedisPrefix == "" {
		t.Fatal("Store.RedisPrefix must have a default")
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics must default on")
	}
}

func TestValidateConfigRejectsBadMaskWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roles.MaxBits = 100

	if err := validateConfig(&cfg); err == nil {
		t.Fatal("expected invalid MaxBits to be rejected")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goacl.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
[Roles]
MaxBits = 128

[Store]
RedisPrefix = "counter"

[Audit]
Enabled = true
BufferSize = 32
DropIfFull = false
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Roles.MaxBits != 128 {
		t.Fatalf("Roles.MaxBits = %d, want 128", cfg.Roles.MaxBits)
	}
	if cfg.Store.RedisPrefix != "counter" {
		t.Fatalf("Store.RedisPrefix = %q, want counter", cfg.Store.RedisPrefix)
	}
	if !cfg.Audit.Enabled || cfg.Audit.BufferSize != 32 || cfg.Audit.DropIfFull {
		t.Fatalf("unexpected audit config: %+v", cfg.Audit)
	}
	// Untouched sections keep defaults.
	if !cfg.Metrics.Enabled {
		t.Fatal("Metrics.Enabled default lost")
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
[Roles]
MaxBitz = 128
`)

	if _, err := LoadConfigFile(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestBuilderRequiresRoles(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected build without roles to fail")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithRoles("L1")

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	defer engine.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("expected second build to fail")
	}
}

func TestBuilderRejectsDuplicateRoles(t *testing.T) {
	if _, err := New().WithRoles("L1", "L1").Build(); err == nil {
		t.Fatal("expected duplicate role to be rejected")
	}
}

func TestBuilderRejectsAdminsForUnknownRole(t *testing.T) {
	_, err := New().
		WithRoles("L1").
		WithAdmins("L9", "admin1").
		Build()
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestBuilderFailedSeedWritesNothing(t *testing.T) {
	st := store.NewMemoryStore()

	_, err := New().
		WithRoles("L1").
		WithStore(st).
		WithSuperAdmins("root").
		WithAdmins("L1", "admin1").
		WithAdmins("L9", "admin1").
		Build()
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}

	// The failed Build must not have persisted any of the valid seeds.
	accounts, scanErr := st.Accounts(context.Background())
	if scanErr != nil {
		t.Fatalf("accounts failed: %v", scanErr)
	}
	if len(accounts) != 0 {
		t.Fatalf("failed build left seeded accounts behind: %v", accounts)
	}
}

func TestBuilderRoleCapacity(t *testing.T) {
	b := New()
	// A 64-bit mask holds 31 roles; the 32nd must fail at Build.
	for i := 0; i < 32; i++ {
		b.WithRoles(string(rune('A' + i)))
	}

	if _, err := b.Build(); err == nil {
		t.Fatal("expected role limit to be enforced")
	}
}
