package goACL

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/MrEthical07/goACL/store"
)

func TestGranteesAndAdmins(t *testing.T) {
	engine := newTestEngine(t)
	grantAll(t, engine, "bob", "L1")
	grantAll(t, engine, "carol", "L1")
	grantAll(t, engine, "dave", "L2")

	grantees, err := engine.Grantees(context.Background(), "L1")
	if err != nil {
		t.Fatalf("Grantees failed: %v", err)
	}
	if want := []string{"bob", "carol"}; !reflect.DeepEqual(grantees, want) {
		t.Fatalf("Grantees(L1) = %v, want %v", grantees, want)
	}

	admins, err := engine.Admins(context.Background(), "L1")
	if err != nil {
		t.Fatalf("Admins failed: %v", err)
	}
	if want := []string{"admin1"}; !reflect.DeepEqual(admins, want) {
		t.Fatalf("Admins(L1) = %v, want %v", admins, want)
	}
}

func TestSuperAdminNotListedPerRole(t *testing.T) {
	engine, err := New().
		WithRoles("L1").
		WithSuperAdmins("root").
		WithAdmins("L1", "admin1").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	admins, err := engine.Admins(context.Background(), "L1")
	if err != nil {
		t.Fatalf("Admins failed: %v", err)
	}
	if want := []string{"admin1"}; !reflect.DeepEqual(admins, want) {
		t.Fatalf("Admins(L1) = %v, want %v", admins, want)
	}
}

// blobOnlyStore wraps a store while hiding its Scanner implementation.
type blobOnlyStore struct {
	inner store.Store
}

func (s blobOnlyStore) Load(ctx context.Context, account string) ([]byte, error) {
	return s.inner.Load(ctx, account)
}

func (s blobOnlyStore) Save(ctx context.Context, account string, blob []byte) error {
	return s.inner.Save(ctx, account, blob)
}

func (s blobOnlyStore) Delete(ctx context.Context, account string) error {
	return s.inner.Delete(ctx, account)
}

func TestEnumerationUnsupportedStore(t *testing.T) {
	engine, err := New().
		WithRoles("L1").
		WithAdmins("L1", "admin1").
		WithStore(blobOnlyStore{inner: store.NewMemoryStore()}).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Grantees(context.Background(), "L1"); !errors.Is(err, ErrEnumerationUnsupported) {
		t.Fatalf("expected ErrEnumerationUnsupported, got %v", err)
	}
}
