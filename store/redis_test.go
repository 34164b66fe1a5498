package store

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, "t"), mr
}

func TestRedisStoreAbsentAccount(t *testing.T) {
	s, _ := newTestRedisStore(t)

	blob, err := s.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if blob != nil {
		t.Fatalf("absent account returned blob %v", blob)
	}
}

func TestRedisStoreSaveLoadDelete(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "alice", []byte{0xde, 0xad}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	blob, err := s.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(blob, []byte{0xde, 0xad}) {
		t.Fatalf("loaded %v, want [de ad]", blob)
	}

	if err := s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	blob, err = s.Load(ctx, "alice")
	if err != nil || blob != nil {
		t.Fatalf("after delete: blob=%v err=%v, want nil/nil", blob, err)
	}
}

func TestRedisStoreAccountsScan(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	for _, account := range []string{"alice", "bob", "carol"} {
		if err := s.Save(ctx, account, []byte{1}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	// A foreign key under another prefix must not be listed.
	mr.Set("other:acl:dave", "x")

	accounts, err := s.Accounts(ctx)
	if err != nil {
		t.Fatalf("accounts failed: %v", err)
	}
	sort.Strings(accounts)
	want := []string{"alice", "bob", "carol"}
	if len(accounts) != len(want) {
		t.Fatalf("Accounts = %v, want %v", accounts, want)
	}
	for i := range want {
		if accounts[i] != want[i] {
			t.Fatalf("Accounts = %v, want %v", accounts, want)
		}
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Close()

	if _, err := s.Load(context.Background(), "alice"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := s.Save(context.Background(), "alice", []byte{1}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
