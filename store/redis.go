package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 128

// RedisStore persists permission masks in Redis, one key per account under
// a configurable prefix. Keys carry no TTL; membership lives as long as the
// contract's persistent state.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed [Store]. Keys are laid out as
// "<prefix>:acl:<account>".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "goacl"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(account string) string {
	return s.prefix + ":acl:" + account
}

func (s *RedisStore) Load(ctx context.Context, account string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key(account)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return blob, nil
}

func (s *RedisStore) Save(ctx context.Context, account string, blob []byte) error {
	if err := s.client.Set(ctx, s.key(account), blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, account string) error {
	if err := s.client.Del(ctx, s.key(account)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Accounts implements [Scanner] via SCAN over the store's key prefix.
func (s *RedisStore) Accounts(ctx context.Context) ([]string, error) {
	pattern := s.prefix + ":acl:*"
	strip := s.prefix + ":acl:"

	var (
		accounts []string
		cursor   uint64
	)

	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		for _, key := range keys {
			accounts = append(accounts, strings.TrimPrefix(key, strip))
		}

		cursor = next
		if cursor == 0 {
			return accounts, nil
		}
	}
}
