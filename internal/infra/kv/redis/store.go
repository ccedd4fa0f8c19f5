// Package redis stores slots as plain Redis string keys.
package redis

import (
	"context"
	"edugestao/internal/kv/core"
	"errors"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

var _ core.Store = (*Store)(nil)

const defaultURL = "redis://localhost:6379/0"

// Store implements core.Store on top of a Redis client.
type Store struct {
	client *goredis.Client
	prefix string
}

// NewStore parses url, connects, and validates the connection with a ping.
// Every slot key is stored under prefix.
func NewStore(ctx context.Context, url, prefix string) (*Store, error) {
	if url == "" {
		url = defaultURL
	}
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := goredis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, prefix), nil
}

// New wraps an existing client.
func New(client *goredis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Driver() core.Driver { return core.DriverRedis }

func (s *Store) key(slot string) (string, error) {
	if strings.TrimSpace(slot) == "" {
		return "", core.ErrEmptyKey
	}
	return s.prefix + slot, nil
}

func (s *Store) Get(ctx context.Context, slot string) ([]byte, bool, error) {
	key, err := s.key(slot)
	if err != nil {
		return nil, false, err
	}
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return b, true, nil
}

func (s *Store) Put(ctx context.Context, slot string, payload []byte) error {
	key, err := s.key(slot)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, slot string) (bool, error) {
	key, err := s.key(slot)
	if err != nil {
		return false, err
	}
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("del %s: %w", key, err)
	}
	return n > 0, nil
}

func (s *Store) Close() error { return s.client.Close() }
