// Package stats keeps lightweight usage counters in redis. It stores
// nothing about profile contents, only how often lookups happen, so the
// boot report can show activity across restarts.
package stats

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/discochess/castle-discord-service/config"
)

const (
	keyPrefix    = "castle-discord-service:"
	totalKey     = keyPrefix + "lookups:total"
	usernamesKey = keyPrefix + "lookups:usernames"
)

// Store is a redis-backed counter store. A nil *Store is valid and
// turns every operation into a no-op, for deployments without redis.
type Store struct {
	rdb *redis.Client
	ctx context.Context
}

// New connects to redis. Returns (nil, nil) when no address is
// configured; the bot runs fine without a stats store.
func New(cfg *config.RedisConfig) (*Store, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Store{rdb: rdb, ctx: ctx}, nil
}

// RecordLookup counts one profile lookup for a username.
func (s *Store) RecordLookup(username string) error {
	if s == nil {
		return nil
	}
	pipe := s.rdb.Pipeline()
	pipe.Incr(s.ctx, totalKey)
	pipe.ZIncrBy(s.ctx, usernamesKey, 1, username)
	_, err := pipe.Exec(s.ctx)
	return err
}

// TotalLookups returns the all-time lookup count.
func (s *Store) TotalLookups() (int64, error) {
	if s == nil {
		return 0, nil
	}
	n, err := s.rdb.Get(s.ctx, totalKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// LookupCount returns how often one username has been looked up.
func (s *Store) LookupCount(username string) (int64, error) {
	if s == nil {
		return 0, nil
	}
	score, err := s.rdb.ZScore(s.ctx, usernamesKey, username).Result()
	if err == redis.Nil {
		return 0, nil
	}
	return int64(score), err
}

// TopLookups returns the most looked-up usernames, most popular first.
func (s *Store) TopLookups(n int64) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	return s.rdb.ZRevRange(s.ctx, usernamesKey, 0, n-1).Result()
}

// Ping checks the redis connection.
func (s *Store) Ping() error {
	if s == nil {
		return nil
	}
	return s.rdb.Ping(s.ctx).Err()
}

// Close releases the redis connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.rdb.Close()
}
