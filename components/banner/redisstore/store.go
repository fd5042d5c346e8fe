package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-banner/components/banner"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces session keys.
const DefaultPrefix = "banner:session:"

// Options configures the redis session store.
type Options struct {
	// Prefix is prepended to session ids. Defaults to DefaultPrefix.
	Prefix string
	// TTL expires idle sessions. Zero keeps them until deleted.
	TTL time.Duration
}

// Store implements banner.SessionStore on top of Redis.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ banner.SessionStore = (*Store)(nil)

// New wraps an existing redis client.
func New(client *redis.Client, opts Options) *Store {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: opts.Prefix, ttl: opts.TTL}
}

// Open parses a redis URL (redis://[:password@]host[:port][/database]) and
// returns a store bound to a new client.
func Open(redisURL string, opts Options) (*Store, error) {
	parsed, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redisstore: parse url: %w", err)
	}
	return New(redis.NewClient(parsed), opts), nil
}

// Get loads a session. Missing keys map to banner.ErrSessionNotFound.
func (s *Store) Get(ctx context.Context, id string) (*banner.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", banner.ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: get %s: %w", id, err)
	}
	var session banner.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("redisstore: decode %s: %w", id, err)
	}
	return &session, nil
}

// Save writes the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, session *banner.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("redisstore: session id is required")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redisstore: encode %s: %w", session.ID, err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redisstore: set %s: %w", session.ID, err)
	}
	return nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redisstore: delete %s: %w", id, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redisstore: ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(id string) string {
	return s.prefix + id
}
