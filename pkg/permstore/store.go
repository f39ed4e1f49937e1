package permstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ommnia/permtree"
)

// Store persists one permission tree per subject in Redis. Trees are stored
// in the core JSON node-graph form under "<prefix>:<subject>" keys.
//
// The read-modify-write helpers (Grant, Revoke) follow the core's concurrency
// posture: a subject's tree is expected to have a single writer at a time.
// Concurrent writers for the same subject can lose updates; callers needing
// that must serialize externally.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides the default "permtree" key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL expires stored trees after the given duration. Zero (the default)
// keeps them until deleted.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a Store on top of an existing Redis client.
func New(client *redis.Client, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	store := &Store{
		client: client,
		prefix: "permtree",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// NewFromConfig connects to Redis per cfg and returns a Store using the
// configured key prefix and TTL.
func NewFromConfig(ctx context.Context, cfg Config) (*Store, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(client, WithKeyPrefix(cfg.KeyPrefix), WithTTL(cfg.TTL))
}

func (s *Store) key(subject string) string {
	return s.prefix + ":" + subject
}

// Save stores the subject's permission tree, replacing any previous one.
func (s *Store) Save(ctx context.Context, subject string, tree *permtree.Tree) error {
	if subject == "" {
		return ErrEmptySubject
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("permstore: marshal tree for %q: %w", subject, err)
	}

	if err := s.client.Set(ctx, s.key(subject), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("permstore: save tree for %q: %w", subject, err)
	}
	return nil
}

// Load returns the subject's permission tree, or ErrTreeNotFound if none is
// stored. A stored value that cannot be decoded is ErrCorruptTree.
func (s *Store) Load(ctx context.Context, subject string) (*permtree.Tree, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}

	data, err := s.client.Get(ctx, s.key(subject)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Join(ErrTreeNotFound, err)
		}
		return nil, fmt.Errorf("permstore: load tree for %q: %w", subject, err)
	}

	var tree permtree.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Join(ErrCorruptTree, err)
	}
	return &tree, nil
}

// Delete removes the subject's stored tree. It reports whether a tree was
// actually removed.
func (s *Store) Delete(ctx context.Context, subject string) (bool, error) {
	if subject == "" {
		return false, ErrEmptySubject
	}

	removed, err := s.client.Del(ctx, s.key(subject)).Result()
	if err != nil {
		return false, fmt.Errorf("permstore: delete tree for %q: %w", subject, err)
	}
	return removed > 0, nil
}

// Grant adds the dotted permissions to the subject's stored tree and saves
// it back. A subject with no stored tree starts from an empty tree.
func (s *Store) Grant(ctx context.Context, subject string, permissions ...string) error {
	tree, err := s.Load(ctx, subject)
	if err != nil {
		if !errors.Is(err, ErrTreeNotFound) {
			return err
		}
		tree = permtree.New()
	}

	tree.GrantStrings(permissions...)
	return s.Save(ctx, subject, tree)
}

// Revoke removes the dotted permission from the subject's stored tree and
// saves it back. It reports whether the permission was present, mirroring
// [permtree.Tree.Revoke]. A subject with no stored tree is ErrTreeNotFound.
func (s *Store) Revoke(ctx context.Context, subject string, permission string) (bool, error) {
	tree, err := s.Load(ctx, subject)
	if err != nil {
		return false, err
	}

	revoked := tree.Revoke(permission)
	if !revoked {
		return false, nil
	}

	if err := s.Save(ctx, subject, tree); err != nil {
		return false, err
	}
	return true, nil
}

// Check loads the subject's stored tree and evaluates the permission against
// it. A subject with no stored tree is ErrTreeNotFound; callers decide
// whether that means deny.
func (s *Store) Check(ctx context.Context, subject string, permission string) (bool, error) {
	tree, err := s.Load(ctx, subject)
	if err != nil {
		return false, err
	}
	return tree.Check(permission), nil
}
