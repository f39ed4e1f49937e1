// Package permstore persists permission trees in Redis, one tree per
// subject (a user ID, an API key, a service name — any stable identifier).
//
// Trees are stored in the nested-object JSON form produced by
// permtree.Tree.MarshalJSON under "<prefix>:<subject>" keys, so stored
// values stay readable by external collaborators in other languages.
//
// # Usage
//
// Import the package:
//
//	import "github.com/ommnia/permtree/pkg/permstore"
//
// Most projects load configuration from the environment:
//
//	cfg, err := permstore.LoadConfig()
//	if err != nil {
//	    // handle error
//	}
//
//	store, err := permstore.NewFromConfig(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//
// Or wrap an existing go-redis client:
//
//	store, err := permstore.New(client,
//	    permstore.WithKeyPrefix("perms"),
//	    permstore.WithTTL(24*time.Hour),
//	)
//
// Save, load, and edit per-subject trees:
//
//	tree := permtree.FromStrings("auth.users.read", "billing")
//	if err := store.Save(ctx, "user:42", tree); err != nil { ... }
//
//	granted, err := store.Check(ctx, "user:42", "billing.invoices.send")
//
//	if err := store.Grant(ctx, "user:42", "auth.users.create"); err != nil { ... }
//
// # Concurrency
//
// Grant and Revoke are read-modify-write sequences without optimistic
// locking; a subject's tree is expected to have one writer at a time, the
// same posture the core type takes. Reads are safe under concurrent use of
// the Store itself.
//
// # Errors
//
// The package exposes sentinel errors (ErrTreeNotFound, ErrCorruptTree,
// ErrRedisNotReady, ...) joined over the underlying driver errors with
// errors.Join, so both the sentinel and e.g. redis.Nil can be matched with
// errors.Is.
//
// # See Also
//
//   - https://github.com/redis/go-redis – underlying driver
//   - github.com/ommnia/permtree – the tree type being stored
package permstore
