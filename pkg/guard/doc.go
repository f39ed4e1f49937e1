// Package guard enforces permission-tree checks on HTTP routes.
//
// It is the caller-side authorization layer around github.com/ommnia/permtree:
// a resolving middleware attaches the caller's tree to the request context
// once, and per-route Require middlewares evaluate dotted permissions
// against it. The package is router-agnostic; the middlewares are plain
// func(http.Handler) http.Handler and compose with chi, the standard mux,
// or anything compatible.
//
// # Usage
//
//	import (
//	    "github.com/go-chi/chi/v5"
//
//	    "github.com/ommnia/permtree/pkg/guard"
//	)
//
//	resolver := func(r *http.Request) (*permtree.Tree, error) {
//	    return store.Load(r.Context(), subjectFrom(r))
//	}
//
//	r := chi.NewRouter()
//	r.Use(guard.Middleware(resolver))
//
//	r.With(guard.Require("users.read")).Get("/users", listUsers)
//	r.With(guard.RequireAll("users.read", "users.write")).Post("/users", createUser)
//
// Handlers can run finer-grained checks themselves:
//
//	if !guard.Check(r.Context(), "users.delete."+id) {
//	    http.Error(w, "forbidden", http.StatusForbidden)
//	    return
//	}
//
// # Responses
//
// A request with no resolvable tree answers 401 Unauthorized; a resolved
// tree that lacks the required permission answers 403 Forbidden.
//
// # See Also
//
//   - github.com/ommnia/permtree – the tree type being evaluated
//   - pkg/permstore – a ready-made tree resolver backend
package guard
