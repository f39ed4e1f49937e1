package guard

import (
	"net/http"

	"github.com/ommnia/permtree"
)

// TreeResolverFunc resolves the permission tree for an HTTP request, e.g.
// from a session, a token claim, or a permstore lookup.
type TreeResolverFunc func(r *http.Request) (*permtree.Tree, error)

// SkipFunc decides whether to bypass tree resolution for a request.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures the tree-resolving middleware.
type MiddlewareConfig struct {
	Resolver TreeResolverFunc // Resolves the caller's tree (required)
	Skip     SkipFunc         // Optional request filter to bypass resolution
}

// Middleware resolves the caller's permission tree once per request and
// injects it into the request context for downstream Require* checks and
// handlers. Resolution failures answer 401.
func Middleware(resolver TreeResolverFunc) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Resolver: resolver})
}

// MiddlewareWithConfig creates the tree-resolving middleware with custom
// configuration. It panics if no resolver is configured; that is a wiring
// bug, not a runtime condition.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Resolver == nil {
		panic(ErrNilResolver)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tree, err := config.Resolver(r)
			if err != nil || tree == nil {
				http.Error(w, ErrNoTree.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetTree(r.Context(), tree)))
		})
	}
}

// Require allows the request through only if the context tree grants the
// dotted permission. A missing tree answers 401, a missing grant 403.
func Require(permission string) func(next http.Handler) http.Handler {
	return requireWith(func(tree *permtree.Tree) bool {
		return tree.Check(permission)
	})
}

// RequireAny allows the request through if the context tree grants at least
// one of the permissions.
func RequireAny(permissions ...string) func(next http.Handler) http.Handler {
	return requireWith(func(tree *permtree.Tree) bool {
		return tree.CheckAny(permissions...)
	})
}

// RequireAll allows the request through only if the context tree grants
// every permission.
func RequireAll(permissions ...string) func(next http.Handler) http.Handler {
	return requireWith(func(tree *permtree.Tree) bool {
		return tree.CheckAll(permissions...)
	})
}

func requireWith(granted func(tree *permtree.Tree) bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tree, ok := GetTree(r.Context())
			if !ok {
				http.Error(w, ErrNoTree.Error(), http.StatusUnauthorized)
				return
			}

			if !granted(tree) {
				http.Error(w, ErrPermissionDenied.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
