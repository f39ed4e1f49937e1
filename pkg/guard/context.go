package guard

import (
	"context"

	"github.com/ommnia/permtree"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var treeContextKey = &contextKey{name: "permission_tree"}

// SetTree attaches the caller's permission tree to the context.
func SetTree(ctx context.Context, tree *permtree.Tree) context.Context {
	return context.WithValue(ctx, treeContextKey, tree)
}

// GetTree returns the permission tree from the context. The second return
// value is false when no tree is attached.
func GetTree(ctx context.Context) (*permtree.Tree, bool) {
	tree, ok := ctx.Value(treeContextKey).(*permtree.Tree)
	return tree, ok
}

// Check evaluates the dotted permission against the tree in the context.
// With no tree attached it returns false: a request that never went through
// the resolving middleware has no grants.
func Check(ctx context.Context, permission string) bool {
	tree, ok := GetTree(ctx)
	if !ok {
		return false
	}
	return tree.Check(permission)
}
