package permtree

// Tree is a hierarchical set of granted permission paths.
//
// Permissions are dotted paths such as "authentication.users.create". A grant
// at an intermediate path covers every path beneath it: granting
// "authentication.users" also grants "authentication.users.create",
// "authentication.users.read", and so on. Internally the tree is a single
// root [Node].
//
// A Tree is a plain, single-owner value. Mutating methods (Grant*, Revoke*)
// must not be called concurrently with any other method on the same tree;
// read-only methods may run concurrently with each other. Callers needing
// shared mutable access must serialize externally.
type Tree struct {
	root Node
}

// New creates an empty tree.
//
// Note that by the wildcard invariant an empty root grants every path:
// a freshly created tree answers true to every Check until the first Grant
// narrows it. Callers wanting deny-by-default must grant at least one
// permission before evaluating checks.
func New() *Tree {
	return &Tree{root: Node{}}
}

// FromNode creates a tree that adopts the given node graph, e.g. one decoded
// from a persisted representation. The tree takes ownership of the graph; the
// caller must not retain or mutate it afterwards. A nil node behaves as the
// empty root.
func FromNode(node Node) *Tree {
	if node == nil {
		node = Node{}
	}
	return &Tree{root: node}
}

// FromStrings creates a tree with the given dotted permissions granted.
func FromStrings(permissions ...string) *Tree {
	return New().GrantStrings(permissions...)
}

// Node returns a deep copy of the tree's root node graph. The copy is fully
// independent: mutating it does not affect the tree.
func (t *Tree) Node() Node {
	return t.root.Clone()
}

// Clone returns a fully independent copy of the tree.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.Clone()}
}

// Equal reports whether two trees grant exactly the same structure.
func (t *Tree) Equal(other *Tree) bool {
	return t.root.Equal(other.root)
}

// Check reports whether the dotted permission is granted.
//
// The walk descends one node per segment. If a segment is missing from the
// current node, the permission is granted only if that node is a wildcard.
// If all segments are consumed, the permission is granted only if the node
// reached is a wildcard. An empty tree therefore grants everything (see
// [New]).
func (t *Tree) Check(permission string) bool {
	node := t.root
	for _, segment := range splitPermission(permission) {
		child, ok := node[segment]
		if !ok {
			return node.IsWildcard()
		}
		node = child
	}
	return node.IsWildcard()
}

// CheckAny reports whether at least one of the permissions is granted.
// Evaluation short-circuits on the first granted permission. With no
// arguments it returns false.
func (t *Tree) CheckAny(permissions ...string) bool {
	for _, permission := range permissions {
		if t.Check(permission) {
			return true
		}
	}
	return false
}

// CheckAll reports whether every permission is granted. Evaluation
// short-circuits on the first missing permission. With no arguments it
// returns true.
func (t *Tree) CheckAll(permissions ...string) bool {
	for _, permission := range permissions {
		if !t.Check(permission) {
			return false
		}
	}
	return true
}

// Grant adds the permission given as a sequence of segments.
//
// Intermediate segments are created as needed; existing intermediate nodes
// keep their children. The final segment is always assigned a fresh wildcard
// node, discarding any finer-grained structure previously granted beneath it:
// granting "a.b" after "a.b.c" coarsens "a.b" into a full wildcard. Granting
// with no segments is a no-op.
func (t *Tree) Grant(segments ...string) {
	if t.root == nil {
		t.root = Node{}
	}

	node := t.root
	for i, segment := range segments {
		last := i == len(segments)-1

		child, ok := node[segment]
		if !ok || last {
			child = Node{}
			node[segment] = child
		}
		node = child
	}
}

// GrantString adds a dotted permission string, e.g. "admin.users.read".
func (t *Tree) GrantString(permission string) {
	t.Grant(splitPermission(permission)...)
}

// GrantStrings adds each dotted permission in order and returns the receiver
// for chaining.
func (t *Tree) GrantStrings(permissions ...string) *Tree {
	for _, permission := range permissions {
		t.GrantString(permission)
	}
	return t
}

// Revoke removes the dotted permission and the entire subtree beneath it.
//
// It reports whether anything was removed: if any segment along the path is
// absent, the tree is left untouched and Revoke returns false. Revoking a
// path that is only covered by a shorter wildcard grant (rather than present
// as a node) therefore fails; revoke operates on tree structure, not on
// effective grants.
//
// Removing the last child of a node leaves that node empty, which by the
// emptiness invariant makes it a wildcard: revoking the only grant beneath
// a partial node widens that node to grant everything. Callers revoking
// down to a single remaining child should revoke the parent instead if
// widening is not intended.
func (t *Tree) Revoke(permission string) bool {
	segments := splitPermission(permission)

	node := t.root
	for i, segment := range segments {
		child, ok := node[segment]
		if !ok {
			return false
		}

		if i == len(segments)-1 {
			delete(node, segment)
			return true
		}
		node = child
	}
	return false
}

// RevokeAny revokes permissions in order, stopping at the first success.
// It reports whether any revoke succeeded.
func (t *Tree) RevokeAny(permissions ...string) bool {
	for _, permission := range permissions {
		if t.Revoke(permission) {
			return true
		}
	}
	return false
}

// RevokeAll revokes permissions in order, stopping at the first failure.
// It reports whether every revoke succeeded. Because evaluation
// short-circuits, permissions after the first failure are not attempted.
func (t *Tree) RevokeAll(permissions ...string) bool {
	for _, permission := range permissions {
		if !t.Revoke(permission) {
			return false
		}
	}
	return true
}
