// Package permtree implements hierarchical permission trees for
// authorization systems.
//
// Permissions are dotted paths such as "authentication.users.create". A tree
// stores granted paths as nested nodes, and a node with no children is a
// wildcard: the path leading to it and every path beneath it is granted.
// Granting "admin.users" therefore covers "admin.users.create",
// "admin.users.read" and anything else below "admin.users".
//
// # Overview
//
// The package provides one abstract data type, [Tree], with five groups of
// operations sharing the same node representation:
//
//   - Membership: [Tree.Check], [Tree.CheckAny], [Tree.CheckAll]
//   - Mutation: [Tree.Grant], [Tree.GrantString], [Tree.GrantStrings],
//     [Tree.Revoke], [Tree.RevokeAny], [Tree.RevokeAll]
//   - Set algebra: [Tree.Union], [Tree.Intersect], [Tree.Contains]
//   - Enumeration: [Tree.Names], [Tree.Strings]
//   - Persistence shape: [Tree.MarshalJSON], [Tree.UnmarshalJSON], [FromNode]
//
// # Usage
//
//	import "github.com/ommnia/permtree"
//
//	tree := permtree.New().GrantStrings(
//	    "authentication.users.create",
//	    "authentication.users.read",
//	    "authentication.groups",
//	)
//
//	tree.Check("authentication.users.create") // true
//	tree.Check("authentication.users.update") // false
//	tree.Check("authentication.groups.read")  // true, via wildcard
//
// Set algebra combines trees without mutating them:
//
//	effective := roleTree.Union(userTree)
//	if effective.Contains(required) {
//	    // every permission in required is granted
//	}
//
// # The empty tree grants everything
//
// By the wildcard invariant an empty root node grants every path, so a
// freshly constructed tree answers true to every check. Callers wanting
// deny-by-default must grant at least one permission before evaluating
// checks. [Tree.Intersect] can likewise produce an empty (grant-all) tree
// when its inputs share no structure; see its documentation.
//
// # Concurrency
//
// A Tree is a plain single-owner value. Read-only operations may run
// concurrently with each other, but not with Grant or Revoke on the same
// tree. Union and Intersect never touch their inputs, so they are as safe
// as reads.
//
// # Error Handling
//
// The core operations are total: missing revoke targets report false, and
// malformed paths (empty strings, consecutive dots) are processed literally
// rather than rejected. The only sentinel error is [ErrInvalidNodeGraph],
// returned when decoding a persisted node graph fails; match it with
// errors.Is.
//
// # See Also
//
//   - pkg/permstore – Redis-backed per-subject tree storage
//   - pkg/guard – net/http middleware enforcing permissions per route
//   - pkg/roles – named role definitions compiled into trees
package permtree
