package permtree

import (
	"maps"
	"slices"
	"strings"
)

const (
	// Delimiter separates the segments of a permission path (e.g., "admin.users.read").
	Delimiter = "."
)

// Node is a recursive mapping from path segment to child node.
//
// A node with no children (nil or empty map) is a wildcard terminal: the path
// leading to it, and every possible path beneath it, is granted. A node with
// one or more children grants only the listed sub-paths. The two states are
// mutually exclusive by construction; there is no separate terminal flag.
type Node map[string]Node

// IsWildcard reports whether the node is a wildcard terminal, i.e. it has no
// children and therefore grants everything beneath it.
func (n Node) IsWildcard() bool {
	return len(n) == 0
}

// Clone returns a deep copy of the node graph. Wildcard nodes are cloned as
// empty (non-nil) maps so the copy is independently mutable.
func (n Node) Clone() Node {
	result := make(Node, len(n))
	for key, child := range n {
		result[key] = child.Clone()
	}
	return result
}

// Equal reports structural equality of two node graphs. Nil and empty nodes
// compare equal: both are the wildcard terminal.
func (n Node) Equal(other Node) bool {
	if len(n) != len(other) {
		return false
	}
	return maps.EqualFunc(n, other, Node.Equal)
}

// keys returns the node's segment labels in lexicographic order. Map
// iteration order is not semantically significant, but deterministic
// traversal keeps enumeration output stable.
func (n Node) keys() []string {
	return slices.Sorted(maps.Keys(n))
}

// splitPermission splits a dotted permission string into its segments.
// Splitting is literal: consecutive, leading, or trailing delimiters produce
// empty segments, and the empty string produces a single empty segment. No
// validation or normalization is performed at this layer.
func splitPermission(permission string) []string {
	return strings.Split(permission, Delimiter)
}

// joinSegments reassembles a dotted permission string from its segments.
func joinSegments(segments []string) string {
	return strings.Join(segments, Delimiter)
}
