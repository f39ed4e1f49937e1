package permtree

// Union returns a new tree granting every permission granted by either input.
//
// A wildcard on either side of a shared key absorbs the other side's finer
// structure: if "x.y" is granted here and "x.y.z" in other, the union grants
// all of "x.y.*". Union is commutative and associative. Neither input is
// mutated or aliased; the result is a fully independent node graph.
func (t *Tree) Union(other *Tree) *Tree {
	return &Tree{root: unionNodes(t.root, other.root)}
}

func unionNodes(left, right Node) Node {
	result := Node{}

	for key, leftChild := range left {
		rightChild, ok := right[key]
		if !ok {
			result[key] = leftChild.Clone()
			continue
		}

		// Wildcard wins over any more specific grant.
		if leftChild.IsWildcard() || rightChild.IsWildcard() {
			result[key] = Node{}
			continue
		}

		result[key] = unionNodes(leftChild, rightChild)
	}

	for key, rightChild := range right {
		if _, ok := left[key]; !ok {
			result[key] = rightChild.Clone()
		}
	}

	return result
}

// Intersect returns a new tree granting only permissions granted by both
// inputs.
//
// The wildcard rule is symmetric: at a shared key, a wildcard on one side
// yields a clone of the other side's subtree, since the wildcard side grants
// everything the other side could possibly grant there. Keys missing from
// either side are dropped, as are shared keys whose subtrees have nothing in
// common: an empty node means "grant everything", never "grant nothing", so
// a childless intersection result must not be kept. Neither input is mutated
// or aliased.
//
// One caveat remains at the root. If the two trees share nothing at all, the
// result is the empty tree, which by the root-wildcard rule grants
// everything (see [New]). Callers intersecting possibly disjoint trees
// should compare the result against New() with [Tree.Equal] if that
// matters.
func (t *Tree) Intersect(other *Tree) *Tree {
	return &Tree{root: intersectNodes(t.root, other.root)}
}

func intersectNodes(left, right Node) Node {
	result := Node{}

	for key, leftChild := range left {
		rightChild, ok := right[key]
		if !ok {
			continue
		}

		switch {
		case leftChild.IsWildcard():
			result[key] = rightChild.Clone()
		case rightChild.IsWildcard():
			result[key] = leftChild.Clone()
		default:
			// A childless result would read back as a wildcard, granting
			// far more than either side does. Drop the key instead.
			if child := intersectNodes(leftChild, rightChild); !child.IsWildcard() {
				result[key] = child
			}
		}
	}

	return result
}

// Contains reports whether this tree grants everything the other tree grants:
// granting t implies granting other.
//
// For every key in other, the key must exist here. A wildcard here covers
// whatever other claims beneath the key. A wildcard in other that is only a
// partial node here fails: other claims the full subtree and this tree cannot
// guarantee it.
func (t *Tree) Contains(other *Tree) bool {
	return containsNode(t.root, other.root)
}

func containsNode(self, other Node) bool {
	for key, otherChild := range other {
		selfChild, ok := self[key]
		if !ok {
			return false
		}

		if selfChild.IsWildcard() {
			continue
		}

		if otherChild.IsWildcard() {
			return false
		}

		if !containsNode(selfChild, otherChild) {
			return false
		}
	}

	return true
}
