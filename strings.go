package permtree

// Names returns every segment label in the tree, depth-first with parents
// before children, siblings in lexicographic order. The same label appears
// once per node that carries it, so duplicates across branches and depths
// are preserved. Each call performs a fresh traversal.
func (t *Tree) Names() []string {
	return appendNames(nil, t.root)
}

func appendNames(names []string, node Node) []string {
	for _, key := range node.keys() {
		names = append(names, key)
		names = appendNames(names, node[key])
	}
	return names
}

// Strings returns the minimal dotted-path representation of the tree: one
// string per non-root wildcard node, spelling the full segment chain from
// the root. Granting the returned strings into a fresh tree reconstructs an
// equivalent tree. Siblings are visited in lexicographic order; each call
// performs a fresh traversal.
func (t *Tree) Strings() []string {
	return appendStrings(nil, t.root, nil)
}

func appendStrings(out []string, node Node, segments []string) []string {
	if node.IsWildcard() && len(segments) > 0 {
		out = append(out, joinSegments(segments))
	}

	for _, key := range node.keys() {
		out = appendStrings(out, node[key], append(segments, key))
	}
	return out
}
