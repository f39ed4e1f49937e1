package permtree

import (
	"encoding/json"
	"errors"
)

// MarshalJSON encodes the tree as its nested-object node graph, e.g.
// {"a":{"b":{}}}. Wildcard nodes encode as empty objects.
func (t *Tree) MarshalJSON() ([]byte, error) {
	root := t.root
	if root == nil {
		root = Node{}
	}
	return json.Marshal(root)
}

// UnmarshalJSON decodes a nested-object node graph produced by
// [Tree.MarshalJSON] (or any external collaborator persisting the same
// shape). Anything other than nested objects fails with
// [ErrInvalidNodeGraph].
func (t *Tree) UnmarshalJSON(data []byte) error {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return errors.Join(ErrInvalidNodeGraph, err)
	}
	if root == nil {
		root = Node{}
	}
	t.root = root
	return nil
}
