package roles

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ommnia/permtree"
)

// definition is the YAML shape of one role.
type definition struct {
	Permissions []string `yaml:"permissions"`
	Inherits    []string `yaml:"inherits"`
}

// Registry holds named roles, each compiled into a permission tree.
//
// A Registry is intended to be populated during initialization (from YAML or
// via Register) and then treated as read-only; reads are safe for concurrent
// use.
type Registry struct {
	mu    sync.RWMutex
	trees map[string]*permtree.Tree
}

// NewRegistry creates an empty role registry.
func NewRegistry() *Registry {
	return &Registry{
		trees: make(map[string]*permtree.Tree),
	}
}

// ParseYAML builds a registry from YAML role definitions:
//
//	viewer:
//	  permissions:
//	    - reports.read
//	editor:
//	  inherits: [viewer]
//	  permissions:
//	    - reports.write
//
// Inherited roles are resolved by tree union; inheriting an unregistered
// role is ErrRoleNotFound and cyclic inheritance is ErrInheritanceCycle.
func ParseYAML(data []byte) (*Registry, error) {
	var defs map[string]definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}

	registry := NewRegistry()
	building := make(map[string]bool, len(defs))

	var build func(name string) (*permtree.Tree, error)
	build = func(name string) (*permtree.Tree, error) {
		if tree, ok := registry.trees[name]; ok {
			return tree, nil
		}

		def, ok := defs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, name)
		}

		if building[name] {
			return nil, fmt.Errorf("%w: via %q", ErrInheritanceCycle, name)
		}
		building[name] = true

		// A role with nothing in it would compile to the empty tree,
		// which by the wildcard invariant grants everything.
		if len(def.Permissions) == 0 && len(def.Inherits) == 0 {
			return nil, fmt.Errorf("%w: role %q grants nothing", ErrInvalidDefinition, name)
		}

		tree := permtree.New().GrantStrings(def.Permissions...)
		for _, parent := range def.Inherits {
			parentTree, err := build(parent)
			if err != nil {
				return nil, err
			}
			tree = tree.Union(parentTree)
		}

		building[name] = false
		registry.trees[name] = tree
		return tree, nil
	}

	for name := range defs {
		if name == "" {
			return nil, ErrEmptyRoleName
		}
		if _, err := build(name); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// Register adds a role granting the given dotted permissions. At least one
// permission is required: a role with none would compile to the empty tree,
// which grants everything.
func (r *Registry) Register(name string, permissions ...string) error {
	if name == "" {
		return ErrEmptyRoleName
	}
	if len(permissions) == 0 {
		return fmt.Errorf("%w: role %q grants nothing", ErrInvalidDefinition, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trees[name]; exists {
		return fmt.Errorf("%w: %q", ErrRoleExists, name)
	}

	r.trees[name] = permtree.New().GrantStrings(permissions...)
	return nil
}

// Tree returns an independent copy of the named role's permission tree, or
// false if the role is not registered.
func (r *Registry) Tree(name string) (*permtree.Tree, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tree, ok := r.trees[name]
	if !ok {
		return nil, false
	}
	return tree.Clone(), true
}

// Resolve unions the named roles into one effective permission tree. At
// least one role name is required: resolving nothing would produce the
// empty tree, which grants everything.
func (r *Registry) Resolve(names ...string) (*permtree.Tree, error) {
	if len(names) == 0 {
		return nil, ErrNoRoles
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var effective *permtree.Tree
	for _, name := range names {
		tree, ok := r.trees[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, name)
		}

		if effective == nil {
			effective = tree.Clone()
			continue
		}
		effective = effective.Union(tree)
	}

	return effective, nil
}

// Names returns the registered role names in lexicographic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.trees))
}

// Count returns the number of registered roles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trees)
}
