// Package roles compiles named role definitions into permission trees.
//
// A role is a name bound to a set of dotted permission grants, optionally
// inheriting other roles. Inheritance is resolved by tree union, so a role
// grants everything it lists plus everything its parents grant, with
// wildcard grants absorbing finer ones as usual.
//
// # Usage
//
// Definitions usually come from a YAML policy file:
//
//	viewer:
//	  permissions:
//	    - reports.read
//	    - dashboards.read
//	editor:
//	  inherits: [viewer]
//	  permissions:
//	    - reports.write
//	admin:
//	  inherits: [editor]
//	  permissions:
//	    - users
//
//	registry, err := roles.ParseYAML(policyFile)
//	if err != nil {
//	    // handle error
//	}
//
//	effective, err := registry.Resolve("editor", "billing-viewer")
//	if err != nil {
//	    // unknown role
//	}
//	effective.Check("reports.read") // true, inherited from viewer
//
// Registries can also be built programmatically with Register.
//
// # Guardrails
//
// A role that grants nothing would compile to the empty tree, which by the
// wildcard invariant grants everything; such definitions are rejected with
// ErrInvalidDefinition. For the same reason Resolve requires at least one
// role name. Cyclic inheritance is rejected with ErrInheritanceCycle.
//
// # See Also
//
//   - github.com/ommnia/permtree – the tree type roles compile to
//   - gopkg.in/yaml.v3 – definition file parser
package roles
