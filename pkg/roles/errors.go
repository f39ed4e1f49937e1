package roles

import "errors"

var (
	// ErrInvalidDefinition is returned when role definitions cannot be parsed.
	ErrInvalidDefinition = errors.New("roles: invalid role definition")
	// ErrEmptyRoleName is returned when a role is registered without a name.
	ErrEmptyRoleName = errors.New("roles: empty role name")
	// ErrRoleExists is returned when a role name is registered twice.
	ErrRoleExists = errors.New("roles: role already registered")
	// ErrRoleNotFound is returned when a named role is not registered.
	ErrRoleNotFound = errors.New("roles: role not found")
	// ErrInheritanceCycle is returned when role inheritance forms a cycle.
	ErrInheritanceCycle = errors.New("roles: role inheritance cycle")
	// ErrNoRoles is returned when Resolve is called without any role names.
	ErrNoRoles = errors.New("roles: no roles to resolve")
)
