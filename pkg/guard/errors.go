package guard

import "errors"

var (
	// ErrNoTree indicates that no permission tree is attached to the request context.
	ErrNoTree = errors.New("guard: no permission tree in context")
	// ErrPermissionDenied indicates that the caller's tree does not grant the required permission.
	ErrPermissionDenied = errors.New("guard: permission denied")
	// ErrNilResolver indicates that middleware was configured without a tree resolver.
	ErrNilResolver = errors.New("guard: nil tree resolver")
)
