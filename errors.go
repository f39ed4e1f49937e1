package permtree

import "errors"

var (
	// ErrInvalidNodeGraph is returned when a persisted node graph cannot be
	// decoded into nested objects.
	ErrInvalidNodeGraph = errors.New("permtree: invalid node graph")
)
