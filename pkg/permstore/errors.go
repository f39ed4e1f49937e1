package permstore

import "errors"

var (
	// ErrNilClient is returned when a Store is created without a Redis client.
	ErrNilClient = errors.New("permstore: nil redis client")
	// ErrEmptySubject is returned when an operation is given an empty subject key.
	ErrEmptySubject = errors.New("permstore: empty subject")
	// ErrTreeNotFound is returned when no tree is stored for the subject.
	ErrTreeNotFound = errors.New("permstore: permission tree not found")
	// ErrCorruptTree is returned when a stored tree cannot be decoded.
	ErrCorruptTree = errors.New("permstore: stored permission tree is corrupt")
	// ErrFailedToParseConnString is returned when the Redis connection URL is invalid.
	ErrFailedToParseConnString = errors.New("permstore: failed to parse redis connection string")
	// ErrRedisNotReady is returned when Redis does not become reachable within the configured retries.
	ErrRedisNotReady = errors.New("permstore: redis did not become ready within the given time period")
	// ErrFailedToParseConfig is returned when environment configuration cannot be parsed.
	ErrFailedToParseConfig = errors.New("permstore: failed to parse configuration from environment")
)
