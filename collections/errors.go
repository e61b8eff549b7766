package collections

import "errors"

// Sentinel errors returned by Collection operations. Returned errors wrap one
// of these; test with errors.Is.
var (
	// ErrKeyNotFound is returned by OffsetGet when the key is absent.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrFieldResolution is returned by Lists and Implode when a field can be
	// read neither as a struct field nor as a map key of an item.
	ErrFieldResolution = errors.New("collections: cannot resolve field")

	// ErrInvalidArgument is returned for unsupported operands (e.g. Merge with
	// a value that is not array-like). Nil callbacks panic with an error
	// wrapping it.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidKey is returned by KeyOf when a value cannot be used as a key.
	ErrInvalidKey = errors.New("collections: invalid key type")
)
