package repository

import "errors"

// Shared repository errors. Implementations map driver-specific failures to
// these sentinels so the service layer never depends on the storage driver.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry indicates a write violated a uniqueness constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrInvalidID indicates a record identifier is not a well-formed ObjectID.
	ErrInvalidID = errors.New("repository: invalid record id")
)

// Resource-specific aliases, kept for readable errors.Is checks at call sites.
var (
	ErrUserNotFound   = ErrNotFound
	ErrSupplyNotFound = ErrNotFound
)
