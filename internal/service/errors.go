package service

import "errors"

// Business errors returned by the service layer. Handlers map these onto
// HTTP status codes; anything not listed here is treated as an internal fault.
var (
	ErrUserAlreadyExists    = errors.New("User already exists")
	ErrAuthenticationFailed = errors.New("Invalid email or password")
	ErrSupplyNotFound       = errors.New("Supply item not found")
	ErrInvalidID            = errors.New("invalid item id")
	ErrInternalServer       = errors.New("internal server error")
)
