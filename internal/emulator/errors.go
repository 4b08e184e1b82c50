package emulator

import "errors"

var (
	// ErrConfigNil is returned when the service is created without configuration.
	ErrConfigNil = errors.New("config cannot be nil")

	// ErrDBNil is returned when the service is created without a database.
	ErrDBNil = errors.New("db cannot be nil")
)
