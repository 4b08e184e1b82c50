package entities

import (
	"errors"
)

var (
	// ErrValueRequired is returned when a setting is built with neither a value nor a default value.
	ErrValueRequired = errors.New("must provide either value or default value")

	// ErrNoRepository is returned by Update and Delete on a setting that is not bound to a repository.
	ErrNoRepository = errors.New("setting is not bound to a settings repository")

	// ErrInvalidSetting wraps struct validation failures reported by Validate.
	ErrInvalidSetting = errors.New("invalid setting")
)
