package repositories

import (
	"errors"
)

var (
	// ErrSettingIDEmpty is returned when an operation needs a setting id and none was given.
	ErrSettingIDEmpty = errors.New("setting id cannot be empty")

	// ErrSettingNil is returned when a nil setting is passed to Create or Update.
	ErrSettingNil = errors.New("setting cannot be nil")
)
