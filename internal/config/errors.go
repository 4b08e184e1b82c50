package config

import (
	"errors"
)

var (
	// ErrEmptyPlatformURL error if config platform.url is empty.
	ErrEmptyPlatformURL = errors.New("toml config platform.url can not be empty")

	// ErrEmulatorPortCanNotBeZero error if config emulator listening port is 0.
	ErrEmulatorPortCanNotBeZero = errors.New("toml config emulator.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine names an unsupported driver.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine is not supported")
)
