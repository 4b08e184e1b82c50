package db

import (
	"errors"
)

// ErrConfigNil is returned when Open is called without a database config.
var ErrConfigNil = errors.New("database config is nil")
