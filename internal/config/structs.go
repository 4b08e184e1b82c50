package config

import (
	"time"

	"github.com/dtlpy/dtlpy-go/client"
	"github.com/dtlpy/dtlpy-go/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode  bool // enable dev mode for development
	DB       DB
	Log      logger.Log
	Title    string
	Platform Platform
	Emulator Emulator
}

// Platform holds the connection to the platform API and the default context
// settings are bound to.
type Platform struct {
	URL     string        // base url of the API
	Token   string        // bearer token
	Project string        // default project id
	Org     string        // default org id
	Timeout time.Duration // per request timeout
}

// Client returns the client configuration of the platform section.
func (p Platform) Client() client.Config {
	return client.Config{
		URL:     p.URL,
		Token:   p.Token,
		Timeout: p.Timeout,
	}
}

// Emulator implements the local settings API settings.
type Emulator struct {
	Host         string // listening host, empty for all interfaces
	Port         int    // listening port
	ShutDownTime int    // seconds to wait for in-flight requests on shutdown
	Seed         string // optional JSON file of setting documents loaded on start
}
