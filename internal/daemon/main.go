// Package daemon wires the settings emulator to its database and runs it.
package daemon

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dtlpy/dtlpy-go/internal/config"
	"github.com/dtlpy/dtlpy-go/internal/db"
	"github.com/dtlpy/dtlpy-go/internal/emulator"
)

// ErrConfigNil is returned when the daemon is created without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	service *emulator.Service
	addr    string
}

// Addr returns the address the daemon listens on.
func (d *Daemon) Addr() string {
	return d.addr
}

// Service returns the emulator served by the daemon.
func (d *Daemon) Service() *emulator.Service {
	return d.service
}

// Start serves the emulator until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	done := make(chan error, 1)

	go func() {
		done <- d.service.Start(d.addr)
	}()

	go d.service.WaitShutdown()

	return <-done
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(&cfg.DB)
	if err != nil {
		return nil, err
	}

	service, err := emulator.New(cfg, gdb)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, service); err != nil {
		return nil, err
	}

	d := &Daemon{
		service: service,
		addr:    net.JoinHostPort(cfg.Emulator.Host, strconv.Itoa(cfg.Emulator.Port)),
	}

	log.Debug().Str("addr", d.addr).Str("engine", cfg.DB.GormEngine).Msg("daemon created")

	return d, nil
}
