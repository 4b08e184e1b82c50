// Package emulator serves a local stand-in of the platform settings API.
package emulator

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dtlpy/dtlpy-go/internal/config"
	fiberlogger "github.com/dtlpy/dtlpy-go/internal/logger/adapter/fiber"
)

const (
	// APIPrefix is the path prefix of the settings API.
	APIPrefix = "/api/v1"

	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"

	// CheckAlivePath answers 503 while the service is shutting down.
	CheckAlivePath = APIPrefix + "/checkalive"
)

// Service represents the emulator web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start listens on addr and blocks until the server stopped.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	log.Info().Str("addr", addr).Msg("settings emulator listening")

	err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown blocks until SIGINT or SIGTERM and then stops the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown marks the service as not alive, waits the configured grace time
// and stops the http server.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this instance from active targets",
			s.cfg.Emulator.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Emulator.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the emulator service on top of an opened and migrated database.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if db == nil {
		return nil, ErrDBNil
	}

	title := cfg.Title
	if title == "" {
		title = "dtlpy settings emulator"
	}

	app := fiber.New(
		fiber.Config{
			AppName:       title,
			CaseSensitive: true,
			Immutable:     true,
			ErrorHandler:  errorHandler,
		},
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		db:           db,
		fastShutDown: cfg.DevMode || cfg.Emulator.ShutDownTime <= 0,
	}

	app.Use(recoverer.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:  cfg.Log,
		SkipURI: MetricsPath,
	}))

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Get(CheckAlivePath, func(c fiber.Ctx) error {
		if !service.Alive() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "shutting down")
		}

		return c.SendString("OK")
	})

	api := app.Group(APIPrefix, countRequests, RequireToken(cfg.Platform.Token))

	settings := &settingsHandler{db: db}
	settings.register(api)

	return service, nil
}
