package daemon

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dtlpy/dtlpy-go/internal/config"
	"github.com/dtlpy/dtlpy-go/internal/emulator"
)

// seed loads the configured setting documents into the emulator.
func seed(cfg *config.Config, service *emulator.Service) error {
	if cfg.Emulator.Seed == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.Emulator.Seed)
	if err != nil {
		return errors.Wrap(err, "failed to read seed file")
	}

	n, err := service.Seed(data)
	if err != nil {
		return errors.Wrapf(err, "failed to seed settings from %s", cfg.Emulator.Seed)
	}

	log.Info().Int("created", n).Str("file", cfg.Emulator.Seed).Msg("settings seeded")

	return nil
}
