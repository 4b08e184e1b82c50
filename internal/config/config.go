// Package config handles input from etc/main.toml and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. DTLPY_PLATFORM_TOKEN.
	EnvPrefix = "DTLPY"

	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = "DTLPY_CONFIG_JSON"

	defaultPath         = "./etc/"
	defaultEmulatorPort = 8080
	defaultShutDownTime = 5
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = defaultPath
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("emulator.port", defaultEmulatorPort)
	v.SetDefault("emulator.shutdowntime", defaultShutDownTime)
	v.SetDefault("db.gormengine", EngineSQLite)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configJSON := os.Getenv(EnvConfigJSON); configJSON != "" {
		if err := decodeAndMergeConfig(&c, configJSON); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c *Config, configAsJSON string) error {
	if err := json.Unmarshal([]byte(configAsJSON), c); err != nil {
		return errors.Wrapf(err, "failed to read %s", EnvConfigJSON)
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the parts of the config every command relies on.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Platform.URL == "" {
		return errors.Wrap(ErrEmptyPlatformURL, invalidErrMessage)
	}

	if c.Emulator.Port == 0 {
		return errors.Wrap(ErrEmulatorPortCanNotBeZero, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	case "":
		c.DB.GormEngine = EngineSQLite
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.Emulator.ShutDownTime == 0 {
		c.Emulator.ShutDownTime = defaultShutDownTime
	}

	return nil
}
