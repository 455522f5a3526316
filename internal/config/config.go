package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Backend BackendConfig
	Log     LogConfig
	Apply   ApplyConfig
}

// BackendConfig holds the gate service settings.
type BackendConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	File  string
	Level string
}

// ApplyConfig controls how gate clicks are dispatched.
type ApplyConfig struct {
	// Serialize drops clicks while a request is still in flight.
	Serialize bool
}

// EnvPrefix is prepended to every environment override, e.g. QGATEDECK_BACKEND_ENDPOINT.
const EnvPrefix = "QGATEDECK"

// New returns a viper instance with defaults, env binding and the config file location set up.
// path overrides the file lookup; when empty $QGATEDECK_CONFIG and then
// ~/.config/qgatedeck/config.* are used.
func New(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("backend.endpoint", "http://localhost:5000/apply_gate")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "qgatedeck.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("apply.serialize", false)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "qgatedeck"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if there is one and unmarshals the result.
// Only the default lookup may come up empty; a path given through --config or
// $QGATEDECK_CONFIG must exist and parse.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Backend.Timeout < 0 {
		return Config{}, fmt.Errorf("backend.timeout must not be negative, got %s", c.Backend.Timeout)
	}
	return c, nil
}
