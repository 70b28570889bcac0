package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort             = 16190
	DefaultMaxTransferPaths = 3
	DefaultLogLevel         = "info"
)

// ErrNoNetworkSource is returned when neither a route file nor a GTFS zip is configured
var ErrNoNetworkSource = errors.New("network needs a routesFile or a gtfs path")

// DefaultPaths are searched in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the configuration from the first readable
// path (DefaultPaths when none are given) and stores it in Config.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates YAML configuration, then fills in defaults
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	ApplyDefaults(&cfg)
	return cfg, nil
}

// Validate checks struct tags on every section
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Network.RoutesFile == "" && cfg.Network.GTFS.Path == "" {
		return ErrNoNetworkSource
	}
	return nil
}

// ApplyDefaults replaces zero values with defaults
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Planner.MaxTransferPaths == 0 {
		cfg.Planner.MaxTransferPaths = DefaultMaxTransferPaths
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
