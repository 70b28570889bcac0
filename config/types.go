package config

// ServerConfig contains HTTP query server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// GTFSConfig points at a GTFS static zip used to build the network
type GTFSConfig struct {
	Path     string `yaml:"path" validate:"omitempty"`
	AgencyID string `yaml:"agency_id" validate:"omitempty"`
}

// NetworkConfig lists the sources the transit graph is built from. Routes
// from both are merged when both are set.
type NetworkConfig struct {
	RoutesFile string     `yaml:"routesFile" validate:"omitempty"`
	GTFS       GTFSConfig `yaml:"gtfs"`
}

// PlannerConfig tunes the query layer
type PlannerConfig struct {
	MaxTransferPaths int `yaml:"maxTransferPaths" validate:"gte=0"`
}

// LoggingConfig selects the minimum log level
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Network NetworkConfig `yaml:"network"`
	Planner PlannerConfig `yaml:"planner"`
	Logging LoggingConfig `yaml:"logging"`
}
