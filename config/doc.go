// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// At least one network source (a route file or a GTFS static zip) must be set.
package config
