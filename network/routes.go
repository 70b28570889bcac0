package network

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RouteDefinition is one route of a route file
type RouteDefinition struct {
	Name        string    `yaml:"name" validate:"required"`
	Stops       []string  `yaml:"stops" validate:"min=2,dive,required"`
	TravelTimes []float64 `yaml:"travelTimes" validate:"dive,gte=0"`
}

// RouteFile is the root of a route file
type RouteFile struct {
	Routes []RouteDefinition `yaml:"routes" validate:"required,dive"`
}

// ReadRouteFile decodes and validates a route file from r
func ReadRouteFile(r io.Reader) (RouteFile, error) {
	var rf RouteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return RouteFile{}, fmt.Errorf("empty route file")
		}
		return RouteFile{}, fmt.Errorf("failed to parse route file: %w", err)
	}
	if err := validator.New().Struct(rf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return RouteFile{}, fmt.Errorf("invalid route file: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return RouteFile{}, fmt.Errorf("invalid route file: %w", err)
	}
	return rf, nil
}

// LoadRouteFile reads a route file from disk
func LoadRouteFile(path string) (RouteFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return RouteFile{}, fmt.Errorf("failed to open route file: %w", err)
	}
	defer f.Close()
	return ReadRouteFile(f)
}
