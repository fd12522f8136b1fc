package ports

import "github.com/Milun/adapt-framework/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the validated build configuration with Root set to cwd.
	Load(cwd string) (*domain.BuildConfig, error)
}
