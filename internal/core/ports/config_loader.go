package ports

import "go.trai.ch/dispatch/internal/core/domain"

// ProjectLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project configuration from the given project directory.
	Load(projectDir string) (*domain.ProjectConfig, error)
}

// SessionStore provides the authenticated user session.
type SessionStore interface {
	// Load returns the current session or domain.ErrNotAuthenticated.
	Load() (*domain.Session, error)
}
