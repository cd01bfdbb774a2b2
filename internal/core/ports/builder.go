// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/dispatch/internal/core/domain"
)

// Builder knows how to prepare a build for a single platform.
//
// EnsureCredentials must succeed before PrepareJob is called on the same builder.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Platform returns the platform this builder targets.
	Platform() domain.Platform

	// EnsureCredentials resolves, and provisions if necessary, the signing credential
	// for the platform.
	EnsureCredentials(ctx context.Context) error

	// PrepareJob returns a fully populated job that builds the archive at archiveURL.
	PrepareJob(ctx context.Context, archiveURL string) (*domain.Job, error)
}
