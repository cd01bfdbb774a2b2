package ports

import (
	"context"

	"go.trai.ch/dispatch/internal/core/domain"
)

// CredentialResolver resolves signing credentials for a platform.
//
//go:generate go run go.uber.org/mock/mockgen -source=credentials.go -destination=mocks/mock_credentials.go -package=mocks
type CredentialResolver interface {
	// Resolve returns a reference to the credential selected by source.
	// It fails if no credential exists and source is local, and may start an
	// interactive setup flow when source is auto or remote.
	Resolve(
		ctx context.Context,
		bctx *domain.BuilderContext,
		platform domain.Platform,
		source domain.CredentialsSource,
	) (domain.CredentialRef, error)

	// Clear permanently removes the platform credential from the build service.
	Clear(ctx context.Context, bctx *domain.BuilderContext, platform domain.Platform) error
}

// Prompter asks the user questions on the terminal.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(ctx context.Context, question string) (bool, error)

	// Interactive reports whether a user can answer prompts.
	Interactive() bool
}
