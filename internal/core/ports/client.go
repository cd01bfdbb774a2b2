package ports

import (
	"context"

	"go.trai.ch/dispatch/internal/core/domain"
)

// BuildClient is the authenticated client of the remote build service.
//
//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks
type BuildClient interface {
	// SubmitJob schedules the job and returns the identifier of the remote build.
	SubmitJob(ctx context.Context, job *domain.Job) (domain.BuildID, error)

	// PollBuild returns the current status of a build.
	// Implementations apply their own retry policy and return domain.ErrPolling once it is exhausted.
	PollBuild(ctx context.Context, id domain.BuildID) (*domain.BuildStatus, error)

	// LogsURL returns the address where the logs of a build can be followed.
	LogsURL(id domain.BuildID) string
}

// CredentialService manages credentials stored on the build service.
type CredentialService interface {
	// FetchCredential returns the stored credential, or nil if none exists.
	FetchCredential(ctx context.Context, experience string, platform domain.Platform) (*domain.RemoteCredential, error)

	// GenerateCredential asks the service to generate and store a new credential.
	GenerateCredential(ctx context.Context, experience string, platform domain.Platform) (*domain.RemoteCredential, error)

	// DeleteCredential permanently removes the stored credential.
	DeleteCredential(ctx context.Context, experience string, platform domain.Platform) error
}

// ArchiveUploader uploads project archives to the build service.
type ArchiveUploader interface {
	// UploadArchive stores the archive under key and returns a URL the service can fetch.
	UploadArchive(ctx context.Context, key string, archivePath string) (string, error)
}
