package ports

import "context"

// ArchiveProducer packages a project directory and makes it available to the build service.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveProducer interface {
	// Produce returns the URL of an uploaded archive of projectDir.
	Produce(ctx context.Context, projectDir string) (string, error)
}
