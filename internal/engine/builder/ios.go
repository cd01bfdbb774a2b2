package builder

import (
	"context"

	"go.trai.ch/dispatch/internal/core/domain"
)

// IOS prepares iOS jobs.
type IOS struct {
	base
}

// PrepareJob returns the iOS job building the archive at archiveURL.
func (i *IOS) PrepareJob(_ context.Context, archiveURL string) (*domain.Job, error) {
	job, err := i.newJob(archiveURL)
	if err != nil {
		return nil, err
	}

	cfg := i.bctx.Project.IOS
	buildType, err := i.buildType(cfg.BuildType)
	if err != nil {
		return nil, err
	}

	job.Workflow = domain.WorkflowManaged
	job.BuildType = buildType
	job.IOS = &domain.IOSJob{
		BundleIdentifier: cfg.BundleIdentifier,
		Scheme:           cfg.Scheme,
	}
	return job, nil
}
