package builder

import (
	"context"

	"go.trai.ch/dispatch/internal/core/domain"
)

// Android prepares Android jobs for the generic and managed workflows.
type Android struct {
	base
}

// PrepareJob returns the Android job building the archive at archiveURL.
func (a *Android) PrepareJob(_ context.Context, archiveURL string) (*domain.Job, error) {
	job, err := a.newJob(archiveURL)
	if err != nil {
		return nil, err
	}

	cfg := a.bctx.Project.Android
	job.Workflow = cfg.Workflow
	if job.Workflow == "" {
		job.Workflow = domain.WorkflowManaged
	}
	job.Android = &domain.AndroidJob{Package: cfg.Package}

	// Generic builds run their own gradle command; build types only select managed artifacts.
	if job.Workflow == domain.WorkflowGeneric {
		job.Android.GradleCommand = firstNonEmpty(a.opts.BuildCommand, cfg.BuildCommand, domain.DefaultGradleCommand)
		job.Android.ArtifactPath = firstNonEmpty(a.opts.ArtifactPath, cfg.ArtifactPath, domain.DefaultArtifactPath)
		return job, nil
	}

	if job.BuildType, err = a.buildType(cfg.BuildType); err != nil {
		return nil, err
	}
	return job, nil
}
