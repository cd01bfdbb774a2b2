// Package app implements the application layer for dispatch.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/dispatch/internal/engine/builder"
	"go.trai.ch/dispatch/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	sessions  ports.SessionStore
	resolver  ports.CredentialResolver
	prompter  ports.Prompter
	client    ports.BuildClient
	archiver  ports.ArchiveProducer
	history   ports.BuildHistoryStore
	reporter  ports.Reporter
	logger    ports.Logger
	scheduler *scheduler.Scheduler
	now       func() time.Time
}

// Dependencies are the collaborators of an App.
type Dependencies struct {
	Loader    ports.ProjectLoader
	Sessions  ports.SessionStore
	Resolver  ports.CredentialResolver
	Prompter  ports.Prompter
	Client    ports.BuildClient
	Archiver  ports.ArchiveProducer
	History   ports.BuildHistoryStore
	Reporter  ports.Reporter
	Logger    ports.Logger
	Scheduler *scheduler.Scheduler
}

// New creates a new App instance.
func New(deps Dependencies) *App {
	return &App{
		loader:    deps.Loader,
		sessions:  deps.Sessions,
		resolver:  deps.Resolver,
		prompter:  deps.Prompter,
		client:    deps.Client,
		archiver:  deps.Archiver,
		history:   deps.History,
		reporter:  deps.Reporter,
		logger:    deps.Logger,
		scheduler: deps.Scheduler,
		now:       time.Now,
	}
}

// BuildOptions configures a build invocation.
type BuildOptions struct {
	ProjectDir           string
	Platform             string
	CredentialsSource    string
	SkipCredentialsCheck bool
	NoWait               bool
	NonInteractive       bool
	ClearCredentials     bool
	ArchiveURL           string
	BuildCommand         string
	ArtifactPath         string
	BuildType            string
}

// Build submits one build per selected platform and, unless NoWait is set, waits for
// all of them. A platform that fails does not stop the others; the returned error wraps
// domain.ErrBuildFailed together with every platform failure once results are reported.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	platforms, err := domain.ParsePlatformSelector(opts.Platform)
	if err != nil {
		return err
	}
	source, err := domain.ParseCredentialsSource(opts.CredentialsSource)
	if err != nil {
		return err
	}

	bctx, err := a.createBuilderContext(opts)
	if err != nil {
		return err
	}

	archiveURL := opts.ArchiveURL
	if archiveURL == "" {
		a.logger.Info("Packing project " + bctx.ProjectDir)
		if archiveURL, err = a.archiver.Produce(ctx, bctx.ProjectDir); err != nil {
			return err
		}
	}

	builderOpts := builder.Options{
		CredentialsSource: source,
		ClearCredentials:  opts.ClearCredentials,
		BuildType:         domain.BuildType(opts.BuildType),
		BuildCommand:      opts.BuildCommand,
		ArtifactPath:      opts.ArtifactPath,
	}
	deps := builder.Deps{Resolver: a.resolver, Prompter: a.prompter, Logger: a.logger}

	var (
		builds   []domain.ScheduledBuild
		failures []error
	)

	// Submissions run one platform at a time so credential prompts never interleave.
	for _, p := range platforms {
		b, err := builder.New(p, bctx, deps, builderOpts)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		id, err := a.scheduler.Submit(ctx, b, archiveURL)
		if err != nil {
			a.logger.Warn(p.DisplayName() + " build was not submitted")
			failures = append(failures, err)
			continue
		}

		build := domain.ScheduledBuild{Platform: p, ID: id}
		builds = append(builds, build)
		a.record(bctx.ProjectDir, archiveURL, build)
	}

	if len(builds) > 0 {
		if opts.NoWait {
			a.reporter.ReportSubmitted(builds, a.client.LogsURL)
		} else {
			for _, b := range builds {
				a.logger.Info(b.Platform.DisplayName() + " build " + b.ID.String() + " logs: " + a.client.LogsURL(b.ID))
			}
			outcomes := a.scheduler.WaitForCompletion(ctx, bctx.ProjectDir, builds)
			a.reporter.ReportOutcomes(outcomes)

			for _, o := range outcomes {
				if !o.Succeeded {
					failures = append(failures, o.Err)
				}
			}
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return zerr.Wrap(errors.Join(append([]error{domain.ErrBuildFailed}, failures...)...),
		fmt.Sprintf("%d of %d platforms failed", len(failures), len(platforms)))
}

// Status reports the state of the project's builds.
func (a *App) Status(_ context.Context, projectDir string) error {
	return zerr.With(zerr.Wrap(domain.ErrNotImplemented, "build:status"), "project_dir", projectDir)
}

func (a *App) createBuilderContext(opts BuildOptions) (*domain.BuilderContext, error) {
	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project directory")
	}

	project, err := a.loader.Load(dir)
	if err != nil {
		return nil, err
	}

	session, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}

	return &domain.BuilderContext{
		ProjectDir:           dir,
		Session:              session,
		Project:              project,
		NonInteractive:       opts.NonInteractive,
		SkipCredentialsCheck: opts.SkipCredentialsCheck,
	}, nil
}

// record stores the submission in the local history. Failures only warn.
func (a *App) record(projectDir, archiveURL string, b domain.ScheduledBuild) {
	err := a.history.Put(domain.BuildRecord{
		Fingerprint: domain.Fingerprint(projectDir, b.Platform, archiveURL),
		ProjectDir:  projectDir,
		Platform:    b.Platform,
		BuildID:     b.ID,
		SubmittedAt: a.now().UTC(),
	})
	if err != nil {
		a.logger.Warn("Could not record build " + b.ID.String() + ": " + err.Error())
	}
}
