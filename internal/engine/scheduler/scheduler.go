// Package scheduler submits build jobs and waits for the remote builds to finish.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval is the time between two status requests for the same build.
const DefaultPollInterval = 10 * time.Second

// Scheduler submits jobs to the build service and tracks their completion.
type Scheduler struct {
	client       ports.BuildClient
	tracer       ports.Tracer
	logger       ports.Logger
	pollInterval time.Duration
}

// NewScheduler creates a new Scheduler.
func NewScheduler(client ports.BuildClient, tracer ports.Tracer, logger ports.Logger) *Scheduler {
	return &Scheduler{
		client:       client,
		tracer:       tracer,
		logger:       logger,
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval sets the time between two status requests.
func (s *Scheduler) WithPollInterval(d time.Duration) *Scheduler {
	s.pollInterval = d
	return s
}

// Submit resolves credentials, prepares the job and submits it. Errors carry the platform.
// The job is submitted exactly once; failures are not retried.
func (s *Scheduler) Submit(ctx context.Context, builder ports.Builder, archiveURL string) (domain.BuildID, error) {
	platform := builder.Platform()

	ctx, span := s.tracer.Start(ctx, ports.SpanSubmit)
	defer span.End()
	span.SetAttribute(ports.AttrPlatform, platform)

	if err := builder.EnsureCredentials(ctx); err != nil {
		span.RecordError(err)
		return "", annotate(err, "platform", platform)
	}

	job, err := builder.PrepareJob(ctx, archiveURL)
	if err != nil {
		span.RecordError(err)
		return "", annotate(err, "platform", platform)
	}

	s.logger.Info("Submitting " + platform.DisplayName() + " build")
	id, err := s.client.SubmitJob(ctx, job)
	if err != nil {
		if !errors.Is(err, domain.ErrSubmission) {
			err = zerr.Wrap(errors.Join(domain.ErrSubmission, err), "failed to submit job")
		}
		span.RecordError(err)
		return "", annotate(err, "platform", platform)
	}

	span.SetAttribute(ports.AttrBuildID, id)
	return id, nil
}

// WaitForCompletion polls every build until it reaches a terminal state and returns one
// outcome per build, in the order of builds. A build that cannot be polled, or that is
// still running when ctx is done, is reported as failed. Remote builds are never cancelled.
func (s *Scheduler) WaitForCompletion(
	ctx context.Context,
	projectDir string,
	builds []domain.ScheduledBuild,
) []domain.BuildOutcome {
	outcomes := make([]domain.BuildOutcome, len(builds))

	var g errgroup.Group
	for i, b := range builds {
		g.Go(func() error {
			outcomes[i] = s.watch(ctx, projectDir, b)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (s *Scheduler) watch(ctx context.Context, projectDir string, b domain.ScheduledBuild) domain.BuildOutcome {
	ctx, span := s.tracer.Start(ctx, ports.SpanWait)
	defer span.End()
	span.SetAttribute(ports.AttrPlatform, b.Platform)
	span.SetAttribute(ports.AttrBuildID, b.ID)
	span.SetAttribute(ports.AttrProjectDir, projectDir)

	outcome := domain.BuildOutcome{Platform: b.Platform, ID: b.ID}
	fail := func(err error) domain.BuildOutcome {
		err = zerr.With(annotate(err, "platform", b.Platform), "build_id", b.ID.String())
		span.RecordError(err)
		outcome.Err = err
		return outcome
	}

	state := domain.BuildStateSubmitted
	for {
		status, err := s.client.PollBuild(ctx, b.ID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fail(zerr.Wrap(ctxErr, "stopped waiting for build"))
			}
			return fail(err)
		}

		if status.State != state {
			state = status.State
			s.logger.Info(b.Platform.DisplayName() + " build " + b.ID.String() + " is " + string(state))
		}

		switch state {
		case domain.BuildStateSucceeded:
			outcome.Succeeded = true
			outcome.ArtifactURL = status.ArtifactURL
			return outcome
		case domain.BuildStateFailed:
			msg := status.Error
			if msg == "" {
				msg = "build finished with errors"
			}
			return fail(zerr.Wrap(domain.ErrRemoteBuildFailed, msg))
		}

		t := time.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return fail(zerr.Wrap(ctx.Err(), "stopped waiting for build"))
		case <-t.C:
		}
	}
}

// annotate attaches metadata to a new link of the chain so that err itself, which may be
// a sentinel, stays matchable with errors.Is.
func annotate(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
