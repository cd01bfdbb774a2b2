package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dispatch/internal/adapters/telemetry"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports/mocks"
	"go.trai.ch/dispatch/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

const archiveURL = "https://example/archive.tar.gz"

func newScheduler(t *testing.T) (*scheduler.Scheduler, *mocks.MockBuildClient, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockBuildClient(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	s := scheduler.NewScheduler(client, telemetry.NewNoOpTracer(), log).WithPollInterval(time.Second)
	return s, client, ctrl
}

// scriptedPoller answers PollBuild from a per-build list of states; the last state repeats.
type scriptedPoller struct {
	mu      sync.Mutex
	scripts map[domain.BuildID][]domain.BuildState
	calls   map[domain.BuildID]int
}

func newScriptedPoller(scripts map[domain.BuildID][]domain.BuildState) *scriptedPoller {
	return &scriptedPoller{scripts: scripts, calls: make(map[domain.BuildID]int)}
}

func (p *scriptedPoller) poll(_ context.Context, id domain.BuildID) (*domain.BuildStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	script := p.scripts[id]
	n := min(p.calls[id], len(script)-1)
	p.calls[id]++

	status := &domain.BuildStatus{ID: id, State: script[n]}
	if status.State == domain.BuildStateSucceeded {
		status.ArtifactURL = "https://example/" + id.String()
	}
	return status, nil
}

func TestSubmit(t *testing.T) {
	s, client, ctrl := newScheduler(t)
	builder := mocks.NewMockBuilder(ctrl)
	job := &domain.Job{Platform: domain.PlatformAndroid, ArchiveURL: archiveURL}

	builder.EXPECT().Platform().Return(domain.PlatformAndroid).AnyTimes()
	gomock.InOrder(
		builder.EXPECT().EnsureCredentials(gomock.Any()).Return(nil),
		builder.EXPECT().PrepareJob(gomock.Any(), archiveURL).Return(job, nil),
		client.EXPECT().SubmitJob(gomock.Any(), job).Return(domain.BuildID("b-1"), nil),
	)

	id, err := s.Submit(context.Background(), builder, archiveURL)
	require.NoError(t, err)
	assert.Equal(t, domain.BuildID("b-1"), id)
}

func TestSubmit_NeverPreparesWithoutCredentials(t *testing.T) {
	s, _, ctrl := newScheduler(t)
	builder := mocks.NewMockBuilder(ctrl)

	builder.EXPECT().Platform().Return(domain.PlatformIOS).AnyTimes()
	builder.EXPECT().EnsureCredentials(gomock.Any()).Return(domain.ErrCredential)
	builder.EXPECT().PrepareJob(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.Submit(context.Background(), builder, archiveURL)
	assert.ErrorIs(t, err, domain.ErrCredential)
}

func TestSubmit_PrepareJobFails(t *testing.T) {
	s, client, ctrl := newScheduler(t)
	builder := mocks.NewMockBuilder(ctrl)

	builder.EXPECT().Platform().Return(domain.PlatformAndroid).AnyTimes()
	builder.EXPECT().EnsureCredentials(gomock.Any()).Return(nil)
	builder.EXPECT().PrepareJob(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConfiguration)
	client.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.Submit(context.Background(), builder, "")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestSubmit_Rejected(t *testing.T) {
	s, client, ctrl := newScheduler(t)
	builder := mocks.NewMockBuilder(ctrl)

	builder.EXPECT().Platform().Return(domain.PlatformAndroid).AnyTimes()
	builder.EXPECT().EnsureCredentials(gomock.Any()).Return(nil)
	builder.EXPECT().PrepareJob(gomock.Any(), gomock.Any()).Return(&domain.Job{}, nil)
	client.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return(domain.BuildID(""), errors.New("connection reset")).Times(1)

	_, err := s.Submit(context.Background(), builder, archiveURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmission)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWaitForCompletion_PreservesInputOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, client, _ := newScheduler(t)
		poller := newScriptedPoller(map[domain.BuildID][]domain.BuildState{
			"b-0": {domain.BuildStateSubmitted, domain.BuildStateInProgress, domain.BuildStateInProgress, domain.BuildStateSucceeded},
			"b-1": {domain.BuildStateSucceeded},
		})
		client.EXPECT().PollBuild(gomock.Any(), gomock.Any()).DoAndReturn(poller.poll).AnyTimes()

		start := time.Now()
		outcomes := s.WaitForCompletion(context.Background(), "/work/app", []domain.ScheduledBuild{
			{Platform: domain.PlatformAndroid, ID: "b-0"},
			{Platform: domain.PlatformIOS, ID: "b-1"},
		})

		want := []domain.BuildOutcome{
			{Platform: domain.PlatformAndroid, ID: "b-0", Succeeded: true, ArtifactURL: "https://example/b-0"},
			{Platform: domain.PlatformIOS, ID: "b-1", Succeeded: true, ArtifactURL: "https://example/b-1"},
		}
		if diff := cmp.Diff(want, outcomes); diff != "" {
			t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3*time.Second, time.Since(start))
		assert.Equal(t, 4, poller.calls["b-0"])
		assert.Equal(t, 1, poller.calls["b-1"])
	})
}

func TestWaitForCompletion_PollingFailureIsIsolated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, client, _ := newScheduler(t)
		poller := newScriptedPoller(map[domain.BuildID][]domain.BuildState{
			"b-1": {domain.BuildStateInProgress, domain.BuildStateSucceeded},
		})
		client.EXPECT().PollBuild(gomock.Any(), domain.BuildID("b-1")).DoAndReturn(poller.poll).Times(2)
		client.EXPECT().PollBuild(gomock.Any(), domain.BuildID("b-2")).Return(nil, domain.ErrPolling)

		outcomes := s.WaitForCompletion(context.Background(), "/work/app", []domain.ScheduledBuild{
			{Platform: domain.PlatformAndroid, ID: "b-1"},
			{Platform: domain.PlatformIOS, ID: "b-2"},
		})

		require.Len(t, outcomes, 2)
		assert.True(t, outcomes[0].Succeeded)
		assert.NoError(t, outcomes[0].Err)
		assert.False(t, outcomes[1].Succeeded)
		assert.ErrorIs(t, outcomes[1].Err, domain.ErrPolling)
	})
}

func TestWaitForCompletion_RemoteFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, client, _ := newScheduler(t)
		client.EXPECT().PollBuild(gomock.Any(), domain.BuildID("b-3")).Return(&domain.BuildStatus{
			ID:    "b-3",
			State: domain.BuildStateFailed,
			Error: "gradle exited with code 1",
		}, nil)

		outcomes := s.WaitForCompletion(context.Background(), "/work/app", []domain.ScheduledBuild{
			{Platform: domain.PlatformAndroid, ID: "b-3"},
		})

		require.Len(t, outcomes, 1)
		assert.False(t, outcomes[0].Succeeded)
		assert.ErrorIs(t, outcomes[0].Err, domain.ErrRemoteBuildFailed)
		assert.Contains(t, outcomes[0].Err.Error(), "gradle exited with code 1")
	})
}

func TestWaitForCompletion_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, client, _ := newScheduler(t)
		poller := newScriptedPoller(map[domain.BuildID][]domain.BuildState{
			"b-1": {domain.BuildStateInProgress},
			"b-2": {domain.BuildStateSucceeded},
		})
		client.EXPECT().PollBuild(gomock.Any(), gomock.Any()).DoAndReturn(poller.poll).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second+time.Millisecond)
		defer cancel()

		outcomes := s.WaitForCompletion(ctx, "/work/app", []domain.ScheduledBuild{
			{Platform: domain.PlatformAndroid, ID: "b-1"},
			{Platform: domain.PlatformIOS, ID: "b-2"},
		})

		want := []domain.BuildOutcome{
			{Platform: domain.PlatformAndroid, ID: "b-1"},
			{Platform: domain.PlatformIOS, ID: "b-2", Succeeded: true, ArtifactURL: "https://example/b-2"},
		}
		if diff := cmp.Diff(want, outcomes, cmpopts.IgnoreFields(domain.BuildOutcome{}, "Err")); diff != "" {
			t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
		}
		assert.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)
		assert.Equal(t, 6, poller.calls["b-1"])
	})
}

func TestWaitForCompletion_Empty(t *testing.T) {
	s, _, _ := newScheduler(t)
	assert.Empty(t, s.WaitForCompletion(context.Background(), "/work/app", nil))
}

func TestWaitForCompletion_ReportsDurations(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockBuildClient(ctrl)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any()).AnyTimes()

		tp := telemetry.NewTracerProvider(log)
		tracer := telemetry.NewOTelTracerFrom(tp, "test")
		s := scheduler.NewScheduler(client, tracer, log).WithPollInterval(time.Second)

		poller := newScriptedPoller(map[domain.BuildID][]domain.BuildState{
			"b-2": {domain.BuildStateInProgress, domain.BuildStateInProgress, domain.BuildStateFailed},
		})
		client.EXPECT().PollBuild(gomock.Any(), gomock.Any()).DoAndReturn(poller.poll).Times(3)
		log.EXPECT().Warn("iOS build b-2 failed after 2s")

		outcomes := s.WaitForCompletion(context.Background(), "/work/app", []domain.ScheduledBuild{
			{Platform: domain.PlatformIOS, ID: "b-2"},
		})

		require.Len(t, outcomes, 1)
		assert.ErrorIs(t, outcomes[0].Err, domain.ErrRemoteBuildFailed)
	})
}
