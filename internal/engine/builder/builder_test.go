package builder_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/dispatch/internal/core/ports/mocks"
	"go.trai.ch/dispatch/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

const archiveURL = "https://example/archive.tar.gz"

var keystoreRef = domain.CredentialRef{
	ID:     "ks-1",
	Kind:   domain.CredentialKindKeystore,
	Source: domain.CredentialsSourceRemote,
}

type fixture struct {
	resolver *mocks.MockCredentialResolver
	prompter *mocks.MockPrompter
	logger   *mocks.MockLogger
	bctx     *domain.BuilderContext
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		resolver: mocks.NewMockCredentialResolver(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		bctx: &domain.BuilderContext{
			ProjectDir: "/work/app",
			Session:    &domain.Session{Username: "jane"},
			Project: &domain.ProjectConfig{
				Name: "app",
				Android: domain.AndroidConfig{
					Workflow: domain.WorkflowManaged,
					Package:  "ch.trai.app",
				},
				IOS: domain.IOSConfig{BundleIdentifier: "ch.trai.app", Scheme: "App"},
			},
		},
	}
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) newBuilder(t *testing.T, p domain.Platform, opts builder.Options) ports.Builder {
	t.Helper()
	b, err := builder.New(p, f.bctx, builder.Deps{Resolver: f.resolver, Prompter: f.prompter, Logger: f.logger}, opts)
	require.NoError(t, err)
	require.Equal(t, p, b.Platform())
	return b
}

func TestAndroid_ManagedJob(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().
		Resolve(gomock.Any(), f.bctx, domain.PlatformAndroid, domain.CredentialsSourceAuto).
		Return(keystoreRef, nil)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{CredentialsSource: domain.CredentialsSourceAuto})
	require.NoError(t, b.EnsureCredentials(context.Background()))

	job, err := b.PrepareJob(context.Background(), archiveURL)
	require.NoError(t, err)

	want := &domain.Job{
		Platform:       domain.PlatformAndroid,
		ProjectName:    "app",
		ExperienceName: "@jane/app",
		ArchiveURL:     archiveURL,
		Credentials:    keystoreRef,
		Workflow:       domain.WorkflowManaged,
		BuildType:      domain.BuildTypeAPK,
		Android:        &domain.AndroidJob{Package: "ch.trai.app"},
	}
	if diff := cmp.Diff(want, job); diff != "" {
		t.Errorf("job mismatch (-want +got):\n%s", diff)
	}
}

func TestAndroid_GenericJob(t *testing.T) {
	f := newFixture(t)
	f.bctx.Project.Android.Workflow = domain.WorkflowGeneric
	f.bctx.Project.Android.BuildCommand = ":app:bundleRelease"
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(keystoreRef, nil)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{ArtifactPath: "out/app.aab"})
	require.NoError(t, b.EnsureCredentials(context.Background()))

	job, err := b.PrepareJob(context.Background(), archiveURL)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkflowGeneric, job.Workflow)
	assert.Equal(t, &domain.AndroidJob{
		Package:       "ch.trai.app",
		GradleCommand: ":app:bundleRelease",
		ArtifactPath:  "out/app.aab",
	}, job.Android)
}

func TestAndroid_GenericDefaults(t *testing.T) {
	f := newFixture(t)
	f.bctx.Project.Android.Workflow = domain.WorkflowGeneric
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(keystoreRef, nil)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{})
	require.NoError(t, b.EnsureCredentials(context.Background()))

	job, err := b.PrepareJob(context.Background(), archiveURL)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGradleCommand, job.Android.GradleCommand)
	assert.Equal(t, domain.DefaultArtifactPath, job.Android.ArtifactPath)
}

func TestAndroid_GenericIgnoresBuildType(t *testing.T) {
	tests := []struct {
		name       string
		configured domain.BuildType
		flag       domain.BuildType
	}{
		{name: "none"},
		{name: "ios build type from the flag", flag: domain.BuildTypeArchive},
		{name: "unknown build type from the flag", flag: "bogus"},
		{name: "build type from the config", configured: domain.BuildTypeAppBundle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.bctx.Project.Android.Workflow = domain.WorkflowGeneric
			f.bctx.Project.Android.BuildType = tt.configured
			f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(keystoreRef, nil)

			b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{BuildType: tt.flag})
			require.NoError(t, b.EnsureCredentials(context.Background()))

			job, err := b.PrepareJob(context.Background(), archiveURL)
			require.NoError(t, err)
			assert.Equal(t, domain.WorkflowGeneric, job.Workflow)
			assert.Empty(t, job.BuildType)
		})
	}
}

func TestIOS_Job(t *testing.T) {
	f := newFixture(t)
	ref := domain.CredentialRef{ID: "cert-1", Kind: domain.CredentialKindDistribution, Source: domain.CredentialsSourceLocal}
	f.resolver.EXPECT().Resolve(gomock.Any(), f.bctx, domain.PlatformIOS, domain.CredentialsSourceLocal).Return(ref, nil)

	b := f.newBuilder(t, domain.PlatformIOS, builder.Options{
		CredentialsSource: domain.CredentialsSourceLocal,
		BuildType:         domain.BuildTypeSimulator,
	})
	require.NoError(t, b.EnsureCredentials(context.Background()))

	job, err := b.PrepareJob(context.Background(), archiveURL)
	require.NoError(t, err)

	want := &domain.Job{
		Platform:       domain.PlatformIOS,
		ProjectName:    "app",
		ExperienceName: "@jane/app",
		ArchiveURL:     archiveURL,
		Credentials:    ref,
		Workflow:       domain.WorkflowManaged,
		BuildType:      domain.BuildTypeSimulator,
		IOS:            &domain.IOSJob{BundleIdentifier: "ch.trai.app", Scheme: "App"},
	}
	if diff := cmp.Diff(want, job); diff != "" {
		t.Errorf("job mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareJob_BeforeEnsureCredentials(t *testing.T) {
	for _, p := range domain.Platforms {
		t.Run(p.String(), func(t *testing.T) {
			f := newFixture(t)
			b := f.newBuilder(t, p, builder.Options{})

			_, err := b.PrepareJob(context.Background(), archiveURL)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestPrepareJob_InvalidArchiveURL(t *testing.T) {
	for _, raw := range []string{"", "archive.tar.gz", "/tmp/archive.tar.gz", "ftp://example/archive.tar.gz", "https://"} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture(t)
			f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(keystoreRef, nil)

			b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{})
			require.NoError(t, b.EnsureCredentials(context.Background()))

			_, err := b.PrepareJob(context.Background(), raw)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestPrepareJob_InvalidBuildType(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(keystoreRef, nil)

	b := f.newBuilder(t, domain.PlatformIOS, builder.Options{BuildType: domain.BuildTypeAPK})
	require.NoError(t, b.EnsureCredentials(context.Background()))

	_, err := b.PrepareJob(context.Background(), archiveURL)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestEnsureCredentials_ResolveFails(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.CredentialRef{}, domain.ErrCredential)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{})
	assert.ErrorIs(t, b.EnsureCredentials(context.Background()), domain.ErrCredential)
}

func TestEnsureCredentials_ClearNonInteractive(t *testing.T) {
	f := newFixture(t)
	f.bctx.NonInteractive = true
	f.resolver.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{ClearCredentials: true})
	err := b.EnsureCredentials(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredential)
	assert.Contains(t, err.Error(), "not supported with --non-interactive")
}

func TestEnsureCredentials_ClearWithoutTerminal(t *testing.T) {
	f := newFixture(t)
	f.prompter.EXPECT().Interactive().Return(false)
	f.resolver.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	b := f.newBuilder(t, domain.PlatformIOS, builder.Options{ClearCredentials: true})
	assert.ErrorIs(t, b.EnsureCredentials(context.Background()), domain.ErrCredential)
}

func TestEnsureCredentials_ClearConfirmed(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.prompter.EXPECT().Interactive().Return(true),
		f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil),
		f.resolver.EXPECT().Clear(gomock.Any(), f.bctx, domain.PlatformAndroid).Return(nil),
		f.resolver.EXPECT().Resolve(gomock.Any(), f.bctx, domain.PlatformAndroid, gomock.Any()).Return(keystoreRef, nil),
	)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{ClearCredentials: true})
	require.NoError(t, b.EnsureCredentials(context.Background()))
}

func TestEnsureCredentials_ClearDeclined(t *testing.T) {
	f := newFixture(t)
	f.prompter.EXPECT().Interactive().Return(true)
	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, nil)
	f.resolver.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	b := f.newBuilder(t, domain.PlatformAndroid, builder.Options{ClearCredentials: true})
	assert.ErrorIs(t, b.EnsureCredentials(context.Background()), domain.ErrCredential)
}

func TestNew_UnknownPlatform(t *testing.T) {
	_, err := builder.New("windows", &domain.BuilderContext{}, builder.Deps{}, builder.Options{})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
