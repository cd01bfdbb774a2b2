// Package builder prepares platform specific build jobs.
package builder

import (
	"context"
	"net/url"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// clearNonInteractiveMessage is returned when clearing credentials is requested without a terminal.
const clearNonInteractiveMessage = "clearing build credentials from the build service is a permanent and " +
	"irreversible action, it is not supported with --non-interactive"

// Deps are the collaborators shared by all builders.
type Deps struct {
	Resolver ports.CredentialResolver
	Prompter ports.Prompter
	Logger   ports.Logger
}

// Options are the per-invocation build settings given on the command line.
// Empty values fall back to the project configuration.
type Options struct {
	CredentialsSource domain.CredentialsSource
	ClearCredentials  bool
	BuildType         domain.BuildType
	BuildCommand      string
	ArtifactPath      string
}

// New returns the builder for platform.
func New(platform domain.Platform, bctx *domain.BuilderContext, deps Deps, opts Options) (ports.Builder, error) {
	b := base{platform: platform, bctx: bctx, deps: deps, opts: opts}
	switch platform {
	case domain.PlatformAndroid:
		return &Android{base: b}, nil
	case domain.PlatformIOS:
		return &IOS{base: b}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "unsupported platform"), "platform", platform)
	}
}

// base holds the credential handling common to every platform.
type base struct {
	platform domain.Platform
	bctx     *domain.BuilderContext
	deps     Deps
	opts     Options
	ref      domain.CredentialRef
}

// Platform returns the platform this builder targets.
func (b *base) Platform() domain.Platform {
	return b.platform
}

// EnsureCredentials optionally clears the remote credential and then resolves the one
// the job will be signed with.
func (b *base) EnsureCredentials(ctx context.Context) error {
	if b.opts.ClearCredentials {
		if err := b.clear(ctx); err != nil {
			return err
		}
	}

	ref, err := b.deps.Resolver.Resolve(ctx, b.bctx, b.platform, b.opts.CredentialsSource)
	if err != nil {
		return err
	}
	if ref.IsZero() {
		return zerr.With(zerr.Wrap(domain.ErrCredential, "resolver returned no credential"), "platform", b.platform)
	}

	b.ref = ref
	return nil
}

func (b *base) clear(ctx context.Context) error {
	if b.bctx.NonInteractive || !b.deps.Prompter.Interactive() {
		return zerr.With(zerr.Wrap(domain.ErrCredential, clearNonInteractiveMessage), "platform", b.platform)
	}

	ok, err := b.deps.Prompter.Confirm(ctx,
		"Permanently remove the "+b.platform.DisplayName()+" credentials of "+b.bctx.ExperienceName()+
			" from the build service?")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCredential, err.Error()), "platform", b.platform)
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrCredential, "clearing credentials was not confirmed"), "platform", b.platform)
	}

	b.deps.Logger.Warn("Clearing " + b.platform.DisplayName() + " credentials from the build service")
	return b.deps.Resolver.Clear(ctx, b.bctx, b.platform)
}

// newJob validates the inputs common to every platform and returns a partially filled job.
func (b *base) newJob(archiveURL string) (*domain.Job, error) {
	if err := validateArchiveURL(archiveURL); err != nil {
		return nil, zerr.With(err, "platform", b.platform)
	}
	if b.ref.IsZero() {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "credentials have not been resolved"),
			"platform", b.platform)
	}

	return &domain.Job{
		Platform:       b.platform,
		ProjectName:    b.bctx.Project.Name,
		ExperienceName: b.bctx.ExperienceName(),
		ArchiveURL:     archiveURL,
		Credentials:    b.ref,
	}, nil
}

// buildType picks the command line value, then the configured one, then the platform default.
func (b *base) buildType(configured domain.BuildType) (domain.BuildType, error) {
	t := firstNonEmpty(b.opts.BuildType, configured, domain.DefaultBuildType(b.platform))
	if !domain.ValidBuildType(b.platform, t) {
		err := zerr.Wrap(domain.ErrConfiguration, "unsupported build type")
		err = zerr.With(err, "platform", b.platform)
		err = zerr.With(err, "supported", domain.BuildTypes(b.platform))
		return "", zerr.With(err, "build_type", string(t))
	}
	return t, nil
}

func validateArchiveURL(raw string) error {
	if raw == "" {
		return zerr.Wrap(domain.ErrConfiguration, "archive url is required")
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(zerr.Wrap(domain.ErrConfiguration, "archive url must be an absolute http(s) url"),
			"archive_url", raw)
	}
	return nil
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
