// Package credentials resolves the signing credentials a build uses.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CredentialResolver = (*Resolver)(nil)

// Resolver implements ports.CredentialResolver on top of the project's credentials.json
// and the build service credential store.
type Resolver struct {
	service  ports.CredentialService
	prompter ports.Prompter
	logger   ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(service ports.CredentialService, prompter ports.Prompter, logger ports.Logger) *Resolver {
	return &Resolver{service: service, prompter: prompter, logger: logger}
}

// Resolve returns the credential reference selected by source.
//
// Local reads credentials.json and fails if the platform has no entry. Remote uses the
// credential stored on the build service, running the setup flow when there is none.
// Auto prefers local material when credentials.json has an entry for the platform.
func (r *Resolver) Resolve(
	ctx context.Context,
	bctx *domain.BuilderContext,
	platform domain.Platform,
	source domain.CredentialsSource,
) (domain.CredentialRef, error) {
	switch source {
	case domain.CredentialsSourceLocal:
		return r.resolveLocal(bctx, platform, true)
	case domain.CredentialsSourceRemote:
		return r.resolveRemote(ctx, bctx, platform)
	case domain.CredentialsSourceAuto, "":
		ref, err := r.resolveLocal(bctx, platform, false)
		if err != nil || !ref.IsZero() {
			return ref, err
		}
		return r.resolveRemote(ctx, bctx, platform)
	default:
		return domain.CredentialRef{}, zerr.With(zerr.Wrap(domain.ErrConfiguration, "unknown credentials source"),
			"credentials_source", string(source))
	}
}

// resolveLocal returns a zero reference without error when the entry is absent and required is false.
func (r *Resolver) resolveLocal(
	bctx *domain.BuilderContext,
	platform domain.Platform,
	required bool,
) (domain.CredentialRef, error) {
	creds, err := ReadLocal(bctx.ProjectDir)
	if err != nil {
		return domain.CredentialRef{}, zerr.With(err, "platform", platform)
	}

	if !hasPlatform(creds, platform) {
		if !required {
			return domain.CredentialRef{}, nil
		}
		return domain.CredentialRef{}, zerr.With(
			zerr.Wrap(domain.ErrCredential, fmt.Sprintf("%s has no %s credentials", domain.CredentialsFileName, platform)),
			"platform", platform)
	}

	if bctx.SkipCredentialsCheck {
		r.logger.Warn("Skipping validation of local " + platform.DisplayName() + " credentials")
	} else if err := validate(bctx.ProjectDir, creds, platform); err != nil {
		return domain.CredentialRef{}, err
	}

	r.logger.Info("Using local " + platform.DisplayName() + " credentials from " + domain.CredentialsFileName)
	return localRef(creds, platform), nil
}

func (r *Resolver) resolveRemote(
	ctx context.Context,
	bctx *domain.BuilderContext,
	platform domain.Platform,
) (domain.CredentialRef, error) {
	experience := bctx.ExperienceName()

	cred, err := r.service.FetchCredential(ctx, experience, platform)
	if err != nil {
		return domain.CredentialRef{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, err),
			"failed to look up remote credentials"), "platform", platform)
	}

	if cred == nil {
		if cred, err = r.setup(ctx, bctx, platform); err != nil {
			return domain.CredentialRef{}, err
		}
	} else {
		r.logger.Info("Using " + platform.DisplayName() + " credentials stored for " + experience)
	}

	kind := cred.Kind
	if kind == "" {
		kind = domain.CredentialKindFor(platform)
	}
	return domain.CredentialRef{ID: cred.ID, Kind: kind, Source: domain.CredentialsSourceRemote}, nil
}

// setup provisions a credential on the build service. Interactive sessions confirm first;
// non-interactive sessions generate Android keystores and refuse for iOS.
func (r *Resolver) setup(
	ctx context.Context,
	bctx *domain.BuilderContext,
	platform domain.Platform,
) (*domain.RemoteCredential, error) {
	experience := bctx.ExperienceName()
	kind := domain.CredentialKindFor(platform)

	if interactive(bctx, r.prompter) {
		ok, err := r.prompter.Confirm(ctx,
			fmt.Sprintf("No %s %s found for %s. Let the build service generate one?", platform.DisplayName(), kind, experience))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, err), "credential setup aborted"),
				"platform", platform)
		}
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrCredential, "no credentials available, setup declined"),
				"platform", platform)
		}
	} else if platform == domain.PlatformIOS {
		return nil, zerr.With(zerr.Wrap(domain.ErrCredential,
			"no iOS credentials stored on the build service, Apple credentials can only be set up interactively"),
			"platform", platform)
	}

	r.logger.Info("Generating a new " + platform.DisplayName() + " " + string(kind) + " for " + experience)
	cred, err := r.service.GenerateCredential(ctx, experience, platform)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, err), "failed to generate credentials"),
			"platform", platform)
	}
	return cred, nil
}

// Clear permanently removes the platform credential from the build service.
func (r *Resolver) Clear(ctx context.Context, bctx *domain.BuilderContext, platform domain.Platform) error {
	experience := bctx.ExperienceName()
	if err := r.service.DeleteCredential(ctx, experience, platform); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, err), "failed to clear remote credentials"),
			"platform", platform)
	}
	r.logger.Info("Removed " + platform.DisplayName() + " credentials stored for " + experience)
	return nil
}

func interactive(bctx *domain.BuilderContext, p ports.Prompter) bool {
	return !bctx.NonInteractive && p.Interactive()
}
