package api

import (
	"context"
	"net/http"
	"net/url"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/zerr"
)

func credentialPath(experience string, platform domain.Platform) string {
	return "/experiences/" + url.PathEscape(experience) + "/credentials/" + url.PathEscape(platform.String())
}

// FetchCredential returns the credential stored for the experience, or nil if there is none.
func (c *Client) FetchCredential(
	ctx context.Context,
	experience string,
	platform domain.Platform,
) (*domain.RemoteCredential, error) {
	var cred domain.RemoteCredential
	if err := c.do(ctx, http.MethodGet, credentialPath(experience, platform), nil, &cred); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch remote credential"), "experience", experience)
	}
	return &cred, nil
}

// GenerateCredential asks the service to create a new credential for the experience.
func (c *Client) GenerateCredential(
	ctx context.Context,
	experience string,
	platform domain.Platform,
) (*domain.RemoteCredential, error) {
	var cred domain.RemoteCredential
	if err := c.do(ctx, http.MethodPost, credentialPath(experience, platform), nil, &cred); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to generate remote credential"), "experience", experience)
	}
	return &cred, nil
}

// DeleteCredential removes the stored credential. Deleting a missing credential succeeds.
func (c *Client) DeleteCredential(ctx context.Context, experience string, platform domain.Platform) error {
	if err := c.do(ctx, http.MethodDelete, credentialPath(experience, platform), nil, nil); err != nil {
		if isNotFound(err) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to delete remote credential"), "experience", experience)
	}
	return nil
}
