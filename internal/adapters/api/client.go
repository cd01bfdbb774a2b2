// Package api implements the HTTP client of the remote build service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	defaultPollAttempts = 3
	defaultRetryDelay   = 2 * time.Second

	// maxErrorBody bounds how much of an error response is read into messages.
	maxErrorBody = 4 << 10
)

// Client talks to the build service. It implements ports.BuildClient,
// ports.CredentialService and ports.ArchiveUploader.
type Client struct {
	baseURL      string
	sessions     ports.SessionStore
	httpClient   *http.Client
	pollAttempts int
	retryDelay   time.Duration
	requestID    func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithPollRetry sets how many attempts PollBuild makes and the base delay between them.
// The delay doubles after each failed attempt.
func WithPollRetry(attempts int, delay time.Duration) Option {
	return func(cl *Client) {
		cl.pollAttempts = max(attempts, 1)
		cl.retryDelay = delay
	}
}

// NewClient creates a Client for the service at baseURL. The session token is loaded
// lazily on the first request.
func NewClient(baseURL string, sessions ports.SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		sessions:     sessions,
		httpClient:   &http.Client{Timeout: httpClientTimeout},
		pollAttempts: defaultPollAttempts,
		retryDelay:   defaultRetryDelay,
		requestID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type submitResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Status      string `json:"status"`
	ArtifactURL string `json:"artifactUrl"`
	Error       string `json:"error"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusError is returned for non-2xx responses.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("unexpected status %d", e.code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.message)
}

// retryable reports whether a failed poll may succeed when tried again.
func retryable(err error) bool {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	return true
}

// SubmitJob schedules the job on the build service.
func (c *Client) SubmitJob(ctx context.Context, job *domain.Job) (domain.BuildID, error) {
	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/builds", job, &resp); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrSubmission, err), "build service rejected the job"),
			"platform", job.Platform)
	}
	if resp.ID == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrSubmission, "build service returned no build id"),
			"platform", job.Platform)
	}
	return domain.BuildID(resp.ID), nil
}

// PollBuild fetches the current status of a build, retrying transient failures.
func (c *Client) PollBuild(ctx context.Context, id domain.BuildID) (*domain.BuildStatus, error) {
	var (
		lastErr error
		delay   = c.retryDelay
	)

	for attempt := range c.pollAttempts {
		if attempt > 0 {
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
		}

		var resp statusResponse
		lastErr = c.do(ctx, http.MethodGet, "/builds/"+url.PathEscape(id.String()), nil, &resp)
		if lastErr == nil {
			return &domain.BuildStatus{
				ID:          id,
				Platform:    domain.Platform(resp.Platform),
				State:       domain.NormalizeBuildState(resp.Status),
				ArtifactURL: resp.ArtifactURL,
				Error:       resp.Error,
			}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable(lastErr) {
			break
		}
	}

	return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrPolling, lastErr), "giving up on build status"),
		"build_id", id.String())
}

// LogsURL returns the page where the logs of a build can be followed.
func (c *Client) LogsURL(id domain.BuildID) string {
	return c.baseURL + "/builds/" + url.PathEscape(id.String()) + "/logs"
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// do sends a JSON request and decodes a JSON response into out, if out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return zerr.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	sess, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.requestID())
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "request failed"), "url", req.URL.String())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrAPIRequestFailed, readStatusError(resp)), req.Method+" "+req.URL.Path),
			"request_id", req.Header.Get("X-Request-ID"))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.Wrap(err, "failed to decode response")
	}
	return nil
}

func readStatusError(resp *http.Response) *statusError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var er errorResponse
	msg := strings.TrimSpace(string(data))
	if json.Unmarshal(data, &er) == nil && er.Error != "" {
		msg = er.Error
	}
	return &statusError{code: resp.StatusCode, message: msg}
}

// isNotFound reports whether err is a 404 answer.
func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}
