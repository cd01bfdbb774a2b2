package domain

import "go.trai.ch/zerr"

var (
	// ErrCredential is returned when a signing credential is missing, cannot be resolved,
	// or a destructive credential action is requested without interactive confirmation.
	ErrCredential = zerr.New("credential error")

	// ErrConfiguration is returned when a required build parameter is missing or invalid.
	ErrConfiguration = zerr.New("configuration error")

	// ErrSubmission is returned when the build service rejects a job.
	ErrSubmission = zerr.New("build submission failed")

	// ErrPolling is returned when the build status cannot be determined.
	ErrPolling = zerr.New("build status polling failed")

	// ErrNotImplemented is returned by features that are intentionally not built yet.
	ErrNotImplemented = zerr.New("not implemented yet")

	// ErrBuildFailed is returned when at least one platform failed during a build invocation.
	ErrBuildFailed = zerr.New("build failed")

	// ErrRemoteBuildFailed is recorded when the build service reports a failed build.
	ErrRemoteBuildFailed = zerr.New("remote build failed")

	// ErrNotAuthenticated is returned when no user session is available.
	ErrNotAuthenticated = zerr.New("not logged in")

	// ErrProjectNotFound is returned when the project configuration file cannot be found.
	ErrProjectNotFound = zerr.New("project configuration not found")

	// ErrCredentialsFileRead is returned when credentials.json cannot be read or parsed.
	ErrCredentialsFileRead = zerr.New("failed to read credentials.json")

	// ErrArchiveFailed is returned when the project archive cannot be produced.
	ErrArchiveFailed = zerr.New("failed to create project archive")

	// ErrHistoryWriteFailed is returned when the local build history cannot be written.
	ErrHistoryWriteFailed = zerr.New("failed to write build history")

	// ErrHistoryReadFailed is returned when the local build history cannot be read.
	ErrHistoryReadFailed = zerr.New("failed to read build history")

	// ErrAPIRequestFailed is returned when the build service answers with an unexpected status.
	ErrAPIRequestFailed = zerr.New("build service request failed")
)
