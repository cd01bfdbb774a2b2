package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// BuildID is the opaque identifier the build service assigns to a submitted job.
type BuildID string

// String returns the identifier.
func (id BuildID) String() string {
	return string(id)
}

// BuildState is the lifecycle state of a remote build.
type BuildState string

const (
	// BuildStateSubmitted indicates the job was accepted but has not started.
	BuildStateSubmitted BuildState = "submitted"
	// BuildStateInProgress indicates the build service is running the job.
	BuildStateInProgress BuildState = "in-progress"
	// BuildStateSucceeded indicates the build finished and produced an artifact.
	BuildStateSucceeded BuildState = "succeeded"
	// BuildStateFailed indicates the build finished unsuccessfully.
	BuildStateFailed BuildState = "failed"
)

// IsTerminal reports whether no further transition can happen from s.
func (s BuildState) IsTerminal() bool {
	return s == BuildStateSucceeded || s == BuildStateFailed
}

// NormalizeBuildState converts a service state string to a BuildState.
// Unknown values are treated as in progress so that polling continues.
func NormalizeBuildState(s string) BuildState {
	switch strings.ToLower(s) {
	case "new", "pending", "queued", string(BuildStateSubmitted):
		return BuildStateSubmitted
	case "finished", "success", "passed", string(BuildStateSucceeded):
		return BuildStateSucceeded
	case "errored", "error", "canceled", "cancelled", string(BuildStateFailed):
		return BuildStateFailed
	default:
		return BuildStateInProgress
	}
}

// BuildStatus is a single poll result reported by the build service.
type BuildStatus struct {
	ID          BuildID    `json:"id"`
	Platform    Platform   `json:"platform"`
	State       BuildState `json:"status"`
	ArtifactURL string     `json:"artifactUrl,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// ScheduledBuild pairs a platform with the build the service accepted for it.
type ScheduledBuild struct {
	Platform Platform `json:"platform"`
	ID       BuildID  `json:"buildId"`
}

// BuildOutcome is the terminal result of a scheduled build.
type BuildOutcome struct {
	Platform    Platform
	ID          BuildID
	Succeeded   bool
	ArtifactURL string
	Err         error
}

// BuildRecord is a locally persisted record of a submitted build.
type BuildRecord struct {
	Fingerprint string    `json:"fingerprint"`
	ProjectDir  string    `json:"projectDir"`
	Platform    Platform  `json:"platform"`
	BuildID     BuildID   `json:"buildId"`
	SubmittedAt time.Time `json:"submittedAt,omitzero"`
}

// Fingerprint identifies a submission by project, platform and archive.
func Fingerprint(projectDir string, p Platform, archiveURL string) string {
	d := xxhash.New()
	_, _ = d.WriteString(projectDir)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(string(p))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(archiveURL)
	return strconv.FormatUint(d.Sum64(), 16)
}
