package domain

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "dispatch"

const (
	// DirPerm is the permission used for directories created by dispatch.
	DirPerm = 0o750
	// PrivateFilePerm is the permission used for files holding secrets or user state.
	PrivateFilePerm = 0o600
)

// DefaultAPIBaseURL is the build service endpoint used when DISPATCH_API_URL is unset.
const DefaultAPIBaseURL = "https://api.dispatch.trai.ch/v2"

// DefaultSessionPath returns the path of the stored user session.
func DefaultSessionPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "session.json")
}

// DefaultHistoryPath returns the path of the local build history.
func DefaultHistoryPath() string {
	return filepath.Join(xdg.StateHome, appName, "builds.json")
}
