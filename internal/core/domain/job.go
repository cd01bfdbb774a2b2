package domain

import "slices"

// Workflow is the project flavour a job is built from.
type Workflow string

const (
	// WorkflowGeneric builds a bare native project with a custom gradle command.
	WorkflowGeneric Workflow = "generic"
	// WorkflowManaged builds a managed project with a build type selector.
	WorkflowManaged Workflow = "managed"
)

// BuildType selects the artifact flavour of a managed build.
type BuildType string

const (
	// BuildTypeAPK produces an Android APK.
	BuildTypeAPK BuildType = "apk"
	// BuildTypeAppBundle produces an Android App Bundle.
	BuildTypeAppBundle BuildType = "app-bundle"
	// BuildTypeArchive produces an iOS archive for store submission.
	BuildTypeArchive BuildType = "archive"
	// BuildTypeSimulator produces an iOS simulator build.
	BuildTypeSimulator BuildType = "simulator"
)

const (
	// DefaultGradleCommand is the gradle task used by generic Android builds.
	DefaultGradleCommand = ":app:assembleRelease"
	// DefaultArtifactPath is where generic Android builds leave their artifact.
	DefaultArtifactPath = "android/app/build/outputs/apk/release/app-release.apk"
)

var buildTypes = map[Platform][]BuildType{
	PlatformAndroid: {BuildTypeAPK, BuildTypeAppBundle},
	PlatformIOS:     {BuildTypeArchive, BuildTypeSimulator},
}

// DefaultBuildType returns the build type used when none is configured.
func DefaultBuildType(p Platform) BuildType {
	if p == PlatformIOS {
		return BuildTypeArchive
	}
	return BuildTypeAPK
}

// ValidBuildType reports whether t is a build type the platform supports.
func ValidBuildType(p Platform, t BuildType) bool {
	return slices.Contains(buildTypes[p], t)
}

// BuildTypes returns the build types a platform supports.
func BuildTypes(p Platform) []BuildType {
	return slices.Clone(buildTypes[p])
}

// Job is the fully resolved description of a remote build.
// It is produced by a builder and consumed exactly once by the scheduler.
type Job struct {
	Platform       Platform      `json:"platform"`
	ProjectName    string        `json:"projectName"`
	ExperienceName string        `json:"experienceName"`
	ArchiveURL     string        `json:"projectUrl"`
	Credentials    CredentialRef `json:"credentials"`
	Workflow       Workflow      `json:"workflow"`
	BuildType      BuildType     `json:"buildType,omitempty"`
	Android        *AndroidJob   `json:"android,omitempty"`
	IOS            *IOSJob       `json:"ios,omitempty"`
}

// AndroidJob holds the Android specific build parameters.
type AndroidJob struct {
	Package       string `json:"package,omitempty"`
	GradleCommand string `json:"gradleCommand,omitempty"`
	ArtifactPath  string `json:"artifactPath,omitempty"`
}

// IOSJob holds the iOS specific build parameters.
type IOSJob struct {
	BundleIdentifier string `json:"bundleIdentifier,omitempty"`
	Scheme           string `json:"scheme,omitempty"`
}
