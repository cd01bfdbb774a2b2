package domain

// ProjectFileName is the name of the project configuration file.
const ProjectFileName = "dispatch.yaml"

// CredentialsFileName is the name of the project's local credentials file.
const CredentialsFileName = "credentials.json"

// ProjectConfig is the resolved project configuration.
type ProjectConfig struct {
	Name    string
	Owner   string
	Android AndroidConfig
	IOS     IOSConfig
}

// AndroidConfig holds the project's Android build settings.
type AndroidConfig struct {
	Workflow     Workflow
	Package      string
	BuildType    BuildType
	BuildCommand string
	ArtifactPath string
}

// IOSConfig holds the project's iOS build settings.
type IOSConfig struct {
	BundleIdentifier string
	BuildType        BuildType
	Scheme           string
}
