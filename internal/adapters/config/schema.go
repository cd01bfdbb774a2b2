package config

// Projectfile represents the structure of the dispatch.yaml configuration file.
type Projectfile struct {
	Name    string     `yaml:"name"`
	Owner   string     `yaml:"owner"`
	Android AndroidDTO `yaml:"android"`
	IOS     IOSDTO     `yaml:"ios"`
}

// AndroidDTO represents the android section of the configuration.
type AndroidDTO struct {
	Workflow     string `yaml:"workflow"`
	Package      string `yaml:"package"`
	BuildType    string `yaml:"buildType"`
	BuildCommand string `yaml:"buildCommand"`
	ArtifactPath string `yaml:"artifactPath"`
}

// IOSDTO represents the ios section of the configuration.
type IOSDTO struct {
	BundleIdentifier string `yaml:"bundleIdentifier"`
	BuildType        string `yaml:"buildType"`
	Scheme           string `yaml:"scheme"`
}
