// Package config loads the dispatch.yaml project configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Loader implements ports.ProjectLoader reading dispatch.yaml from the project directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads and validates the project configuration in projectDir.
func (l *Loader) Load(projectDir string) (*domain.ProjectConfig, error) {
	path := filepath.Join(projectDir, domain.ProjectFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, domain.ErrProjectNotFound.Error()), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfiguration, err), "failed to parse config file"),
			"path", path)
	}

	return l.toDomain(&file)
}

func (l *Loader) toDomain(file *Projectfile) (*domain.ProjectConfig, error) {
	if file.Name == "" {
		return nil, zerr.Wrap(domain.ErrConfiguration, "project name is required")
	}
	if !slugPattern.MatchString(file.Name) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "project name must be a lowercase slug"),
			"name", file.Name)
	}

	workflow := domain.Workflow(file.Android.Workflow)
	switch workflow {
	case "":
		workflow = domain.WorkflowManaged
	case domain.WorkflowGeneric, domain.WorkflowManaged:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "unknown android workflow, expected generic or managed"),
			"workflow", file.Android.Workflow)
	}

	if workflow == domain.WorkflowGeneric && file.Android.BuildType != "" && l.Logger != nil {
		l.Logger.Warn("android.buildType is ignored by the generic workflow")
	}
	if workflow == domain.WorkflowManaged && file.Android.BuildCommand != "" && l.Logger != nil {
		l.Logger.Warn("android.buildCommand is only used by the generic workflow")
	}

	return &domain.ProjectConfig{
		Name:  file.Name,
		Owner: file.Owner,
		Android: domain.AndroidConfig{
			Workflow:     workflow,
			Package:      file.Android.Package,
			BuildType:    domain.BuildType(file.Android.BuildType),
			BuildCommand: file.Android.BuildCommand,
			ArtifactPath: file.Android.ArtifactPath,
		},
		IOS: domain.IOSConfig{
			BundleIdentifier: file.IOS.BundleIdentifier,
			BuildType:        domain.BuildType(file.IOS.BuildType),
			Scheme:           file.IOS.Scheme,
		},
	}, nil
}
