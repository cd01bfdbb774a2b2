package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dispatch/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions

	cmd := &cobra.Command{
		Use:   "build [project-dir]",
		Short: "Submit Android and iOS builds to the build service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectDir = projectDirArg(args)
			return c.app.Build(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Platform, "platform", "p", "", "Platform to build: android, ios or all")
	f.StringVar(&opts.CredentialsSource, "credentials-source", "auto",
		"Where signing credentials come from: local, remote or auto")
	f.BoolVar(&opts.SkipCredentialsCheck, "skip-credentials-check", false,
		"Skip validation of local signing credentials")
	f.BoolVar(&opts.NoWait, "no-wait", false, "Exit after submitting instead of waiting for the builds")
	f.BoolVar(&opts.NonInteractive, "non-interactive", false, "Never prompt for input")
	f.BoolVar(&opts.ClearCredentials, "clear-credentials", false,
		"Remove the credentials stored on the build service before building")
	f.StringVar(&opts.ArchiveURL, "archive-url", "", "URL of an already uploaded project archive")
	f.StringVar(&opts.BuildCommand, "build-command", "", "Gradle command for generic Android projects")
	f.StringVar(&opts.ArtifactPath, "artifact-path", "", "Artifact path for generic Android projects")
	f.StringVarP(&opts.BuildType, "build-type", "t", "", "Build type: apk, app-bundle, archive or simulator")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build:status [project-dir]",
		Short: "Show the status of the project's builds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Status(cmd.Context(), projectDirArg(args))
		},
	}
}
