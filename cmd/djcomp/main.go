// Package main is the entry point for the djcomp CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	djcli "github.com/djcomp/djcomp/internal/cli"
	"github.com/djcomp/djcomp/internal/emit"
	"github.com/djcomp/djcomp/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:                  "djcomp",
		Usage:                 "Shell completion generator for Django management commands",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("DJCOMP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate a completion script for a shell",
				ArgsUsage: "<shell>",
				Description: fmt.Sprintf("Supported shells: %v.\n\n"+
					"Commands are discovered from a .djcomp manifest when the project has one,\n"+
					"otherwise by introspecting manage.py through the project's Python interpreter.", emit.Shells()),
				Flags: append(providerFlags(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to django_completion.sh or django_completion.ps1)",
					},
					&cli.BoolFlag{
						Name:  "sorted",
						Usage: "Sort commands alphabetically instead of keeping provider order",
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("exactly one shell argument required (supported: %v)", emit.Shells())
					}
					return djcli.Generate(djcli.GenerateParams{
						Shell:    cmd.Args().Get(0),
						Output:   cmd.String("output"),
						Sorted:   cmd.Bool("sorted"),
						LogLevel: cmd.String("log-level"),
						Provider: providerOptions(cmd),
					})
				},
			},
			{
				Name:  "list",
				Usage: "List discovered management commands and their arguments",
				Flags: append(providerFlags(),
					&cli.BoolFlag{
						Name:  "sorted",
						Usage: "Sort commands alphabetically",
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return djcli.List(djcli.ListParams{
						Sorted:   cmd.Bool("sorted"),
						LogLevel: cmd.String("log-level"),
						Provider: providerOptions(cmd),
					})
				},
			},
			{
				Name:  "dump",
				Usage: "Dump discovered commands as a manifest (bootstrap for .djcomp files)",
				Flags: append(providerFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "yaml",
						Usage:   "Output format: yaml or json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
					&cli.BoolFlag{
						Name:  "sorted",
						Usage: "Sort commands alphabetically",
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return djcli.Dump(djcli.DumpParams{
						Format:   cmd.String("format"),
						Output:   cmd.String("output"),
						Sorted:   cmd.Bool("sorted"),
						LogLevel: cmd.String("log-level"),
						Provider: providerOptions(cmd),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a djcomp command manifest",
				ArgsUsage: "[manifest-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					manifestPath := ""
					if cmd.Args().Len() > 0 {
						manifestPath = cmd.Args().Get(0)
					}
					return djcli.Validate(manifestPath)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for djcomp manifests",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return djcli.Schema(outputPath)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// providerFlags returns the flags shared by every command that runs a
// discovery pass.
func providerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "project",
			Aliases: []string{"p"},
			Value:   ".",
			Usage:   "Django project directory",
		},
		&cli.StringFlag{
			Name:  "manifest",
			Usage: "Command manifest file to use instead of introspecting the project",
		},
		&cli.StringFlag{
			Name:    "python",
			Usage:   "Python interpreter used for introspection",
			Sources: cli.EnvVars("DJCOMP_PYTHON"),
		},
		&cli.StringFlag{
			Name:    "settings",
			Usage:   "DJANGO_SETTINGS_MODULE for introspection",
			Sources: cli.EnvVars("DJANGO_SETTINGS_MODULE"),
		},
	}
}

// providerOptions extracts the provider flags from a command invocation.
func providerOptions(cmd *cli.Command) djcli.ProviderOptions {
	return djcli.ProviderOptions{
		ProjectDir:   cmd.String("project"),
		ManifestPath: cmd.String("manifest"),
		Python:       cmd.String("python"),
		Settings:     cmd.String("settings"),
	}
}
