// Package main is the entry point for the texcomplete CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NikitaCOEUR/texcomplete/internal/cli"
	"github.com/NikitaCOEUR/texcomplete/pkg/version"
	ucli "github.com/urfave/cli/v3"
)

func common(cmd *ucli.Command) cli.CommonParams {
	return cli.CommonParams{
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
	}
}

func main() {
	app := &ucli.Command{
		Name:                  "texcomplete",
		Usage:                 "LaTeX completion word lists and editor session core",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); overrides the config file",
				Sources: ucli.EnvVars("TEXCOMPLETE_LOG_LEVEL"),
			},
			&ucli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (default: first config.{yml,yaml,toml,json} in the config dir)",
				Sources: ucli.EnvVars("TEXCOMPLETE_CONFIG"),
			},
		},
		Commands: []*ucli.Command{
			{
				Name:  "list",
				Usage: "Print every completion entry in catalog order",
				Flags: []ucli.Flag{
					&ucli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format (text, json, yaml)",
					},
					&ucli.BoolFlag{
						Name:  "sources",
						Usage: "Prefix each token with the word list it came from (text format)",
					},
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					return cli.List(cli.ListParams{
						CommonParams: common(cmd),
						Format:       cmd.String("format"),
						WithSources:  cmd.Bool("sources"),
					})
				},
			},
			{
				Name:      "complete",
				Usage:     "Print the completions offered for a prefix",
				ArgsUsage: "<prefix>",
				Flags: []ucli.Flag{
					&ucli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of completions (0 for all)",
					},
					&ucli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format (text, json, yaml)",
					},
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					if cmd.Args().Len() > 1 {
						return fmt.Errorf("expected at most one prefix, got %d", cmd.Args().Len())
					}
					return cli.Complete(cli.CompleteParams{
						CommonParams: common(cmd),
						Prefix:       cmd.Args().First(),
						Limit:        int(cmd.Int("limit")),
						Format:       cmd.String("format"),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show settings and what each word list contributed",
				Action: func(_ context.Context, cmd *ucli.Command) error {
					return cli.Status(common(cmd))
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a texcomplete config file",
				ArgsUsage: "[file]",
				Action: func(_ context.Context, cmd *ucli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						path = cmd.String("config")
					}
					return cli.Validate(path, nil)
				},
			},
			{
				Name:  "schema",
				Usage: "Display or export the JSON Schema for config files",
				Flags: []ucli.Flag{
					&ucli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write schema to file instead of stdout",
					},
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					return cli.Schema(cmd.String("output"), nil)
				},
			},
			{
				Name:  "init",
				Usage: "Write the default settings to a config file",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: func(_ context.Context, cmd *ucli.Command) error {
					return cli.Init(cmd.String("config"), cmd.Bool("force"), nil)
				},
			},
			{
				Name:  "welcome",
				Usage: "Print the welcome document a new session starts with",
				Action: func(_ context.Context, cmd *ucli.Command) error {
					return cli.Welcome(common(cmd))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
