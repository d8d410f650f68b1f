package cmd

import (
	"context"
	"os"

	"github.com/pseudomuto/mapperkit/pkg/config"
	"github.com/urfave/cli/v3"
)

// currentConfig holds the project configuration for the running command.
// It is set before any subcommand action runs.
var currentConfig = config.Default()

// Root creates the top-level mapperkit CLI command with the given version
// string. The --config flag names the project config file; when the file
// does not exist the built-in defaults are used.
func Root(version string) *cli.Command {
	return &cli.Command{
		Name:  "mapperkit",
		Usage: "A tool for analyzing MyBatis mapper XML files",
		Description: `mapperkit parses MyBatis mapper XML files into an AST and uses it to
extract the embedded SQL statements and to check mappers for structural
problems such as injection-prone ${...} substitutions.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the mapperkit config file",
				Sources: cli.EnvVars("MAPPERKIT_CONFIG"),
				Value:   "mapperkit.yaml",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")
			if _, err := os.Stat(path); err != nil {
				// No config file is fine; commands run with defaults.
				return ctx, nil
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}
			currentConfig = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			extractCmd(),
			checkCmd(),
		},
	}
}
