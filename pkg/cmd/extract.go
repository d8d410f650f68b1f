package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mapperkit/pkg/format"
	"github.com/urfave/cli/v3"
)

// extractCmd creates the CLI command that parses mapper XML files and
// emits the SQL statements they embed.
//
// By default extracted SQL is written to stdout, each file preceded by a
// comment naming its source. With -w, a .sql file is written next to each
// mapper file instead (user.xml -> user.sql).
//
// Examples:
//
//	# Extract a single mapper to stdout
//	mapperkit extract mappers/user.xml
//
//	# Extract every mapper under a directory, writing .sql files
//	mapperkit extract -w mappers/
func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract SQL statements from mapper XML files",
		ArgsUsage: "[paths...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write .sql files next to the mapper files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files, err := collectMapperFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			options := &format.Options{
				BindMarker:        currentConfig.Format.BindMarker,
				KeepSubstitutions: currentConfig.Format.KeepSubstitutions,
				Headers:           currentConfig.Format.Headers,
			}
			writeBack := cmd.Bool("write")

			for _, file := range files {
				root, err := parseMapperFile(file)
				if err != nil {
					return err
				}

				var buf bytes.Buffer
				if err := format.Format(&buf, options, root); err != nil {
					return errors.Wrapf(err, "failed to format %s", file)
				}
				if buf.Len() == 0 {
					continue
				}
				buf.WriteString("\n")

				if writeBack {
					out := strings.TrimSuffix(file, ".xml") + ".sql"
					if err := os.WriteFile(out, buf.Bytes(), modeFile); err != nil {
						return errors.Wrapf(err, "failed to write %s", out)
					}
					continue
				}

				fmt.Fprintf(cmd.Writer, "-- %s\n%s", file, buf.String())
			}

			return nil
		},
	}
}
