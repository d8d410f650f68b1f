package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mapperkit/pkg/review"
	"github.com/urfave/cli/v3"
)

// checkCmd creates the CLI command that runs the review rules over mapper
// XML files. Findings are printed one per line as
//
//	path:line: [severity] rule: message
//
// and the command fails when any error-severity finding exists, making it
// suitable for CI.
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check mapper XML files for structural problems",
		ArgsUsage: "[paths...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files, err := collectMapperFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			severities := make(map[string]review.Severity, len(currentConfig.Review.Severity))
			for name, severity := range currentConfig.Review.Severity {
				severities[name] = review.ParseSeverity(severity)
			}
			reviewer := review.New(&review.Options{
				Disabled:   currentConfig.Review.Disabled,
				Severities: severities,
			})

			failures := 0
			for _, file := range files {
				root, err := parseMapperFile(file)
				if err != nil {
					return err
				}

				for _, issue := range reviewer.Review(root) {
					fmt.Fprintf(cmd.Writer, "%s:%d: [%s] %s: %s\n",
						file, issue.Line, issue.Severity, issue.Rule, issue.Message)
					if issue.Severity == review.Error {
						failures++
					}
				}
			}

			if failures > 0 {
				return errors.Errorf("found %d error(s)", failures)
			}
			return nil
		},
	}
}
