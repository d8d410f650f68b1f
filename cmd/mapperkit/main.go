package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pseudomuto/mapperkit/pkg/cmd"
	"github.com/urfave/cli/v3"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version)
		fmt.Fprintln(cmd.Writer, "Commit:", commit)
		fmt.Fprintln(cmd.Writer, "Date:", date)
	}

	if err := cmd.Root(version).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
