// Command pyguard lints and fixes Python source files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/a1f/pyguard/internal/cli"
)

// version, commit, and date are set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	rootCmd.SetContext(context.Background())

	err := rootCmd.Execute()
	if err != nil && rootCmd.SilenceErrors {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	return cli.ExitCode(err)
}
