package main

import (
	"os"

	"github.com/thenoetrevino/tasklane/cmd"
	"github.com/thenoetrevino/tasklane/internal/cli"
)

var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
