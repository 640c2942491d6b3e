package main

import (
	"fmt"
	"os"

	"github.com/hostfacts/facter-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
