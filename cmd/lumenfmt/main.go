package main

import (
	"os"

	"github.com/lumen-lang/lumenfmt/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
