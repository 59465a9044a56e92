package main

import (
	"os"

	"github.com/hueshift/hueshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
