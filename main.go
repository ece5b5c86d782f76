// Package main is the entrypoint for the violin CLI.
package main

import (
	"os"

	"github.com/vizkit/violin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
