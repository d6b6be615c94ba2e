// Package main is the entry point for the tamprogen CLI.
package main

import (
	"os"

	"github.com/f3rmion/tamprogen/cmd/tamprogen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
