// Package main is the entry point for the telugu-corpus CLI.
package main

import (
	"os"

	"github.com/jmylchreest/telugu-corpus/cmd/telugu-corpus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
