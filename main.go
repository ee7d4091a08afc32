package main

import (
	"os"

	"github.com/chris-regnier/moodctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.Report(os.Stderr, err))
	}
}
