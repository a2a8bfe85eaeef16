package main

import (
	"os"

	"github.com/rnjhnd/telecom-plan-visitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
