package main

import (
	"os"

	"github.com/procureiq/procureiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
