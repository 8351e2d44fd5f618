package main

import (
	"os"

	"github.com/mkort/geosbridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
