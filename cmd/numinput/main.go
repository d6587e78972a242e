package main

import (
	"os"

	"github.com/govalues/numinput/cmd/numinput/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
