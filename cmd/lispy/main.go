package main

import (
	"os"

	"github.com/xiam/lispy/cmd/lispy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
