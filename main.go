package main

import (
	"os"

	"github.com/crillab/knights/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
