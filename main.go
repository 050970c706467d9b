package main

import (
	"os"

	"github.com/mchawi/sukulu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
