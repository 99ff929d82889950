package main

import (
	"os"

	"github.com/iburimskiy/breathe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
