package main

import (
	"os"

	"tiaforge/cmd/tiaforge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
