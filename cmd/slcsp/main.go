package main

import (
	"os"

	"slcsp/cmd/slcsp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
