package main

import (
	"os"

	"voice-skill/cmd/invoke/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
