package main

import (
	"os"

	"github.com/mhowell/go-timetrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
