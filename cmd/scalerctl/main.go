package main

import (
	"os"

	"github.com/shanakama/smart-auto-scaler/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
