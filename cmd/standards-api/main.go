package main

import (
	"os"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
