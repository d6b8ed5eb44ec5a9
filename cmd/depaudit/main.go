package main

import (
	"os"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
