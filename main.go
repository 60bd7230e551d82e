package main

import (
	"os"

	"github.com/historyquest/historyquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
