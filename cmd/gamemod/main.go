package main

import (
	"os"

	"github.com/roshni-games/gamemod/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
