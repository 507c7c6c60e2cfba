package main

import (
	"os"

	"github.com/secmon-lab/runboard/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
