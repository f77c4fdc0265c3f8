package main

import (
	"fmt"
	"os"

	"github.com/danieljhkim/zktree/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		cli.PrintError(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}
