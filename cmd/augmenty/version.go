package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "print the augmenty version",
	Action: func(c *cli.Context) error {
		fmt.Fprintln(c.App.Writer, version)
		return nil
	},
}
