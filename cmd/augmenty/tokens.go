package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/render"
)

var tokensCommand = &cli.Command{
	Name:      "tokens",
	Usage:     "print the token table of a document",
	ArgsUsage: "<docId>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "corpus directory",
			Value: "./corpus/token/",
		},
	},
	Action: runTokens,
}

func runTokens(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("usage: tokens <docId>")
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("doc id must be an integer: %s", c.Args().First())
	}

	docs, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return err
	}

	doc, err := docs.Read(id)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.W = c.App.Writer
	r.Format = "tokens"
	r.Doc(doc, "")

	return nil
}
