package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/render"
	"github.com/techthiyanes/augmenty/token"
)

var docCommand = &cli.Command{
	Name:      "doc",
	Usage:     "list corpus documents, or print one by id or title",
	ArgsUsage: "[id|title]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "corpus directory",
			Value: "./corpus/token/",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: text, tokens, iob, json",
			Value: render.Defaultformat,
		},
		&cli.StringFlag{
			Name:  "label",
			Usage: "only list docs with a label containing this string",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable entity highlighting",
		},
	},
	Action: runDoc,
}

func runDoc(c *cli.Context) error {
	docs, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return err
	}

	first := c.Args().First()

	if first == "" {
		metas, err := docs.List(c.String("label"))
		if err != nil {
			return err
		}

		for _, meta := range metas {
			fmt.Fprintf(c.App.Writer, "📖 %d %s \n", meta.Id, meta.Title)
		}

		return nil
	}

	var doc token.Doc
	if id, convErr := strconv.Atoi(first); convErr == nil {
		doc, err = docs.Read(id)
	} else {
		doc, err = docs.DocForName(first)
	}
	if err != nil {
		return err
	}

	if c.String("format") == "json" {
		return render.NewJSONRenderer(c.App.Writer).Render([]token.Doc{doc})
	}

	r := render.NewRenderer()
	r.W = c.App.Writer
	r.HasColor = !c.Bool("no-color")
	r.Format = c.String("format")
	r.Doc(doc, fmt.Sprintf("✍  %d ", doc.Id))

	return nil
}
