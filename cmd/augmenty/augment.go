package main

import (
	"fmt"
	"math/rand"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/augment"
	"github.com/techthiyanes/augmenty/config"
	"github.com/techthiyanes/augmenty/storage/filesystem"
	"github.com/techthiyanes/augmenty/token"
)

var augmentCommand = &cli.Command{
	Name:  "augment",
	Usage: "rewrite a corpus directory, emitting one augmented variant per document",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "augmenter config file (YAML)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "from",
			Usage:    "source corpus directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "target corpus directory",
			Required: true,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for all sampling, overrides the config seed",
		},
		&cli.IntFlag{
			Name:  "variants",
			Usage: "number of augmented variants per document",
			Value: 1,
		},
	},
	Action: runAugment,
}

func runAugment(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	rng := cfg.Rand()
	if c.IsSet("seed") {
		rng = rand.New(rand.NewSource(c.Int64("seed")))
	}

	augs, err := cfg.Augmenters(rng)
	if err != nil {
		return err
	}

	src, err := loadCorpus(c.String("from"))
	if err != nil {
		return err
	}

	dst, err := filesystem.NewDocHandler(c.String("to"))
	if err != nil {
		return err
	}

	metas, err := src.List("")
	if err != nil {
		return err
	}

	variants := c.Int("variants")

	uiprogress.Start()
	bar := uiprogress.AddBar(len(metas))
	bar.AppendCompleted()
	bar.PrependElapsed()

	written := 0
	for _, meta := range metas {
		doc, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return err
		}

		for v := 0; v < variants; v++ {
			out, err := applyAll(augs, doc)
			if err != nil {
				uiprogress.Stop()
				return fmt.Errorf("doc %s: %w", doc.Title, err)
			}

			for _, aug := range out {
				aug.Title = fmt.Sprintf("%s_aug%d", doc.Title, v)
				if err := dst.Write(aug); err != nil {
					uiprogress.Stop()
					return err
				}
				written++
			}
		}

		bar.Incr()
	}

	uiprogress.Stop()

	fmt.Fprintf(c.App.Writer, "Wrote %d augmented docs to %s\n", written, c.String("to"))
	return nil
}

// applyAll chains the configured engines: the output of one is the
// input of the next. Every engine yields exactly one variant.
func applyAll(augs []augment.Augmenter, doc token.Doc) ([]token.Doc, error) {
	docs := []token.Doc{doc}

	for _, a := range augs {
		var next []token.Doc
		for _, d := range docs {
			out, err := a.Augment(d)
			if err != nil {
				return nil, err
			}

			next = append(next, out...)
		}

		docs = next
	}

	return docs, nil
}
