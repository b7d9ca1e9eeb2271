package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/stat"
)

var statCommand = &cli.Command{
	Name:  "stat",
	Usage: "print corpus statistics: token counts and entity type distribution",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "corpus directory",
			Value: "./corpus/token/",
		},
	},
	Action: runStat,
}

func runStat(c *cli.Context) error {
	docs, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return err
	}

	metas, err := docs.List("")
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, meta := range metas {
		doc, err := docs.Read(meta.Id)
		if err != nil {
			return err
		}

		hdl.Aggregate(doc)
	}

	stats := hdl.Get()
	fmt.Fprintf(c.App.Writer, "Num docs %d, num sentences %d, num tokens %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumTokens)

	labels := make([]string, 0, len(stats.NumEnts))
	for label := range stats.NumEnts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(c.App.Writer, "%10s %6d\n", label, stats.NumEnts[label])
	}

	return nil
}
