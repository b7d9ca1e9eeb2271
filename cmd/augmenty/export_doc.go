package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/storage/filesystem"
	"github.com/techthiyanes/augmenty/storage/sqlite/zombiezen"
)

var exportDocCommand = &cli.Command{
	Name:  "export-doc",
	Usage: "export a SQLite corpus database into a JSON directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "source SQLite database file",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "target corpus directory",
			Required: true,
		},
	},
	Action: runExportDoc,
}

func runExportDoc(c *cli.Context) error {
	pool, err := zombiezen.NewPool(c.String("from"))
	if err != nil {
		return err
	}
	defer pool.Close()

	src := zombiezen.NewDocHandler(pool)

	dst, err := filesystem.NewDocHandler(c.String("to"))
	if err != nil {
		return err
	}

	metas, err := src.List("")
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(metas))
	bar.AppendCompleted()
	bar.PrependElapsed()

	for _, meta := range metas {
		doc, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return err
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return err
		}

		bar.Incr()
	}

	uiprogress.Stop()

	fmt.Fprintf(c.App.Writer, "Exported %d docs to %s\n", len(metas), c.String("to"))
	return nil
}
