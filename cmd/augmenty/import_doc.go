package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/storage/sqlite/zombiezen"
)

var importDocCommand = &cli.Command{
	Name:  "import-doc",
	Usage: "import a JSON corpus directory into a SQLite database",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "source corpus directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "target SQLite database file",
			Required: true,
		},
	},
	Action: runImportDoc,
}

func runImportDoc(c *cli.Context) error {
	src, err := loadCorpus(c.String("from"))
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(c.String("to"))
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateDocTables(pool); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	dst := zombiezen.NewDocHandler(pool)

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

	fmt.Fprintf(c.App.Writer, "Imported %d docs into %s\n", len(metas), c.String("to"))
	return nil
}
