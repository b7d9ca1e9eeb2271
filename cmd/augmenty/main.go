package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "augmenty",
		Usage: "structure-preserving entity augmentation for token-annotated corpora",
		Commands: []*cli.Command{
			augmentCommand,
			previewCommand,
			docCommand,
			tokensCommand,
			statCommand,
			importDocCommand,
			exportDocCommand,
			versionCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "augmenty: %v\n", err)
		os.Exit(1)
	}
}
