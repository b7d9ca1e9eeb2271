package main

import (
	"fmt"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/techthiyanes/augmenty/augment"
	"github.com/techthiyanes/augmenty/config"
	"github.com/techthiyanes/augmenty/render"
	"github.com/techthiyanes/augmenty/storage/filesystem"
	"github.com/techthiyanes/augmenty/token"
)

var previewCommand = &cli.Command{
	Name:  "preview",
	Usage: "interactively preview augmented variants of corpus documents",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "augmenter config file (YAML)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "corpus",
			Usage: "corpus directory",
			Value: "./corpus/token/",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable entity highlighting",
		},
	},
	Action: runPreview,
}

func runPreview(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	rng := cfg.Rand()

	augs, err := cfg.Augmenters(rng)
	if err != nil {
		return err
	}

	docs, err := loadCorpus(c.String("corpus"))
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !c.Bool("no-color")

	h := previewHandler{docs: docs, augs: augs, renderer: r}
	return h.run()
}

type previewHandler struct {
	docs     *filesystem.DocHandler
	augs     []augment.Augmenter
	renderer *render.Renderer
}

func (h *previewHandler) run() error {

	fmt.Println("🔑 Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🎲 ", h.completer(),
			prompt.OptionTitle("augmenty preview"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.renderer.NextFormat()
					fmt.Println("Format set to: " + h.renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		doc, err := h.resolve(strings.TrimSpace(in))
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		h.renderer.Doc(doc, "   ✍  ")

		variants, err := applyAll(h.augs, doc)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		for _, v := range variants {
			h.renderer.Doc(v, "   🎲 ")
		}
	}
}

func (h *previewHandler) resolve(in string) (token.Doc, error) {
	if id, convErr := strconv.Atoi(in); convErr == nil {
		return h.docs.Read(id)
	}

	return h.docs.DocForName(in)
}

func (h *previewHandler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		metas, err := h.docs.List("")
		if err != nil {
			return s
		}

		for _, meta := range metas {
			if strings.HasPrefix(meta.Title, befCursor) {
				s = append(s, prompt.Suggest{Text: meta.Title, Description: fmt.Sprintf("📖 %d", meta.Id)})
			}
		}

		return s
	}
}
