package main

import (
	"github.com/gosuri/uiprogress"

	"github.com/techthiyanes/augmenty/storage/filesystem"
)

// loadCorpus opens a JSON doc directory and preloads it with a progress
// bar, one tick per file.
func loadCorpus(dir string) (*filesystem.DocHandler, error) {
	h, err := filesystem.NewDocHandler(dir)
	if err != nil {
		return nil, err
	}

	uiprogress.Start()

	var bar *uiprogress.Bar
	current := ""

	err = h.Load(func(total int, name string) {
		if bar == nil {
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
			// Append doc name to the progress bar
			bar.AppendFunc(func(b *uiprogress.Bar) string {
				return current
			})
		}

		current = name
		bar.Incr()
	})

	uiprogress.Stop()

	if err != nil {
		return nil, err
	}

	return h, nil
}
