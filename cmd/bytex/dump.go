package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bytex/log"
)

// readFiles reads all files concurrently. Contents are returned in the same
// order as paths.
func readFiles(paths []string) ([][]byte, error) {
	contents := make([][]byte, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("dump: %w", err)
			}
			log.ModCLI.DebugZ("read file").
				String("path", path).
				Int("size", len(buf)).
				End()
			contents[i] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func dumpFiles(p *printer, paths []string, width int, offsets bool) error {
	if width < 1 {
		return fmt.Errorf("dump: invalid width %d", width)
	}

	contents, err := readFiles(paths)
	if err != nil {
		return err
	}

	for i, data := range contents {
		if !p.json && len(paths) > 1 {
			if _, err := fmt.Fprintf(p.w, "%s:\n", paths[i]); err != nil {
				return err
			}
		}
		for off := 0; off < len(data); off += width {
			end := min(off+width, len(data))
			if err := p.dumpLine(paths[i], off, data[off:end], offsets); err != nil {
				return err
			}
		}
	}
	return nil
}
