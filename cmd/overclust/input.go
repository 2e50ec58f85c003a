package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/overclust/graph"
	"github.com/katalvlaran/overclust/graph6"
)

// forEachGraph feeds every non-blank line of r through the graph6
// decoder and hands the graph to fn together with the raw line.
func forEachGraph(r io.Reader, fn func(line string, g *graph.Graph) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		g, err := graph6.Decode(line)
		if err != nil {
			return err
		}
		if err := fn(line, g); err != nil {
			return err
		}
	}

	return scanner.Err()
}
