package main

import (
	"fmt"
	"os"

	"github.com/desertwitch/geomesh"
)

// fileSource decodes topology snapshots from a document file, as captured
// with e.g. "sysctl -b kern.geom.confxml".
type fileSource struct {
	path string
}

// Graph reads and decodes the document file into a fresh snapshot.
func (s *fileSource) Graph() (*geomesh.Graph, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("(source) failed reading %s: %w", s.path, err)
	}

	return geomesh.Decode(data)
}

// establishSource selects where snapshots come from: a document file when one
// is configured, the running kernel otherwise.
func establishSource(inputFile string) (graphProvider, error) {
	if inputFile != "" {
		return &fileSource{path: inputFile}, nil
	}

	return kernelSource()
}
