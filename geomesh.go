// Package geomesh exposes the FreeBSD storage-topology graph (GEOM), as
// published by the kernel's configuration document, as a typed, immutable and
// traversable in-memory structure.
//
// One call to [Decode] consumes one document snapshot and produces one
// [*Graph]: a forest of geoms connected by induced edges (consumer-provider
// pairs), with roots and ranks computed from the resolved edge set. The graph
// is never mutated after build; it may be shared freely between goroutines,
// and every traversal carries its own private cursor state.
//
// Obtaining the document from a running kernel is the job of [Source]; any
// other origin (a file, a test fixture) works the same way, since the
// pipeline has no ambient state and no notion of a "current" system.
package geomesh

import (
	"fmt"

	"github.com/desertwitch/geomesh/record"
	"github.com/zeebo/blake3"
)

// Decode parses one raw configuration document and builds the topology graph
// for that snapshot.
//
// All build-time failures are fatal to the snapshot: a structurally invalid
// document fails wrapping [ErrMalformedDocument], an undecodable record fails
// with a [*record.DecodeError], and a dangling cross-reference or self-loop
// fails with a [*ReferenceError]. No partial graph is ever returned.
func Decode(data []byte) (*Graph, error) {
	mesh, err := record.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("(geomesh) failed decoding records: %w", err)
	}

	graph, err := buildGraph(mesh)
	if err != nil {
		return nil, fmt.Errorf("(geomesh) failed building graph: %w", err)
	}

	graph.fingerprint = blake3.Sum256(data)

	return graph, nil
}
