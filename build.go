package geomesh

import (
	"fmt"

	"github.com/desertwitch/geomesh/record"
)

// buildGraph resolves the flat record collections of one snapshot into a
// validated [Graph]. Identifier indexing, reference resolution, edge
// induction, root detection and rank assignment all happen here; any
// integrity violation rejects the whole snapshot.
func buildGraph(mesh *record.Mesh) (*Graph, error) {
	graph := &Graph{
		geoms:     make(map[GeomID]*Geom, len(mesh.Geoms)),
		providers: make(map[ProviderID]*Provider, len(mesh.Providers)),
		consumers: make(map[ConsumerID]*Consumer, len(mesh.Consumers)),
		edges:     make(map[ConsumerID]*Edge),
		inEdges:   make(map[GeomID][]*Edge),
	}

	if err := indexGeoms(graph, mesh); err != nil {
		return nil, err
	}

	if err := attachProviders(graph, mesh); err != nil {
		return nil, err
	}

	if err := attachConsumers(graph, mesh); err != nil {
		return nil, err
	}

	establishRoots(graph)
	assignRanks(graph)

	return graph, nil
}

// indexGeoms creates the graph's nodes from the geom records, preserving
// document order.
func indexGeoms(graph *Graph, mesh *record.Mesh) error {
	for _, rec := range mesh.Geoms {
		if _, exists := graph.geoms[rec.ID]; exists {
			return &ReferenceError{Kind: record.ElementGeom, Field: record.AttrID, ID: uint64(rec.ID), Err: ErrDuplicateIdentifier}
		}

		graph.geoms[rec.ID] = &Geom{
			ID:    rec.ID,
			Name:  rec.Name,
			Class: rec.Class,
			Meta:  rec.Meta,
		}
		graph.geomOrder = append(graph.geomOrder, rec.ID)
	}

	return nil
}

// attachProviders resolves each provider's owning-geom reference and attaches
// the provider to that geom's provider set, in document order.
func attachProviders(graph *Graph, mesh *record.Mesh) error {
	for _, rec := range mesh.Providers {
		if _, exists := graph.providers[rec.ID]; exists {
			return &ReferenceError{Kind: record.ElementProvider, Field: record.AttrID, ID: uint64(rec.ID), Err: ErrDuplicateIdentifier}
		}

		owner, exists := graph.geoms[rec.GeomID]
		if !exists {
			return &ReferenceError{Kind: record.ElementProvider, Field: record.ElementGeom, ID: uint64(rec.GeomID), Err: ErrBrokenReference}
		}

		graph.providers[rec.ID] = &Provider{
			ID:           rec.ID,
			Geom:         rec.GeomID,
			Name:         rec.Name,
			Mode:         rec.Mode,
			MediaSize:    rec.MediaSize,
			SectorSize:   rec.SectorSize,
			StripeSize:   rec.StripeSize,
			StripeOffset: rec.StripeOffset,
			Meta:         rec.Meta,
		}
		owner.Providers = append(owner.Providers, rec.ID)
	}

	return nil
}

// attachConsumers resolves each consumer's owning-geom and provider
// references, registers attached consumers with their providers and induces
// the directed edge set. Self-loops and access-mode disagreements reject the
// snapshot.
func attachConsumers(graph *Graph, mesh *record.Mesh) error {
	for _, rec := range mesh.Consumers {
		if _, exists := graph.consumers[rec.ID]; exists {
			return &ReferenceError{Kind: record.ElementConsumer, Field: record.AttrID, ID: uint64(rec.ID), Err: ErrDuplicateIdentifier}
		}

		owner, exists := graph.geoms[rec.GeomID]
		if !exists {
			return &ReferenceError{Kind: record.ElementConsumer, Field: record.ElementGeom, ID: uint64(rec.GeomID), Err: ErrBrokenReference}
		}

		consumer := &Consumer{
			ID:       rec.ID,
			Geom:     rec.GeomID,
			Provider: rec.ProviderID,
			Mode:     rec.Mode,
			Meta:     rec.Meta,
		}

		graph.consumers[rec.ID] = consumer
		owner.Consumers = append(owner.Consumers, rec.ID)

		if !consumer.IsAttached() {
			continue
		}

		provider, exists := graph.providers[rec.ProviderID]
		if !exists {
			return &ReferenceError{Kind: record.ElementConsumer, Field: record.ElementProvider, ID: uint64(rec.ProviderID), Err: ErrBrokenReference}
		}

		if provider.Geom == consumer.Geom {
			return &ReferenceError{Kind: record.ElementConsumer, Field: record.ElementProvider, ID: uint64(rec.ProviderID), Err: ErrSelfLoop}
		}

		// Device-node consumers attach idle (r0w0e0); any other consumer is
		// expected to mirror its provider's access counts.
		if provider.Mode != consumer.Mode && !consumer.Mode.IsIdle() {
			return fmt.Errorf("%w: consumer %#x holds %s against provider %s",
				ErrModeMismatch, uint64(rec.ID), consumer.Mode, provider.Mode)
		}

		provider.Consumers = append(provider.Consumers, rec.ID)

		edge := &Edge{
			Consumer:     rec.ID,
			Provider:     provider.ID,
			Parent:       provider.Geom,
			Child:        consumer.Geom,
			Name:         provider.Name,
			Mode:         provider.Mode,
			MediaSize:    provider.MediaSize,
			SectorSize:   provider.SectorSize,
			StripeSize:   provider.StripeSize,
			StripeOffset: provider.StripeOffset,
			Meta:         provider.Meta,
		}

		graph.edges[rec.ID] = edge
		graph.inEdges[consumer.Geom] = append(graph.inEdges[consumer.Geom], edge)
	}

	return nil
}

// establishRoots collects the geoms that are never the child side of any
// induced edge, in document order.
func establishRoots(graph *Graph) {
	for _, id := range graph.geomOrder {
		if len(graph.inEdges[id]) == 0 {
			graph.roots = append(graph.roots, id)
		}
	}
}

// assignRanks walks the induced edges breadth-first from all roots at once,
// assigning each root rank 1 and each newly reached geom its parent's rank
// plus one. The queue is seeded in document order and children are visited in
// provider-then-consumer document order, so ties between multiple parents
// always resolve the same way: the first, smallest rank wins. Geoms no root
// reaches keep rank 0.
func assignRanks(graph *Graph) {
	queue := make([]*Geom, 0, len(graph.roots))

	for _, id := range graph.roots {
		root := graph.geoms[id]
		root.Rank = 1
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		for _, edge := range graph.childEdges(parent) {
			child := graph.geoms[edge.Child]
			if child.Rank != 0 {
				continue
			}

			child.Rank = parent.Rank + 1
			queue = append(queue, child)
		}
	}
}
