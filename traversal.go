package geomesh

import (
	"fmt"
	"iter"
)

// Roots returns the graph's root geoms (zero inbound edges), in document
// order. The returned slice is the caller's to keep.
func (g *Graph) Roots() []*Geom {
	roots := make([]*Geom, 0, len(g.roots))
	for _, id := range g.roots {
		roots = append(roots, g.geoms[id])
	}

	return roots
}

// Geoms returns a lazy sequence over every geom in the snapshot, in document
// order. Rank-0 (unreachable) geoms are included; they are queryable even
// though no root-based traversal emits them.
func (g *Graph) Geoms() iter.Seq[*Geom] {
	return func(yield func(*Geom) bool) {
		for _, id := range g.geomOrder {
			if !yield(g.geoms[id]) {
				return
			}
		}
	}
}

// Descendants returns a lazy pre-order depth-first sequence over the subtree
// rooted at the given geom: first the geom itself (with a nil inducing edge),
// then every geom reachable through induced edges, each paired with the edge
// it was first reached by.
//
// Children are enumerated deterministically, by the parent's provider
// document order and then by consumer document order on shared providers. A
// private visited set guards against re-emitting geoms reachable on multiple
// paths (diamonds) and, defensively, against cycles; every reachable geom is
// yielded exactly once. Re-invoking Descendants restarts the walk; separate
// sequences never share state, so concurrent walks over one graph do not
// interfere.
//
// It fails with [ErrUnknownIdentifier] when no geom has the given identifier.
func (g *Graph) Descendants(rootID GeomID) (iter.Seq2[*Edge, *Geom], error) {
	root, exists := g.geoms[rootID]
	if !exists {
		return nil, fmt.Errorf("%w: geom %#x", ErrUnknownIdentifier, uint64(rootID))
	}

	return func(yield func(*Edge, *Geom) bool) {
		type visit struct {
			edge *Edge
			geom *Geom
		}

		visited := make(map[GeomID]struct{})
		stack := []visit{{edge: nil, geom: root}}

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if _, seen := visited[current.geom.ID]; seen {
				continue
			}
			visited[current.geom.ID] = struct{}{}

			if !yield(current.edge, current.geom) {
				return
			}

			// Children are pushed in reverse so the stack pops them in
			// document order.
			edges := g.childEdges(current.geom)
			for i := len(edges) - 1; i >= 0; i-- {
				stack = append(stack, visit{
					edge: edges[i],
					geom: g.geoms[edges[i].Child],
				})
			}
		}
	}, nil
}

// ChildEdges returns a lazy sequence of the induced edges descending from the
// given geom, each paired with the attached consumer's identifier, in the
// same deterministic order [Graph.Descendants] uses. This inspects a geom's
// immediate children at the edge level (all partitions of a partition table,
// say) without recursing further.
//
// It fails with [ErrUnknownIdentifier] when no geom has the given identifier.
func (g *Graph) ChildEdges(id GeomID) (iter.Seq2[ConsumerID, *Edge], error) {
	geom, exists := g.geoms[id]
	if !exists {
		return nil, fmt.Errorf("%w: geom %#x", ErrUnknownIdentifier, uint64(id))
	}

	return func(yield func(ConsumerID, *Edge) bool) {
		for _, providerID := range geom.Providers {
			for _, consumerID := range g.providers[providerID].Consumers {
				if !yield(consumerID, g.edges[consumerID]) {
					return
				}
			}
		}
	}, nil
}

// childEdges collects a geom's outgoing induced edges in the deterministic
// traversal order: providers in document order, then attached consumers in
// document order within each provider.
func (g *Graph) childEdges(geom *Geom) []*Edge {
	var edges []*Edge

	for _, providerID := range geom.Providers {
		for _, consumerID := range g.providers[providerID].Consumers {
			edges = append(edges, g.edges[consumerID])
		}
	}

	return edges
}
