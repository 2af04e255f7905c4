package geomesh

import (
	"fmt"

	"github.com/desertwitch/geomesh/record"
)

// Identifier types are re-exported from [record] for convenience. They are
// kernel-assigned handles, unique within their own namespace and meaningful
// only within the snapshot that produced them.
type (
	// GeomID identifies a [Geom] within one snapshot.
	GeomID = record.GeomID

	// ProviderID identifies a [Provider] within one snapshot.
	ProviderID = record.ProviderID

	// ConsumerID identifies a [Consumer] within one snapshot.
	ConsumerID = record.ConsumerID
)

// Geom is one node of the topology graph: an active instantiation of a GEOM
// class, such as a disk ("DISK"), a partition table ("PART") or a device node
// ("DEV").
type Geom struct {
	ID    GeomID
	Name  string
	Class record.Class

	// Meta is the geom-level class-tagged metadata, or nil when the class
	// carries none at the geom level.
	Meta record.Metadata

	// Providers and Consumers hold the geom's own provider and consumer
	// identifiers, in document order.
	Providers []ProviderID
	Consumers []ConsumerID

	// Rank is the geom's distance from the nearest root, where roots hold
	// rank 1. Geoms unreachable from any root keep rank 0, marking
	// disconnected parts of the topology.
	Rank int
}

// IsRoot reports whether the geom is a root of its tree: a geom that is never
// the child side of any induced edge.
func (g *Geom) IsRoot() bool {
	return g.Rank == 1
}

// Provider is a resource a [Geom] exposes for consumption by geoms above it,
// such as a whole disk ("ada0") or one partition entry ("ada0p1").
type Provider struct {
	ID   ProviderID
	Geom GeomID
	Name string
	Mode record.Mode

	MediaSize    uint64
	SectorSize   uint64
	StripeSize   uint64
	StripeOffset uint64

	// Meta is the provider-level class-tagged metadata, keyed by the owning
	// geom's class.
	Meta record.Metadata

	// Consumers lists the consumers currently attached to this provider, in
	// document order.
	Consumers []ConsumerID
}

// Consumer is an attachment point a [Geom] holds to a [Provider] beneath it.
type Consumer struct {
	ID   ConsumerID
	Geom GeomID

	// Provider is the provider this consumer is attached to, or zero when
	// the consumer is detached.
	Provider ProviderID

	Mode record.Mode
	Meta record.Metadata
}

// IsAttached reports whether the consumer references a provider.
func (c *Consumer) IsAttached() bool {
	return c.Provider != 0
}

// Edge is a derived relationship: a consumer attached to a provider induces a
// directed edge from the provider's owning geom (parent) down to the
// consumer's owning geom (child). The edge carries the provider's payload,
// so inspecting a partition table's children yields per-partition metadata
// without descending further.
type Edge struct {
	Consumer ConsumerID
	Provider ProviderID

	// Parent is the geom owning the provider side of the attachment.
	Parent GeomID

	// Child is the geom owning the consumer side of the attachment.
	Child GeomID

	// Name is established by the provider; for partition tables it names the
	// single partition entry, not the whole table.
	Name string
	Mode record.Mode

	MediaSize    uint64
	SectorSize   uint64
	StripeSize   uint64
	StripeOffset uint64

	// Meta is the provider's class-tagged metadata variant.
	Meta record.Metadata
}

// Graph is one immutable snapshot of the storage topology. All lookups and
// traversals are pure queries; a Graph may be shared between goroutines
// without synchronization.
type Graph struct {
	geoms     map[GeomID]*Geom
	providers map[ProviderID]*Provider
	consumers map[ConsumerID]*Consumer

	// edges maps each attached consumer to the single edge it induces.
	edges map[ConsumerID]*Edge

	// inEdges maps a geom to its inbound edges (parent discovery).
	inEdges map[GeomID][]*Edge

	// geomOrder preserves document order across all classes; every
	// deterministic enumeration is derived from it.
	geomOrder []GeomID

	// roots holds the geoms with zero inbound edges, in document order.
	roots []GeomID

	fingerprint [32]byte
}

// Geom returns the geom with the given identifier, failing with
// [ErrUnknownIdentifier] when no such geom exists.
func (g *Graph) Geom(id GeomID) (*Geom, error) {
	geom, exists := g.geoms[id]
	if !exists {
		return nil, fmt.Errorf("%w: geom %#x", ErrUnknownIdentifier, uint64(id))
	}

	return geom, nil
}

// Provider returns the provider with the given identifier, failing with
// [ErrUnknownIdentifier] when no such provider exists.
func (g *Graph) Provider(id ProviderID) (*Provider, error) {
	provider, exists := g.providers[id]
	if !exists {
		return nil, fmt.Errorf("%w: provider %#x", ErrUnknownIdentifier, uint64(id))
	}

	return provider, nil
}

// Consumer returns the consumer with the given identifier, failing with
// [ErrUnknownIdentifier] when no such consumer exists.
func (g *Graph) Consumer(id ConsumerID) (*Consumer, error) {
	consumer, exists := g.consumers[id]
	if !exists {
		return nil, fmt.Errorf("%w: consumer %#x", ErrUnknownIdentifier, uint64(id))
	}

	return consumer, nil
}

// Edge returns the induced edge of the given attached consumer, failing with
// [ErrUnknownIdentifier] when the consumer does not exist or is detached.
func (g *Graph) Edge(id ConsumerID) (*Edge, error) {
	edge, exists := g.edges[id]
	if !exists {
		return nil, fmt.Errorf("%w: edge for consumer %#x", ErrUnknownIdentifier, uint64(id))
	}

	return edge, nil
}

// ParentEdges returns the inbound edges of the given geom (the edges on which
// it is the child side), in document order of their parents' providers. It
// fails with [ErrUnknownIdentifier] when no such geom exists.
func (g *Graph) ParentEdges(id GeomID) ([]*Edge, error) {
	if _, exists := g.geoms[id]; !exists {
		return nil, fmt.Errorf("%w: geom %#x", ErrUnknownIdentifier, uint64(id))
	}

	edges := make([]*Edge, len(g.inEdges[id]))
	copy(edges, g.inEdges[id])

	return edges, nil
}

// GeomCount returns the number of geoms in the snapshot.
func (g *Graph) GeomCount() int {
	return len(g.geoms)
}

// Fingerprint returns a hash of the raw document this snapshot was built
// from. Two reads of an unchanged topology yield equal fingerprints, letting
// callers detect change without comparing graphs. Fingerprints compare raw
// documents, never identifiers, so they remain meaningful across snapshots.
func (g *Graph) Fingerprint() [32]byte {
	return g.fingerprint
}
