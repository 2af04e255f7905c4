// Package record converts the kernel's GEOM configuration document into flat,
// typed record collections. It resolves each record's class name against a
// static registry of known classes, decoding class-specific config blocks into
// tagged metadata variants; unknown classes degrade to verbatim [Opaque]
// payloads instead of failing. Cross-reference identifiers are parsed but left
// unresolved; resolving them into a graph is the concern of the root package.
package record

import (
	"fmt"

	"github.com/desertwitch/geomesh/internal/document"
)

// ClassID identifies a class record within one document snapshot.
type ClassID uint64

// GeomID identifies a geom record within one document snapshot.
type GeomID uint64

// ProviderID identifies a provider record within one document snapshot.
type ProviderID uint64

// ConsumerID identifies a consumer record within one document snapshot.
type ConsumerID uint64

// Mesh holds the flat, order-preserving record collections decoded from one
// configuration document. All identifiers are document-scoped; they are
// meaningless across snapshots and must never be persisted or compared
// between two [Mesh] values.
type Mesh struct {
	Classes   []ClassRecord
	Geoms     []GeomRecord
	Providers []ProviderRecord
	Consumers []ConsumerRecord
}

// ClassRecord is one decoded class block. Class records are informational
// only; they are not retained in the built graph.
type ClassRecord struct {
	ID   ClassID
	Name Class
}

// GeomRecord is one decoded geom block.
type GeomRecord struct {
	ID      GeomID
	ClassID ClassID
	Class   Class
	Name    string

	// DeclaredRank is the rank the kernel document claims for this geom.
	// It is retained for reference only; the built graph always recomputes
	// ranks from the resolved edge set.
	DeclaredRank uint64

	// Meta carries the decoded geom-level config block, or nil when the
	// class defines no geom-level schema and no config fields are present.
	Meta Metadata

	// Providers and Consumers list the identifiers of the provider and
	// consumer blocks nested under this geom, in document order.
	Providers []ProviderID
	Consumers []ConsumerID
}

// ProviderRecord is one decoded provider block: a resource its owning geom
// exposes for consumption by others.
type ProviderRecord struct {
	ID     ProviderID
	GeomID GeomID
	Class  Class
	Name   string
	Mode   Mode

	MediaSize    uint64
	SectorSize   uint64
	StripeSize   uint64
	StripeOffset uint64

	// Meta carries the decoded provider-level config block, keyed by the
	// owning geom's class.
	Meta Metadata
}

// ConsumerRecord is one decoded consumer block: an attachment the owning geom
// holds to a provider beneath it.
type ConsumerRecord struct {
	ID     ConsumerID
	GeomID GeomID

	// ProviderID is the provider this consumer is attached to, or zero when
	// the consumer is detached.
	ProviderID ProviderID

	Class Class
	Mode  Mode

	// Meta carries the decoded consumer-level config block. No known class
	// defines a consumer schema, so this is an [Opaque] payload whenever
	// fields are present, and nil otherwise.
	Meta Metadata
}

// Parse decodes a raw configuration document into a [Mesh]. Structurally
// invalid input fails with an error wrapping [ErrMalformedDocument]; a single
// undecodable record aborts the whole snapshot with a [*DecodeError], since a
// partial record set would silently misrepresent the topology.
func Parse(data []byte) (*Mesh, error) {
	root, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("(record) failed to parse document: %w", err)
	}

	if root.Tag != ElementMesh {
		return nil, fmt.Errorf("(record) %w: unexpected root element %q", ErrMalformedDocument, root.Tag)
	}

	mesh := &Mesh{}

	for _, classElement := range root.ChildrenByTag(ElementClass) {
		if err := decodeClass(mesh, classElement); err != nil {
			return nil, fmt.Errorf("(record) %w", err)
		}
	}

	return mesh, nil
}
