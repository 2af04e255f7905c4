package record

import (
	"errors"
	"log/slog"

	"github.com/desertwitch/geomesh/internal/document"
)

// decodeClass decodes one class block and all geom blocks nested in it,
// appending the resulting records to the mesh.
func decodeClass(mesh *Mesh, element *document.Element) error {
	rawID, classID, err := decodeOwnID(element)
	if err != nil {
		return newDecodeError(ElementClass, rawID, err)
	}

	name, exists := element.ChildText(ElementName)
	if !exists {
		return newDecodeError(ElementClass, rawID, &fieldError{name: ElementName, err: ErrFieldMissing})
	}

	class := Class(name)
	if !class.Known() {
		slog.Debug("Unrecognized GEOM class, decoding config blocks verbatim.",
			"class", name,
		)
	}

	mesh.Classes = append(mesh.Classes, ClassRecord{
		ID:   ClassID(classID),
		Name: class,
	})

	for _, geomElement := range element.ChildrenByTag(ElementGeom) {
		if err := decodeGeom(mesh, ClassID(classID), class, geomElement); err != nil {
			return err
		}
	}

	return nil
}

// decodeGeom decodes one geom block and the provider and consumer blocks
// nested in it.
func decodeGeom(mesh *Mesh, classID ClassID, class Class, element *document.Element) error {
	rawID, geomID, err := decodeOwnID(element)
	if err != nil {
		return newDecodeError(ElementGeom, rawID, err)
	}

	name, exists := element.ChildText(ElementName)
	if !exists {
		return newDecodeError(ElementGeom, rawID, &fieldError{name: ElementName, err: ErrFieldMissing})
	}

	rank, err := requireChildUint(element, ElementRank)
	if err != nil {
		return newDecodeError(ElementGeom, rawID, err)
	}

	meta, err := decodeConfig(class, registry[class].geom, element)
	if err != nil {
		return newDecodeError(ElementGeom, rawID, err)
	}

	geom := GeomRecord{
		ID:           GeomID(geomID),
		ClassID:      classID,
		Class:        class,
		Name:         name,
		DeclaredRank: rank,
		Meta:         meta,
	}

	for _, providerElement := range element.ChildrenByTag(ElementProvider) {
		providerID, err := decodeProvider(mesh, class, providerElement)
		if err != nil {
			return err
		}
		geom.Providers = append(geom.Providers, providerID)
	}

	for _, consumerElement := range element.ChildrenByTag(ElementConsumer) {
		consumerID, err := decodeConsumer(mesh, class, consumerElement)
		if err != nil {
			return err
		}
		geom.Consumers = append(geom.Consumers, consumerID)
	}

	mesh.Geoms = append(mesh.Geoms, geom)

	return nil
}

// decodeProvider decodes one provider block, appending it to the mesh and
// returning its identifier.
func decodeProvider(mesh *Mesh, class Class, element *document.Element) (ProviderID, error) {
	rawID, providerID, err := decodeOwnID(element)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	geomRef, err := requireChildRef(element, ElementGeom)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	name, exists := element.ChildText(ElementName)
	if !exists {
		return 0, newDecodeError(ElementProvider, rawID, &fieldError{name: ElementName, err: ErrFieldMissing})
	}

	mode, err := requireChildMode(element)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	mediaSize, err := requireChildUint(element, ElementMediaSize)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	sectorSize, err := requireChildUint(element, ElementSectorSize)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	stripeSize, err := requireChildUint(element, ElementStripeSize)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	stripeOffset, err := requireChildUint(element, ElementStripeOffset)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	meta, err := decodeConfig(class, registry[class].provider, element)
	if err != nil {
		return 0, newDecodeError(ElementProvider, rawID, err)
	}

	mesh.Providers = append(mesh.Providers, ProviderRecord{
		ID:           ProviderID(providerID),
		GeomID:       GeomID(geomRef),
		Class:        class,
		Name:         name,
		Mode:         mode,
		MediaSize:    mediaSize,
		SectorSize:   sectorSize,
		StripeSize:   stripeSize,
		StripeOffset: stripeOffset,
		Meta:         meta,
	})

	return ProviderID(providerID), nil
}

// decodeConsumer decodes one consumer block, appending it to the mesh and
// returning its identifier. A consumer without a provider reference is legal
// (a detached attachment point) and keeps a zero ProviderID.
func decodeConsumer(mesh *Mesh, class Class, element *document.Element) (ConsumerID, error) {
	rawID, consumerID, err := decodeOwnID(element)
	if err != nil {
		return 0, newDecodeError(ElementConsumer, rawID, err)
	}

	geomRef, err := requireChildRef(element, ElementGeom)
	if err != nil {
		return 0, newDecodeError(ElementConsumer, rawID, err)
	}

	var providerRef uint64
	if element.FirstChild(ElementProvider) != nil {
		providerRef, err = requireChildRef(element, ElementProvider)
		if err != nil {
			return 0, newDecodeError(ElementConsumer, rawID, err)
		}
	}

	mode, err := requireChildMode(element)
	if err != nil {
		return 0, newDecodeError(ElementConsumer, rawID, err)
	}

	// No known class carries a consumer-level schema, so config fields found
	// here are preserved verbatim.
	meta, err := decodeConfig(class, nil, element)
	if err != nil {
		return 0, newDecodeError(ElementConsumer, rawID, err)
	}

	mesh.Consumers = append(mesh.Consumers, ConsumerRecord{
		ID:         ConsumerID(consumerID),
		GeomID:     GeomID(geomRef),
		ProviderID: ProviderID(providerRef),
		Class:      class,
		Mode:       mode,
		Meta:       meta,
	})

	return ConsumerID(consumerID), nil
}

// decodeConfig classifies a record's config block. Recognized classes with a
// schema for this record kind decode into their typed variant; recognized
// classes without one keep non-empty blocks as [Opaque]; unrecognized classes
// always produce [Opaque], preserving the fields verbatim.
func decodeConfig(class Class, decode func([]Field) (Metadata, error), element *document.Element) (Metadata, error) {
	config := element.FirstChild(ElementConfig)
	fields := fieldsOf(config)

	if !class.Known() {
		return &Opaque{Class: class, Fields: fields}, nil
	}

	if decode == nil {
		if len(fields) > 0 {
			return &Opaque{Class: class, Fields: fields}, nil
		}

		return nil, nil //nolint: nilnil
	}

	if config == nil {
		return nil, &fieldError{name: ElementConfig, err: ErrFieldMissing}
	}

	return decode(fields)
}

// fieldsOf flattens a config block into an ordered field list.
func fieldsOf(config *document.Element) []Field {
	if config == nil {
		return nil
	}

	fields := make([]Field, 0, len(config.Children))
	for _, child := range config.Children {
		fields = append(fields, Field{Name: child.Tag, Value: child.Text})
	}

	return fields
}

// decodeOwnID reads and parses a record's own identifier attribute, returning
// both the raw text (for error reporting) and the parsed handle.
func decodeOwnID(element *document.Element) (string, uint64, error) {
	rawID, exists := element.Attr[AttrID]
	if !exists {
		return "", 0, &fieldError{name: AttrID, err: ErrFieldMissing}
	}

	id, err := parseHandle(rawID)
	if err != nil {
		return rawID, 0, &fieldError{name: AttrID, err: err}
	}

	return rawID, id, nil
}

// requireChildRef reads and parses the cross-reference attribute of the named
// child element.
func requireChildRef(element *document.Element, tag string) (uint64, error) {
	child := element.FirstChild(tag)
	if child == nil {
		return 0, &fieldError{name: tag, err: ErrFieldMissing}
	}

	rawRef, exists := child.Attr[AttrRef]
	if !exists {
		return 0, &fieldError{name: tag, err: ErrFieldMissing}
	}

	ref, err := parseHandle(rawRef)
	if err != nil {
		return 0, &fieldError{name: tag, err: err}
	}

	return ref, nil
}

// requireChildUint reads and parses the named child element's text as an
// unsigned integer.
func requireChildUint(element *document.Element, tag string) (uint64, error) {
	raw, exists := element.ChildText(tag)
	if !exists {
		return 0, &fieldError{name: tag, err: ErrFieldMissing}
	}

	value, err := parseUintText(raw)
	if err != nil {
		return 0, &fieldError{name: tag, err: err}
	}

	return value, nil
}

// requireChildMode reads and parses the record's access mode element.
func requireChildMode(element *document.Element) (Mode, error) {
	raw, exists := element.ChildText(ElementMode)
	if !exists {
		return Mode{}, &fieldError{name: ElementMode, err: ErrFieldMissing}
	}

	mode, err := ParseMode(raw)
	if err != nil {
		return Mode{}, &fieldError{name: ElementMode, err: err}
	}

	return mode, nil
}

// newDecodeError wraps a decode failure into a [*DecodeError], lifting the
// failing field's name out of the cause when one is attached.
func newDecodeError(kind string, rawID string, err error) error {
	var fieldErr *fieldError
	if errors.As(err, &fieldErr) {
		return &DecodeError{Kind: kind, ID: rawID, Field: fieldErr.name, Err: fieldErr.err}
	}

	return &DecodeError{Kind: kind, ID: rawID, Err: err}
}
