package record

// codec bundles the decode rules of a recognized class, one function per
// record kind that carries a class-specific schema. A nil function means the
// class defines no schema for that kind; config fields encountered there are
// preserved as [Opaque] instead.
type codec struct {
	geom     func(fields []Field) (Metadata, error)
	provider func(fields []Field) (Metadata, error)
}

// registry maps recognized class names to their decode rules. The set is open
// by design: class names absent from this map decode to [Opaque] payloads and
// never fail the snapshot. Extending coverage for a new class means adding an
// entry here; the graph builder is untouched by it.
var registry = map[Class]codec{
	ClassFD:       {},
	ClassRAID:     {},
	ClassDISK:     {provider: decodeDiskInfo},
	ClassDEV:      {},
	ClassPART:     {geom: decodePartTable, provider: decodePartition},
	ClassLABEL:    {provider: decodeLabelInfo},
	ClassVFS:      {},
	ClassSWAP:     {},
	ClassFlashmap: {},
	ClassMD:       {},
}

// decodePartTable decodes the geom-level config of a [ClassPART] geom.
func decodePartTable(fields []Field) (Metadata, error) {
	scheme, err := requireString(fields, FieldScheme)
	if err != nil {
		return nil, err
	}

	state, err := requireString(fields, FieldState)
	if err != nil {
		return nil, err
	}

	entries, err := requireUint(fields, FieldEntries)
	if err != nil {
		return nil, err
	}

	first, err := requireUint(fields, FieldFirst)
	if err != nil {
		return nil, err
	}

	last, err := requireUint(fields, FieldLast)
	if err != nil {
		return nil, err
	}

	fwsectors, err := requireUint(fields, FieldFWSectors)
	if err != nil {
		return nil, err
	}

	fwheads, err := requireUint(fields, FieldFWHeads)
	if err != nil {
		return nil, err
	}

	modified, err := requireBool(fields, FieldModified)
	if err != nil {
		return nil, err
	}

	return &PartTable{
		Scheme:    PartScheme(scheme),
		Entries:   entries,
		First:     first,
		Last:      last,
		FWSectors: fwsectors,
		FWHeads:   fwheads,
		State:     PartState(state),
		Modified:  modified,
	}, nil
}

// decodeDiskInfo decodes the provider-level config of a [ClassDISK] geom.
func decodeDiskInfo(fields []Field) (Metadata, error) {
	fwheads, err := requireUint(fields, FieldFWHeads)
	if err != nil {
		return nil, err
	}

	fwsectors, err := requireUint(fields, FieldFWSectors)
	if err != nil {
		return nil, err
	}

	rotationrate, err := requireUint(fields, FieldRotationRate)
	if err != nil {
		return nil, err
	}

	ident, err := requireString(fields, FieldIdent)
	if err != nil {
		return nil, err
	}

	lunid, err := requireString(fields, FieldLunID)
	if err != nil {
		return nil, err
	}

	descr, err := requireString(fields, FieldDescr)
	if err != nil {
		return nil, err
	}

	return &DiskInfo{
		FWHeads:      fwheads,
		FWSectors:    fwsectors,
		RotationRate: rotationrate,
		Ident:        ident,
		LunID:        lunid,
		Descr:        descr,
	}, nil
}

// decodePartition decodes the provider-level config of a [ClassPART] geom:
// one partition entry.
func decodePartition(fields []Field) (Metadata, error) {
	start, err := requireUint(fields, FieldStart)
	if err != nil {
		return nil, err
	}

	end, err := requireUint(fields, FieldEnd)
	if err != nil {
		return nil, err
	}

	index, err := requireUint(fields, FieldIndex)
	if err != nil {
		return nil, err
	}

	partType, err := requireString(fields, FieldType)
	if err != nil {
		return nil, err
	}

	offset, err := requireUint(fields, FieldOffset)
	if err != nil {
		return nil, err
	}

	length, err := requireUint(fields, FieldLength)
	if err != nil {
		return nil, err
	}

	return &Partition{
		Start:  start,
		End:    end,
		Index:  index,
		Type:   partType,
		Offset: offset,
		Length: length,

		// Scheme-dependent fields; absent values stay empty.
		Label:    optionalString(fields, FieldLabel),
		RawType:  optionalString(fields, FieldRawType),
		RawUUID:  optionalString(fields, FieldRawUUID),
		EFIMedia: optionalString(fields, FieldEFIMedia),
	}, nil
}

// decodeLabelInfo decodes the provider-level config of a [ClassLABEL] geom.
func decodeLabelInfo(fields []Field) (Metadata, error) {
	index, err := requireUint(fields, FieldIndex)
	if err != nil {
		return nil, err
	}

	offset, err := requireUint(fields, FieldOffset)
	if err != nil {
		return nil, err
	}

	length, err := requireUint(fields, FieldLength)
	if err != nil {
		return nil, err
	}

	seclength, err := requireUint(fields, FieldSecLength)
	if err != nil {
		return nil, err
	}

	secoffset, err := requireUint(fields, FieldSecOffset)
	if err != nil {
		return nil, err
	}

	return &LabelInfo{
		Index:     index,
		Offset:    offset,
		Length:    length,
		SecLength: seclength,
		SecOffset: secoffset,
	}, nil
}
