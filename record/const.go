package record

const (
	// ElementMesh is the document's top-level element.
	ElementMesh = "mesh"

	// ElementClass is the element holding one class block.
	ElementClass = "class"

	// ElementGeom is the element holding one geom block.
	ElementGeom = "geom"

	// ElementProvider is the element holding one provider block.
	ElementProvider = "provider"

	// ElementConsumer is the element holding one consumer block.
	ElementConsumer = "consumer"

	// ElementConfig is the element holding a class-specific config block.
	ElementConfig = "config"

	// ElementName is the element holding a record's human-readable name.
	ElementName = "name"

	// ElementRank is the element holding a geom's kernel-declared rank.
	ElementRank = "rank"

	// ElementMode is the element holding an access mode string.
	ElementMode = "mode"

	// ElementMediaSize is the element holding a provider's media size.
	ElementMediaSize = "mediasize"

	// ElementSectorSize is the element holding a provider's sector size.
	ElementSectorSize = "sectorsize"

	// ElementStripeSize is the element holding a provider's stripe size.
	ElementStripeSize = "stripesize"

	// ElementStripeOffset is the element holding a provider's stripe offset.
	ElementStripeOffset = "stripeoffset"

	// AttrID is the attribute carrying a record's own identifier.
	AttrID = "id"

	// AttrRef is the attribute carrying a cross-reference identifier.
	AttrRef = "ref"
)

const (
	// FieldScheme is the partitioning scheme of a [PartTable].
	FieldScheme = "scheme"

	// FieldEntries is the partition entry count of a [PartTable].
	FieldEntries = "entries"

	// FieldFirst is the first allocatable LBA of a [PartTable].
	FieldFirst = "first"

	// FieldLast is the last allocatable LBA of a [PartTable].
	FieldLast = "last"

	// FieldFWSectors is the CHS sector count of a [PartTable] or [DiskInfo].
	FieldFWSectors = "fwsectors"

	// FieldFWHeads is the CHS head count of a [PartTable] or [DiskInfo].
	FieldFWHeads = "fwheads"

	// FieldState is the consistency state of a [PartTable].
	FieldState = "state"

	// FieldModified is the unsaved-modification flag of a [PartTable].
	FieldModified = "modified"

	// FieldRotationRate is the spindle speed of a [DiskInfo]; zero for
	// solid-state devices.
	FieldRotationRate = "rotationrate"

	// FieldIdent is the device identifier (serial number) of a [DiskInfo].
	FieldIdent = "ident"

	// FieldLunID is the logical unit identifier of a [DiskInfo].
	FieldLunID = "lunid"

	// FieldDescr is the device description of a [DiskInfo].
	FieldDescr = "descr"

	// FieldStart is the first LBA of a [Partition] entry.
	FieldStart = "start"

	// FieldEnd is the last LBA of a [Partition] entry.
	FieldEnd = "end"

	// FieldIndex is the table index of a [Partition] or [LabelInfo].
	FieldIndex = "index"

	// FieldType is the canonical type alias of a [Partition] entry.
	FieldType = "type"

	// FieldOffset is the byte offset of a [Partition] or [LabelInfo].
	FieldOffset = "offset"

	// FieldLength is the byte length of a [Partition] or [LabelInfo].
	FieldLength = "length"

	// FieldLabel is the scheme-provided label of a [Partition] entry.
	FieldLabel = "label"

	// FieldRawType is the scheme-specific raw type of a [Partition] entry.
	FieldRawType = "rawtype"

	// FieldRawUUID is the scheme-provided unique id of a [Partition] entry.
	FieldRawUUID = "rawuuid"

	// FieldEFIMedia is the EFI path of a [Partition] entry.
	FieldEFIMedia = "efimedia"

	// FieldSecLength is the sector-denominated length of a [LabelInfo].
	FieldSecLength = "seclength"

	// FieldSecOffset is the sector-denominated offset of a [LabelInfo].
	FieldSecOffset = "secoffset"
)
