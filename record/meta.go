package record

// Class is the name of a GEOM class. The set of classes is open: values not
// listed below are legal and decode to [Opaque] metadata.
type Class string

const (
	// ClassFD is the floppy disk class.
	ClassFD Class = "FD"

	// ClassRAID is the software RAID class.
	ClassRAID Class = "RAID"

	// ClassDISK is the physical storage device class (SATA, NVMe, IDE).
	ClassDISK Class = "DISK"

	// ClassDEV is the class constructing character device nodes under /dev.
	ClassDEV Class = "DEV"

	// ClassPART is the partition table class (GPT, MBR and friends).
	ClassPART Class = "PART"

	// ClassLABEL is the aliasing class (disk serials, partition labels).
	ClassLABEL Class = "LABEL"

	// ClassVFS is the mounted filesystem class.
	ClassVFS Class = "VFS"

	// ClassSWAP is the swap space class.
	ClassSWAP Class = "SWAP"

	// ClassFlashmap is the flash partition map class.
	ClassFlashmap Class = "Flashmap"

	// ClassMD is the memory disk (virtual device) class.
	ClassMD Class = "MD"
)

// Known reports whether the class is present in the decode registry.
func (c Class) Known() bool {
	_, exists := registry[c]

	return exists
}

// PartScheme is a partitioning scheme name. Schemes outside the known set are
// stored verbatim rather than rejected.
type PartScheme string

const (
	// SchemeAPM is the Apple Partition Map scheme.
	SchemeAPM PartScheme = "APM"

	// SchemeBSD is the FreeBSD disklabel scheme.
	SchemeBSD PartScheme = "BSD"

	// SchemeBSD64 is the DragonflyBSD disklabel scheme.
	SchemeBSD64 PartScheme = "BSD64"

	// SchemeEBR is the Extended Boot Record scheme.
	SchemeEBR PartScheme = "EBR"

	// SchemeGPT is the GUID Partition Table scheme.
	SchemeGPT PartScheme = "GPT"

	// SchemeLDM is the Logical Disk Manager scheme.
	SchemeLDM PartScheme = "LDM"

	// SchemeMBR is the Master Boot Record scheme.
	SchemeMBR PartScheme = "MBR"

	// SchemeVTOC8 is the Volume Table of Contents scheme.
	SchemeVTOC8 PartScheme = "VTOC8"
)

// Known reports whether the scheme is one of the recognized scheme names.
func (s PartScheme) Known() bool {
	switch s {
	case SchemeAPM, SchemeBSD, SchemeBSD64, SchemeEBR,
		SchemeGPT, SchemeLDM, SchemeMBR, SchemeVTOC8:
		return true
	default:
		return false
	}
}

// PartState is the internal consistency state of a partition table.
type PartState string

const (
	// PartStateOK indicates an internally consistent partition table.
	PartStateOK PartState = "OK"

	// PartStateCorrupt indicates corrupt partition table metadata on the
	// parent geom (for GPT: a damaged primary or secondary header).
	PartStateCorrupt PartState = "CORRUPT"
)

// Field is one verbatim config field of an [Opaque] payload.
type Field struct {
	Name  string
	Value string
}

// Metadata is a class-tagged payload decoded from a config block. The
// concrete type is one of [*PartTable], [*DiskInfo], [*Partition],
// [*LabelInfo] or [*Opaque], depending on the enclosing class and record
// kind.
type Metadata interface {
	// MetadataClass returns the class the payload was decoded for. Opaque
	// payloads return the verbatim, unrecognized class name.
	MetadataClass() Class
}

// PartTable is the geom-level metadata of a [ClassPART] geom: one per
// partition *table* (individual partition entries live on the provider-level
// [Partition] payloads).
type PartTable struct {
	Scheme    PartScheme
	Entries   uint64
	First     uint64
	Last      uint64
	FWSectors uint64
	FWHeads   uint64
	State     PartState
	Modified  bool
}

// MetadataClass implements [Metadata].
func (*PartTable) MetadataClass() Class { return ClassPART }

// DiskInfo is the provider-level metadata of a [ClassDISK] geom.
type DiskInfo struct {
	FWHeads      uint64
	FWSectors    uint64
	RotationRate uint64
	Ident        string
	LunID        string
	Descr        string
}

// MetadataClass implements [Metadata].
func (*DiskInfo) MetadataClass() Class { return ClassDISK }

// Partition is the provider-level metadata of a [ClassPART] geom: one per
// partition entry. Label, RawType, RawUUID and EFIMedia vary by scheme and
// stay empty when the scheme does not provide them.
type Partition struct {
	Start  uint64
	End    uint64
	Index  uint64
	Type   string
	Offset uint64
	Length uint64

	Label    string
	RawType  string
	RawUUID  string
	EFIMedia string
}

// MetadataClass implements [Metadata].
func (*Partition) MetadataClass() Class { return ClassPART }

// LabelInfo is the provider-level metadata of a [ClassLABEL] geom.
type LabelInfo struct {
	Index     uint64
	Offset    uint64
	Length    uint64
	SecLength uint64
	SecOffset uint64
}

// MetadataClass implements [Metadata].
func (*LabelInfo) MetadataClass() Class { return ClassLABEL }

// Opaque preserves the config fields of a class without a registered schema,
// verbatim and in document order. It is the safe fallback that keeps decoding
// open to classes this package has never heard of.
type Opaque struct {
	Class  Class
	Fields []Field
}

// MetadataClass implements [Metadata].
func (o *Opaque) MetadataClass() Class { return o.Class }

// Lookup returns the raw value of the named field and whether it is present.
func (o *Opaque) Lookup(name string) (string, bool) {
	for _, field := range o.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}

	return "", false
}
