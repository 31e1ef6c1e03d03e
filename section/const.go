package section

const (
	// Bit masks of SampleFlag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number and version (bits 4-15)
	MagicFamilyMask  = 0xFF00 // Mask for the format family (bits 8-15)
	VersionMask      = 0x00F0 // Mask for the format version (bits 4-7)

	// Magic numbers (bits 4-15)
	MagicSampleFamily = 0x5A00 // MagicSampleFamily identifies a numsum sample blob of any version.
	MagicSampleV1Opt  = 0x5A10 // MagicSampleV1Opt is the version 1 magic number for sample blobs.

	// SampleVersion is the format version written by this package.
	SampleVersion = 1
)

// offset and section sizes in the blob
const (
	HeaderSize     = 32             // fixed header size in bytes
	NameOffset     = HeaderSize     // byte offset where the sample name starts
	ChecksumOffset = HeaderSize - 8 // byte offset of the checksum field
	MaxNameLength  = 1<<16 - 1      // maximum sample name length in bytes
	MaxValueCount  = 1<<32 - 1      // maximum number of values in one blob
	MaxPayloadSize = 1<<32 - 1      // maximum encoded payload size in bytes
)
