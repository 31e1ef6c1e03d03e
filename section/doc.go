// Package section defines the low-level binary structures and constants of
// the sample blob format.
//
// # Blob Structure
//
// A sample blob is a fixed header followed by the sample name and the value payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): options/magic, encoding, compression │
//	│  - NameLength (2 bytes)                                 │
//	│  - Reserved (2 bytes, zero)                             │
//	│  - Count (4 bytes)                                      │
//	│  - PayloadLength (4 bytes)                              │
//	│  - SampleID (8 bytes): xxHash64 of the name             │
//	│  - Checksum (8 bytes): xxHash64 of the rest of the blob │
//	├─────────────────────────────────────────────────────────┤
//	│ Name (NameLength bytes, UTF-8)                          │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadLength bytes)                           │
//	└─────────────────────────────────────────────────────────┘
//
// # Flag Layout
//
// The Options word is always little-endian so a reader can learn the byte
// order of the remaining fields from it:
//
//	bit 1      endianness (0 little, 1 big)
//	bits 0,2,3 reserved, must be zero
//	bits 4-7   format version (1)
//	bits 8-15  format family (0x5A)
//
// The checksum covers header bytes 0-23, the name and the payload in that
// order, so any corruption of the flag, counts, ID, name or payload is detected.
package section
