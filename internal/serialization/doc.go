// Package serialization implements the on-disk format for optimizer-state
// snapshots.
//
// A snapshot is a named collection of float32 tensors written little-endian:
//
//	magic "STRD" | format version | entry count
//	per entry: name | shape | row-major float32 data
//	SHA-256 checksum of everything above
//
// Entries are written in sorted name order so identical state always
// produces identical bytes. Readers validate the checksum before returning
// any data; truncated or corrupted files are rejected with sentinel errors.
package serialization
