package serialization

import "errors"

// Sentinel errors returned when reading a snapshot.
var (
	// ErrInvalidMagic indicates the file does not start with the snapshot
	// magic bytes and is not a state snapshot at all.
	ErrInvalidMagic = errors.New("serialization: invalid magic bytes")

	// ErrUnsupportedVersion indicates the snapshot was written by a newer
	// format revision than this reader understands.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrChecksumMismatch indicates the payload does not match its stored
	// checksum; the file is corrupted or was truncated mid-write.
	ErrChecksumMismatch = errors.New("serialization: checksum mismatch")

	// ErrTruncated indicates the file ended before the declared payload.
	ErrTruncated = errors.New("serialization: truncated file")
)
