package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/stride-ml/stride/internal/tensor"
)

var magic = [4]byte{'S', 'T', 'R', 'D'}

// formatVersion is the current snapshot format revision.
const formatVersion uint32 = 1

// Write serializes a named tensor collection to w.
//
// The payload is assembled in memory first so the checksum can cover it;
// snapshots are optimizer state, small relative to model weights, so
// buffering is not a concern.
func Write(w io.Writer, tensors map[string]*tensor.Tensor) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.Write(magic[:])
	writeUint32(&buf, formatVersion)
	writeUint32(&buf, uint32(len(names)))

	for _, name := range names {
		t := tensors[name]
		writeUint32(&buf, uint32(len(name)))
		buf.WriteString(name)

		shape := t.Shape()
		writeUint32(&buf, uint32(len(shape)))
		for _, dim := range shape {
			writeUint32(&buf, uint32(dim))
		}
		for _, v := range t.Data() {
			writeUint32(&buf, math.Float32bits(v))
		}
	}

	checksum := ComputeChecksum(buf.Bytes())
	buf.Write(checksum[:])

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// SaveFile writes a snapshot to path, replacing any existing file.
//
// The snapshot is written to a temporary file and renamed into place so a
// crash mid-write never leaves a half-written snapshot at path.
func SaveFile(path string, tensors map[string]*tensor.Tensor) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := Write(tmp, tensors); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing snapshot file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot file: %w", err)
	}
	return nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
