package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/stride-ml/stride/internal/tensor"
)

const checksumSize = 32

// Read deserializes a tensor collection written by Write.
//
// The checksum trailer is validated before any entry is parsed.
func Read(r io.Reader) (map[string]*tensor.Tensor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if len(raw) < len(magic)+8+checksumSize {
		return nil, ErrTruncated
	}

	payload := raw[:len(raw)-checksumSize]
	var stored [checksumSize]byte
	copy(stored[:], raw[len(raw)-checksumSize:])
	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, err
	}

	d := decoder{buf: payload}
	var m [4]byte
	if err := d.bytes(m[:]); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, ErrInvalidMagic
	}
	version, err := d.uint32()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	count, err := d.uint32()
	if err != nil {
		return nil, err
	}

	tensors := make(map[string]*tensor.Tensor, count)
	for i := uint32(0); i < count; i++ {
		name, t, err := d.entry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		tensors[name] = t
	}
	return tensors, nil
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (map[string]*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// decoder walks the payload with bounds checking; every short read maps to
// ErrTruncated rather than a panic.
type decoder struct {
	buf []byte
	off int
}

func (d *decoder) bytes(dst []byte) error {
	if d.off+len(dst) > len(d.buf) {
		return ErrTruncated
	}
	copy(dst, d.buf[d.off:])
	d.off += len(dst)
	return nil
}

func (d *decoder) uint32() (uint32, error) {
	var b [4]byte
	if err := d.bytes(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (d *decoder) entry() (string, *tensor.Tensor, error) {
	nameLen, err := d.uint32()
	if err != nil {
		return "", nil, err
	}
	name := make([]byte, nameLen)
	if err := d.bytes(name); err != nil {
		return "", nil, err
	}

	ndims, err := d.uint32()
	if err != nil {
		return "", nil, err
	}
	shape := make(tensor.Shape, ndims)
	for i := range shape {
		dim, err := d.uint32()
		if err != nil {
			return "", nil, err
		}
		shape[i] = int(dim)
	}

	data := make([]float32, shape.NumElements())
	for i := range data {
		bits, err := d.uint32()
		if err != nil {
			return "", nil, err
		}
		data[i] = math.Float32frombits(bits)
	}
	t, err := tensor.FromSlice(data, shape)
	if err != nil {
		return "", nil, err
	}
	return string(name), t, nil
}
