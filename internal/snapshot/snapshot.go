// Package snapshot persists buffer contents to disk as msgpack payloads.
// The on-disk form is the buffer's little-endian byte expansion plus enough
// metadata to validate a reload: schema version, capacity and element size.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"fixcap/internal/arrayutil"
	"fixcap/internal/buffer"
)

// Increment when the payload format changes.
const schemaVersion uint16 = 1

type payload struct {
	Schema   uint16
	Capacity int64
	ElemSize int64
	Bytes    []byte
}

// Info describes a snapshot without reconstructing a typed buffer.
type Info struct {
	Capacity int
	ElemSize int
	Length   int
	Bytes    []byte
}

// Save writes b's snapshot to path. The write is atomic: a temp file in the
// target directory renamed over the destination.
func Save[T buffer.Element](path string, b *buffer.Buffer[T]) error {
	p := payload{
		Schema:   schemaVersion,
		Capacity: int64(b.Capacity()),
		ElemSize: int64(arrayutil.Size[T]()),
		Bytes:    b.ToBytes().Elems(),
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		f.Close()
		os.Remove(tmp)
	}()
	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load rebuilds a typed buffer from a snapshot written by Save. The stored
// element size must match T exactly; a snapshot of uint16 data cannot be
// reloaded as uint32.
func Load[T buffer.Element](path string) (*buffer.Buffer[T], error) {
	info, err := Read(path)
	if err != nil {
		return nil, err
	}
	if es := arrayutil.Size[T](); info.ElemSize != es {
		return nil, fmt.Errorf("snapshot %s: element size %d does not match requested %d", path, info.ElemSize, es)
	}
	b, rerr := buffer.FromBytes[T](info.Capacity, info.Bytes).Get()
	if rerr != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, rerr)
	}
	return b, nil
}

// Read decodes a snapshot's metadata and raw bytes.
func Read(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return Info{}, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return Info{}, fmt.Errorf("snapshot %s: schema %d, want %d", path, p.Schema, schemaVersion)
	}
	capacity, err := safecast.Conv[int](p.Capacity)
	if err != nil {
		return Info{}, fmt.Errorf("snapshot %s: bad capacity: %w", path, err)
	}
	elemSize, err := safecast.Conv[int](p.ElemSize)
	if err != nil || elemSize <= 0 {
		return Info{}, fmt.Errorf("snapshot %s: bad element size %d", path, p.ElemSize)
	}
	if len(p.Bytes)%elemSize != 0 {
		return Info{}, fmt.Errorf("snapshot %s: %d bytes is not a multiple of element size %d", path, len(p.Bytes), elemSize)
	}
	return Info{
		Capacity: capacity,
		ElemSize: elemSize,
		Length:   len(p.Bytes) / elemSize,
		Bytes:    p.Bytes,
	}, nil
}
