package buffer

import (
	"fortio.org/safecast"

	"fixcap/internal/arrayutil"
	"fixcap/internal/errdef"
	"fixcap/internal/logsink"
	"fixcap/internal/result"
)

// ToBytes expands the live elements into a new byte buffer with capacity
// Capacity * element size. Each element contributes its little-endian bytes
// contiguously, in element order; the ordering is an interface contract for
// wire and storage consumers. Pure: the source is not modified.
func (b *Buffer[T]) ToBytes() *Buffer[byte] {
	es := arrayutil.Size[T]()
	total := safecast.MustConv[int](int64(b.Capacity()) * int64(es))
	out := New[byte](total).WithSink(b.sink)
	for i := 0; i < b.length; i++ {
		out.length += copy(out.data[out.length:], arrayutil.Bytes(b.data[i]))
	}
	return out
}

// FromBytes rebuilds an element buffer from its little-endian byte
// expansion, the inverse of ToBytes. Fails with ErrOffsetOutOfBounds when
// the byte count is not a whole number of elements and with ErrOverrun when
// the decoded elements exceed capacity.
func FromBytes[T Element](capacity int, data []byte) result.Result[*Buffer[T]] {
	es := arrayutil.Size[T]()
	if len(data)%es != 0 {
		return result.Err[*Buffer[T]](errdef.Newf(ErrOffsetOutOfBounds, "byte length %d is not a multiple of element size %d", len(data), es))
	}
	n := len(data) / es
	if n > capacity {
		return result.Err[*Buffer[T]](errdef.Newf(ErrOverrun, "buffer overrun: %d elements > capacity %d", n, capacity))
	}
	b := New[T](capacity)
	for i := 0; i < n; i++ {
		b.data[i] = arrayutil.FromLE[T](data[i*es : (i+1)*es])
	}
	b.length = n
	return result.Ok(b)
}

// HexDump routes the byte expansion of the live elements to the sink as a
// hex dump, gated by the sink's verbosity. msg, when non-empty, precedes
// the dump. Purely diagnostic.
func (b *Buffer[T]) HexDump(level logsink.Level, msg string) {
	if !b.sink.Enabled(level) {
		return
	}
	dump := logsink.FormatHex(b.ToBytes().Elems())
	if msg != "" {
		dump = msg + "\n" + dump
	}
	b.sink.Emit(level, dump)
}
