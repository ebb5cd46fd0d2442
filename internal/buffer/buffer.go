// Package buffer implements the fixed-capacity container at the heart of
// fixcap: a bounded array with a live-length cursor, no reallocation and no
// panics on fallible paths. Capacity is fixed when a buffer is constructed;
// every capacity or bounds violation is reported through a result value.
//
// Slots at index >= Size hold stale values and are never reachable through
// the public interface. Only the mutation methods below write the cursor.
package buffer

import (
	"fixcap/internal/arrayutil"
	"fixcap/internal/errdef"
	"fixcap/internal/logsink"
	"fixcap/internal/result"
)

// Element re-exports the payload constraint so callers don't need to import
// arrayutil for signatures.
type Element = arrayutil.Element

// Failure taxonomy for the container operations.
var (
	ErrOverrun           = errdef.Register("BUFFER_OVERRUN")
	ErrOffsetOutOfBounds = errdef.Register("OFFSET_OUT_OF_BOUNDS")
	ErrEmpty             = errdef.Register("BUFFER_EMPTY")
)

// CountRest selects "everything remaining after offset" in Copy and
// CopyOver, mirroring their default-argument form.
const CountRest = -1

// Buffer is a fixed-capacity array of T with a live-length cursor.
// Not safe for concurrent use; see the lock package for a wrapper.
type Buffer[T Element] struct {
	data   []T
	length int
	sink   logsink.Sink
}

// New returns an empty buffer with the given fixed capacity. The backing
// storage is allocated once, zeroed, and never regrown. Panics on negative
// capacity: that is a programming error, not a data-dependent failure.
func New[T Element](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic("buffer: negative capacity")
	}
	return &Buffer[T]{data: make([]T, capacity), sink: logsink.Nop{}}
}

// NewFrom returns a buffer seeded with a copy of src. Fails with ErrOverrun
// when src exceeds capacity.
func NewFrom[T Element](capacity int, src []T) result.Result[*Buffer[T]] {
	b := New[T](capacity)
	if v := b.Append(src); v.HasError() {
		return result.Err[*Buffer[T]](v.Err())
	}
	return result.Ok(b)
}

// WithSink injects the diagnostic sink consulted on failures and dumps.
// A nil sink falls back to Nop. Returns the buffer for chaining.
func (b *Buffer[T]) WithSink(s logsink.Sink) *Buffer[T] {
	if s == nil {
		s = logsink.Nop{}
	}
	b.sink = s
	return b
}

// Size returns the count of live elements.
func (b *Buffer[T]) Size() int {
	return b.length
}

// Capacity returns the fixed slot count.
func (b *Buffer[T]) Capacity() int {
	return len(b.data)
}

// Clear resets the cursor without touching storage. Previously live slots
// become unreachable again.
func (b *Buffer[T]) Clear() {
	b.length = 0
}

// Elems returns a copy of the live prefix.
func (b *Buffer[T]) Elems() []T {
	out := make([]T, b.length)
	copy(out, b.data[:b.length])
	return out
}

// Each calls fn for every live element in order until fn returns false.
func (b *Buffer[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < b.length; i++ {
		if !fn(i, b.data[i]) {
			return
		}
	}
}

// At returns the element at index i. Fails with ErrOffsetOutOfBounds for
// any index outside the live prefix; stale slots are never readable.
func (b *Buffer[T]) At(i int) result.Result[T] {
	if i < 0 || i >= b.length {
		return result.Err[T](b.report(errdef.Newf(ErrOffsetOutOfBounds, "index %d outside live range [0,%d)", i, b.length)))
	}
	return result.Ok(b.data[i])
}

// Set overwrites the element at index i within the live prefix.
func (b *Buffer[T]) Set(i int, v T) result.Void {
	if i < 0 || i >= b.length {
		return result.Fail(b.report(errdef.Newf(ErrOffsetOutOfBounds, "index %d outside live range [0,%d)", i, b.length)))
	}
	b.data[i] = v
	return result.OK()
}

// PushBack appends a single element. Fails with ErrOverrun when the buffer
// is full, leaving it unchanged.
func (b *Buffer[T]) PushBack(v T) result.Void {
	if b.length >= len(b.data) {
		return result.Fail(b.report(errdef.Newf(ErrOverrun, "buffer overrun: size %d at capacity", b.length)))
	}
	b.data[b.length] = v
	b.length++
	return result.OK()
}

// PopBack removes and returns the last live element. Fails with ErrEmpty on
// an empty buffer.
func (b *Buffer[T]) PopBack() result.Result[T] {
	if b.length == 0 {
		return result.Err[T](b.report(errdef.New(ErrEmpty, "pop from empty buffer")))
	}
	b.length--
	return result.Ok(b.data[b.length])
}

// Append copies src onto the live tail. All-or-nothing: when src does not
// fit, nothing is written and the buffer is unchanged.
func (b *Buffer[T]) Append(src []T) result.Void {
	if b.length+len(src) > len(b.data) {
		return result.Fail(b.report(errdef.Newf(ErrOverrun, "buffer overrun: %d + %d > capacity %d", b.length, len(src), len(b.data))))
	}
	copy(b.data[b.length:], src)
	b.length += len(src)
	return result.OK()
}

// AppendBuffer appends another buffer's live elements. Appending a buffer
// to itself is allowed; the tail write never reaches the source prefix.
func (b *Buffer[T]) AppendBuffer(other *Buffer[T]) result.Void {
	return b.Append(other.data[:other.length])
}

// Copy copies count elements of from, starting at offset, onto this
// buffer's live tail. count may be CountRest to copy everything after
// offset. Fails with ErrOffsetOutOfBounds when the source range is not
// fully live in from, and with ErrOverrun when the destination lacks room.
// On failure the destination is unchanged.
func (b *Buffer[T]) Copy(from *Buffer[T], offset, count int) result.Void {
	count, err := from.resolveRange(offset, count)
	if err != nil {
		return result.Fail(b.report(err))
	}
	if b.length+count > len(b.data) {
		return result.Fail(b.report(errdef.Newf(ErrOverrun, "buffer overrun: %d + %d > capacity %d", b.length, count, len(b.data))))
	}
	copy(b.data[b.length:], from.data[offset:offset+count])
	b.length += count
	return result.OK()
}

// CopyOver copies count elements of from, starting at offset, into this
// buffer starting at destOffset, overwriting live data. Source and
// destination ranges may overlap within the same buffer; the copy is
// overlap-safe. Writing past the current logical end extends the buffer
// (length becomes destOffset+count); writing within it does not shrink it.
// destOffset may not exceed the current length: that would turn stale slots
// live without ever writing them.
func (b *Buffer[T]) CopyOver(destOffset int, from *Buffer[T], offset, count int) result.Void {
	count, err := from.resolveRange(offset, count)
	if err != nil {
		return result.Fail(b.report(err))
	}
	if destOffset < 0 || destOffset > b.length {
		return result.Fail(b.report(errdef.Newf(ErrOffsetOutOfBounds, "destination offset %d outside live range [0,%d]", destOffset, b.length)))
	}
	if destOffset+count > len(b.data) {
		return result.Fail(b.report(errdef.Newf(ErrOverrun, "buffer overrun: %d + %d > capacity %d", destOffset, count, len(b.data))))
	}
	copy(b.data[destOffset:destOffset+count], from.data[offset:offset+count])
	if destOffset+count > b.length {
		b.length = destOffset + count
	}
	return result.OK()
}

// Take removes the first n elements and returns them as a new buffer with
// capacity n, then compacts the remainder to the front. The source keeps
// its capacity and shrinks by exactly n.
func (b *Buffer[T]) Take(n int) result.Result[*Buffer[T]] {
	if n < 0 || n > b.length {
		return result.Err[*Buffer[T]](b.report(errdef.Newf(ErrOffsetOutOfBounds, "take %d from %d live elements", n, b.length)))
	}
	taken := New[T](n).WithSink(b.sink)
	if v := taken.Copy(b, 0, n); v.HasError() {
		return result.Err[*Buffer[T]](v.Err())
	}
	if rest := b.length - n; rest > 0 {
		if v := b.CopyOver(0, b, n, rest); v.HasError() {
			return result.Err[*Buffer[T]](v.Err())
		}
	}
	b.length -= n
	return result.Ok(taken)
}

// SubBuffer copies the live element range [start, end) into a new buffer
// with capacity end-start. The source is not modified.
func (b *Buffer[T]) SubBuffer(start, end int) result.Result[*Buffer[T]] {
	if start < 0 || start > end || end > b.length {
		return result.Err[*Buffer[T]](b.report(errdef.Newf(ErrOffsetOutOfBounds, "sub-range [%d,%d) outside live range [0,%d)", start, end, b.length)))
	}
	sub := New[T](end - start).WithSink(b.sink)
	if v := sub.Append(b.data[start:end]); v.HasError() {
		return result.Err[*Buffer[T]](v.Err())
	}
	return result.Ok(sub)
}

// resolveRange validates a source range and resolves CountRest.
func (b *Buffer[T]) resolveRange(offset, count int) (int, *errdef.Error) {
	if offset < 0 || offset > b.length {
		return 0, errdef.Newf(ErrOffsetOutOfBounds, "offset out of bounds: %d > %d", offset, b.length)
	}
	if count == CountRest {
		count = b.length - offset
	}
	if count < 0 || offset+count > b.length {
		return 0, errdef.Newf(ErrOffsetOutOfBounds, "range [%d,%d) outside live range [0,%d)", offset, offset+count, b.length)
	}
	return count, nil
}

// report sends a failure to the sink and passes the occurrence through.
func (b *Buffer[T]) report(err *errdef.Error) *errdef.Error {
	if b.sink.Enabled(logsink.LevelError) {
		b.sink.Emit(logsink.LevelError, err.Error())
	}
	return err
}
