// Package arrayutil holds the element/byte conversion primitives shared by
// the containers plus small deterministic array generators for tests and
// tooling. Byte order is little-endian throughout: each element's bytes are
// emitted low byte first, elements in order.
package arrayutil

import (
	"math/rand"
	"unsafe"

	"fortio.org/safecast"
)

// Element constrains container payloads to fixed-width integer types, the
// only types with a defined byte expansion.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Size returns the byte width of T.
func Size[T Element]() int {
	var zero T
	return safecast.MustConv[int](unsafe.Sizeof(zero))
}

// Bytes expands a single element into its little-endian byte form.
func Bytes[T Element](v T) []byte {
	n := Size[T]()
	out := make([]byte, n)
	u := uint64(v)
	for i := 0; i < n; i++ {
		out[i] = byte(u >> (8 * i))
	}
	return out
}

// FromLE reassembles an element from exactly Size[T] little-endian bytes.
// Shorter input leaves the high bytes zero; extra bytes are ignored.
func FromLE[T Element](b []byte) T {
	n := Size[T]()
	if len(b) < n {
		n = len(b)
	}
	var u uint64
	for i := 0; i < n; i++ {
		u |= uint64(b[i]) << (8 * i)
	}
	return T(u)
}

// ToBytes expands a whole slice, element order preserved.
func ToBytes[T Element](src []T) []byte {
	es := Size[T]()
	out := make([]byte, 0, len(src)*es)
	for _, v := range src {
		out = append(out, Bytes(v)...)
	}
	return out
}

// Range returns [0, 1, ..., n-1] converted (wrapping) to T.
func Range[T Element](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// Random returns n pseudo-random elements from a fixed seed, for
// reproducible test data.
func Random[T Element](n int, seed int64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Uint64())
	}
	return out
}
