// Package lock defines the serialization capability the containers may be
// wrapped with. The containers never lock on their own; an embedding system
// that shares a buffer across goroutines chooses a Locker and wraps access
// through Guarded.
package lock

import (
	"sync"

	"fixcap/internal/buffer"
)

// Locker serializes access to a shared resource.
type Locker interface {
	Acquire()
	Release()
}

// Nop is the single-goroutine default: no serialization at all.
type Nop struct{}

func (Nop) Acquire() {}
func (Nop) Release() {}

// Mutex adapts sync.Mutex to the Locker contract.
type Mutex struct {
	mu sync.Mutex
}

func (m *Mutex) Acquire() { m.mu.Lock() }
func (m *Mutex) Release() { m.mu.Unlock() }

// Guarded couples a buffer with a Locker. All access goes through With so
// the lock is held for the whole operation sequence, not per call.
type Guarded[T buffer.Element] struct {
	l   Locker
	buf *buffer.Buffer[T]
}

// NewGuarded wraps buf with l. A nil Locker means Nop.
func NewGuarded[T buffer.Element](l Locker, buf *buffer.Buffer[T]) *Guarded[T] {
	if l == nil {
		l = Nop{}
	}
	return &Guarded[T]{l: l, buf: buf}
}

// With runs fn with the lock held.
func (g *Guarded[T]) With(fn func(b *buffer.Buffer[T])) {
	g.l.Acquire()
	defer g.l.Release()
	fn(g.buf)
}
