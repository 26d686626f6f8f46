package xorshift

import "fmt"

// CopyMode selects whether a Generator hands out its internal output buffer or an independent slice.
type CopyMode uint8

const (
	// View returns a slice of the generator's internal buffer. The buffer is reused: the next
	// draw of the same element type overwrites the values of the previous one, and slices
	// returned by both calls alias the same memory. Use it for values that are consumed
	// immediately; it avoids an allocation per call.
	View CopyMode = iota
	// Copy returns a newly allocated slice for every call. Returned slices never alias.
	Copy
)

func (m CopyMode) String() string {
	switch m {
	case View:
		return "view"
	case Copy:
		return "copy"
	}
	return fmt.Sprintf("CopyMode(%d)", uint8(m))
}

// buffer manages the output storage of one element type.
// In View mode the storage only grows: a request for n elements reuses the first n elements
// of the current storage if it is large enough and reallocates to exactly n otherwise.
// In Copy mode the storage is never used.
type buffer[T int64 | float64] struct {
	mode CopyMode
	data []T
	last []T
}

// acquire returns a writable slice of exactly n elements.
func (b *buffer[T]) acquire(n int) []T {
	if b.mode == Copy {
		b.last = make([]T, n)
		return b.last
	}
	if n > cap(b.data) {
		b.data = make([]T, n)
	}
	b.last = b.data[:n:n]
	return b.last
}

// present hands the slice filled since the last acquire to the caller: borrowed in View mode,
// owned in Copy mode. The full slice expression in acquire keeps appends by the caller from
// writing into the shared storage.
func (b *buffer[T]) present() []T {
	out := b.last
	if b.mode == Copy {
		b.last = nil
	}
	return out
}

// capacity reports the size of the reusable storage.
func (b *buffer[T]) capacity() int {
	return cap(b.data)
}
