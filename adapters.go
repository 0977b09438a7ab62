package pretty

import (
	"iter"
	"slices"
	"unsafe"
)

// PairOf holds two components of any types.
type PairOf[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a pair of a and b.
func MakePair[A, B any](a A, b B) PairOf[A, B] {
	return PairOf[A, B]{First: a, Second: b}
}

// Pair implements [Pairer].
func (p PairOf[A, B]) Pair() (any, any) { return p.First, p.Second }

// String renders the pair with the [Default] printer.
func (p PairOf[A, B]) String() string { return Default.String(p) }

// Tuple is a fixed sequence of heterogeneous components. Unlike a plain
// []any it renders with tuple delimiters.
type Tuple []any

// MakeTuple returns a tuple of vs in order.
func MakeTuple(vs ...any) Tuple {
	return Tuple(vs)
}

// Elements implements [Tupler].
func (t Tuple) Elements() []any { return t }

// String renders the tuple with the [Default] printer.
func (t Tuple) String() string { return Default.String(t) }

// Seq is a list view over any sequence of elements.
type Seq[T any] struct {
	seq iter.Seq[T]
}

// All yields the elements in order.
func (s Seq[T]) All() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

// String renders the elements with the [Default] printer.
func (s Seq[T]) String() string { return Default.String(s) }

// Elements wraps an iterator as a list.
func Elements[T any](seq iter.Seq[T]) Seq[T] {
	return Seq[T]{seq: seq}
}

// Values wraps a slice as a list.
func Values[T any](s []T) Seq[T] {
	return Seq[T]{seq: slices.Values(s)}
}

// Array views n consecutive elements starting at ptr as a list. ptr must
// point into memory holding at least n values of T, such as an element of
// an array or slice. A nil ptr or non-positive n is an empty list.
func Array[T any](ptr *T, n int) Seq[T] {
	if ptr == nil || n <= 0 {
		return Seq[T]{}
	}
	return Values(unsafe.Slice(ptr, n))
}

// Bucketed is a hash container that exposes its buckets.
type Bucketed[E any] interface {
	BucketCount() int
	Bucket(i int) iter.Seq[E]
}

// Bucket views bucket i of c as a list. A bucket outside the container
// is empty.
func Bucket[E any](c Bucketed[E], i int) Seq[E] {
	if i < 0 || i >= c.BucketCount() {
		return Seq[E]{}
	}
	return Seq[E]{seq: c.Bucket(i)}
}

// delimited is a value rendered with its own top-level delimiters.
type delimited struct {
	value  any
	delims Delimiters
}

// Delimit wraps v so that it renders with d instead of the configured
// delimiters. Elements of v keep their usual delimiters. Wrapped values of
// different types can be printed together through [fmt] or any [Printer].
func Delimit(v any, d Delimiters) Displayable {
	return delimited{value: v, delims: d}
}

func (d delimited) Display(p *Printer) string { return p.String(d) }

func (d delimited) String() string { return d.Display(Default) }
