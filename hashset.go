package pretty

import (
	"hash/maphash"
	"iter"
	"slices"
)

const minBuckets = 8

// HashSet is a set with separate chaining whose buckets can be inspected
// through [Bucketed]. It renders with set delimiters. The zero value is
// an empty set ready to use.
type HashSet[E comparable] struct {
	seed    maphash.Seed
	buckets [][]E
	n       int
}

// NewHashSet returns a set holding elems.
func NewHashSet[E comparable](elems ...E) *HashSet[E] {
	s := &HashSet[E]{}
	s.init()
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts e and reports whether it was absent.
func (s *HashSet[E]) Add(e E) bool {
	if s.Contains(e) {
		return false
	}
	s.init()
	if s.n >= len(s.buckets) {
		s.grow()
	}
	i := s.BucketIndex(e)
	s.buckets[i] = append(s.buckets[i], e)
	s.n++
	return true
}

// Contains reports whether e is in the set.
func (s *HashSet[E]) Contains(e E) bool {
	if len(s.buckets) == 0 {
		return false
	}
	return slices.Contains(s.buckets[s.BucketIndex(e)], e)
}

// Len returns the number of elements.
func (s *HashSet[E]) Len() int { return s.n }

// BucketIndex returns the bucket e belongs to.
func (s *HashSet[E]) BucketIndex(e E) int {
	s.init()
	return int(maphash.Comparable(s.seed, e) % uint64(len(s.buckets)))
}

// BucketCount returns the number of buckets.
func (s *HashSet[E]) BucketCount() int { return len(s.buckets) }

// Bucket yields the elements of bucket i in insertion order. A bucket
// outside the set is empty.
func (s *HashSet[E]) Bucket(i int) iter.Seq[E] {
	if i < 0 || i >= len(s.buckets) {
		return func(func(E) bool) {}
	}
	return slices.Values(s.buckets[i])
}

// All yields every element, bucket by bucket.
func (s *HashSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, b := range s.buckets {
			for _, e := range b {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Kind implements [Kinder].
func (s *HashSet[E]) Kind() Kind { return KindSet }

// String renders the set with the [Default] printer.
func (s *HashSet[E]) String() string { return Default.String(s) }

func (s *HashSet[E]) init() {
	if s.buckets == nil {
		s.seed = maphash.MakeSeed()
		s.buckets = make([][]E, minBuckets)
	}
}

func (s *HashSet[E]) grow() {
	old := s.buckets
	s.buckets = make([][]E, 2*len(old))
	for _, b := range old {
		for _, e := range b {
			i := s.BucketIndex(e)
			s.buckets[i] = append(s.buckets[i], e)
		}
	}
}
