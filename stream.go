package pretty

import (
	"io"
	"iter"
)

// WriteAll renders each value of seq on its own line. Values are written
// as they arrive, so a slow producer is visible line by line. Iteration
// stops at the first write error.
func (p *Printer) WriteAll(w io.Writer, seq iter.Seq[any]) error {
	var streamErr error
	seq(func(item any) bool {
		if _, err := io.WriteString(w, p.String(item)+"\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

func anySeq[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for item := range seq {
			if !yield(item) {
				return
			}
		}
	}
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
