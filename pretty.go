package pretty

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDuplicateType = errors.New("delimiters already registered for type")
	ErrUnknownKind   = errors.New("unknown kind")
	ErrInvalidWidth  = errors.New("invalid text width")
)

// --- Capability Interfaces ---

// Texter is displayed as quoted text and never split into elements.
type Texter interface {
	Text() string
}

// Pairer is displayed as a pair of two components.
type Pairer interface {
	Pair() (first, second any)
}

// Tupler is displayed as a fixed, ordered tuple of components.
type Tupler interface {
	Elements() []any
}

// Any value with an All method returning an iter.Seq or iter.Seq2 is
// displayed as an iterable. There is no interface for it because the
// element type varies.

// --- Optional Interfaces ---

// Delimited overrides the default delimiters for every value of its type.
// A printer's [TypeDelimiters] registration still takes precedence.
type Delimited interface {
	Delimiters() Delimiters
}

// Kinder sets the kind an iterable with an All method renders as, such
// as [KindSet] for a set container. Kinds other than list, set and map
// are ignored.
type Kinder interface {
	Kind() Kind
}

// Displayable is a value bound to its own rendering, such as the result
// of [Delimit]. It prints the same through [fmt] and through a [Printer].
type Displayable interface {
	fmt.Stringer
	Display(p *Printer) string
}

// Default is the printer used by the package-level functions.
var Default = MustNew()

// Classify reports which category v is rendered with.
func Classify(v any) Category {
	if d, ok := v.(delimited); ok {
		return Classify(d.value)
	}
	return classify(v).cat
}

// String renders v with the [Default] printer.
func String(v any) string {
	return Default.String(v)
}

// Fprint renders v with the [Default] printer and writes it to w.
func Fprint(w io.Writer, v any) error {
	return Default.Write(w, v)
}

// Fprintln is like [Fprint] but appends a newline.
func Fprintln(w io.Writer, v any) error {
	_, err := io.WriteString(w, Default.String(v)+"\n")
	return err
}

// WriteIter renders each value of seq on its own line as it arrives.
func WriteIter[T any](w io.Writer, seq iter.Seq[T]) error {
	return Default.WriteAll(w, anySeq(seq))
}

// WriteChan renders values from a channel, one per line, until it closes.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	return WriteIter(w, chanToIter(ch))
}
