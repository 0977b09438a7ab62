package pretty

import "fmt"

// Category is the rendering rule a value is classified into.
type Category int

const (
	CategoryScalar Category = iota
	CategoryText
	CategoryPair
	CategoryTuple
	CategoryIterable
)

var categoryNames = [...]string{
	CategoryScalar:   "scalar",
	CategoryText:     "text",
	CategoryPair:     "pair",
	CategoryTuple:    "tuple",
	CategoryIterable: "iterable",
}

// String returns the category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Kind refines a category into the aggregate shape used for delimiter
// lookup. Lists and sets are both [CategoryIterable] but use different
// brackets.
type Kind int

const (
	KindNone  Kind = iota // scalars and text
	KindList              // slices, arrays, iterators
	KindSet               // map[K]struct{} and set-like containers
	KindMap               // maps and iter.Seq2 iterators
	KindEntry             // one key/value element of a map
	KindPair              // standalone pairs
	KindTuple             // tuples and structs
)

var kindNames = [...]string{
	KindNone:  "none",
	KindList:  "list",
	KindSet:   "set",
	KindMap:   "map",
	KindEntry: "entry",
	KindPair:  "pair",
	KindTuple: "tuple",
}

var kinds = []Kind{KindList, KindSet, KindMap, KindEntry, KindPair, KindTuple}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind that carries delimiters.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func (k Kind) valid() bool {
	return k > KindNone && int(k) < len(kindNames)
}

// Delim is an optional delimiter string. The zero Delim is absent and
// emits nothing.
type Delim struct {
	text string
	set  bool
}

// Some returns a present delimiter. Some("") is present but empty.
func Some(s string) Delim { return Delim{text: s, set: true} }

// IsSet reports whether the delimiter is present.
func (d Delim) IsSet() bool { return d.set }

// String returns the delimiter text, or "" when absent.
func (d Delim) String() string { return d.text }

// Delimiters is the prefix, separator and suffix of one aggregate.
type Delimiters struct {
	Prefix    Delim
	Separator Delim
	Suffix    Delim
}

// NewDelimiters returns a triple with all three parts present.
func NewDelimiters(prefix, separator, suffix string) Delimiters {
	return Delimiters{Prefix: Some(prefix), Separator: Some(separator), Suffix: Some(suffix)}
}

var defaultDelimiters = map[Kind]Delimiters{
	KindList:  NewDelimiters("[", ", ", "]"),
	KindSet:   NewDelimiters("{", ", ", "}"),
	KindMap:   NewDelimiters("[", ", ", "]"),
	KindEntry: NewDelimiters("", ": ", ""),
	KindPair:  NewDelimiters("(", ", ", ")"),
	KindTuple: NewDelimiters("(", ", ", ")"),
}

// DefaultDelimiters returns the built-in delimiters for k. KindNone has
// none.
func DefaultDelimiters(k Kind) Delimiters {
	return defaultDelimiters[k]
}
