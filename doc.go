// Package pretty renders container-like values as readable text.
//
// A value is classified into one [Category] and rendered recursively. Each
// aggregate is wrapped in a prefix and suffix and its elements are joined by
// a separator:
//
//	pretty.String([]int{0, 1, 2})                 // [0, 1, 2]
//	pretty.String(map[string]struct{}{"a": {}})   // {"a"}
//	pretty.String(map[int]string{42: "answer"})   // [42: "answer"]
//	pretty.String(pretty.MakePair(42, "answer"))  // (42, "answer")
//	pretty.String(pretty.MakeTuple(1, "22", 5))   // (1, "22", 5)
//	pretty.String("hello")                        // "hello"
//
// # Classification
//
// Classification is structural. Declared capabilities are checked first, in
// this order:
//
//   - [Texter] → text
//   - [Pairer] → pair
//   - [Tupler] → tuple
//   - an All method returning an iter.Seq (list) or iter.Seq2 (map)
//
// Values of a string kind are always text. Other values implementing error
// or [fmt.Stringer] are scalars showing that text. Otherwise the Go shape
// decides: byte slices and arrays are text; a struct whose exported fields
// are First and Second is a pair; a struct with fields but none exported
// is a scalar; any other struct is a tuple of its exported fields; slices,
// arrays, maps and iterator functions are iterables; everything else is a
// scalar printed with %v. Map keys are sorted. A map with struct{} values
// is a set.
//
// Text is quoted but never escaped. Cyclic values are not supported and
// recurse without bound.
//
// # Delimiters
//
// Defaults per [Kind] are returned by [DefaultDelimiters]. They can be
// replaced per kind or per type when building a [Printer]:
//
//	p := pretty.MustNew(
//		pretty.TypeDelimiters[[]float64](pretty.NewDelimiters("|| ", " : ", " ||")),
//		pretty.KindDelimiters(pretty.KindEntry, pretty.NewDelimiters("", " => ", "")),
//	)
//
// A type can also implement [Delimited]. For a single call, [Delimit] wraps
// a value with its own delimiters without touching any configuration:
//
//	fmt.Println(pretty.Delimit(v, pretty.NewDelimiters("<", "; ", ">")))
//
// # Adapters
//
//   - [Array] views a pointer plus a count as a list
//   - [Values] and [Elements] wrap slices and iterators
//   - [Bucket] views one bucket of a [Bucketed] hash container
//   - [HashSet] is a set whose buckets can be inspected
//   - [WriteBuckets] tabulates the bucket distribution
//
// Decoded YAML trees (*yaml.Node from gopkg.in/yaml.v3) render like native
// values: sequences as lists, mappings as maps in document order, !!set as
// sets and typed scalars unquoted.
//
// # Errors
//
// Rendering cannot fail. Writer-based functions return the writer's error.
// [New] reports invalid options with these sentinel errors:
//
//   - [ErrDuplicateType]: a type registered twice
//   - [ErrUnknownKind]: delimiters for a kind that has none
//   - [ErrInvalidWidth]: a negative text width
package pretty
