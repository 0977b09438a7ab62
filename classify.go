package pretty

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// node is a classified value with its components extracted.
type node struct {
	cat  Category
	kind Kind

	text          string        // scalar and text
	first, second any           // pair
	elems         []any         // tuple
	seq           iter.Seq[any] // iterable

	// src is the value delimiters are looked up for. It is nil for values
	// that never take per-type overrides.
	src any
	// own is the Delimited found on the value or on a pointer to it.
	own Delimited
}

func scalarNode(s string) node { return node{cat: CategoryScalar, text: s} }

func textNode(s string, src any) node { return node{cat: CategoryText, text: s, src: src} }

// entry is one key/value element yielded by a map.
type entry struct {
	key, value any
}

// classify checks capabilities in a fixed order: text, pair, tuple,
// iterable. Declared methods are checked before the builtin Go shape.
func classify(v any) node {
	n := classifyAny(v)
	if n.src != nil && n.own == nil {
		if d, ok := v.(Delimited); ok {
			n.own = d
		}
	}
	return n
}

func classifyAny(v any) node {
	if v == nil {
		return scalarNode("nil")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return scalarNode("nil")
	}

	switch x := v.(type) {
	case entry:
		return node{cat: CategoryPair, kind: KindEntry, first: x.key, second: x.value}
	case yaml.Node:
		return classifyYAML(&x)
	case *yaml.Node:
		return classifyYAML(x)
	case Texter:
		return textNode(x.Text(), v)
	case Pairer:
		first, second := x.Pair()
		return node{cat: CategoryPair, kind: KindPair, first: first, second: second, src: v}
	case Tupler:
		return node{cat: CategoryTuple, kind: KindTuple, elems: x.Elements(), src: v}
	}

	if seq, kind, ok := allMethod(rv); ok {
		if k, ok := v.(Kinder); ok {
			switch k.Kind() {
			case KindList, KindSet, KindMap:
				kind = k.Kind()
			}
		}
		return node{cat: CategoryIterable, kind: kind, seq: seq, src: v}
	}

	// String kinds stay text even with a String method.
	if rv.Kind() == reflect.String {
		return textNode(rv.String(), v)
	}

	switch x := v.(type) {
	case error:
		return scalarNode(x.Error())
	case fmt.Stringer:
		return scalarNode(x.String())
	}

	return classifyValue(rv, v)
}

func classifyValue(rv reflect.Value, v any) node {
	switch rv.Kind() {
	case reflect.Pointer:
		return classify(rv.Elem().Interface())

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return textNode(string(rv.Bytes()), v)
		}
		return node{cat: CategoryIterable, kind: KindList, seq: indexSeq(rv), src: v}

	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			for i := range b {
				b[i] = byte(rv.Index(i).Uint())
			}
			return textNode(string(b), v)
		}
		return node{cat: CategoryIterable, kind: KindList, seq: indexSeq(rv), src: v}

	case reflect.Struct:
		return classifyStruct(rv, v)

	case reflect.Map:
		if isSetMap(rv.Type()) {
			return node{cat: CategoryIterable, kind: KindSet, seq: mapKeySeq(rv), src: v}
		}
		return node{cat: CategoryIterable, kind: KindMap, seq: mapEntrySeq(rv), src: v}

	case reflect.Func:
		if seq, kind, ok := funcSeq(rv); ok {
			return node{cat: CategoryIterable, kind: kind, seq: seq, src: v}
		}
		if rv.IsNil() {
			return scalarNode("nil")
		}

	case reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return scalarNode("nil")
		}
	}
	return scalarNode(fmt.Sprint(v))
}

// classifyStruct treats a struct as a pair when its exported fields are
// exactly First and Second, and as a tuple of its exported fields
// otherwise. A struct with fields but none exported is opaque.
func classifyStruct(rv reflect.Value, v any) node {
	t := rv.Type()
	var names []string
	var fields []any
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		names = append(names, f.Name)
		fields = append(fields, rv.Field(i).Interface())
	}
	if len(fields) == 0 && t.NumField() > 0 {
		return opaqueNode(rv)
	}
	if len(fields) == 2 {
		switch {
		case names[0] == "First" && names[1] == "Second":
			return node{cat: CategoryPair, kind: KindPair, first: fields[0], second: fields[1], src: v}
		case names[0] == "Second" && names[1] == "First":
			return node{cat: CategoryPair, kind: KindPair, first: fields[1], second: fields[0], src: v}
		}
	}
	return node{cat: CategoryTuple, kind: KindTuple, elems: fields, src: v}
}

// opaqueNode renders a struct with hidden state as a scalar. Methods
// declared on the pointer type, such as big.Int's String, are found on a
// copy.
func opaqueNode(rv reflect.Value) node {
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	switch x := ptr.Interface().(type) {
	case error:
		return scalarNode(x.Error())
	case fmt.Stringer:
		return scalarNode(x.String())
	}
	return scalarNode(fmt.Sprint(rv.Interface()))
}

func isSetMap(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func indexSeq(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func mapKeySeq(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, k := range sortedKeys(rv) {
			if !yield(k.Interface()) {
				return
			}
		}
	}
}

func mapEntrySeq(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, k := range sortedKeys(rv) {
			if !yield(entry{key: k.Interface(), value: rv.MapIndex(k).Interface()}) {
				return
			}
		}
	}
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortStableFunc(keys, compareKeys)
	return keys
}

// compareKeys orders map keys the way fmt does for the common key types.
// Other keys fall back to their %v text, which is stable within a run.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(boolRank(a.IsValid()), boolRank(b.IsValid()))
	}
	if a.Type() != b.Type() {
		return strings.Compare(a.Type().String(), b.Type().String())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// seqArity reports whether t is shaped like iter.Seq (1) or iter.Seq2
// (2). Any other type reports 0.
func seqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	switch yield.NumIn() {
	case 1, 2:
		return yield.NumIn()
	default:
		return 0
	}
}

func funcSeq(rv reflect.Value) (iter.Seq[any], Kind, bool) {
	switch seqArity(rv.Type()) {
	case 1:
		return func(yield func(any) bool) {
			if rv.IsNil() {
				return
			}
			for v := range rv.Seq() {
				if !yield(v.Interface()) {
					return
				}
			}
		}, KindList, true
	case 2:
		return func(yield func(any) bool) {
			if rv.IsNil() {
				return
			}
			for k, v := range rv.Seq2() {
				if !yield(entry{key: k.Interface(), value: v.Interface()}) {
					return
				}
			}
		}, KindMap, true
	default:
		return nil, KindNone, false
	}
}

// allMethod detects an All method returning an iterator.
func allMethod(rv reflect.Value) (iter.Seq[any], Kind, bool) {
	m := rv.MethodByName("All")
	if !m.IsValid() {
		return nil, KindNone, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || seqArity(mt.Out(0)) == 0 {
		return nil, KindNone, false
	}
	return funcSeq(m.Call(nil)[0])
}
