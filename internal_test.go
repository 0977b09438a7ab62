package pretty

import (
	"iter"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKind(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		cat  Category
		kind Kind
	}{
		"scalar":   {in: 1, cat: CategoryScalar, kind: KindNone},
		"text":     {in: "a", cat: CategoryText, kind: KindNone},
		"list":     {in: []int{}, cat: CategoryIterable, kind: KindList},
		"set":      {in: map[int]struct{}{}, cat: CategoryIterable, kind: KindSet},
		"map":      {in: map[int]int{}, cat: CategoryIterable, kind: KindMap},
		"entry":    {in: entry{key: 1, value: 2}, cat: CategoryPair, kind: KindEntry},
		"pair":     {in: MakePair(1, 2), cat: CategoryPair, kind: KindPair},
		"tuple":    {in: MakeTuple(1), cat: CategoryTuple, kind: KindTuple},
		"seq2":     {in: iter.Seq2[int, int](func(func(int, int) bool) {}), cat: CategoryIterable, kind: KindMap},
		"hash set": {in: NewHashSet(1), cat: CategoryIterable, kind: KindSet},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n := classify(tt.in)
			assert.Equal(t, tt.cat, n.cat)
			assert.Equal(t, tt.kind, n.kind)
		})
	}
}

func TestSeqArity(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ  reflect.Type
		want int
	}{
		"seq":        {typ: reflect.TypeFor[iter.Seq[int]](), want: 1},
		"seq2":       {typ: reflect.TypeFor[iter.Seq2[string, int]](), want: 2},
		"plain func": {typ: reflect.TypeFor[func()](), want: 0},
		"returns":    {typ: reflect.TypeFor[func(func(int) bool) bool](), want: 0},
		"yield void": {typ: reflect.TypeFor[func(func(int))](), want: 0},
		"three args": {typ: reflect.TypeFor[func(func(int, int, int) bool)](), want: 0},
		"not func":   {typ: reflect.TypeFor[int](), want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, seqArity(tt.typ))
		})
	}
}

func TestCompareKeys(t *testing.T) {
	t.Parallel()
	keys := func(m any) []any {
		var out []any
		for _, k := range sortedKeys(reflect.ValueOf(m)) {
			out = append(out, k.Interface())
		}
		return out
	}
	assert.Equal(t, []any{-2, 0, 3}, keys(map[int]bool{3: true, -2: true, 0: true}))
	assert.Equal(t, []any{uint8(1), uint8(9)}, keys(map[uint8]bool{9: true, 1: true}))
	assert.Equal(t, []any{-0.5, 1.5}, keys(map[float64]bool{1.5: true, -0.5: true}))
	assert.Equal(t, []any{"a", "b"}, keys(map[string]bool{"b": true, "a": true}))
	assert.Equal(t, []any{false, true}, keys(map[bool]int{true: 1, false: 0}))
	assert.Equal(t, []any{[2]int{1, 2}, [2]int{1, 3}}, keys(map[[2]int]bool{{1, 3}: true, {1, 2}: true}))

	// Mixed dynamic types group by type name, nil first.
	assert.Equal(t, []any{nil, 1, 2, "x"}, keys(map[any]bool{"x": true, 2: true, nil: true, 1: true}))
}

func TestFitText(t *testing.T) {
	t.Parallel()
	p := &Printer{maxText: 4}
	assert.Equal(t, "abcd", p.fitText("abcd"))
	assert.Equal(t, "a...", p.fitText("abcde"))
	assert.Equal(t, "abcde", (&Printer{}).fitText("abcde"))
	assert.Equal(t, "ab", (&Printer{maxText: 2}).fitText("abcde"))
}

func TestIsSetMap(t *testing.T) {
	t.Parallel()
	assert.True(t, isSetMap(reflect.TypeFor[map[string]struct{}]()))
	assert.False(t, isSetMap(reflect.TypeFor[map[string]bool]()))
	assert.False(t, isSetMap(reflect.TypeFor[map[string]struct{ A int }]()))
}

func TestMapSeqStopsEarly(t *testing.T) {
	t.Parallel()
	n := classify(map[int]int{1: 1, 2: 2, 3: 3})
	var got []any
	for e := range n.seq {
		got = append(got, e)
		break
	}
	assert.Equal(t, []any{entry{key: 1, value: 1}}, got)
}

func TestNilIteratorIsEmpty(t *testing.T) {
	t.Parallel()
	var seq iter.Seq[int]
	n := classify(seq)
	assert.Equal(t, CategoryIterable, n.cat)
	assert.Empty(t, slices.Collect(n.seq))
}

func TestKindValid(t *testing.T) {
	t.Parallel()
	for _, k := range Kinds() {
		assert.True(t, k.valid(), k.String())
	}
	assert.False(t, KindNone.valid())
	assert.False(t, Kind(-1).valid())
}
