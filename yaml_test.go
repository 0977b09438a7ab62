package pretty_test

import (
	"testing"

	"github.com/bjaus/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decodeYAML(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return &doc
}

func TestStringYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  string
		want string
	}{
		"scalars": {
			src:  "name: demo\nport: 80\nratio: 0.5\nenabled: true\nempty: ~\n",
			want: `["name": "demo", "port": 80, "ratio": 0.5, "enabled": true, "empty": nil]`,
		},
		"sequence": {
			src:  "[80, 443, web]",
			want: `[80, 443, "web"]`,
		},
		"nested": {
			src:  "hosts:\n  - name: a\n    ports: [1, 2]\n  - name: b\n    ports: []\n",
			want: `["hosts": [["name": "a", "ports": [1, 2]], ["name": "b", "ports": []]]]`,
		},
		"document order": {
			src:  "b: 1\na: 2\n",
			want: `["b": 1, "a": 2]`,
		},
		"set": {
			src:  "tags: !!set {x, y}\n",
			want: `["tags": {"x", "y"}]`,
		},
		"alias": {
			src:  "base: &b [1, 2]\ncopy: *b\n",
			want: `["base": [1, 2], "copy": [1, 2]]`,
		},
		"quoted number": {
			src:  `v: "80"`,
			want: `["v": "80"]`,
		},
		"empty map": {
			src:  "{}",
			want: "[]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := decodeYAML(t, tt.src)
			assert.Equal(t, tt.want, pretty.String(doc))
			assert.Equal(t, tt.want, pretty.String(*doc))
		})
	}
}

func TestStringYAMLEmptyDocument(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "nil", pretty.String(&yaml.Node{Kind: yaml.DocumentNode}))
	assert.Equal(t, "nil", pretty.String((*yaml.Node)(nil)))
}

func TestStringYAMLWithPrinter(t *testing.T) {
	t.Parallel()
	p := pretty.MustNew(
		pretty.KindDelimiters(pretty.KindMap, pretty.NewDelimiters("{", ", ", "}")),
		pretty.MaxTextWidth(4),
	)
	doc := decodeYAML(t, "title: a long title\nn: 3\n")
	assert.Equal(t, `{"t...": "a...", "n": 3}`, p.String(doc))
}

func TestClassifyYAML(t *testing.T) {
	t.Parallel()
	assert.Equal(t, pretty.CategoryIterable, pretty.Classify(decodeYAML(t, "[1]")))
	assert.Equal(t, pretty.CategoryText, pretty.Classify(decodeYAML(t, "hello")))
	assert.Equal(t, pretty.CategoryScalar, pretty.Classify(decodeYAML(t, "12")))
}
