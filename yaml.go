package pretty

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// classifyYAML maps a decoded YAML tree onto the same categories as
// native values. Mapping keys keep document order.
func classifyYAML(n *yaml.Node) node {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return scalarNode("nil")
		}
		return classifyYAML(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return scalarNode("nil")
		}
		return classifyYAML(n.Alias)
	case yaml.SequenceNode:
		return node{cat: CategoryIterable, kind: KindList, seq: yamlElems(n.Content, 1)}
	case yaml.MappingNode:
		if n.ShortTag() == "!!set" {
			return node{cat: CategoryIterable, kind: KindSet, seq: yamlElems(n.Content, 2)}
		}
		return node{cat: CategoryIterable, kind: KindMap, seq: yamlEntries(n.Content)}
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return scalarNode("nil")
		case "!!int", "!!float", "!!bool":
			return scalarNode(n.Value)
		}
		return textNode(n.Value, nil)
	}
	return scalarNode(n.Value)
}

// yamlElems yields every step-th node, starting with the first.
func yamlElems(content []*yaml.Node, step int) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < len(content); i += step {
			if !yield(content[i]) {
				return
			}
		}
	}
}

func yamlEntries(content []*yaml.Node) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i+1 < len(content); i += 2 {
			if !yield(entry{key: content[i], value: content[i+1]}) {
				return
			}
		}
	}
}
