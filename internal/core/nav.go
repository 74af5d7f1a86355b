package core

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadNav reads a site navigation config (mkdocs-style) and returns every
// document path it references, root-relative. The config is consumed read-only
// to discover known document paths; this tool never modifies it.
func LoadNav(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nav config: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("nav config: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == "nav" {
			var out []string
			collectNavDocs(mapping.Content[i+1], &out)
			return out, nil
		}
	}
	return nil, nil
}

// collectNavDocs walks a nav subtree gathering every scalar .md path.
func collectNavDocs(node *yaml.Node, out *[]string) {
	switch node.Kind {
	case yaml.ScalarNode:
		v := strings.TrimSpace(node.Value)
		if strings.HasSuffix(strings.ToLower(v), ".md") {
			*out = append(*out, NormalizePath(v))
		}
	case yaml.SequenceNode, yaml.MappingNode:
		for _, child := range node.Content {
			collectNavDocs(child, out)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			collectNavDocs(node.Alias, out)
		}
	}
}
