package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/tekton/internal/snippet"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes a snippet table as a YAML document,
// snippets are sorted by name and fields keep the JSON order.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter].
func (y YAMLExporter) Export(w io.Writer, table *snippet.Table) error {
	if table.Len() == 0 {
		return snippet.ErrEmptyInput
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range table.SortedKeys() {
		record, _ := table.Get(name)
		doc.Content = append(doc.Content, yamlString(name), yamlRecord(record))
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}

	return encoder.Close()
}

// yamlRecord builds the mapping node for a single record.
func yamlRecord(record snippet.Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	switch {
	case record.Prefix.IsList():
		node.Content = append(node.Content, yamlString("prefix"), yamlStrings(record.Prefix.Values()))
	case !record.Prefix.IsZero():
		node.Content = append(node.Content, yamlString("prefix"), yamlString(record.Prefix.String()))
	}

	node.Content = append(node.Content, yamlString("body"), yamlStrings(record.Body))

	if record.Description != nil {
		node.Content = append(node.Content, yamlString("description"), yamlString(*record.Description))
	}

	return node
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlStrings(items []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		node.Content = append(node.Content, yamlString(item))
	}

	return node
}
