package format

import (
	"io"

	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes a [Document] as YAML.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given document as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(doc); err != nil {
		return err
	}

	return encoder.Close()
}
