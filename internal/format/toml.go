package format

import (
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLExporter is an [Exporter] that writes a [Document] as TOML, tokens and
// diagnostics become arrays of tables.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given document
// as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, doc Document) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(doc)
}
