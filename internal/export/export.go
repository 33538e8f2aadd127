// Package export renders command directories for operators and for drivers
// that load tables from files instead of linking this module.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/decsctl/internal/commands"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the serialized shape of one directory.
type Document struct {
	Variant  string            `json:"variant" yaml:"variant"`
	Commands map[string]string `json:"commands" yaml:"commands"`
}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

func NewDocument(d *commands.Directory) Document {
	return Document{Variant: d.Variant().String(), Commands: d.Entries()}
}

// Render writes d to w in format.
func Render(w io.Writer, d *commands.Directory, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(d)); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(d)); err != nil {
			return fmt.Errorf("export yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, d *commands.Directory) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	entries := d.Entries()
	for _, k := range d.Keys() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", k, entries[k]); err != nil {
			return fmt.Errorf("export text: %w", err)
		}
	}
	return tw.Flush()
}
