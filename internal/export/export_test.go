package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/decsctl/internal/commands"
	"github.com/danmuck/decsctl/internal/testutil/testlog"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	testlog.Start(t)
	cases := map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yml": FormatYAML, " yaml ": FormatYAML}
	for raw, want := range cases {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestRenderJSONMatchesDirectory(t *testing.T) {
	testlog.Start(t)
	d := commands.MustFor(commands.ProteoxV3)
	var buf bytes.Buffer
	if err := Render(&buf, d, FormatJSON); err != nil {
		t.Fatalf("render: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertDocument(t, doc, d)
}

func TestRenderYAMLMatchesDirectory(t *testing.T) {
	testlog.Start(t)
	d := commands.MustFor(commands.Teslatron)
	var buf bytes.Buffer
	if err := Render(&buf, d, FormatYAML); err != nil {
		t.Fatalf("render: %v", err)
	}
	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertDocument(t, doc, d)
}

func TestRenderTextSortedColumns(t *testing.T) {
	testlog.Start(t)
	d := commands.MustFor(commands.ProteoxV1)
	var buf bytes.Buffer
	if err := Render(&buf, d, FormatText); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != d.Len() {
		t.Fatalf("got %d lines, want %d", len(lines), d.Len())
	}
	keys := d.Keys()
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("line %d: unexpected columns %q", i, line)
		}
		if fields[0] != keys[i] {
			t.Fatalf("line %d: got key %q want %q", i, fields[0], keys[i])
		}
		want, _ := d.Lookup(keys[i])
		if fields[1] != want {
			t.Fatalf("line %d: got uri %q want %q", i, fields[1], want)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	err := Render(&buf, commands.MustFor(commands.ProteoxV1), Format("csv"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func assertDocument(t *testing.T, doc Document, d *commands.Directory) {
	t.Helper()
	if doc.Variant != d.Variant().String() {
		t.Fatalf("unexpected variant: %q", doc.Variant)
	}
	if len(doc.Commands) != d.Len() {
		t.Fatalf("got %d commands, want %d", len(doc.Commands), d.Len())
	}
	for k, addr := range d.Entries() {
		if doc.Commands[k] != addr {
			t.Fatalf("%s: got %q want %q", k, doc.Commands[k], addr)
		}
	}
}
