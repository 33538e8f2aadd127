package commands

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Directory is the read-only command table of one variant.
type Directory struct {
	variant Variant
	entries map[string]string
}

var directories = map[Variant]*Directory{
	ProteoxV1: newDirectory(ProteoxV1, proteoxV1Table),
	ProteoxV3: newDirectory(ProteoxV3, proteoxV3Table),
	Teslatron: newDirectory(Teslatron, teslatronTable),
}

func newDirectory(v Variant, table map[string]string) *Directory {
	entries := make(map[string]string, len(table))
	for k, addr := range table {
		entries[k] = addr
	}
	return &Directory{variant: v, entries: entries}
}

// For returns the directory of v.
func For(v Variant) (*Directory, error) {
	d, ok := directories[v]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return d, nil
}

// MustFor is For for variants known at compile time.
func MustFor(v Variant) *Directory {
	d, err := For(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Directories returns every directory in variant order.
func Directories() []*Directory {
	out := make([]*Directory, 0, len(directories))
	for _, v := range Variants() {
		out = append(out, directories[v])
	}
	return out
}

// Lookup resolves short against the directory of v.
func Lookup(v Variant, short string) (string, error) {
	d, err := For(v)
	if err != nil {
		return "", err
	}
	return d.Lookup(short)
}

// Lookup returns the address stored for short, verbatim. It only logs at
// trace level, which zerolog drops unless the global level is lowered.
func (d *Directory) Lookup(short string) (string, error) {
	addr, ok := d.entries[short]
	if !ok {
		log.Trace().Str("variant", d.variant.String()).Str("command", short).Msg("commands.Lookup unknown command")
		return "", &LookupError{Variant: d.variant, Command: short}
	}
	log.Trace().Str("variant", d.variant.String()).Str("command", short).Str("uri", addr).Msg("commands.Lookup")
	return addr, nil
}

func (d *Directory) Variant() Variant {
	return d.variant
}

func (d *Directory) Has(short string) bool {
	_, ok := d.entries[short]
	return ok
}

func (d *Directory) Len() int {
	return len(d.entries)
}

// Keys returns the short commands in lexical order.
func (d *Directory) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the table.
func (d *Directory) Entries() map[string]string {
	out := make(map[string]string, len(d.entries))
	for k, addr := range d.entries {
		out[k] = addr
	}
	return out
}
