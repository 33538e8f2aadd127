package commands

import (
	"fmt"
	"strings"
)

// Variant identifies one system model and wiring revision.
type Variant int

const (
	// ProteoxV1 is required for DECS versions 1.3 or less.
	ProteoxV1 Variant = iota + 1
	// ProteoxV3 is required for DECS versions 1.4 or greater.
	ProteoxV3
	Teslatron
)

var variantNames = map[Variant]string{
	ProteoxV1: "proteox_v1",
	ProteoxV3: "proteox_v3",
	Teslatron: "teslatron",
}

var variantAliases = map[string]Variant{
	"proteox_v1": ProteoxV1,
	"proteoxv1":  ProteoxV1,
	"proteox":    ProteoxV1,
	"proteox_v3": ProteoxV3,
	"proteoxv3":  ProteoxV3,
	"teslatron":  Teslatron,
}

// Variants returns every known variant in declaration order.
func Variants() []Variant {
	return []Variant{ProteoxV1, ProteoxV3, Teslatron}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Valid reports whether v names a known directory.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant resolves a variant name or alias, case-insensitively.
func ParseVariant(raw string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, raw)
}
