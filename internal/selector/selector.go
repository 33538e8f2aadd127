// Package selector maps a detected system onto a command directory variant.
//
// This is caller-side policy. The commands package never detects a system.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/decsctl/internal/commands"
	"github.com/rs/zerolog/log"
	"golang.org/x/mod/semver"
)

var (
	ErrUnknownModel   = errors.New("selector: unknown system model")
	ErrInvalidVersion = errors.New("selector: invalid decs version")
)

const (
	ModelProteox   = "proteox"
	ModelTeslatron = "teslatron"
)

// proteoxV3Since is the first DECS release wired with the V3 Proteox topology.
const proteoxV3Since = "v1.4"

// Select returns the variant for a system model and its DECS version.
// Proteox needs a version; Teslatron has a single wiring and accepts any.
func Select(model, version string) (commands.Variant, error) {
	m := strings.ToLower(strings.TrimSpace(model))
	switch m {
	case ModelProteox:
		v, err := canonical(version)
		if err != nil {
			return 0, err
		}
		if semver.Compare(semver.MajorMinor(v), proteoxV3Since) >= 0 {
			log.Debug().Str("model", m).Str("version", v).Msg("selector.Select proteox_v3")
			return commands.ProteoxV3, nil
		}
		log.Debug().Str("model", m).Str("version", v).Msg("selector.Select proteox_v1")
		return commands.ProteoxV1, nil
	case ModelTeslatron:
		if strings.TrimSpace(version) != "" {
			if _, err := canonical(version); err != nil {
				return 0, err
			}
		}
		return commands.Teslatron, nil
	default:
		log.Warn().Str("model", model).Msg("selector.Select unknown model")
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
}

// canonical turns "1.4", "v1.4.2" or "1.4.0-rc1" into a semver string.
func canonical(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%w: version required", ErrInvalidVersion)
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	return v, nil
}
