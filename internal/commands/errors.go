package commands

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand = errors.New("commands: unknown command")
	ErrUnknownVariant = errors.New("commands: unknown variant")
)

// LookupError reports a short command that the selected directory does not
// define. It matches ErrUnknownCommand under errors.Is.
type LookupError struct {
	Variant Variant
	Command string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("commands: variant=%s: unknown command %q", e.Variant, e.Command)
}

func (e *LookupError) Unwrap() error {
	return ErrUnknownCommand
}
