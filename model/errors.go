package model

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes reported by the CLI for each failure category.
const (
	ExitGeneric       = 1
	ExitNotFound      = 2
	ExitMalformed     = 3
	ExitInvalidSymbol = 4
	ExitUnsafeOutput  = 5
	ExitDrift         = 6
)

// NotFoundError reports a missing or unreadable source root.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("NotFoundError: source root %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("NotFoundError: source root %q does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedAssetError reports an SVG file that failed to parse.
type MalformedAssetError struct {
	Path string
	Err  error
}

func (e *MalformedAssetError) Error() string {
	return fmt.Sprintf("MalformedAssetError: %s: %v", e.Path, e.Err)
}

func (e *MalformedAssetError) Unwrap() error { return e.Err }

// InvalidSymbolError reports a symbol that is not a legal identifier in every
// emission language.
type InvalidSymbolError struct {
	Path     string
	Symbol   string
	Reason   string
	Attempts []string
}

func (e *InvalidSymbolError) Error() string {
	msg := fmt.Sprintf("InvalidSymbolError: %s: symbol %q %s", e.Path, e.Symbol, e.Reason)
	if len(e.Attempts) > 0 {
		msg += " (attempts: " + strings.Join(e.Attempts, ", ") + ")"
	}
	return msg
}

// UnsafeOutputPathError reports an output path that escapes the output root.
type UnsafeOutputPathError struct {
	Root string
	Path string
}

func (e *UnsafeOutputPathError) Error() string {
	return fmt.Sprintf("UnsafeOutputPathError: %q escapes output root %q", e.Path, e.Root)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var (
		notFound  *NotFoundError
		malformed *MalformedAssetError
		invalid   *InvalidSymbolError
		unsafe    *UnsafeOutputPathError
	)
	switch {
	case errors.As(err, &notFound):
		return ExitNotFound
	case errors.As(err, &malformed):
		return ExitMalformed
	case errors.As(err, &invalid):
		return ExitInvalidSymbol
	case errors.As(err, &unsafe):
		return ExitUnsafeOutput
	default:
		return ExitGeneric
	}
}
