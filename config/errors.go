package config

import (
	"errors"
	"strings"
)

// ErrFileOpen is returned when the configuration source cannot be opened or read.
var ErrFileOpen = errors.New("cannot open config file")

// ErrParseSyntax is returned when the configuration content is malformed.
var ErrParseSyntax = errors.New("config syntax error")

// ErrNotFound is returned by Document lookups when a section or key is absent.
var ErrNotFound = errors.New("not found")

// SyntaxError holds the ordered diagnostics of a failed parse.
// It matches ErrParseSyntax and the underlying parser error with errors.Is.
type SyntaxError struct {
	Diagnostics []string
	Err         error
}

func (e *SyntaxError) Error() string {
	if len(e.Diagnostics) == 0 {
		return ErrParseSyntax.Error()
	}

	return ErrParseSyntax.Error() + ": " + strings.Join(e.Diagnostics, "; ")
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParseSyntax}
	}

	return []error{ErrParseSyntax, e.Err}
}
