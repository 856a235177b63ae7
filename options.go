package ipaconfig

import (
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/ipa-config/config/parser/ini"
)

// Options holds configuration settings for a load.
type Options struct {
	Diagnostics   io.Writer
	Logger        *slog.Logger
	ParserOptions []ini.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithDiagnostics sets the stream failure reports are written to.
// Defaults to os.Stderr. A nil writer discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(opts *Options) {
		if w == nil {
			w = io.Discard
		}

		opts.Diagnostics = w
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithParserOptions adds options for the INI parser.
func WithParserOptions(parserOpts ...ini.Option) Option {
	return func(opts *Options) {
		opts.ParserOptions = append(opts.ParserOptions, parserOpts...)
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Diagnostics == nil {
		options.Diagnostics = os.Stderr
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
