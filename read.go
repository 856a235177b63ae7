package ipaconfig

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/ipa-config/config"
	filefetcher "github.com/0xalexb/ipa-config/config/fetcher/file"
	iniparser "github.com/0xalexb/ipa-config/config/parser/ini"
)

// Read loads the configuration file at path and resolves the record.
//
// On failure nothing is returned but the error; open and syntax failures are
// also written to the diagnostic stream. The returned error matches
// config.ErrFileOpen, config.ErrParseSyntax or iniparser.ErrConflictingOptions.
func Read(path string, opts ...Option) (*Config, error) {
	options := newOptions(opts)
	logger := options.Logger.With(slog.String("path", path))

	parser, err := iniparser.NewParser(options.ParserOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		config.WriteDiagnostics(options.Diagnostics, path, err)
		logger.Debug("failed to open config file", slog.Any("error", err))

		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	doc, err := config.Load(fetcher, parser)
	if err != nil {
		config.WriteDiagnostics(options.Diagnostics, path, err)
		logger.Debug("failed to parse config file", slog.Any("error", err))

		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	if lister, ok := doc.(config.SectionLister); ok {
		logger.Debug("config parsed", slog.Any("sections", lister.Sections()))
	}

	cfg := Resolve(doc, logger)

	logger.Debug("config loaded")

	return cfg, nil
}
