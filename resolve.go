package ipaconfig

import (
	"log/slog"

	"github.com/0xalexb/ipa-config/config"
)

// SectionGlobal is the section holding every recognized key.
const SectionGlobal = "global"

//nolint:gochecknoglobals // fixed lookup tables.
var (
	// ServerChain resolves the server identifier. IPA servers name it "host".
	ServerChain = config.Chain{
		{Section: SectionGlobal, Key: "server"},
		{Section: SectionGlobal, Key: "host"},
	}
	// DomainChain resolves the domain identifier.
	DomainChain = config.Chain{
		{Section: SectionGlobal, Key: "domain"},
	}
)

// Resolve builds the record from a parsed document. It never fails: a field
// whose chain yields nothing stays unset.
func Resolve(doc config.Document, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}

	return &Config{
		ServerName: resolveField(doc, logger, "server", ServerChain),
		Domain:     resolveField(doc, logger, "domain", DomainChain),
	}
}

func resolveField(doc config.Document, logger *slog.Logger, field string, chain config.Chain) *string {
	value, from, ok := chain.Last(doc)
	if !ok {
		logger.Debug("config field unset", slog.String("field", field))

		return nil
	}

	logger.Debug("config field resolved",
		slog.String("field", field),
		slog.String("section", from.Section),
		slog.String("key", from.Key),
	)

	return &value
}
