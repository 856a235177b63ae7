package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	ipaconfig "github.com/0xalexb/ipa-config"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
}

func writeConfig(w io.Writer, format string, cfg *ipaconfig.Config) error {
	switch format {
	case outputYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}

		_, err = w.Write(data)

		return err
	case outputText:
		if server, ok := cfg.Server(); ok {
			_, _ = fmt.Fprintf(w, "server: %s\n", server)
		}

		if domain, ok := cfg.DomainName(); ok {
			_, _ = fmt.Fprintf(w, "domain: %s\n", domain)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
}
