package ini

import (
	"fmt"
	"strings"

	"github.com/0xalexb/ipa-config/config"
	"github.com/go-ini/ini"
)

// Parser implements config.Parser interface for INI data.
type Parser struct {
	options Options
}

// NewParser creates a new INI parser instance.
// It fails with ErrConflictingOptions when a policy is given two different values.
func NewParser(opts ...Option) (*Parser, error) {
	options := optionSet{
		options: DefaultOptions(),
		set:     make(map[policy]bool),
	}

	for _, apply := range opts {
		err := apply(&options)
		if err != nil {
			return nil, err
		}
	}

	return &Parser{options: options.options}, nil
}

// Options returns the effective parse policies.
func (p *Parser) Options() Options {
	return p.options
}

// Parse parses INI data into a Document.
// Empty data yields an empty Document. Malformed data yields a *config.SyntaxError.
func (p *Parser) Parse(data []byte) (config.Document, error) {
	loadOptions := p.loadOptions()

	if len(data) == 0 {
		return &Document{file: ini.Empty(loadOptions), merged: p.options.SectionMerge}, nil
	}

	if !p.options.LineWrap {
		err := rejectWrappedValues(data)
		if err != nil {
			return nil, err
		}
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, &config.SyntaxError{
			Diagnostics: diagnostics(err),
			Err:         err,
		}
	}

	return &Document{file: file, merged: p.options.SectionMerge}, nil
}

func (p *Parser) loadOptions() ini.LoadOptions {
	return ini.LoadOptions{ //nolint:exhaustruct // only relevant fields needed
		Loose:                      false,
		Insensitive:                false,
		AllowNonUniqueSections:     !p.options.SectionMerge,
		AllowShadows:               p.options.MultiValue,
		AllowDuplicateShadowValues: p.options.MultiValue,
		AllowPythonMultilineValues: p.options.LineWrap,
		IgnoreContinuation:         !p.options.LineWrap,
		IgnoreInlineComment:        true,
		PreserveSurroundedQuote:    true,
		KeyValueDelimiters:         "=",
	}
}

// diagnostics returns the parser messages of a failed parse in order.
// go-ini stops at the first structural error, so there is one entry per failure.
func diagnostics(err error) []string {
	return []string{strings.TrimSpace(err.Error())}
}

// Document implements config.Document on top of a parsed go-ini file.
type Document struct {
	file   *ini.File
	merged bool
}

// Values returns every value of key in section, in file order.
func (d *Document) Values(section, key string) ([]string, error) {
	sec, err := d.section(section)
	if err != nil {
		return nil, err
	}

	if !sec.HasKey(key) {
		return nil, fmt.Errorf("key %s.%s: %w", section, key, config.ErrNotFound)
	}

	iniKey, err := sec.GetKey(key)
	if err != nil {
		return nil, fmt.Errorf("key %s.%s: %w: %w", section, key, config.ErrNotFound, err)
	}

	values := iniKey.ValueWithShadows()
	if len(values) == 0 {
		// go-ini reports no shadows for a single empty value.
		return []string{iniKey.Value()}, nil
	}

	return values, nil
}

var _ config.SectionLister = (*Document)(nil)

// Sections returns the section names in file order, without duplicates.
func (d *Document) Sections() []string {
	names := d.file.SectionStrings()
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}

func (d *Document) section(name string) (*ini.Section, error) {
	if d.merged {
		sec, err := d.file.GetSection(name)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w: %w", name, config.ErrNotFound, err)
		}

		return sec, nil
	}

	sections, err := d.file.SectionsByName(name)
	if err != nil || len(sections) == 0 {
		return nil, fmt.Errorf("section %s: %w", name, config.ErrNotFound)
	}

	return sections[len(sections)-1], nil
}
