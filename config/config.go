package config

import "fmt"

// Parser defines an interface for parsing raw configuration data into a Document.
//
// Implementations must not return a partially parsed Document: either the whole
// input is accepted or an error is returned.
type Parser interface {
	Parse(data []byte) (Document, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Document is a parsed configuration.
//
// Values returns every value of key in section in file order, so the last element
// is the authoritative one. It returns an error wrapping ErrNotFound when the
// section or the key does not exist.
type Document interface {
	Values(section, key string) ([]string, error)
}

// SectionLister is implemented by documents that can list their section names.
type SectionLister interface {
	Sections() []string
}

// Load reads data from the fetcher and parses it into a Document.
func Load(fetcher DataFetcher, parser Parser) (Document, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	doc, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return doc, nil
}
