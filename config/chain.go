package config

import "fmt"

// Candidate identifies a (section, key) pair in a Document.
type Candidate struct {
	Section string
	Key     string
}

func (c Candidate) String() string {
	return c.Section + "." + c.Key
}

// Chain is an ordered list of candidates. Earlier candidates take priority.
type Chain []Candidate

// Last returns the last value of the first candidate present in doc.
// Lookup failures of any kind are treated as absence.
func (c Chain) Last(doc Document) (string, Candidate, bool) {
	for _, candidate := range c {
		value, err := LastValue(doc, candidate.Section, candidate.Key)
		if err != nil {
			continue
		}

		return value, candidate, true
	}

	return "", Candidate{}, false
}

// LastValue returns the last occurrence of key in section.
func LastValue(doc Document, section, key string) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%s.%s: %w", section, key, ErrNotFound)
	}

	values, err := doc.Values(section, key)
	if err != nil {
		return "", err
	}

	if len(values) == 0 {
		return "", fmt.Errorf("%s.%s: %w", section, key, ErrNotFound)
	}

	return values[len(values)-1], nil
}
