package ini

import (
	"errors"
	"fmt"
)

// ErrConflictingOptions is returned when one parse policy is given two different values.
var ErrConflictingOptions = errors.New("conflicting parser options")

type policy int

const (
	policySectionMerge policy = iota
	policyMultiValue
	policyLineWrap
)

func (p policy) String() string {
	switch p {
	case policySectionMerge:
		return "section merge"
	case policyMultiValue:
		return "multi value"
	case policyLineWrap:
		return "line wrap"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Options holds the parse policies of a Parser.
type Options struct {
	SectionMerge bool
	MultiValue   bool
	LineWrap     bool
}

// Option defines a function type for configuring a Parser.
type Option func(*optionSet) error

// optionSet tracks which policies were set explicitly while options are applied.
type optionSet struct {
	options Options
	set     map[policy]bool
}

// DefaultOptions returns the strict policy set: merge sections, keep repeated keys, no wrapping.
func DefaultOptions() Options {
	return Options{
		SectionMerge: true,
		MultiValue:   true,
		LineWrap:     false,
	}
}

// WithSectionMerge controls whether repeated section headers are merged into one section.
// When disabled, each header opens its own section and lookups use the last one.
func WithSectionMerge(enabled bool) Option {
	return func(opts *optionSet) error {
		return opts.apply(policySectionMerge, &opts.options.SectionMerge, enabled)
	}
}

// WithMultiValue controls whether repeated keys keep every occurrence.
// When disabled, a repeated key overwrites the earlier value at parse time.
func WithMultiValue(enabled bool) Option {
	return func(opts *optionSet) error {
		return opts.apply(policyMultiValue, &opts.options.MultiValue, enabled)
	}
}

// WithLineWrap controls whether wrapped values are joined: indented continuation
// lines, trailing backslashes and multi-line """ or backtick literals.
// When disabled, any of them is a syntax error.
func WithLineWrap(enabled bool) Option {
	return func(opts *optionSet) error {
		return opts.apply(policyLineWrap, &opts.options.LineWrap, enabled)
	}
}

func (o *optionSet) apply(p policy, field *bool, value bool) error {
	if previous, ok := o.set[p]; ok && previous != value {
		return fmt.Errorf("%w: %s set to both %t and %t", ErrConflictingOptions, p, previous, value)
	}

	o.set[p] = value
	*field = value

	return nil
}
