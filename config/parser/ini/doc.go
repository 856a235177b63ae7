// Package ini provides an INI parser implementation for the config package.
//
// This package uses github.com/go-ini/ini as the parse engine and configures it
// with a fixed, strict policy set:
//   - stop on the first structural error, never return a partial document
//   - merge repeated section headers into one logical section
//   - keep every occurrence of a repeated key, in file order
//   - reject wrapped values (indented lines, trailing backslash, open """ or
//     backtick literals) instead of joining them
//   - take the value verbatim after '=': inline '#' or ';' and quotes are kept
//
// Usage:
//
//	parser, err := ini.NewParser()
//	if err != nil {
//	    // conflicting options
//	}
//	doc, err := parser.Parse(data)
//	values, err := doc.Values("global", "server")
//
// Each policy can be changed once with its Option. Passing two different values
// for the same policy fails with ErrConflictingOptions.
package ini
