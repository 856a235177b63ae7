// Package config provides the configuration loading pipeline and its interfaces.
//
// The package uses an interface-based design with three extension points:
//   - DataFetcher: acquires raw config bytes (file, embedded data, etc.)
//   - Parser: turns raw bytes into a Document
//   - Document: answers (section, key) lookups with every occurrence of the key
//
// # Lookups
//
// A Document keeps repeated keys and merged sections, so a lookup returns all
// values of a key in file order. Callers select the last one. A Chain evaluates
// candidate (section, key) pairs in priority order and answers with the first
// present candidate:
//
//	chain := config.Chain{
//	    {Section: "global", Key: "server"},
//	    {Section: "global", Key: "host"},
//	}
//	value, from, ok := chain.Last(doc)
//
// # Errors
//
// Fatal pipeline failures match ErrFileOpen or ErrParseSyntax. Parse failures
// carry a *SyntaxError with the ordered parser diagnostics. A missing key is
// ErrNotFound and is never fatal on its own.
//
// # Example
//
//	fetcher, err := filefetcher.NewFetcher("/etc/ipa/default.conf")()
//	if err != nil {
//	    return err
//	}
//	parser, err := iniparser.NewParser()
//	if err != nil {
//	    return err
//	}
//	doc, err := config.Load(fetcher, parser)
package config
