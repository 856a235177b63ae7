package config

import (
	"errors"
	"fmt"
	"io"
)

// WriteDiagnostics reports a failed load of path to w.
//
// Open failures produce a single line. Syntax failures produce a header line
// followed by every parser diagnostic, one per line, in order.
func WriteDiagnostics(w io.Writer, path string, err error) {
	if w == nil || err == nil {
		return
	}

	switch {
	case errors.Is(err, ErrFileOpen):
		_, _ = fmt.Fprintf(w, "Failed to open config file %s\n", path)
	case errors.Is(err, ErrParseSyntax):
		_, _ = fmt.Fprintf(w, "Failed to parse config file %s\n", path)

		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			for _, diagnostic := range syntaxErr.Diagnostics {
				_, _ = fmt.Fprintln(w, diagnostic)
			}
		}
	default:
		_, _ = fmt.Fprintf(w, "Failed to read config file %s: %v\n", path, err)
	}
}
