package ini

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/ipa-config/config"
)

// ErrWrappedValue is returned when a value spans more than one line.
var ErrWrappedValue = errors.New("wrapped value")

const tripleQuote = `"""`

// rejectWrappedValues fails on the first value go-ini would join across lines:
// a trailing backslash, or a """ or backtick literal left open on its line.
// Indented continuation lines have no delimiter and fail inside go-ini.
func rejectWrappedValues(data []byte) error {
	for number, raw := range bytes.Split(data, []byte("\n")) {
		line := strings.TrimSpace(string(raw))
		if line == "" || line[0] == '#' || line[0] == ';' || line[0] == '[' {
			continue
		}

		delimiter := strings.IndexByte(line, '=')
		if delimiter < 0 {
			continue
		}

		value := strings.TrimSpace(line[delimiter+1:])

		var reason string

		switch {
		case strings.HasSuffix(value, `\`):
			reason = "line continuation"
		case len(value) > len(tripleQuote) && strings.HasPrefix(value, tripleQuote) &&
			!strings.Contains(value[len(tripleQuote):], tripleQuote):
			reason = "unterminated " + tripleQuote + " value"
		case strings.HasPrefix(value, "`") && !strings.Contains(value[1:], "`"):
			reason = "unterminated backtick value"
		default:
			continue
		}

		diagnostic := fmt.Sprintf("line %d: %s: %s", number+1, reason, line)

		return &config.SyntaxError{
			Diagnostics: []string{diagnostic},
			Err:         fmt.Errorf("%w: %s", ErrWrappedValue, diagnostic),
		}
	}

	return nil
}
