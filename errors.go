package fixgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/fixgen/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidDateFormat  = "invalid_date_format"
	CodeInvalidCountryCode = "invalid_country_code"
	CodePatternExhausted   = "pattern_exhausted"
	CodeMissingProperties  = "missing_properties"
	CodeMissingItems       = "missing_items"
	CodeEntropyUnavailable = "entropy_unavailable"
)

// Issue represents a single generation failure.
type Issue struct {
	Path    string // JSON Pointer into the schema tree (for example: /user/items/0).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending format, country code, pattern, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of generation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_date_format at /birth
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// failAt builds a single-issue error with the dictionary message for code.
func failAt(path, code, hint string, cause error) error {
	if path == "" {
		path = "/"
	}
	return Issues{{
		Path:    path,
		Code:    code,
		Message: i18n.T(code, nil),
		Hint:    hint,
		Cause:   cause,
	}}
}
