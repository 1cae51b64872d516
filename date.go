package fixgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/fixgen/internal/randx"
)

// dateTokens in longest-first order so that YYYY is never read as two YY,
// nor MMM as MM plus a stray M.
var dateTokens = []string{"YYYY", "YY", "MMM", "MM", "DD"}

// supportedDateFormats is the fixed whitelist of token strings the date
// generator accepts.
var supportedDateFormats = map[string]struct{}{
	"YYYY-MM-DD":   {},
	"YYYY/MM/DD":   {},
	"DD-MM-YYYY":   {},
	"DD/MM/YYYY":   {},
	"MM/DD/YYYY":   {},
	"YYYY-MM":      {},
	"MM-DD":        {},
	"DD MMM YYYY":  {},
	"MMM DD, YYYY": {},
	"YY-MM-DD":     {},
	"DD/MM/YY":     {},
	"YYYY":         {},
}

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func todayISO(t time.Time) string { return t.Format("2006-01-02") }

// generateDate renders a random calendar date through the token format, or
// today's date when no format is given.
func (g *generator) generateDate(format, path string) (any, error) {
	if format == "" {
		return todayISO(g.now()), nil
	}
	if _, ok := supportedDateFormats[format]; !ok {
		return nil, failAt(path, CodeInvalidDateFormat, format, nil)
	}
	present := scanTokens(format)

	var year, month int
	resolved := map[string]string{}
	if present["YYYY"] {
		n, err := g.intn(path, 0, 99)
		if err != nil {
			return nil, err
		}
		year = 1900 + n
		resolved["YYYY"] = strconv.Itoa(year)
	}
	if present["YY"] {
		n, err := g.intn(path, 0, 99)
		if err != nil {
			return nil, err
		}
		resolved["YY"] = fmt.Sprintf("%02d", n)
	}
	if present["MMM"] {
		n, err := g.intn(path, 0, 11)
		if err != nil {
			return nil, err
		}
		resolved["MMM"] = monthAbbrevs[n]
	}
	if present["MM"] {
		n, err := g.intn(path, 1, 12)
		if err != nil {
			return nil, err
		}
		month = n
		resolved["MM"] = fmt.Sprintf("%02d", n)
	}
	if present["DD"] {
		// Day bounds use the numeric month only; a month resolved solely
		// via MMM falls back to January, and a missing year to 2000.
		boundMonth := month
		if boundMonth == 0 {
			boundMonth = 1
		}
		boundYear := year
		if boundYear == 0 {
			boundYear = 2000
		}
		n, err := g.intn(path, 1, int64(daysInMonth(boundMonth, boundYear)))
		if err != nil {
			return nil, err
		}
		resolved["DD"] = fmt.Sprintf("%02d", n)
	}

	// Single substitution pass; token precedence follows dateTokens order.
	pairs := make([]string, 0, 2*len(resolved))
	for _, tok := range dateTokens {
		if v, ok := resolved[tok]; ok {
			pairs = append(pairs, tok, v)
		}
	}
	return strings.NewReplacer(pairs...).Replace(format), nil
}

// scanTokens reports which tokens occur in the format, claiming characters
// longest-first so overlapping tokens never double-count.
func scanTokens(format string) map[string]bool {
	present := make(map[string]bool, len(dateTokens))
	for i := 0; i < len(format); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok) {
				present[tok] = true
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return present
}

// daysInMonth applies the Gregorian rules: February gains a day in leap
// years (divisible by 4, excluding centuries unless divisible by 400).
func daysInMonth(month, year int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func (g *generator) intn(path string, min, max int64) (int, error) {
	v, err := randx.Int64(g.rand, min, max)
	if err != nil {
		return 0, failAt(path, CodeEntropyUnavailable, "", err)
	}
	return int(v), nil
}
