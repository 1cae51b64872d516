package fixgen

import (
	"strings"

	"github.com/reoring/fixgen/internal/randx"
	"github.com/reoring/fixgen/schema"
)

const (
	defaultStringLength = 10
	emailLocalLength    = 8
	emailDomain         = "@example.com"
	lengthFiller        = "*"
)

// generateString resolves the string constraint branches in a fixed
// precedence order, then clamps the result to the declared length bounds.
// A truthy non-string default passes through verbatim; length bounds only
// apply to strings.
func (g *generator) generateString(node *schema.Schema, path string) (any, error) {
	v, err := g.rawString(node, path)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		return clampLength(s, node.MinLength, node.MaxLength), nil
	}
	return v, nil
}

// rawString picks the first matching branch; later branches are never
// consulted once one matches.
func (g *generator) rawString(node *schema.Schema, path string) (any, error) {
	switch {
	case node.Format != "" && !node.UseDefault && node.CountryCode == "":
		if node.Format == "email" {
			return g.email()
		}
		// Unknown formats are an explicit no-op, not an error.
		return "", nil
	case node.CountryCode != "" && node.Format == "phone":
		return g.phoneNumber(node.CountryCode, path)
	case node.Pattern != "":
		return g.fromPattern(node.Pattern, path)
	case len(node.Enum) > 0:
		idx, err := randx.Int64(g.rand, 0, int64(len(node.Enum)-1))
		if err != nil {
			return "", failAt(path, CodeEntropyUnavailable, "", err)
		}
		return node.Enum[idx], nil
	default:
		if node.UseDefault && truthy(node.Default) {
			return node.Default, nil
		}
		n := defaultStringLength
		if node.Length != nil {
			n = *node.Length
		}
		s, err := randx.String(g.rand, n)
		if err != nil {
			return "", failAt(path, CodeEntropyUnavailable, "", err)
		}
		return s, nil
	}
}

// clampLength pads to exactly minLength when the value under-shoots, else
// truncates to maxLength when it over-shoots. The two branches are mutually
// exclusive per call; minLength wins when both would apply. Lengths count
// runes so truncation never splits a multibyte character.
func clampLength(s string, minLength, maxLength *int) string {
	r := []rune(s)
	if minLength != nil && len(r) < *minLength {
		padded := append(r, []rune(strings.Repeat(lengthFiller, *minLength-len(r)))...)
		return string(padded[:*minLength])
	}
	if maxLength != nil && len(r) > *maxLength {
		return string(r[:*maxLength])
	}
	return s
}

func (g *generator) email() (string, error) {
	local, err := randx.String(g.rand, emailLocalLength)
	if err != nil {
		return "", err
	}
	return local + emailDomain, nil
}
