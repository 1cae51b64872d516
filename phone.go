package fixgen

// DefaultCountryCode is used when a caller asks for a phone number without
// naming a country.
const DefaultCountryCode = "FR"

// phonePatterns keys national phone shapes by ISO 3166-1 alpha-2 code.
// Static configuration data, never mutated.
var phonePatterns = map[string]string{
	"BE": `\+32[1-9][0-9]{7,8}`,
	"CA": `\+1[2-9][0-9]{9}`,
	"CH": `\+41[1-9][0-9]{8}`,
	"DE": `\+49[1-9][0-9]{9}`,
	"ES": `\+34[6-9][0-9]{8}`,
	"FR": `\+33[1-9][0-9]{8}`,
	"GB": `\+44[1-9][0-9]{9}`,
	"IT": `\+39[0-9]{9,10}`,
	"JP": `\+81[1-9][0-9]{8,9}`,
	"US": `\+1[2-9][0-9]{9}`,
}

// phoneNumber synthesizes a number for the country's pattern, verifying the
// candidate against the same pattern.
func (g *generator) phoneNumber(countryCode, path string) (string, error) {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	pattern, ok := phonePatterns[countryCode]
	if !ok {
		return "", failAt(path, CodeInvalidCountryCode, countryCode, nil)
	}
	return g.fromPattern(pattern, path)
}
