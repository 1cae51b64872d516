package fixgen

import (
	"fmt"
	"regexp"

	"github.com/lucasjones/reggen"
)

// reggenRepeatLimit bounds unbounded quantifiers (x*, x+) during synthesis.
const reggenRepeatLimit = 10

// synthesizePattern is the default pattern-driven string synthesizer,
// backed by reggen. Callers verify the candidate; this only has to produce
// one plausible string.
func synthesizePattern(pattern string) (string, error) {
	return reggen.Generate(pattern, reggenRepeatLimit)
}

// fromPattern rejection-samples the synthesizer until a candidate matches
// the pattern, up to the configured retry cap.
func (g *generator) fromPattern(pattern, path string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("compile pattern %q at %s: %w", pattern, pointer(path), err)
	}
	for i := 0; i < g.maxRetries; i++ {
		cand, err := g.synthesize(pattern)
		if err != nil {
			return "", fmt.Errorf("synthesize pattern %q at %s: %w", pattern, pointer(path), err)
		}
		if re.MatchString(cand) {
			return cand, nil
		}
	}
	return "", failAt(path, CodePatternExhausted, pattern, nil)
}
