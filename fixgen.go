package fixgen

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reoring/fixgen/internal/randx"
	"github.com/reoring/fixgen/schema"
)

// maxSafeInteger is the largest integer exactly representable in a JSON
// number (2^53 - 1); it is the implicit upper bound when a schema gives none.
const maxSafeInteger = int64(1)<<53 - 1

const defaultMaxPatternRetries = 1000

// generator bundles the injectable capabilities for one generation call.
type generator struct {
	rand       io.Reader
	synthesize func(pattern string) (string, error)
	now        func() time.Time
	maxRetries int
}

func newGenerator(opts ...Option) *generator {
	g := &generator{
		rand:       crand.Reader,
		synthesize: synthesizePattern,
		now:        time.Now,
		maxRetries: defaultMaxPatternRetries,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// FromSchema generates one JSON-compatible value (nil, bool, int64, string,
// []any, or map[string]any) satisfying the schema's declared constraints.
// Unknown node types fall back to the node's default, or nil.
func FromSchema(s *schema.Schema, opts ...Option) (any, error) {
	return newGenerator(opts...).generate(s, "")
}

// JSONFromSchema generates a value and marshals it.
func JSONFromSchema(s *schema.Schema, opts ...Option) ([]byte, error) {
	v, err := FromSchema(s, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// generate walks one node. path accumulates JSON Pointer segments for
// diagnostics only; it never influences generated content.
func (g *generator) generate(node *schema.Schema, path string) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case schema.TypeInteger:
		return g.generateInteger(node, path)
	case schema.TypeString:
		return g.generateString(node, path)
	case schema.TypeObject:
		return g.generateObject(node, path)
	case schema.TypeArray:
		return g.generateArray(node, path)
	case schema.TypeBoolean:
		b, err := randx.Bool(g.rand)
		if err != nil {
			return nil, failAt(path, CodeEntropyUnavailable, "", err)
		}
		return b, nil
	case schema.TypeDate:
		if node.UseDefault {
			if node.Default != nil {
				return node.Default, nil
			}
			return todayISO(g.now()), nil
		}
		return g.generateDate(node.Format, path)
	default:
		if node.Default != nil {
			return node.Default, nil
		}
		return nil, nil
	}
}

func (g *generator) generateInteger(node *schema.Schema, path string) (any, error) {
	if node.UseDefault && truthy(node.Default) {
		return node.Default, nil
	}
	min := int64(0)
	if node.Minimum != nil {
		min = *node.Minimum
	}
	max := maxSafeInteger
	if node.Maximum != nil {
		max = *node.Maximum
	}
	if min > max {
		return nil, fmt.Errorf("generate integer at %s: minimum %d greater than maximum %d", pointer(path), min, max)
	}
	v, err := randx.Int64(g.rand, min, max)
	if err != nil {
		return nil, failAt(path, CodeEntropyUnavailable, "", err)
	}
	return v, nil
}

func (g *generator) generateObject(node *schema.Schema, path string) (any, error) {
	if node.Properties == nil {
		return nil, failAt(path, CodeMissingProperties, "", nil)
	}
	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		names = append(names, name)
	}
	// Go maps carry no declaration order; sort for stable output.
	sort.Strings(names)
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, err := g.generate(node.Properties[name], path+"/"+escapePointer(name))
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func (g *generator) generateArray(node *schema.Schema, path string) (any, error) {
	if node.Items == nil {
		return nil, failAt(path, CodeMissingItems, "", nil)
	}
	out := make([]any, 0, len(node.Items))
	for i, child := range node.Items {
		v, err := g.generate(child, path+"/items/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// truthy mirrors the loose default check of the schema dialect: zero numbers,
// empty strings, false, and nil do not count as a usable default.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// escapePointer applies the JSON Pointer escapes (RFC 6901) to one segment.
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(segment string) string { return pointerEscaper.Replace(segment) }
