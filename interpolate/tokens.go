package interpolate

import "strings"

// tokensInterpolator interpolates a whitespace-separated list of numeric
// tokens position-by-position, e.g. a multi-value box-shadow or a
// "translateX translateY" pair passed as one string.
type tokensInterpolator struct {
	tokens []Interpolator
}

func (ti *tokensInterpolator) Value(t float64) (any, bool) {
	parts := make([]string, len(ti.tokens))
	for i, tok := range ti.tokens {
		v, ok := tok.Value(t)
		if !ok {
			return nil, false
		}
		parts[i] = toTokenString(v)
	}
	return strings.Join(parts, " "), true
}

func toTokenString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok {
		return formatNumeric(f, "")
	}
	return ""
}

// TokensFactory matches when both endpoints are strings that split into
// the same number of whitespace-separated numeric tokens. Falls through
// (ok=false) if the shapes differ, letting Instant take over.
func TokensFactory(from, to any, opts Options) (Interpolator, bool) {
	fs, fok := from.(string)
	ts, tok := to.(string)
	if !fok || !tok {
		return nil, false
	}
	fParts := strings.Fields(fs)
	tParts := strings.Fields(ts)
	if len(fParts) < 2 || len(fParts) != len(tParts) {
		return nil, false
	}
	toks := make([]Interpolator, len(fParts))
	for i := range fParts {
		interp, ok := NumericFactory(fParts[i], tParts[i], opts)
		if !ok {
			return nil, false
		}
		toks[i] = interp
	}
	return &tokensInterpolator{tokens: toks}, true
}
