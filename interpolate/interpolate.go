// Package interpolate turns a (from, to) pair of property values into an
// Interpolator that yields intermediate values across an eased
// progression.
package interpolate

// Interpolator yields a value for one eased progression in [0, 1].
// easedProgression may exceed [0, 1] slightly for overshoot easings
// (elastic, back); implementations should not panic on that, only
// extrapolate or clamp as appropriate to their own value space.
type Interpolator interface {
	Value(easedProgression float64) (any, bool)
}

// Options carries the context a Factory needs beyond the two endpoint
// values: whether from was read live off the DOM (as opposed to supplied
// explicitly), the property name, and its resolved kind ("css",
// "attribute", "transform", or "function" for a function target).
type Options struct {
	FromIsLive bool
	PropName   string
	Kind       string
}

// Factory attempts to build an Interpolator for (from, to); ok is false
// if this factory's value shape doesn't match.
type Factory func(from, to any, opts Options) (Interpolator, bool)

// Candidates returns the interpolator factories in match-order,
// most-specific first, ending in Instant (which never fails to match).
func Candidates() []Factory {
	return []Factory{
		NumericFactory,
		ColorFactory,
		TokensFactory,
		InstantFactory,
	}
}

// Resolve tries each candidate factory in order and returns the first
// match. Since InstantFactory always matches, Resolve never returns
// ok=false.
func Resolve(from, to any, opts Options) (Interpolator, bool) {
	for _, f := range Candidates() {
		if interp, ok := f(from, to, opts); ok {
			return interp, true
		}
	}
	return nil, false
}
