package dom

// TransformFunctions is the known transform-function set: property names
// that resolve to animation type "transform" rather than "css". Adapted
// from a scene node's transform fields (X/Y/ScaleX/ScaleY/Rotation/
// SkewX/SkewY), renamed to their CSS transform-function spellings.
var TransformFunctions = map[string]bool{
	"translateX": true,
	"translateY": true,
	"scaleX":     true,
	"scaleY":     true,
	"scale":      true,
	"rotate":     true,
	"skewX":      true,
	"skewY":      true,
}

// transformDefault is the value a transform function reads as before it
// has ever been written, matching CSS identity semantics (scale defaults
// to 1, everything else to 0).
func transformDefault(name string) string {
	switch name {
	case "scaleX", "scaleY", "scale":
		return "1"
	default:
		return "0"
	}
}

// Transform is an ordered name -> argument map: parsing the element's
// transform string into it, updating one entry, and re-serializing
// preserves every other function's position and argument — a
// string-based sibling-preserving composition, distinct from an
// affine-matrix scene transform (which solves matrix composition for
// rendering, not string round-trip for a CSS attribute).
type Transform struct {
	order []string
	args  map[string]string
}

// Get returns the current argument for a transform function, or its
// identity default if it has never been set.
func (t *Transform) Get(name string) string {
	if t.args == nil {
		return transformDefault(name)
	}
	if v, ok := t.args[name]; ok {
		return v
	}
	return transformDefault(name)
}

// Set updates or inserts a transform function's argument, preserving the
// position of any function already present and appending new ones at
// the end, so other transform functions on the same element survive a
// write to one of them.
func (t *Transform) Set(name, value string) {
	if t.args == nil {
		t.args = make(map[string]string)
	}
	if _, exists := t.args[name]; !exists {
		t.order = append(t.order, name)
	}
	t.args[name] = value
}

// Serialize renders the transform list in insertion order, e.g.
// "translateX(10px) scale(1.2)".
func (t *Transform) Serialize() string {
	out := ""
	for i, name := range t.order {
		if i > 0 {
			out += " "
		}
		out += name + "(" + t.args[name] + ")"
	}
	return out
}
