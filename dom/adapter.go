package dom

import "fmt"

// PropertyKind classifies how a property name resolves against a target
// (the "function" case lives outside this package, since it has no
// Element at all).
type PropertyKind uint8

const (
	KindAttribute PropertyKind = iota
	KindTransform
	KindCSS
	KindInvalid
)

func (k PropertyKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindTransform:
		return "transform"
	case KindCSS:
		return "css"
	default:
		return "invalid"
	}
}

// ResolveKind classifies prop against el: a DOM element with prop present
// at all wins first (any value, even ""); an SVG element additionally
// requires the value be non-empty, approximating a truthy JS property
// read. Either way this beats the known transform-function set, with CSS
// as the catch-all.
func ResolveKind(el *Element, prop string) PropertyKind {
	if el == nil {
		return KindInvalid
	}
	if v, ok := el.Attributes[prop]; ok && (!el.SVG || v != "") {
		return KindAttribute
	}
	if TransformFunctions[prop] {
		return KindTransform
	}
	return KindCSS
}

// Adapter reads and writes element properties across the three DOM-backed
// kinds. It backs anim's default PropertyApplier for element targets (see
// anim.PropertyApplier); function targets use a different strategy.
type Adapter struct{}

// GetValue reads prop's current string value, used to resolve an
// animate() call's implicit "from" endpoint.
func (Adapter) GetValue(el *Element, prop string, kind PropertyKind) (string, error) {
	if el == nil {
		return "", fmt.Errorf("dom: GetValue on nil element")
	}
	switch kind {
	case KindCSS:
		return el.Style[prop], nil
	case KindAttribute:
		return el.Attributes[prop], nil
	case KindTransform:
		return el.Transform.Get(prop), nil
	default:
		return "", fmt.Errorf("dom: unsupported read kind for %q", prop)
	}
}

// SetValue commits value to prop. An unsupported kind is a logged no-op
// at the caller (see anim's diagnostics), so SetValue itself just reports
// the error and lets the caller decide whether to log it.
func (Adapter) SetValue(el *Element, prop string, kind PropertyKind, value string) error {
	if el == nil {
		return fmt.Errorf("dom: SetValue on nil element")
	}
	switch kind {
	case KindCSS:
		el.Style[prop] = value
	case KindAttribute:
		el.Attributes[prop] = value
	case KindTransform:
		el.Transform.Set(prop, value)
	default:
		return fmt.Errorf("dom: unsupported write kind for %q", prop)
	}
	return nil
}
