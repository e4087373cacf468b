package anim

import "github.com/cascadefx/anim/dom"

// TargetFunc receives one frame's committed {property: value} map for a
// function target, in place of writing onto a dom.Element.
type TargetFunc func(props map[string]any)

// Target is either a resolved dom.Element or a plain function; exactly
// one of the two fields is set. A Tween's target is fixed for its
// lifetime.
type Target struct {
	Element *dom.Element
	Func    TargetFunc
}

// ElementTarget wraps a dom.Element as an animate() target.
func ElementTarget(el *dom.Element) Target {
	return Target{Element: el}
}

// FuncTarget wraps a callback as an animate() target.
func FuncTarget(fn TargetFunc) Target {
	return Target{Func: fn}
}

func (t Target) isFunction() bool {
	return t.Func != nil
}

func (t Target) valid() bool {
	return t.Element != nil || t.Func != nil
}
