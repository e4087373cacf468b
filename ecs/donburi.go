// Package ecs bridges the timeline engine into a Donburi ECS world.
package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/cascadefx/anim"
)

// FieldSetter applies one frame's committed {property: value} map onto
// component, a pointer to the caller's own component struct fetched from
// the entry via componentType. Callers supply this because only they
// know which field(s) of T each animated property name maps to.
type FieldSetter[T any] func(component *T, props map[string]any)

// ComponentTarget adapts a Donburi component field into an anim.Target,
// so an Animate call can drive gameplay state the same way
// anim.ElementTarget drives a dom.Element.
func ComponentTarget[T any](entry *donburi.Entry, componentType *donburi.ComponentType[T], set FieldSetter[T]) anim.Target {
	return anim.FuncTarget(func(props map[string]any) {
		if entry == nil {
			return
		}
		component := componentType.Get(entry)
		if component == nil {
			return
		}
		set(component, props)
	})
}
