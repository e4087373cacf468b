// Package ecs adapts anim's function-target mechanism to Donburi, an
// archetype-based ECS for Go (github.com/yohamta/donburi). ComponentTarget
// (with its FieldSetter callback type) is the entry point: it lets a
// Timeline's Animate call write committed
// frame values directly onto a field of an entity's component, in place
// of a dom.Element.
//
// This is a nested module (its own go.mod, replace-directed at the
// parent) so that consumers of the root anim module never pull in
// Donburi unless they import anim/ecs directly.
package ecs
