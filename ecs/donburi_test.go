package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
)

type spriteComponent struct {
	X float64
	Y float64
}

var spriteComponentType = donburi.NewComponentType[spriteComponent]()

func TestComponentTargetWritesFieldsOntoComponent(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(spriteComponentType)
	entry := world.Entry(entity)

	target := ComponentTarget(entry, spriteComponentType, func(c *spriteComponent, props map[string]any) {
		if x, ok := props["x"].(float64); ok {
			c.X = x
		}
		if y, ok := props["y"].(float64); ok {
			c.Y = y
		}
	})

	target.Func(map[string]any{"x": 10.0, "y": 20.0})

	got := spriteComponentType.Get(entry)
	if got.X != 10 || got.Y != 20 {
		t.Errorf("component = %+v, want X=10 Y=20", *got)
	}
}

func TestComponentTargetIgnoresUnmappedProps(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create(spriteComponentType)
	entry := world.Entry(entity)

	target := ComponentTarget(entry, spriteComponentType, func(c *spriteComponent, props map[string]any) {
		if x, ok := props["x"].(float64); ok {
			c.X = x
		}
	})
	target.Func(map[string]any{"unrelated": "value"})

	got := spriteComponentType.Get(entry)
	if got.X != 0 {
		t.Errorf("X = %v, want unchanged 0", got.X)
	}
}

func TestComponentTargetIsNoopForNilEntry(t *testing.T) {
	called := false
	target := ComponentTarget[spriteComponent](nil, spriteComponentType, func(c *spriteComponent, props map[string]any) {
		called = true
	})
	target.Func(map[string]any{"x": 1.0})
	if called {
		t.Error("expected set not to be called for a nil entry")
	}
}
