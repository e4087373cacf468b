package main

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/cascadefx/anim"
	"github.com/cascadefx/anim/cmd/animrunner/internal/config"
	"github.com/cascadefx/anim/dom"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func immediateRAF(cb func()) {
	cb()
}

// attachAll attaches every element into scope, the way main() does before
// playing a script whose blocks select by class or tag.
func attachAll(scope *dom.Element, elements map[string]*dom.Element) {
	for _, el := range elements {
		scope.AddChild(el)
	}
}

func TestBuildInstructionSequenceRunsChildrenInOrder(t *testing.T) {
	elements := buildElements([]config.ElementConfig{{Name: "box", Tag: "div"}})

	root := config.BlockConfig{
		Kind: "sequence",
		Children: []config.BlockConfig{
			{Kind: "tween", Target: "box", DurationMS: 32, Properties: map[string]any{"opacity": 1.0}},
			{Kind: "delay", DurationMS: 16},
		},
	}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)

	final, err := player.Play(anim.PlayArguments{RAF: immediateRAF})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if final != 48 {
		t.Errorf("final = %d, want 48", final)
	}
	if got := elements["box"].Style["opacity"]; got != "1" {
		t.Errorf("box opacity = %q, want %q", got, "1")
	}
}

func TestBuildInstructionParallelRunsTracksConcurrently(t *testing.T) {
	elements := buildElements([]config.ElementConfig{
		{Name: "a", Tag: "div"},
		{Name: "b", Tag: "div"},
	})

	root := config.BlockConfig{
		Kind: "parallel",
		Children: []config.BlockConfig{
			{Kind: "tween", Target: "a", DurationMS: 32, Properties: map[string]any{"x": 1.0}},
			{Kind: "tween", Target: "b", DurationMS: 16, Properties: map[string]any{"x": 1.0}},
		},
	}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)

	final, err := player.Play(anim.PlayArguments{RAF: immediateRAF})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if final != 32 {
		t.Errorf("final = %d, want 32 (max of the two tracks)", final)
	}
}

func TestBuildInstructionUnknownTargetSkipsBlockWithoutFailing(t *testing.T) {
	elements := buildElements(nil)

	root := config.BlockConfig{Kind: "tween", Target: "missing", DurationMS: 16, Properties: map[string]any{"x": 1.0}}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)

	if _, err := player.Play(anim.PlayArguments{RAF: immediateRAF}); err != nil {
		t.Fatalf("Play: %v", err)
	}
}

func TestBuildInstructionUnknownKindSkipsBlockWithoutFailing(t *testing.T) {
	elements := buildElements(nil)
	root := config.BlockConfig{Kind: "bogus"}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)

	final, err := player.Play(anim.PlayArguments{RAF: immediateRAF})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if final != 0 {
		t.Errorf("final = %d, want 0 for an empty program", final)
	}
}

func TestBuildInstructionSelectClassAnimatesEveryMatch(t *testing.T) {
	elements := buildElements([]config.ElementConfig{
		{Name: "a", Tag: "div"},
		{Name: "b", Tag: "div"},
		{Name: "c", Tag: "div"},
	})
	elements["a"].Classes = append(elements["a"].Classes, "glow")
	elements["b"].Classes = append(elements["b"].Classes, "glow")

	root := config.BlockConfig{Kind: "tween", SelectClass: "glow", DurationMS: 16, Properties: map[string]any{"opacity": 1.0}}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)
	attachAll(player.Scope(), elements)

	if _, err := player.Play(anim.PlayArguments{RAF: immediateRAF}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if elements["a"].Style["opacity"] != "1" || elements["b"].Style["opacity"] != "1" {
		t.Errorf("expected both glow elements animated, got a=%q b=%q", elements["a"].Style["opacity"], elements["b"].Style["opacity"])
	}
	if _, ok := elements["c"].Style["opacity"]; ok {
		t.Error("expected the non-matching element to be left untouched")
	}
}

func TestBuildInstructionSelectTagAnimatesEveryMatch(t *testing.T) {
	elements := buildElements([]config.ElementConfig{
		{Name: "a", Tag: "circle"},
		{Name: "b", Tag: "rect"},
	})

	root := config.BlockConfig{Kind: "tween", SelectTag: "circle", DurationMS: 16, Properties: map[string]any{"r": 5.0}}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)
	attachAll(player.Scope(), elements)

	if _, err := player.Play(anim.PlayArguments{RAF: immediateRAF}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if elements["a"].Style["r"] != "5" {
		t.Errorf("a.Style[r] = %q, want 5", elements["a"].Style["r"])
	}
	if _, ok := elements["b"].Style["r"]; ok {
		t.Error("expected the non-matching tag to be left untouched")
	}
}

func TestBuildInstructionSelectRandomPicksExactlyOne(t *testing.T) {
	elements := buildElements([]config.ElementConfig{
		{Name: "a", Tag: "div"},
		{Name: "b", Tag: "div"},
		{Name: "c", Tag: "div"},
	})
	for _, name := range []string{"a", "b", "c"} {
		elements[name].Classes = append(elements[name].Classes, "pick")
	}

	root := config.BlockConfig{Kind: "tween", SelectClass: "pick", SelectRandom: true, DurationMS: 16, Properties: map[string]any{"opacity": 1.0}}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)
	attachAll(player.Scope(), elements)

	if _, err := player.Play(anim.PlayArguments{RAF: immediateRAF}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	touched := 0
	for _, name := range []string{"a", "b", "c"} {
		if _, ok := elements[name].Style["opacity"]; ok {
			touched++
		}
	}
	if touched != 1 {
		t.Errorf("touched = %d elements, want exactly 1 with select_random", touched)
	}
}

func TestBuildInstructionSelectorMatchingNothingSkipsWithoutFailing(t *testing.T) {
	elements := buildElements([]config.ElementConfig{{Name: "a", Tag: "div"}})
	root := config.BlockConfig{Kind: "tween", SelectClass: "missing", DurationMS: 16, Properties: map[string]any{"x": 1.0}}

	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)
	attachAll(player.Scope(), elements)

	if _, err := player.Play(anim.PlayArguments{RAF: immediateRAF}); err != nil {
		t.Fatalf("Play: %v", err)
	}
}

func TestResolveDurationDrawsFromRangeWhenSet(t *testing.T) {
	elements := buildElements(nil)
	root := config.BlockConfig{Kind: "delay", DurationMinMS: 100, DurationMaxMS: 200}
	instr := buildInstruction(root, elements, testLogger(), testRand())
	player := anim.NewPlayer(instr)

	final, err := player.Play(anim.PlayArguments{RAF: immediateRAF})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if final < 96 || final > 208 {
		t.Errorf("final = %d, want roughly within [100,200] once quantized to frames", final)
	}
}

func TestDescribeTreeRendersNestedKinds(t *testing.T) {
	root := config.BlockConfig{
		Kind: "sequence",
		Children: []config.BlockConfig{
			{Kind: "tween", Target: "box"},
			{Kind: "delay"},
		},
	}
	got := describeTree(root)
	want := "sequence[tween(box), delay()]"
	if got != want {
		t.Errorf("describeTree = %q, want %q", got, want)
	}
}
