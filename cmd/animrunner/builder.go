package main

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/cascadefx/anim"
	"github.com/cascadefx/anim/cmd/animrunner/internal/config"
	"github.com/cascadefx/anim/dom"
)

// buildElements instantiates one dom.Element per entry in cfg, keyed by
// name. Callers must attach every value onto a Player's scope (see
// Player.Scope) before playing, or Select/SelectAll-driven blocks will
// never find them.
func buildElements(cfg []config.ElementConfig) map[string]*dom.Element {
	elements := make(map[string]*dom.Element, len(cfg))
	for _, e := range cfg {
		if e.SVG {
			elements[e.Name] = dom.NewSVGElement(e.Name, e.Tag)
		} else {
			elements[e.Name] = dom.NewElement(e.Name, e.Tag)
		}
	}
	return elements
}

// buildProperties converts a script block's raw property map into the
// PropertySpec map Animate/Set expect. Every declared destination is
// read live from the target (spec's animate() "to"-only shorthand); a
// script that needs an explicit origin isn't expressible from TOML alone.
func buildProperties(raw map[string]any) map[string]anim.PropertySpec {
	props := make(map[string]anim.PropertySpec, len(raw))
	for name, v := range raw {
		props[name] = anim.To(v)
	}
	return props
}

// resolveTargets picks the elements a tween/animate/set block drives.
// Target names one declared element directly; SelectClass/SelectTag
// instead query every element in tl's scope carrying that class or tag,
// so a script can drive a whole group without naming each member.
// SelectRandom then narrows a multi-element selection down to one,
// chosen via dom.Random.
func resolveTargets(b config.BlockConfig, tl *anim.Timeline, elements map[string]*dom.Element, logger *zap.SugaredLogger, rng *rand.Rand) []*dom.Element {
	var matches []*dom.Element
	switch {
	case b.Target != "":
		el, ok := elements[b.Target]
		if !ok {
			logger.Warnw("animrunner: block targets an unknown element, skipping", "target", b.Target)
			return nil
		}
		matches = []*dom.Element{el}
	case b.SelectClass != "":
		matches = tl.SelectAll(dom.ByClass(b.SelectClass))
	case b.SelectTag != "":
		matches = tl.SelectAll(dom.ByTag(b.SelectTag))
	default:
		logger.Warnw("animrunner: block has neither a target nor a selector, skipping")
		return nil
	}
	if len(matches) == 0 {
		logger.Warnw("animrunner: selector matched no elements, skipping", "class", b.SelectClass, "tag", b.SelectTag)
		return nil
	}
	if b.SelectRandom && len(matches) > 1 {
		return []*dom.Element{dom.Random(rng, matches)}
	}
	return matches
}

// resolveDuration draws a random duration from [DurationMinMS,
// DurationMaxMS) via tl.Random when both are set, otherwise falls back
// to the block's fixed DurationMS.
func resolveDuration(b config.BlockConfig, tl *anim.Timeline) int64 {
	if b.DurationMaxMS > b.DurationMinMS {
		return int64(tl.Random(float64(b.DurationMinMS), float64(b.DurationMaxMS)))
	}
	return b.DurationMS
}

// buildInstruction compiles one script block into the InstructionFunc a
// Timeline runs. Composite kinds recurse into their children; leaf kinds
// attach directly to the timeline they're handed.
func buildInstruction(b config.BlockConfig, elements map[string]*dom.Element, logger *zap.SugaredLogger, rng *rand.Rand) anim.InstructionFunc {
	switch b.Kind {
	case "sequence":
		children := buildChildren(b.Children, elements, logger, rng)
		return func(tl *anim.Timeline) {
			tl.Await(tl.Sequence(children...))
		}
	case "parallel":
		children := buildChildren(b.Children, elements, logger, rng)
		return func(tl *anim.Timeline) {
			tl.Await(tl.Parallelize(children...))
		}
	case "group":
		children := buildChildren(b.Children, elements, logger, rng)
		return func(tl *anim.Timeline) {
			tl.Await(tl.Group(func(g *anim.Timeline) {
				for _, c := range children {
					c(g)
				}
			}))
		}
	case "tween", "animate", "set":
		return func(tl *anim.Timeline) {
			targets := resolveTargets(b, tl, elements, logger, rng)
			if len(targets) == 0 {
				return
			}
			duration := resolveDuration(b, tl)
			tracks := make([]anim.InstructionFunc, len(targets))
			for i, el := range targets {
				el := el
				params := anim.AnimateParams{
					Target:      anim.ElementTarget(el),
					Duration:    duration,
					HasDuration: true,
					Delay:       b.DelayMS,
					HasDelay:    b.DelayMS > 0,
					Properties:  buildProperties(b.Properties),
				}
				if b.Kind == "set" {
					tracks[i] = func(g *anim.Timeline) { g.Await(g.Set(params)) }
				} else {
					tracks[i] = func(g *anim.Timeline) { g.Await(g.Animate(params)) }
				}
			}
			if len(tracks) == 1 {
				tracks[0](tl)
				return
			}
			tl.Await(tl.Parallelize(tracks...))
		}
	case "delay":
		return func(tl *anim.Timeline) { tl.Await(tl.Delay(resolveDuration(b, tl))) }
	default:
		logger.Warnw("animrunner: unknown block kind, skipping", "kind", b.Kind)
		return func(tl *anim.Timeline) {}
	}
}

func buildChildren(children []config.BlockConfig, elements map[string]*dom.Element, logger *zap.SugaredLogger, rng *rand.Rand) []anim.InstructionFunc {
	out := make([]anim.InstructionFunc, len(children))
	for i, c := range children {
		out[i] = buildInstruction(c, elements, logger, rng)
	}
	return out
}

// describeTree renders the compiled block tree as a single line, logged
// once at startup so the running program is traceable back to its script.
func describeTree(b config.BlockConfig) string {
	label := b.Target
	if label == "" {
		label = b.SelectClass + b.SelectTag
	}
	if len(b.Children) == 0 {
		return fmt.Sprintf("%s(%s)", b.Kind, label)
	}
	desc := b.Kind + "["
	for i, c := range b.Children {
		if i > 0 {
			desc += ", "
		}
		desc += describeTree(c)
	}
	return desc + "]"
}
