package anim

import (
	"fmt"

	"github.com/cascadefx/anim/dom"
	"github.com/cascadefx/anim/ease"
	"github.com/cascadefx/anim/interpolate"
	"go.uber.org/zap"
)

// animKind is the animation-type taxonomy a property resolves against
// against: function, attribute, transform, css, or invalid.
type animKind uint8

const (
	kindFunction animKind = iota
	kindAttribute
	kindTransform
	kindCSS
	kindInvalidAnim
)

func (k animKind) String() string {
	switch k {
	case kindFunction:
		return "function"
	case kindAttribute:
		return "attribute"
	case kindTransform:
		return "transform"
	case kindCSS:
		return "css"
	default:
		return "invalid"
	}
}

func resolveAnimKind(target Target, prop string) (animKind, dom.PropertyKind) {
	if target.isFunction() {
		return kindFunction, 0
	}
	if target.Element == nil {
		return kindInvalidAnim, dom.KindInvalid
	}
	pk := dom.ResolveKind(target.Element, prop)
	switch pk {
	case dom.KindAttribute:
		return kindAttribute, pk
	case dom.KindTransform:
		return kindTransform, pk
	case dom.KindCSS:
		return kindCSS, pk
	default:
		return kindInvalidAnim, pk
	}
}

// PropertySpec is one property's animation endpoints: either a scalar
// destination (origin read live from the target) or an explicit
// [from, to] pair.
type PropertySpec struct {
	From    any
	To      any
	HasFrom bool
}

// To builds a PropertySpec whose origin is read live from the target.
func To(v any) PropertySpec {
	return PropertySpec{To: v}
}

// FromTo builds a PropertySpec with an explicit origin.
func FromTo(from, to any) PropertySpec {
	return PropertySpec{From: from, To: to, HasFrom: true}
}

// AnimateParams configures one animate() call. Properties holds every
// key besides the recognized control keys above.
type AnimateParams struct {
	Target Target

	Easing        ease.Func
	HasEasing     bool
	Duration      int64
	HasDuration   bool
	Delay         int64
	HasDelay      bool
	Release       int64
	HasRelease    bool
	Elasticity    float64
	HasElasticity bool
	Speed         float64
	HasSpeed      bool

	Properties map[string]PropertySpec
}

// PropertyApplier commits a frame's {property: value} map to a target.
// The default DOM-backed implementation dispatches per property through
// the recorded dom.PropertyKind; function targets use a trivial pass-through.
type PropertyApplier interface {
	Apply(props map[string]any) error
}

type funcApplier struct {
	fn TargetFunc
}

func (f funcApplier) Apply(props map[string]any) error {
	f.fn(props)
	return nil
}

type domApplier struct {
	el      *dom.Element
	kinds   map[string]dom.PropertyKind
	adapter dom.Adapter
	logger  *zap.SugaredLogger
}

func (d domApplier) Apply(props map[string]any) error {
	for name, v := range props {
		kind := d.kinds[name]
		if err := d.adapter.SetValue(d.el, name, kind, toDOMString(v)); err != nil {
			d.logger.Warnw("anim: unsupported dom write, skipping", "prop", name, "kind", kind.String(), "err", err)
		}
	}
	return nil
}

func toDOMString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// tween binds one property to an interpolator. An invalid tween
// contributes no frames but does not affect its siblings.
type tween struct {
	prop  string
	kind  animKind
	valid bool
	interp interpolate.Interpolator
}

// tweenGroup batches every tween of one animate() call sharing a target,
// gathers their per-frame values into one property map, and commits them
// in a single pass.
type tweenGroup struct {
	baseEntity

	target     Target
	tweens     []*tween
	applier    PropertyApplier
	easing     ease.Func
	elasticity float64
	logger     *zap.SugaredLogger
	awaitable  *awaitable
}

// newTweenGroup builds and validates every tween from params.Properties
// against target, using adapter to read live origins and dispatch
// commits. It never returns an error: unresolvable properties are marked
// invalid individually and logged. Callers are responsible
// for checking target.valid() beforehand — an unresolvable target
// selector must not attach any entity at all.
func newTweenGroup(name string, params AnimateParams, adapter dom.Adapter, logger *zap.SugaredLogger) *tweenGroup {
	g := &tweenGroup{}
	g.setSelf(g)
	g.name = name
	g.target = params.Target
	g.easing = params.Easing
	g.elasticity = params.Elasticity
	g.logger = logger
	g.awaitable = newAwaitable()
	g.tp.releaseCb = g.awaitable.resolve

	kinds := make(map[string]dom.PropertyKind, len(params.Properties))
	akinds := make(map[string]animKind, len(params.Properties))
	for prop := range params.Properties {
		ak, pk := resolveAnimKind(params.Target, prop)
		akinds[prop] = ak
		kinds[prop] = pk
	}

	if params.Target.isFunction() {
		g.applier = funcApplier{fn: params.Target.Func}
	} else if params.Target.Element != nil {
		g.applier = domApplier{el: params.Target.Element, kinds: kinds, adapter: adapter, logger: logger}
	}

	for prop, spec := range params.Properties {
		tw := &tween{prop: prop, kind: akinds[prop]}
		if tw.kind == kindInvalidAnim {
			tw.valid = false
			logger.Errorw("anim: invalid animation target for property", "prop", prop)
			g.tweens = append(g.tweens, tw)
			continue
		}

		from := spec.From
		if !spec.HasFrom {
			if tw.kind == kindFunction {
				logger.Warnw("anim: function target property has no explicit origin", "prop", prop)
			} else {
				v, err := adapter.GetValue(params.Target.Element, prop, kinds[prop])
				if err != nil {
					logger.Warnw("anim: failed to read live origin", "prop", prop, "err", err)
				}
				from = v
			}
		}

		interp, ok := interpolate.Resolve(from, spec.To, interpolate.Options{
			FromIsLive: !spec.HasFrom,
			PropName:   prop,
			Kind:       tw.kind.String(),
		})
		if !ok {
			tw.valid = false
			logger.Errorw("anim: no interpolator matched property", "prop", prop)
		} else {
			tw.valid = true
			tw.interp = interp
		}
		g.tweens = append(g.tweens, tw)
	}
	return g
}

// displayFrame implements the per-frame commit algorithm.
func (g *tweenGroup) displayFrame(time, targetTime int64, forward bool) {
	tp := &g.tp
	if time >= tp.delayedStartTime && time <= tp.endTime {
		if progression, ok := selectProgression(tp, time, targetTime, forward); ok {
			g.commit(progression)
		}
	}
	g.checkDoneAndRelease(time, forward)
}

// selectProgression picks this frame's progression per the frame-commit
// rules below, or reports that no commit is due.
func selectProgression(tp *timePoints, time, targetTime int64, forward bool) (int64, bool) {
	switch {
	case time == targetTime && time <= tp.doneTime:
		return time - tp.delayedStartTime, true
	case forward && targetTime >= tp.doneTime && time == tp.doneTime:
		return time - tp.delayedStartTime, true
	case !forward && targetTime <= tp.delayedStartTime && time == tp.delayedStartTime:
		return 0, true
	default:
		return 0, false
	}
}

func (g *tweenGroup) commit(progression int64) {
	ratio := 1.0
	if g.tp.duration > 0 {
		ratio = float64(progression) / float64(g.tp.duration)
	}
	props := make(map[string]any, len(g.tweens))
	for _, tw := range g.tweens {
		if !tw.valid {
			continue
		}
		eased := g.easing(ratio, g.elasticity)
		v, ok := tw.interp.Value(eased)
		if !ok {
			continue
		}
		props[tw.prop] = v
	}
	if len(props) == 0 || g.applier == nil {
		return
	}
	if err := g.applier.Apply(props); err != nil {
		g.logger.Warnw("anim: apply properties failed", "err", err)
	}
}
