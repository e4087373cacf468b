package anim

import (
	"fmt"
	"math/rand"

	"github.com/cascadefx/anim/dom"
	"github.com/cascadefx/anim/ease"
	"go.uber.org/zap"
)

// InstructionFunc is a timeline's user-supplied body: it runs once,
// attaching whatever child entities it needs, and may suspend mid-body
// by calling tl.Await on another block's Awaitable. It collapses a
// thenable-returning completion signal into an explicit blocking Await
// inside the body, since Go has no native async/await.
type InstructionFunc func(tl *Timeline)

// Timeline is the container entity: it runs an instruction function,
// records a marker index of child start/end events, and seeks forward
// and backward through them. Unlike the other entity kinds it does not
// embed baseEntity — its completion model is children-scan-driven
// (checkState) rather than doneTime arithmetic, so it carries its own
// minimal set of entity-facing fields instead.
type Timeline struct {
	name   string
	parent container
	nxt    entity

	delay            int64
	release          int64
	startTime        int64
	delayedStartTime int64

	running      bool
	startReg     bool
	endReg       bool
	doneFlag     bool
	releasedFlag bool

	releaseCb     func()
	releaseCbUsed bool
	doneCb        func(lastTargetTime int64)
	doneCbUsed    bool

	rl      runningList
	markers markerList

	currentTime       int64
	lastTargetTime    int64
	lastTargetForward bool
	moveTarget        int64
	endTime           int64

	tlFunctionCalled   bool
	tlFunctionComplete bool
	instruction        InstructionFunc
	coro               *coroutine
	curYielder         *yielder

	settings *settings
	scope    *dom.Element
	pipe     *asyncPipe

	awaitable *awaitable
}

func newTimeline(name string, instr InstructionFunc, s *settings, scope *dom.Element, pipe *asyncPipe) *Timeline {
	tl := &Timeline{
		name:              name,
		instruction:       instr,
		settings:          s,
		scope:             scope,
		pipe:              pipe,
		currentTime:       -1,
		lastTargetForward: true,
	}
	tl.awaitable = newAwaitable()
	tl.releaseCb = tl.awaitable.resolve
	return tl
}

// NewRootTimeline constructs an unattached top-level timeline; used
// directly by Player and by tests that want to drive a timeline without
// a surrounding player.
func NewRootTimeline(instr InstructionFunc) *Timeline {
	root := rootDefaults()
	return newTimeline("root", instr, root, dom.NewElement("root", "div"), &asyncPipe{})
}

// --- entity-facing methods (a Timeline can itself be a child, e.g. via Group) ---

func (tl *Timeline) attach(parent container) {
	if tl.parent != nil {
		return
	}
	tl.parent = parent
	parent.addEntity(tl)
}

func (tl *Timeline) init(startTime int64) {
	if tl.delay < 0 {
		tl.delay = 0
	}
	tl.startTime = startTime
	tl.delayedStartTime = startTime + tl.delay
}

func (tl *Timeline) isReleased() bool         { return tl.releasedFlag }
func (tl *Timeline) isDone() bool             { return tl.doneFlag }
func (tl *Timeline) startRegistered() bool    { return tl.startReg }
func (tl *Timeline) setStartRegistered()      { tl.startReg = true }
func (tl *Timeline) endRegistered() bool      { return tl.endReg }
func (tl *Timeline) setEndRegistered()        { tl.endReg = true }
func (tl *Timeline) isRunning() bool          { return tl.running }
func (tl *Timeline) setRunning(v bool)        { tl.running = v }
func (tl *Timeline) setNext(e entity)         { tl.nxt = e }
func (tl *Timeline) next() entity             { return tl.nxt }

// checkDoneAndRelease is a no-op for Timeline: its own completion is
// driven entirely by checkState, since a container's "done" depends on
// its children, not on a fixed doneTime.
func (tl *Timeline) checkDoneAndRelease(time int64, forward bool) {}

// --- container-facing methods ---

func (tl *Timeline) now() int64 { return tl.currentTime }

// addEntity registers e in the marker index and running list, then
// gives it its first frame.
func (tl *Timeline) addEntity(e entity) {
	if !e.startRegistered() {
		e.init(tl.currentTime)
		tl.markers.addStart(tl.currentTime, e)
		e.setStartRegistered()
	}
	tl.rl.append(e)
	e.setRunning(true)
	if tl.pipe != nil {
		tl.pipe.bump()
	}
	e.displayFrame(tl.currentTime, tl.lastTargetTime, tl.lastTargetForward)
}

// removeEntity unregisters e: the end-marker
// registration only happens on forward traversal, but the unlink itself
// happens either way (backward traversal removes entities whose start
// marker is being passed).
func (tl *Timeline) removeEntity(e entity) {
	if tl.lastTargetForward && !e.endRegistered() {
		tl.markers.addEnd(tl.currentTime, e)
		e.setEndRegistered()
	}
	tl.rl.remove(e)
	e.setRunning(false)
	if tl.pipe != nil {
		tl.pipe.bump()
	}
}

// checkState detects that this timeline's instruction function has
// finished and every entity it attached has released, and releases
// this timeline in turn.
func (tl *Timeline) checkState() {
	if !(tl.tlFunctionComplete && tl.lastTargetForward) {
		return
	}

	allReleased := true
	tl.rl.forEach(func(e entity) {
		if !e.isReleased() {
			allReleased = false
		}
	})
	count := tl.rl.count

	if allReleased && !tl.releasedFlag {
		tl.releasedFlag = true
		if tl.releaseCb != nil && !tl.releaseCbUsed {
			tl.releaseCbUsed = true
			tl.releaseCb()
		}
	}

	justDone := false
	if count == 0 && !tl.doneFlag {
		tl.doneFlag = true
		justDone = true
		if tl.doneCb != nil && !tl.doneCbUsed {
			tl.doneCbUsed = true
			tl.doneCb(tl.lastTargetTime)
		}
	}

	if (tl.doneFlag || justDone) && tl.releasedFlag && tl.parent != nil {
		tl.parent.removeEntity(tl)
		tl.parent.checkState()
	}
}

// loadEntities splices entities in and out at time's marker: forward
// traversal starts startEntities and ends endEntities; backward traversal
// swaps those roles. Reverse index order preserves insertion-order
// semantics for ties.
func (tl *Timeline) loadEntities(time int64, forward bool) {
	m := tl.markers.getMarker(time)
	if m == nil {
		return
	}
	startList, endList := m.startEntities, m.endEntities
	if !forward {
		startList, endList = endList, startList
	}
	for i := len(startList) - 1; i >= 0; i-- {
		if e := startList[i]; !e.isRunning() {
			tl.addEntity(e)
		}
	}
	for i := len(endList) - 1; i >= 0; i-- {
		if e := endList[i]; e.isRunning() {
			tl.removeEntity(e)
		}
	}
}

// displayFrame runs the instruction function on its first call, then
// steps every running child and reconciles the running list against
// time's marker.
func (tl *Timeline) displayFrame(time, targetTime int64, forward bool) {
	tl.currentTime = time
	tl.lastTargetTime = targetTime
	tl.lastTargetForward = forward

	if !tl.tlFunctionCalled {
		tl.tlFunctionCalled = true
		tl.startInstruction()
	}
	tl.pumpCoroutine()

	tl.rl.forEach(func(e entity) {
		e.displayFrame(time, targetTime, forward)
	})

	tl.loadEntities(time, forward)
	tl.checkState()
}

func (tl *Timeline) startInstruction() {
	if tl.instruction == nil {
		tl.tlFunctionComplete = true
		return
	}
	tl.coro = startCoroutine(func(y *yielder) {
		tl.curYielder = y
		tl.instruction(tl)
	})
}

func (tl *Timeline) pumpCoroutine() {
	if tl.coro == nil || tl.tlFunctionComplete {
		return
	}
	tl.coro.step()
	if tl.coro.finished {
		tl.tlFunctionComplete = true
		if tl.pipe != nil {
			tl.pipe.bump()
		}
		tl.checkState()
	}
}

// pumpTree steps this timeline's coroutine and recurses into every
// running child that itself hosts a coroutine (nested Timelines and
// PlayerEntity's wrapped Timeline), giving the whole subtree's pending
// instruction functions a chance to make progress. Passed as the driver
// to asyncPipe.exhaust.
func (tl *Timeline) pumpTree() {
	tl.pumpCoroutine()
	tl.rl.forEach(func(e entity) {
		switch child := e.(type) {
		case *Timeline:
			child.pumpTree()
		case *PlayerEntity:
			child.pumpTree()
		}
	})
}

// nextMarkerPosition is a fast-pathed, recursive
// search: a fast path when the caller is stepping exactly one frame, else
// the nearest of every running child's own next marker and this
// timeline's own marker list, strictly past time in the search direction.
func (tl *Timeline) nextMarkerPosition(time int64, forward bool) (int64, bool) {
	if abs64(time-tl.currentTime) == FrameMS {
		return time, true
	}

	found := false
	var best int64
	consider := func(candidate int64, ok bool) {
		if !ok {
			return
		}
		if !found {
			best, found = candidate, true
			return
		}
		if forward && candidate < best {
			best = candidate
		} else if !forward && candidate > best {
			best = candidate
		}
	}

	tl.rl.forEach(func(e entity) {
		c, ok := e.nextMarkerPosition(time, forward)
		consider(c, ok)
	})
	c, ok := tl.markers.nearest(time, forward)
	consider(c, ok)

	return best, found
}

// Move seeks this timeline to timeTarget frame by frame. Only the root
// timeline of a Player is normally driven this way; nested timelines
// advance because their parent's displayFrame steps them.
func (tl *Timeline) Move(timeTarget int64) error {
	if timeTarget == tl.currentTime {
		return nil
	}
	forward := timeTarget > tl.currentTime
	tl.moveTarget = timeTarget

	drain := func() error {
		if tl.pipe == nil {
			return nil
		}
		return tl.pipe.exhaust(tl.pumpTree)
	}

	for tl.currentTime != tl.moveTarget {
		var nextTarget int64
		if tl.currentTime < 0 {
			nextTarget = maxI64(0, tl.startTime)
		} else {
			if forward != tl.lastTargetForward && tl.markers.getMarker(tl.currentTime) != nil {
				tl.displayFrame(tl.currentTime, tl.currentTime, forward)
				if err := drain(); err != nil {
					return err
				}
			}
			nt, ok := tl.nextMarkerPosition(tl.currentTime, forward)
			if !ok || nt == tl.currentTime {
				tl.endTime = tl.currentTime
				tl.moveTarget = tl.currentTime
				break
			}
			nextTarget = nt
		}

		if forward && nextTarget > timeTarget {
			nextTarget = timeTarget
		} else if !forward && nextTarget < timeTarget {
			nextTarget = timeTarget
		}

		tl.displayFrame(nextTarget, timeTarget, forward)
		if err := drain(); err != nil {
			return err
		}
	}
	return nil
}

// --- DSL surface ---

// Await suspends the running instruction function until aw resolves. A
// no-op outside an instruction function's own goroutine.
func (tl *Timeline) Await(aw Awaitable) {
	if tl.curYielder == nil || aw.inner == nil {
		return
	}
	tl.curYielder.await(aw.inner)
}

func alreadyResolved() *awaitable {
	return &awaitable{doneFlag: true}
}

// Animate creates and attaches a TweenGroup built from params, returning
// an Awaitable that resolves once the group releases.
func (tl *Timeline) Animate(params AnimateParams) Awaitable {
	logger := tl.settings.getLogger()
	if !params.Target.valid() {
		logger.Warnw("anim: animate() called with an unresolved target", "name", tl.name)
		return Awaitable{inner: alreadyResolved()}
	}

	s := tl.settings
	if !params.HasEasing {
		params.Easing = s.getEasing()
	}
	if !params.HasDuration {
		params.Duration = s.getDuration()
	}
	if !params.HasDelay {
		params.Delay = s.getDelay()
	}
	if !params.HasRelease {
		params.Release = s.getRelease()
	}
	if !params.HasElasticity {
		params.Elasticity = s.getElasticity()
	}
	speed := s.getSpeed()
	if params.HasSpeed {
		speed = params.Speed
	}

	params.Duration = adjustDuration(params.Duration, speed)
	params.Delay = adjustDuration(params.Delay, speed)
	params.Release = adjustDuration(params.Release, speed)
	params.Release = clampRelease(params.Release, params.Duration)

	g := newTweenGroup(fmt.Sprintf("%s#animate", tl.name), params, dom.Adapter{}, logger)
	g.tp.delay = params.Delay
	g.tp.release = params.Release
	g.tp.duration = params.Duration
	g.attach(tl)
	return Awaitable{inner: g.awaitable}
}

// Delay attaches a pure time-filler entity for ms (quantized and scaled
// by the current speed setting).
func (tl *Timeline) Delay(ms int64) Awaitable {
	speed := tl.settings.getSpeed()
	d := newDelay(fmt.Sprintf("%s#delay", tl.name), adjustDuration(ms, speed))
	aw := newAwaitable()
	d.tp.releaseCb = aw.resolve
	d.attach(tl)
	return Awaitable{inner: aw}
}

// Set is Animate with duration forced to zero.
func (tl *Timeline) Set(params AnimateParams) Awaitable {
	params.Duration = 0
	params.HasDuration = true
	return tl.Animate(params)
}

// Group attaches an anonymous sub-timeline running body, returning an
// Awaitable that resolves when it releases.
func (tl *Timeline) Group(body InstructionFunc) Awaitable {
	return tl.NamedGroup(tl.name+"#group", body)
}

// NamedGroup is Group with an explicit debug name.
func (tl *Timeline) NamedGroup(name string, body InstructionFunc) Awaitable {
	child := newTimeline(name, body, tl.settings, tl.scope, tl.pipe)
	child.attach(tl)
	return Awaitable{inner: child.awaitable}
}

// Sequence runs each block as its own group, awaiting one before
// starting the next, so block i+1's start time is block i's release
// time (so a sequence's duration is the sum of its blocks' release
// times).
func (tl *Timeline) Sequence(blocks ...InstructionFunc) Awaitable {
	return tl.Group(func(g *Timeline) {
		for _, b := range blocks {
			g.Await(g.Group(b))
		}
	})
}

// Parallelize runs every track as its own group, all starting at the
// same instant; the returned Awaitable resolves once every track has
// released (duration = max of the tracks).
func (tl *Timeline) Parallelize(tracks ...InstructionFunc) Awaitable {
	return tl.Group(func(g *Timeline) {
		aws := make([]Awaitable, len(tracks))
		for i, tr := range tracks {
			aws[i] = g.Group(tr)
		}
		for _, aw := range aws {
			g.Await(aw)
		}
	})
}

// Iterate runs body once per element, sequentially, each in its own
// group.
func (tl *Timeline) Iterate(items []*dom.Element, body func(g *Timeline, item *dom.Element, index int)) Awaitable {
	return tl.Group(func(g *Timeline) {
		for i, it := range items {
			idx, elem := i, it
			g.Await(g.Group(func(sub *Timeline) { body(sub, elem, idx) }))
		}
	})
}

// Repeat runs body `times` times sequentially, each in its own group.
func (tl *Timeline) Repeat(times int, body func(g *Timeline, iteration int)) Awaitable {
	return tl.Group(func(g *Timeline) {
		for i := 0; i < times; i++ {
			idx := i
			g.Await(g.Group(func(sub *Timeline) { body(sub, idx) }))
		}
	})
}

// PlayParams configures Play's PlayerEntity wrapper.
type PlayParams struct {
	Times        int
	HasTimes     bool
	Alternate    bool
	Speed        float64
	HasSpeed     bool
	BackSpeed    float64
	HasBackSpeed bool
	Delay        int64
	HasDelay     bool
	Release      int64
	HasRelease   bool
}

// Play attaches a PlayerEntity wrapping a fresh sub-timeline running
// body, wrapping it with times/alternate/speed playback semantics.
func (tl *Timeline) Play(params PlayParams, body InstructionFunc) Awaitable {
	s := tl.settings
	speed := s.getSpeed()
	if params.HasSpeed {
		speed = params.Speed
	}
	backSpeed := speed
	if params.HasBackSpeed {
		backSpeed = params.BackSpeed
	}
	delay := s.getDelay()
	if params.HasDelay {
		delay = params.Delay
	}
	release := s.getRelease()
	if params.HasRelease {
		release = params.Release
	}
	times := 1
	if params.HasTimes {
		times = params.Times
	}

	wrapped := newTimeline(tl.name+"#play", body, tl.settings, tl.scope, tl.pipe)
	pe := newPlayerEntity(tl.name+"#playerEntity", wrapped, times, params.Alternate, speed, backSpeed)
	pe.tp.delay = adjustDuration(delay, 1)
	pe.tp.release = adjustDuration(release, 1)
	if pe.tp.duration >= 0 {
		// times=0: newPlayerEntity already pinned duration to 0, and
		// onWrappedDone will never fire to clamp release itself.
		pe.tp.release = clampRelease(pe.tp.release, pe.tp.duration)
	}
	pe.attach(tl)
	return Awaitable{inner: pe.awaitable}
}

// DefaultsParams carries the settings a Defaults call overrides; each
// Has* flag marks its field as set.
type DefaultsParams struct {
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
	Logger        *zap.SugaredLogger
}

// Defaults overrides inherited settings for this timeline and any
// children attached after the call, per the settings prototype chain's
// scoping rules.
func (tl *Timeline) Defaults(params DefaultsParams) {
	s := tl.settings.derive()
	if params.HasEasing {
		s.easing, s.hasEasing = params.Easing, true
	}
	if params.HasDuration {
		s.duration, s.hasDur = params.Duration, true
	}
	if params.HasDelay {
		s.delay, s.hasDelay = params.Delay, true
	}
	if params.HasRelease {
		s.release, s.hasRelease = params.Release, true
	}
	if params.HasElasticity {
		s.elasticity, s.hasElast = params.Elasticity, true
	}
	if params.HasSpeed {
		s.speed, s.hasSpeed = params.Speed, true
	}
	if params.Logger != nil {
		s.logger = params.Logger
	}
	tl.settings = s
}

// Scope exposes the dom.Element subtree Select/SelectAll search, so a
// caller can build out its element tree before any query runs against
// it.
func (tl *Timeline) Scope() *dom.Element {
	return tl.scope
}

// Select returns the first descendant of this timeline's selector scope
// matching pred.
func (tl *Timeline) Select(pred func(*dom.Element) bool) *dom.Element {
	return dom.Select(tl.scope, pred)
}

// SelectAll returns every descendant of this timeline's selector scope
// matching pred.
func (tl *Timeline) SelectAll(pred func(*dom.Element) bool) []*dom.Element {
	return dom.SelectAll(tl.scope, pred)
}

// Random returns a uniformly distributed float64 in [min, max).
func (tl *Timeline) Random(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
