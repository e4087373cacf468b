package anim

// entity is the abstract time-bounded participant in a timeline: a Tween,
// TweenGroup, Delay, nested Timeline, or PlayerEntity all satisfy it.
// Concrete types embed baseEntity and override displayFrame where they
// need to do more than the default done/release check.
type entity interface {
	attach(parent container)
	init(startTime int64)
	nextMarkerPosition(time int64, forward bool) (int64, bool)
	checkDoneAndRelease(time int64, forward bool)
	displayFrame(time, targetTime int64, forward bool)

	isReleased() bool
	isDone() bool
	startRegistered() bool
	setStartRegistered()
	endRegistered() bool
	setEndRegistered()
	isRunning() bool
	setRunning(bool)

	setNext(e entity)
	next() entity
}

// container is the subset of Timeline's API an entity needs from its
// parent: registering itself into the running list and requesting
// removal from it. Both Timeline and PlayerEntity satisfy it.
type container interface {
	addEntity(e entity)
	removeEntity(e entity)
	checkState()
	now() int64
}

// timePoints holds the derived time-axis fields shared by every entity,
// computed once duration is known.
type timePoints struct {
	delay    int64
	release  int64
	duration int64 // -1 until discovered

	startTime        int64
	delayedStartTime int64
	doneTime         int64
	delayedEndTime   int64
	endTime          int64

	isRunning       bool
	startRegistered bool
	endRegistered   bool
	done            bool
	released        bool

	releaseCb     func()
	releaseCbUsed bool
	doneCb        func(lastTargetTime int64)
	doneCbUsed    bool
}

// baseEntity implements the entity interface's shared bookkeeping. Leaf
// and container types embed it and only override displayFrame.
type baseEntity struct {
	self   entity // set by setSelf once the concrete type is constructed
	name   string
	parent container
	nxt    entity
	tp     timePoints
}

func (b *baseEntity) setSelf(self entity) {
	b.self = self
}

func (b *baseEntity) timePoints() *timePoints {
	return &b.tp
}

func (b *baseEntity) isReleased() bool { return b.tp.released }
func (b *baseEntity) isDone() bool     { return b.tp.done }

func (b *baseEntity) startRegistered() bool { return b.tp.startRegistered }
func (b *baseEntity) setStartRegistered()   { b.tp.startRegistered = true }
func (b *baseEntity) endRegistered() bool   { return b.tp.endRegistered }
func (b *baseEntity) setEndRegistered()     { b.tp.endRegistered = true }

func (b *baseEntity) isRunning() bool  { return b.tp.isRunning }
func (b *baseEntity) setRunning(v bool) { b.tp.isRunning = v }

func (b *baseEntity) setNext(e entity) {
	b.nxt = e
}

func (b *baseEntity) next() entity {
	return b.nxt
}

// attach binds this entity to parent, at most once. Attaching twice is a
// no-op, a guarded one-shot bind.
func (b *baseEntity) attach(parent container) {
	if b.parent != nil {
		return
	}
	b.parent = parent
	parent.addEntity(b.self)
}

// init clamps a negative delay to zero and, once duration is known,
// derives every other time point. Called once at attach time and again
// by PlayerEntity when its wrapped timeline's duration is finally
// discovered.
func (b *baseEntity) init(startTime int64) {
	tp := &b.tp
	if tp.delay < 0 {
		tp.delay = 0
	}
	tp.startTime = startTime
	tp.delayedStartTime = startTime + tp.delay
	if tp.duration < 0 {
		return
	}
	tp.doneTime = tp.delayedStartTime + tp.duration
	tp.delayedEndTime = tp.doneTime + tp.release
	tp.endTime = maxI64(tp.doneTime, tp.delayedEndTime)
}

// nextMarkerPosition implements the candidate-order rules for the next
// structural boundary.
// The first candidate strictly past time in the traversal direction
// wins.
func (b *baseEntity) nextMarkerPosition(time int64, forward bool) (int64, bool) {
	tp := &b.tp
	var candidates []int64
	if forward {
		if tp.releaseCbUsed {
			candidates = []int64{tp.delayedStartTime, tp.doneTime}
		} else if tp.release <= 0 {
			candidates = []int64{tp.delayedStartTime, tp.delayedEndTime, tp.doneTime}
		} else {
			candidates = []int64{tp.delayedStartTime, tp.doneTime, tp.delayedEndTime}
		}
		for _, c := range candidates {
			if c > time {
				return c, true
			}
		}
		return 0, false
	}
	candidates = []int64{tp.doneTime, tp.delayedStartTime}
	for _, c := range candidates {
		if c < time {
			return c, true
		}
	}
	return 0, false
}

// checkDoneAndRelease advances the done/released flags and requests
// removal from the parent. While duration is still unknown (-1) the
// done/end/release time points are not derived yet, so nothing happens.
func (b *baseEntity) checkDoneAndRelease(time int64, forward bool) {
	tp := &b.tp
	if tp.duration < 0 {
		return
	}
	if time == tp.doneTime {
		tp.done = true
	}
	if tp.done {
		if forward && time == tp.endTime {
			if b.parent != nil {
				b.parent.removeEntity(b.self)
			}
		} else if !forward && time == tp.startTime {
			if b.parent != nil {
				b.parent.removeEntity(b.self)
			}
		}
	}
	if time == tp.delayedEndTime && !tp.releaseCbUsed {
		tp.released = true
		tp.releaseCbUsed = true
		if tp.releaseCb != nil {
			tp.releaseCb()
		}
	}
}

// displayFrame is the default implementation: it only checks
// done/release. Leaf entities that actually commit values (TweenGroup)
// override it.
func (b *baseEntity) displayFrame(time, targetTime int64, forward bool) {
	b.checkDoneAndRelease(time, forward)
}

// clampRelease enforces the invariant that delayedEndTime >= delayedStartTime
// by clamping release to -duration when the caller supplied something
// smaller.
func clampRelease(release, duration int64) int64 {
	if release < -duration {
		return -duration
	}
	return release
}
