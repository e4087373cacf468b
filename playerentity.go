package anim

// PlayerEntity wraps a sub-timeline with playback semantics — times,
// alternate, speed, backSpeed. It embeds baseEntity like
// any other leaf/branch entity (it has a delay/duration/release and
// participates in its parent's running list and marker index exactly
// like a Tween or Delay), but internally acts as the container its
// wrapped Timeline attaches to.
type PlayerEntity struct {
	baseEntity

	wrapped   *Timeline
	times     int
	alternate bool
	speed     float64
	backSpeed float64

	d1, d2      int64
	cycleLength int64

	started   bool
	awaitable *awaitable

	hasPreDiscoverySeek bool
	preDiscoveryTime    int64
	preDiscoveryForward bool
}

func newPlayerEntity(name string, wrapped *Timeline, times int, alternate bool, speed, backSpeed float64) *PlayerEntity {
	pe := &PlayerEntity{
		wrapped:   wrapped,
		times:     times,
		alternate: alternate,
		speed:     speed,
		backSpeed: backSpeed,
	}
	pe.setSelf(pe)
	pe.name = name
	pe.tp.duration = -1
	pe.awaitable = newAwaitable()
	pe.tp.releaseCb = pe.awaitable.resolve

	if times == 0 {
		// times=0 behaves like a zero-duration Delay.
		pe.tp.duration = 0
	}
	wrapped.doneCb = pe.onWrappedDone
	return pe
}

// onWrappedDone is the wrapped timeline's first doneCb: it derives this
// entity's duration and re-runs init to finalize the now-known time
// points.
func (pe *PlayerEntity) onWrappedDone(tlDuration int64) {
	if pe.tp.duration >= 0 {
		return
	}
	d1 := int64(float64(tlDuration) / pe.speed)
	var d2 int64
	if pe.alternate {
		d2 = int64(float64(tlDuration) / pe.backSpeed)
	}
	pe.d1, pe.d2 = d1, d2
	pe.cycleLength = d1 + d2
	pe.tp.duration = (d1 + d2) * int64(pe.times)
	pe.tp.release = clampRelease(pe.tp.release, pe.tp.duration)
	pe.init(pe.tp.startTime)
}

// displayFrame maps the outer clock onto the wrapped timeline's own
// cycle-relative clock and steps it, then runs the normal
// done/release check.
func (pe *PlayerEntity) displayFrame(time, targetTime int64, forward bool) {
	if pe.times != 0 {
		if !pe.started {
			pe.started = true
			pe.wrapped.attach(pe)
		}
		childTime, childForward := pe.mapSeek(time)
		pe.wrapped.displayFrame(childTime, childTime, childForward)
	}
	pe.checkDoneAndRelease(time, forward)
}

// mapSeek maps a seek on the outer cycle-relative clock onto the
// wrapped timeline's own clock. Before the wrapped timeline's duration
// is known, it runs directly on the outer clock so it can discover its
// own duration; a direction reversal in that phase forces the wrapped
// timeline to reload its entities at the current time, since its running
// list was only ever populated walking one way.
func (pe *PlayerEntity) mapSeek(time int64) (childTime int64, childForward bool) {
	if pe.cycleLength <= 0 {
		childForward = true
		if pe.hasPreDiscoverySeek {
			childForward = time >= pe.preDiscoveryTime
			if childForward != pe.preDiscoveryForward {
				pe.wrapped.loadEntities(pe.preDiscoveryTime, childForward)
			}
		}
		pe.hasPreDiscoverySeek = true
		pe.preDiscoveryTime = time
		pe.preDiscoveryForward = childForward
		return time, childForward
	}
	relTime := time - pe.tp.delayedStartTime
	t := relTime % pe.cycleLength
	if t < 0 {
		t += pe.cycleLength
	}
	if t == 0 && time != pe.tp.delayedStartTime {
		t = pe.cycleLength
	}
	if t <= pe.d1 {
		return int64(float64(t) * pe.speed), true
	}
	return int64(float64(pe.cycleLength-t) * pe.backSpeed), false
}

// pumpTree gives the wrapped timeline's instruction-function coroutine a
// chance to progress.
func (pe *PlayerEntity) pumpTree() {
	if pe.wrapped != nil {
		pe.wrapped.pumpTree()
	}
}

// nextMarkerPosition reconciles a candidate from the wrapped timeline
// (mapped back onto the outer clock through the same cycle/leg it was
// computed in) with this entity's own doneTime/delayedStartTime/
// delayedEndTime candidates, taking whichever is nearer in the search
// direction.
func (pe *PlayerEntity) nextMarkerPosition(time int64, forward bool) (int64, bool) {
	baseCandidate, baseOk := pe.baseEntity.nextMarkerPosition(time, forward)
	if pe.wrapped == nil {
		return baseCandidate, baseOk
	}
	if pe.cycleLength <= 0 {
		// Before duration discovery the wrapped timeline runs on the
		// outer clock, so its candidate needs no mapping.
		if pe.tp.duration < 0 && pe.started {
			return pe.wrapped.nextMarkerPosition(time, forward)
		}
		return baseCandidate, baseOk
	}

	childTime, childForward := pe.mapSeek(time)
	childCandidate, childOk := pe.wrapped.nextMarkerPosition(childTime, childForward)
	if !childOk {
		return baseCandidate, baseOk
	}

	relTime := time - pe.tp.delayedStartTime
	numCycles := relTime / pe.cycleLength
	cycleStart := pe.tp.delayedStartTime + numCycles*pe.cycleLength

	var outer int64
	if childForward {
		outer = cycleStart + int64(float64(childCandidate)/pe.speed)
	} else {
		outer = cycleStart + pe.cycleLength - int64(float64(childCandidate)/pe.backSpeed)
	}

	if !baseOk {
		return outer, true
	}
	if forward {
		if outer < baseCandidate {
			return outer, true
		}
		return baseCandidate, true
	}
	if outer > baseCandidate {
		return outer, true
	}
	return baseCandidate, true
}

// --- container interface: the wrapped timeline's sole attach point ---

func (pe *PlayerEntity) addEntity(e entity) {
	if !e.startRegistered() {
		e.init(pe.tp.delayedStartTime)
		e.setStartRegistered()
	}
	e.setRunning(true)
}

func (pe *PlayerEntity) removeEntity(e entity) {
	e.setRunning(false)
}

// checkState is a no-op: the wrapped timeline signals completion via
// doneCb/releaseCb directly, not through this container's own
// checkState.
func (pe *PlayerEntity) checkState() {}

func (pe *PlayerEntity) now() int64 {
	if pe.wrapped == nil {
		return 0
	}
	return pe.wrapped.currentTime
}
