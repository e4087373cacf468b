package anim

import "testing"

func newTestEntity(delay, duration, release int64) *delayEntity {
	e := newDelay("test", duration)
	e.tp.delay = delay
	e.tp.release = clampRelease(release, duration)
	return e
}

func TestInitDerivesTimePoints(t *testing.T) {
	e := newTestEntity(10, 100, 20)
	e.init(1000)

	if e.tp.delayedStartTime != 1010 {
		t.Errorf("delayedStartTime = %d, want 1010", e.tp.delayedStartTime)
	}
	if e.tp.doneTime != 1110 {
		t.Errorf("doneTime = %d, want 1110", e.tp.doneTime)
	}
	if e.tp.delayedEndTime != 1130 {
		t.Errorf("delayedEndTime = %d, want 1130", e.tp.delayedEndTime)
	}
	if e.tp.endTime != 1130 {
		t.Errorf("endTime = %d, want 1130", e.tp.endTime)
	}
}

func TestInitClampsNegativeDelay(t *testing.T) {
	e := newTestEntity(-5, 100, 0)
	e.init(0)
	if e.tp.delay != 0 {
		t.Errorf("delay = %d, want clamped to 0", e.tp.delay)
	}
}

func TestClampReleaseInvariant(t *testing.T) {
	got := clampRelease(-200, 100)
	if got != -100 {
		t.Errorf("clampRelease(-200, 100) = %d, want -100", got)
	}
	got = clampRelease(-50, 100)
	if got != -50 {
		t.Errorf("clampRelease(-50, 100) = %d, want -50 (no clamp needed)", got)
	}
}

func TestNextMarkerPositionForwardNoRelease(t *testing.T) {
	e := newTestEntity(0, 100, 0)
	e.init(0)
	// release <= 0: delayedStartTime -> delayedEndTime -> doneTime
	// here delayedEndTime == doneTime == 100, delayedStartTime == 0
	pos, ok := e.nextMarkerPosition(-1, true)
	if !ok || pos != 0 {
		t.Errorf("nextMarkerPosition(-1, fwd) = (%d, %v), want (0, true)", pos, ok)
	}
	pos, ok = e.nextMarkerPosition(0, true)
	if !ok || pos != 100 {
		t.Errorf("nextMarkerPosition(0, fwd) = (%d, %v), want (100, true)", pos, ok)
	}
}

func TestNextMarkerPositionForwardWithRelease(t *testing.T) {
	e := newTestEntity(0, 100, 20)
	e.init(0)
	// release > 0: delayedStartTime -> doneTime -> delayedEndTime
	pos, ok := e.nextMarkerPosition(0, true)
	if !ok || pos != 100 {
		t.Errorf("nextMarkerPosition(0, fwd) = (%d, %v), want (100, true)", pos, ok)
	}
	pos, ok = e.nextMarkerPosition(100, true)
	if !ok || pos != 120 {
		t.Errorf("nextMarkerPosition(100, fwd) = (%d, %v), want (120, true)", pos, ok)
	}
}

func TestNextMarkerPositionAfterReleaseConsumed(t *testing.T) {
	e := newTestEntity(0, 100, 20)
	e.init(0)
	e.tp.releaseCbUsed = true
	pos, ok := e.nextMarkerPosition(-1, true)
	if !ok || pos != 0 {
		t.Errorf("nextMarkerPosition(-1, fwd) after release = (%d, %v), want (0, true)", pos, ok)
	}
	pos, ok = e.nextMarkerPosition(0, true)
	if !ok || pos != 100 {
		t.Errorf("nextMarkerPosition(0, fwd) after release = (%d, %v), want (100, true)", pos, ok)
	}
	_, ok = e.nextMarkerPosition(100, true)
	if ok {
		t.Errorf("expected no further candidate after doneTime once released")
	}
}

func TestNextMarkerPositionBackward(t *testing.T) {
	e := newTestEntity(0, 100, 20)
	e.init(0)
	pos, ok := e.nextMarkerPosition(200, false)
	if !ok || pos != 100 {
		t.Errorf("nextMarkerPosition(200, back) = (%d, %v), want (100, true)", pos, ok)
	}
	pos, ok = e.nextMarkerPosition(100, false)
	if !ok || pos != 0 {
		t.Errorf("nextMarkerPosition(100, back) = (%d, %v), want (0, true)", pos, ok)
	}
}

func TestCheckDoneAndReleaseTransitionsMonotone(t *testing.T) {
	e := newTestEntity(0, 100, 20)
	e.init(0)

	e.checkDoneAndRelease(100, true)
	if !e.tp.done {
		t.Fatal("expected done at doneTime")
	}
	if e.tp.released {
		t.Fatal("did not expect released yet")
	}

	e.checkDoneAndRelease(120, true)
	if !e.tp.released {
		t.Fatal("expected released at delayedEndTime")
	}
	if !e.tp.releaseCbUsed {
		t.Fatal("expected releaseCb consumed")
	}

	// Calling again at the same time must not un-release or double-fire.
	fired := 0
	e.tp.releaseCb = func() { fired++ }
	e.checkDoneAndRelease(120, true)
	if fired != 0 {
		t.Errorf("releaseCb fired again after already consumed: %d", fired)
	}
	if !e.tp.done || !e.tp.released {
		t.Fatal("done/released must remain true")
	}
}
