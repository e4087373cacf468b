package anim

// delayEntity is a pure time filler: it has no visible effect, only a
// duration, and relies entirely on baseEntity's default displayFrame
// (which just checks done/release).
type delayEntity struct {
	baseEntity
}

func newDelay(name string, durationMs int64) *delayEntity {
	d := &delayEntity{}
	d.setSelf(d)
	d.name = name
	d.tp.duration = durationMs
	d.tp.release = clampRelease(0, durationMs)
	return d
}
