package anim

// asyncPipe tracks structural mutations (addEntity, removeEntity, child
// completion, instruction-function completion) within one Player's tree,
// so a Move can tell when every pending instruction-function step
// triggered by the frame it just rendered has finished running.
//
// Scoped per-*Player* rather than as a package global: two independent
// Players driving independent root Timelines never observe each other's
// mutations.
type asyncPipe struct {
	counter int64
}

// bump records a structural mutation.
func (p *asyncPipe) bump() {
	p.counter++
	if p.counter >= asyncCounterTruncateAt {
		p.counter = 0
	}
}

// exhaust yields repeatedly (running any coroutine steps queued via run)
// until two consecutive counter readings are identical and at least two
// iterations have passed with no change, bounded by MaxAsyncIterations.
// run is called once per iteration to give queued coroutines a chance to
// make progress and bump the counter again.
func (p *asyncPipe) exhaust(run func()) error {
	stable := 0
	last := p.counter
	for i := 0; i < MaxAsyncIterations; i++ {
		run()
		if p.counter == last {
			stable++
			if stable >= 2 {
				return nil
			}
		} else {
			stable = 0
			last = p.counter
		}
	}
	return ErrMaxAsyncLoop
}
