package anim

// A Timeline's instruction function runs to completion synchronously
// except at its suspension points; the only one that lives inside user
// code is "the instruction function itself awaits"
// (e.g. `tl.Await(tl.Group(...))`). Go has no native cooperative
// coroutine, so instruction functions run on their own goroutine with a
// strict, unbuffered baton handoff to the driving Timeline: at any
// instant exactly one of the two goroutines is runnable, so this never
// introduces a real race even though two OS-level goroutines exist.

// awaitable is the internal resolvable future backing the exported
// Awaitable value. It has exactly one writer (whatever entity's release
// fires resolve) and any number of readers polling Done.
type awaitable struct {
	doneFlag bool
}

func newAwaitable() *awaitable {
	return &awaitable{}
}

func (a *awaitable) resolve() {
	a.doneFlag = true
}

// Awaitable is returned by Animate, Group, Play, and their derivatives:
// a small future that resolves once the entity it represents releases.
// A zero Awaitable is already resolved, so a nil-safe default behaves
// like an already-completed instruction.
type Awaitable struct {
	inner *awaitable
}

// Done reports whether the awaited entity has released.
func (a Awaitable) Done() bool {
	return a.inner == nil || a.inner.doneFlag
}

// coroutine runs an instruction function body on its own goroutine,
// handing control back to the driver every time the body calls
// yielder.await on an unresolved Awaitable.
type coroutine struct {
	resume   chan struct{}
	yielded  chan struct{}
	finished bool
}

// startCoroutine launches body on a new goroutine, suspended until the
// first step().
func startCoroutine(body func(y *yielder)) *coroutine {
	c := &coroutine{
		resume:  make(chan struct{}),
		yielded: make(chan struct{}),
	}
	y := &yielder{c: c}
	go func() {
		<-c.resume
		body(y)
		c.finished = true
		c.yielded <- struct{}{}
	}()
	return c
}

// step resumes the coroutine and blocks until it either yields (still
// awaiting something) or runs to completion. A no-op once finished.
func (c *coroutine) step() {
	if c.finished {
		return
	}
	c.resume <- struct{}{}
	<-c.yielded
}

// yielder is the handle an instruction function's goroutine uses to
// suspend itself.
type yielder struct {
	c *coroutine
}

// await blocks the calling goroutine, handing control back to the
// driver, until a resolves. Each resumption re-checks a.doneFlag, so
// resolution needs no separate wake mechanism beyond the driver calling
// step() again (as it does once per asyncPipe.exhaust iteration).
func (y *yielder) await(a *awaitable) {
	for !a.doneFlag {
		y.c.yielded <- struct{}{}
		<-y.c.resume
	}
}
