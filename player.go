package anim

import (
	"time"

	"github.com/cascadefx/anim/dom"
)

// PlayArguments configures one Play call.
type PlayArguments struct {
	OnUpdate   func(timeMs int64)
	Forward    bool
	HasForward bool
	Speed      float64
	HasSpeed   bool
	RAF        func(cb func())
}

// Player is the top-level driver: it converts an external tick source
// into root-timeline Move calls and exposes play/pause/stop/seek/
// duration. It owns the asyncPipe its whole timeline tree shares, so
// counter resolution is scoped per player rather than global.
type Player struct {
	root        *Timeline
	pipe        *asyncPipe
	playId      int64
	maxDuration int64

	length    int64
	hasLength bool
}

// NewPlayer wraps instr in a fresh root Timeline driven by this player.
func NewPlayer(instr InstructionFunc) *Player {
	pipe := &asyncPipe{}
	root := newTimeline("root", instr, rootDefaults(), dom.NewElement("root", "div"), pipe)
	return &Player{root: root, pipe: pipe, maxDuration: DefaultMaxDuration}
}

// Root exposes the wrapped root timeline, e.g. for Select/SelectAll or
// for tests inspecting internal state directly.
func (p *Player) Root() *Timeline {
	return p.root
}

// Scope exposes the root timeline's selector scope directly, so callers
// can attach elements to it before Select/SelectAll queries run.
func (p *Player) Scope() *dom.Element {
	return p.root.Scope()
}

func defaultRAF() func(cb func()) {
	return func(cb func()) {
		timer := time.NewTimer(time.Duration(FrameMS) * time.Millisecond)
		<-timer.C
		cb()
	}
}

// Play drives the root timeline forward (or backward) one frame at a
// time via raf until playback reaches an end, or Pause/Stop invalidates
// this call's playId, and returns the time position reached.
func (p *Player) Play(args PlayArguments) (int64, error) {
	p.playId++
	myID := p.playId

	forward := true
	if args.HasForward {
		forward = args.Forward
	}
	speed := 1.0
	if args.HasSpeed {
		speed = args.Speed
	}
	raf := args.RAF
	if raf == nil {
		raf = defaultRAF()
	}

	var finalTime int64
	var stepErr error
	done := make(chan struct{})

	var step func()
	step = func() {
		if p.playId != myID {
			finalTime = p.root.currentTime
			close(done)
			return
		}
		t1 := p.root.currentTime
		if t1 < 0 {
			t1 = 0
		}
		delta := int64(float64(FrameMS) * speed)
		t2 := t1 + delta
		if !forward {
			t2 = t1 - delta
		}
		if t2 < 0 {
			t2 = 0
		}

		if err := p.root.Move(t2); err != nil {
			stepErr = err
			close(done)
			return
		}
		if p.playId != myID {
			finalTime = t1
			close(done)
			return
		}
		if args.OnUpdate != nil && p.root.currentTime != t1 {
			args.OnUpdate(p.root.currentTime)
		}
		if (forward && p.root.endTime == p.root.currentTime) || (!forward && p.root.currentTime == 0) {
			finalTime = p.root.currentTime
			close(done)
			return
		}
		raf(step)
	}
	raf(step)
	<-done
	return finalTime, stepErr
}

// Pause invalidates the current playId; any in-flight Play call resolves
// on its next frame boundary without scheduling another.
func (p *Player) Pause() {
	p.playId = 0
}

// Stop invalidates the current playId and seeks to 0.
func (p *Player) Stop() error {
	p.playId = 0
	return p.root.Move(0)
}

// Move forwards to the root timeline.
func (p *Player) Move(t int64) error {
	return p.root.Move(t)
}

// Duration memoizes the timeline's total length by ticking it forward
// from 0 in FrameMS steps until it stops advancing (or maxDuration is
// hit), then restores the original position. It detects the end by
// noticing Move fell short of the requested tick rather than by reading
// Timeline.endTime directly: endTime's zero value is indistinguishable
// from a legitimately-discovered end at position 0.
func (p *Player) Duration() (int64, error) {
	if p.hasLength {
		return p.length, nil
	}
	saved := p.root.currentTime

	maxTicks := p.maxDuration / FrameMS
	var reached int64
	for tick := int64(0); tick < maxTicks; tick++ {
		target := tick * FrameMS
		if err := p.root.Move(target); err != nil {
			return 0, err
		}
		reached = p.root.currentTime
		if reached < target {
			break
		}
	}
	p.length = reached
	p.hasLength = true

	if err := p.root.Move(saved); err != nil {
		return 0, err
	}
	return p.length, nil
}

// Position is the root timeline's current time in milliseconds.
func (p *Player) Position() int64 {
	return p.root.currentTime
}

// IsPlaying reports whether an in-flight Play call still owns the
// current playId.
func (p *Player) IsPlaying() bool {
	return p.playId != 0
}
