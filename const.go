package anim

import "errors"

// FrameMS is the length of one frame at unit speed. Every duration, delay,
// and release value passed to Animate, Delay, or Play is quantized to a
// multiple of FrameMS by adjustDuration; a PlayerEntity's duration is
// derived from its wrapped timeline and speeds and is not re-quantized.
const FrameMS int64 = 16

// DefaultMaxDuration bounds Player.Duration's internal ticker.
const DefaultMaxDuration int64 = 600_000

// MaxAsyncIterations bounds the async pipe's drain loop (see asyncpipe.go).
// Exceeding it means an instruction body never stops scheduling new
// structural mutations within a single Move call.
const MaxAsyncIterations = 100

// asyncCounterTruncateAt periodically resets the async pipe's mutation
// counter once it grows large, to avoid unbounded growth over a
// long-running player's lifetime.
const asyncCounterTruncateAt = 1 << 30

// ErrMaxAsyncLoop is returned by Timeline.Move (and therefore Player.Move,
// Player.Play) when the async pipe fails to settle within
// MaxAsyncIterations. It is the one case in this package where a user data
// error is not merely logged but propagated to the caller.
var ErrMaxAsyncLoop = errors.New("anim: max async loop reached")

func adjustDuration(ms int64, speed float64) int64 {
	if speed == 0 {
		speed = 1
	}
	frames := roundDiv(ms, speed, FrameMS)
	return frames * FrameMS
}

// roundDiv computes round(ms/speed/unit) * unit's inner rounded quotient,
// i.e. round(ms/speed/unit).
func roundDiv(ms int64, speed float64, unit int64) int64 {
	raw := float64(ms) / speed / float64(unit)
	if raw >= 0 {
		return int64(raw + 0.5)
	}
	return -int64(-raw + 0.5)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
