package anim

import (
	"github.com/cascadefx/anim/ease"
	"go.uber.org/zap"
)

// settings is a prototype-chain record: a lookup that falls through to
// parent when a field is unset. Rather than model "unset" with pointers-to-everything, each
// field has an explicit has* flag alongside it — a settings record is
// small and short-lived, so the extra bytes are cheap and each lookup is
// a plain loop up the parent chain instead of needing reflection.
type settings struct {
	parent *settings

	easing     ease.Func
	hasEasing  bool
	duration   int64
	hasDur     bool
	delay      int64
	hasDelay   bool
	release    int64
	hasRelease bool
	elasticity float64
	hasElast   bool
	speed      float64
	hasSpeed   bool

	logger *zap.SugaredLogger
}

// rootDefaults is the fixed fallback every prototype chain bottoms out
// at: easing=easeOutElastic, duration=1000, delay=0, release=0,
// elasticity=0.5, speed=1.
func rootDefaults() *settings {
	return &settings{
		easing:     ease.OutElastic,
		hasEasing:  true,
		duration:   1000,
		hasDur:     true,
		delay:      0,
		hasDelay:   true,
		release:    0,
		hasRelease: true,
		elasticity: 0.5,
		hasElast:   true,
		speed:      1,
		hasSpeed:   true,
		logger:     zap.NewNop().Sugar(),
	}
}

// derive creates a new settings record chained to s, the shape
// defaults() produces: a fresh record whose lookups fall through to the
// previous one until overridden.
func (s *settings) derive() *settings {
	return &settings{parent: s}
}

func (s *settings) getEasing() ease.Func {
	for n := s; n != nil; n = n.parent {
		if n.hasEasing {
			return n.easing
		}
	}
	return ease.OutElastic
}

func (s *settings) getDuration() int64 {
	for n := s; n != nil; n = n.parent {
		if n.hasDur {
			return n.duration
		}
	}
	return 1000
}

func (s *settings) getDelay() int64 {
	for n := s; n != nil; n = n.parent {
		if n.hasDelay {
			return n.delay
		}
	}
	return 0
}

func (s *settings) getRelease() int64 {
	for n := s; n != nil; n = n.parent {
		if n.hasRelease {
			return n.release
		}
	}
	return 0
}

func (s *settings) getElasticity() float64 {
	for n := s; n != nil; n = n.parent {
		if n.hasElast {
			return n.elasticity
		}
	}
	return 0.5
}

func (s *settings) getSpeed() float64 {
	for n := s; n != nil; n = n.parent {
		if n.hasSpeed {
			return n.speed
		}
	}
	return 1
}

func (s *settings) getLogger() *zap.SugaredLogger {
	for n := s; n != nil; n = n.parent {
		if n.logger != nil {
			return n.logger
		}
	}
	return zap.NewNop().Sugar()
}
