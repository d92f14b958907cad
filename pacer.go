package ggui

import "time"

// Frame pacing defaults.
const (
	DefaultFrameCap      = 50 * time.Millisecond
	DefaultFrameInterval = time.Second / 60
)

// Pacer turns frame callback timestamps into animation deltas.
//
// The delta is the time since the previous callback, capped at Cap so an
// animation does not jump after the process was stalled. The first tick
// after Reset has no previous callback and reports Interval.
type Pacer struct {
	Cap      time.Duration
	Interval time.Duration

	last    time.Duration
	running bool
}

// Reset forgets the previous callback. Call it when an animation starts.
func (p *Pacer) Reset() { p.running = false }

// Running reports whether a tick happened since the last Reset.
func (p *Pacer) Running() bool { return p.running }

// Tick records a callback at now and returns the capped delta.
func (p *Pacer) Tick(now time.Duration) time.Duration {
	limit := p.Cap
	if limit <= 0 {
		limit = DefaultFrameCap
	}
	var delta time.Duration
	if p.running {
		delta = max(now-p.last, 0)
	} else {
		delta = p.Interval
		if delta <= 0 {
			delta = DefaultFrameInterval
		}
	}
	p.last = now
	p.running = true
	return min(delta, limit)
}
