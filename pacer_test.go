package ggui

import (
	"testing"
	"time"
)

func TestPacerCapsDelta(t *testing.T) {
	p := Pacer{Cap: 50 * time.Millisecond, Interval: 16 * time.Millisecond}
	p.Reset()

	p.Tick(1000 * time.Millisecond)
	if got := p.Tick(1500 * time.Millisecond); got != 50*time.Millisecond {
		t.Errorf("Tick() after a 500ms stall = %v, want 50ms", got)
	}
}

func TestPacer(t *testing.T) {
	p := Pacer{Cap: 50 * time.Millisecond, Interval: 16 * time.Millisecond}

	steps := []struct {
		name string
		now  time.Duration
		want time.Duration
	}{
		{"first tick reports the interval", 100 * time.Millisecond, 16 * time.Millisecond},
		{"regular frame", 116 * time.Millisecond, 16 * time.Millisecond},
		{"late frame", 146 * time.Millisecond, 30 * time.Millisecond},
		{"stall", 646 * time.Millisecond, 50 * time.Millisecond},
		{"clock going backwards", 600 * time.Millisecond, 0},
	}
	for _, s := range steps {
		if got := p.Tick(s.now); got != s.want {
			t.Errorf("%s: Tick(%v) = %v, want %v", s.name, s.now, got, s.want)
		}
	}

	p.Reset()
	if p.Running() {
		t.Error("Running() = true after Reset")
	}
	if got := p.Tick(10 * time.Second); got != 16*time.Millisecond {
		t.Errorf("Tick() after Reset = %v, want the interval", got)
	}
}

func TestPacerDefaults(t *testing.T) {
	var p Pacer
	if got := p.Tick(0); got != DefaultFrameInterval {
		t.Errorf("first Tick() = %v, want %v", got, DefaultFrameInterval)
	}
	if got := p.Tick(time.Hour); got != DefaultFrameCap {
		t.Errorf("Tick() = %v, want the default cap %v", got, DefaultFrameCap)
	}

	capped := Pacer{Cap: 5 * time.Millisecond, Interval: 16 * time.Millisecond}
	if got := capped.Tick(0); got != 5*time.Millisecond {
		t.Errorf("first Tick() = %v, want the interval capped to 5ms", got)
	}
}
