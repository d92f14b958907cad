package ggui

import "fmt"

// Damage is how much redraw a widget needs after an event. Values are
// totally ordered: DamageNone < DamagePartial < DamageFrame.
type Damage uint8

const (
	// DamageNone means nothing visible changed.
	DamageNone Damage = iota

	// DamagePartial means the widget must be laid out and redrawn once.
	DamagePartial

	// DamageFrame means the widget is animating and wants to be redrawn on
	// every frame until it reports less.
	DamageFrame
)

var damageNames = [...]string{
	DamageNone:    "None",
	DamagePartial: "Partial",
	DamageFrame:   "Frame",
}

// String implements fmt.Stringer.
func (d Damage) String() string {
	if int(d) < len(damageNames) {
		return damageNames[d]
	}
	return fmt.Sprintf("Damage(%d)", uint8(d))
}

// Max returns the larger of a and b. Containers fold their children's
// damage with it.
func Max(a, b Damage) Damage {
	if a > b {
		return a
	}
	return b
}

// MaxDamage folds ds with Max. The result for no arguments is DamageNone.
func MaxDamage(ds ...Damage) Damage {
	d := DamageNone
	for _, x := range ds {
		d = Max(d, x)
	}
	return d
}
