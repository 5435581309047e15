package sim

import "github.com/mkraev/lanedash/internal/config"

// PowerKind identifies the active power-up, if any.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerShield
	PowerMagnet
)

// String returns the display name of the power-up kind.
func (p PowerKind) String() string {
	switch p {
	case PowerShield:
		return "shield"
	case PowerMagnet:
		return "magnet"
	default:
		return "none"
	}
}

// PowerUps manages the single optional timed power-up slot.
// At most one power-up is active at any time; activating another
// overwrites it.
type PowerUps struct {
	cfg       config.PowerUpsConfig
	active    PowerKind
	expiresAt float64 // Absolute time in ms
	events    Events
}

// NewPowerUps creates a power-up manager with an empty slot.
func NewPowerUps(cfg config.PowerUpsConfig, events Events) *PowerUps {
	return &PowerUps{cfg: cfg, events: events}
}

// Reset clears the slot without emitting a notification.
func (p *PowerUps) Reset() {
	p.active = PowerNone
	p.expiresAt = 0
}

// Active returns the currently active power-up kind.
func (p *PowerUps) Active() PowerKind {
	return p.active
}

// RemainingMs returns how long the active power-up lasts from nowMs.
// Returns 0 when the slot is empty. A consumed-on-use shield still
// reports its time-based remainder.
func (p *PowerUps) RemainingMs(nowMs float64) float64 {
	if p.active == PowerNone {
		return 0
	}
	remaining := p.expiresAt - nowMs
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ActivateMagnet arms the magnet, overwriting any active power-up.
func (p *PowerUps) ActivateMagnet(nowMs float64) {
	p.activate(PowerMagnet, nowMs, p.cfg.MagnetDurationMs)
}

// ActivateShield arms the shield, overwriting any active power-up.
// The shield expires on its timer or is consumed whole by one
// obstacle block, whichever comes first.
func (p *PowerUps) ActivateShield(nowMs float64) {
	p.activate(PowerShield, nowMs, p.cfg.ShieldDurationMs)
}

func (p *PowerUps) activate(kind PowerKind, nowMs, durationMs float64) {
	p.active = kind
	p.expiresAt = nowMs + durationMs
	p.events.PowerStateChanged(kind)
}

// Consume clears the slot immediately (shield single-use path).
func (p *PowerUps) Consume() {
	if p.active == PowerNone {
		return
	}
	p.active = PowerNone
	p.expiresAt = 0
	p.events.PowerStateChanged(PowerNone)
}

// Expire clears the slot if its deadline has passed.
func (p *PowerUps) Expire(nowMs float64) {
	if p.active == PowerNone {
		return
	}
	if nowMs > p.expiresAt {
		p.active = PowerNone
		p.expiresAt = 0
		p.events.PowerStateChanged(PowerNone)
	}
}
