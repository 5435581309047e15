package sim

// Events receives UI-only notifications from the simulation.
// Implementations must not mutate simulation state; they are invoked
// synchronously during a tick.
type Events interface {
	// PowerStateChanged fires when a power-up activates, is consumed,
	// or expires. Kind is PowerNone when the slot clears.
	PowerStateChanged(kind PowerKind)

	// HudChanged fires when score or energy changed during a tick.
	// Energy is already clamped to the displayable [0,100] range.
	HudChanged(energy float64, score, best int)

	// GameOverTriggered fires once on the transition to game over.
	GameOverTriggered(finalScore, finalBest int)
}

// NopEvents is an Events implementation that ignores everything.
type NopEvents struct{}

func (NopEvents) PowerStateChanged(PowerKind) {}
func (NopEvents) HudChanged(float64, int, int) {}
func (NopEvents) GameOverTriggered(int, int) {}
