package tui

import (
	"fmt"

	"github.com/mkraev/lanedash/internal/core"
	"github.com/mkraev/lanedash/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	PositiveChar = '●'
	NegativeChar = '◆'
	DividerChar  = '┆'
	EnergyFull   = '█'
	EnergyEmpty  = '░'
)

// fieldLayout maps simulation field units onto screen cells.
type fieldLayout struct {
	left, top int // Top-left of the field interior
	rows      int // Interior height in cells
	laneW     int // Cells per lane
	fieldH    float64
}

func newFieldLayout(dst *core.Screen, snap sim.Snapshot) fieldLayout {
	laneW := core.Clamp((dst.Width()-4)/snap.Lanes, 5, 13)
	rows := core.Max(dst.Height()-4, 4)
	left := (dst.Width() - laneW*snap.Lanes) / 2
	return fieldLayout{
		left:   left,
		top:    2,
		rows:   rows,
		laneW:  laneW,
		fieldH: snap.FieldHeight,
	}
}

// rowFor projects a field y coordinate to a screen row, or -1 when it is
// outside the visible interior.
func (l fieldLayout) rowFor(y float64) int {
	if y < 0 || y > l.fieldH {
		return -1
	}
	row := l.top + int(y/l.fieldH*float64(l.rows))
	if row >= l.top+l.rows {
		row = l.top + l.rows - 1
	}
	return row
}

// centerCol returns the screen column of a lane's center.
func (l fieldLayout) centerCol(lane int) int {
	return l.left + lane*l.laneW + l.laneW/2
}

// Draw projects a simulation snapshot onto the screen buffer.
// banner is an optional transient message from the notification events.
func Draw(dst *core.Screen, snap sim.Snapshot, banner string) {
	dst.Clear()

	l := newFieldLayout(dst, snap)

	drawHUD(dst, snap)
	drawField(dst, l, snap)

	for _, e := range snap.Entities {
		drawEntity(dst, l, e)
	}
	drawPlayer(dst, l, snap)

	if banner != "" && snap.State == sim.StateRunning {
		dst.DrawTextColored((dst.Width()-len(banner))/2, l.top, banner, core.ColorBrightYellow)
	}

	switch snap.State {
	case sim.StateIdle:
		drawCenteredMessage(dst, "LANE DASH", "A/D or arrows to dodge  |  Enter to start")
	case sim.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case sim.StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Enter to restart", snap.Score, snap.Best))
	}
}

// drawHUD renders score, best, the energy bar and the power-up indicator.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best))

	// Energy bar, 20 cells wide
	const barW = 20
	filled := int(snap.Energy / 100 * barW)
	barX := (dst.Width() - barW) / 2
	for i := 0; i < barW; i++ {
		if i < filled {
			dst.SetCell(barX+i, 0, EnergyFull, energyColor(snap.Energy))
		} else {
			dst.SetCell(barX+i, 0, EnergyEmpty, core.ColorGray)
		}
	}

	right := fmt.Sprintf("Spd: %.0f", snap.Speed)
	if snap.Power != sim.PowerNone {
		right = fmt.Sprintf("%s %.1fs  %s", snap.Power, snap.PowerRemainingMs/1000, right)
	}
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, powerColor(snap.Power))
}

func energyColor(energy float64) core.Color {
	switch {
	case energy > 50:
		return core.ColorBrightGreen
	case energy > 25:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

func powerColor(p sim.PowerKind) core.Color {
	switch p {
	case sim.PowerShield:
		return core.ColorBrightCyan
	case sim.PowerMagnet:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// drawField renders the field border and lane dividers.
func drawField(dst *core.Screen, l fieldLayout, snap sim.Snapshot) {
	box := core.NewRect(l.left-1, l.top-1, l.laneW*snap.Lanes+2, l.rows+2)
	dst.DrawBox(box)

	for lane := 1; lane < snap.Lanes; lane++ {
		x := l.left + lane*l.laneW
		dst.DrawVLine(x, l.top, l.rows, DividerChar, core.ColorGray)
	}
}

// drawEntity renders one falling entity at its projected position.
func drawEntity(dst *core.Screen, l fieldLayout, e sim.EntityView) {
	row := l.rowFor(e.Y + e.Size/2)
	if row < 0 {
		return
	}
	col := l.centerCol(e.Lane)

	switch e.Kind {
	case sim.KindObstacle:
		half := (l.laneW - 4) / 2
		for dx := -half; dx <= half; dx++ {
			dst.SetCell(col+dx, row, ObstacleChar, core.ColorBrightRed)
		}
	case sim.KindPositive:
		dst.SetCell(col, row, PositiveChar, core.ColorBrightGreen)
	case sim.KindNegative:
		dst.SetCell(col, row, NegativeChar, core.ColorMagenta)
	}
}

// drawPlayer renders the avatar across its vertical extent.
func drawPlayer(dst *core.Screen, l fieldLayout, snap sim.Snapshot) {
	topRow := l.rowFor(snap.PlayerTop)
	bottomRow := l.rowFor(snap.PlayerBottom)
	if topRow < 0 {
		return
	}
	if bottomRow < topRow {
		bottomRow = topRow
	}
	col := l.centerCol(snap.Lane)
	half := (l.laneW - 6) / 2

	color := core.ColorBrightCyan
	if snap.Power == sim.PowerShield {
		color = core.ColorBrightYellow
	}
	for row := topRow; row <= bottomRow; row++ {
		for dx := -half; dx <= half; dx++ {
			dst.SetCell(col+dx, row, PlayerChar, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
