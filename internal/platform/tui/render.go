package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/pong"
)

// colorStyles maps core.Color to lipgloss styles (neon-leaning palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawSnapshot renders a simulation snapshot into the screen buffer,
// scaling canvas units to terminal cells. The snapshot is read-only; this
// function never touches the game.
func DrawSnapshot(snap pong.Snapshot, dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w < 4 || h < 4 || snap.CanvasW <= 0 || snap.CanvasH <= 0 {
		return
	}

	// Row 0 is the HUD; the playfield maps to the remaining rows.
	fieldH := h - 1
	sx := float64(w) / snap.CanvasW
	sy := float64(fieldH) / snap.CanvasH

	toCell := func(x, y float64) (int, int) {
		return int(x * sx), 1 + int(y*sy)
	}

	// Whole-field shake offset, alternating per tick while active.
	shakeX := 0
	if snap.Shake > 0 {
		shakeX = 1
		if snap.Tick%2 == 0 {
			shakeX = -1
		}
	}

	// Net.
	netX := w/2 + shakeX
	for y := 1; y < h; y += 2 {
		dst.SetColored(netX, y, '┆', core.ColorGray)
	}

	// Paddles. The snapshot rect already reflects the big-paddle effect.
	leftCells := rectToCells(snap.LeftPaddle.X, snap.LeftPaddle.Y, snap.LeftPaddle.W, snap.LeftPaddle.H, sx, sy)
	rightCells := rectToCells(snap.RightPaddle.X, snap.RightPaddle.Y, snap.RightPaddle.W, snap.RightPaddle.H, sx, sy)
	leftCells.X += shakeX
	rightCells.X += shakeX
	dst.DrawRect(leftCells, '█', core.ColorCyan)
	dst.DrawRect(rightCells, '█', core.ColorMagenta)

	// Shield indicator along the protected edge.
	if snap.ShieldSide != pong.SideNone {
		x := 0
		if snap.ShieldSide == pong.SideRight {
			x = w - 1
		}
		dst.DrawVLine(x, 1, h-1, '▎', core.ColorCyan)
	}

	// Floating power-up.
	for _, p := range snap.PowerUps {
		px, py := toCell(p.X, p.Y)
		dst.SetColored(px+shakeX, py, p.Symbol, p.Color)
	}

	// Trails before balls so the ball glyph wins overlapping cells.
	drawTrail(dst, snap.Ball.Trail, sx, sy, shakeX)
	for _, b := range snap.ExtraBalls {
		drawTrail(dst, b.Trail, sx, sy, shakeX)
	}

	bx, by := toCell(snap.Ball.X, snap.Ball.Y)
	dst.SetColored(bx+shakeX, by, '●', core.ColorWhite)
	for _, b := range snap.ExtraBalls {
		ex, ey := toCell(b.X, b.Y)
		dst.SetColored(ex+shakeX, ey, '○', core.ColorWhite)
	}

	drawHUD(snap, dst)

	if snap.Winner != pong.SideNone {
		drawWinner(snap, dst)
	}
}

// rectToCells converts a canvas rectangle to screen cells, always at least
// one cell wide and tall so thin paddles stay visible.
func rectToCells(x, y, rw, rh, sx, sy float64) core.CellRect {
	r := core.CellRect{
		X: int(x * sx),
		Y: 1 + int(y*sy),
		W: int(rw * sx),
		H: int(rh * sy),
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

func drawTrail(dst *core.Screen, trail []pong.TrailParticle, sx, sy float64, shakeX int) {
	for _, p := range trail {
		var r rune
		switch {
		case p.Life > 0.6:
			r = '∙'
		case p.Life > 0.3:
			r = '·'
		default:
			continue
		}
		dst.SetColored(int(p.X*sx)+shakeX, 1+int(p.Y*sy), r, core.ColorGray)
	}
}

func drawHUD(snap pong.Snapshot, dst *core.Screen) {
	score := fmt.Sprintf("%d : %d", snap.ScoreLeft, snap.ScoreRight)
	dst.DrawTextCentered(0, score)

	var effects []string
	if snap.BigPaddleSide != pong.SideNone {
		effects = append(effects, "BIG:"+sideTag(snap.BigPaddleSide))
	}
	if snap.FastBall {
		effects = append(effects, "FAST")
	}
	if snap.MultiBall {
		effects = append(effects, "MULTI")
	}
	if snap.ShieldSide != pong.SideNone {
		effects = append(effects, fmt.Sprintf("SHIELD:%s×%d", sideTag(snap.ShieldSide), snap.ShieldUses))
	}
	if len(effects) > 0 {
		dst.DrawTextColored(1, 0, strings.Join(effects, " "), core.ColorYellow)
	}

	if snap.Rally > 2 {
		rally := fmt.Sprintf("rally %d", snap.Rally)
		dst.DrawTextColored(dst.Width()-len(rally)-1, 0, rally, core.ColorGray)
	}
}

func sideTag(s pong.Side) string {
	if s == pong.SideLeft {
		return "L"
	}
	return "R"
}

func drawWinner(snap pong.Snapshot, dst *core.Screen) {
	title := "LEFT SIDE WINS!"
	if snap.Winner == pong.SideRight {
		title = "RIGHT SIDE WINS!"
	}
	subtitle := fmt.Sprintf("%d - %d  |  R to restart, Q to quit", snap.ScoreLeft, snap.ScoreRight)

	boxW := len(subtitle) + 4
	if len(title)+4 > boxW {
		boxW = len(title) + 4
	}
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.CellRect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ', core.ColorDefault)
	dst.DrawBox(core.CellRect{X: boxX, Y: boxY, W: boxW, H: boxH})
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
