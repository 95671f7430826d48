package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// hudRows is the score line above the playfield.
const hudRows = 1

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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

// viewport maps world coordinates onto a block of terminal cells.
type viewport struct {
	top    int // First screen row of the playfield
	cols   int
	rows   int
	scaleX float64
	scaleY float64
}

func newViewport(s *core.Screen, fieldW, fieldH float64) viewport {
	rows := s.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	cols := s.Width()
	if cols < 1 {
		cols = 1
	}
	return viewport{
		top:    hudRows,
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols) / fieldW,
		scaleY: float64(rows) / fieldH,
	}
}

// row maps a world y to a screen row.
func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// span maps a world interval [a, b) to the cell range it covers, at least one cell wide.
func span(a, b, scale float64) (int, int) {
	lo := int(math.Floor(a * scale))
	hi := int(math.Ceil(b*scale)) - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// renderPlayfield draws a snapshot: pipes, the body and the score line.
func renderPlayfield(s *core.Screen, snap flappy.Snapshot) {
	s.Clear()
	v := newViewport(s, snap.FieldW, snap.FieldH)

	for _, p := range snap.Pipes {
		c0, c1 := span(p.X, p.Right(), v.scaleX)
		gapTop := v.row(p.GapTop)
		gapBottom := v.top + int(math.Ceil(p.GapBottom*v.scaleY))
		last := v.top + v.rows

		for col := c0; col <= c1; col++ {
			for row := v.top; row < gapTop && row < last; row++ {
				s.SetColored(col, row, '█', core.ColorGreen)
			}
			for row := gapBottom; row < last; row++ {
				s.SetColored(col, row, '█', core.ColorGreen)
			}
		}
		// Caps on the gap edges
		s.DrawHLine(c0, gapTop-1, c1-c0+1, '▀', core.ColorBrightGreen)
		s.DrawHLine(c0, gapBottom, c1-c0+1, '▄', core.ColorBrightGreen)
	}

	bx0, bx1 := span(snap.Body.X, snap.Body.Right(), v.scaleX)
	by0, by1 := span(snap.Body.Y, snap.Body.Bottom(), v.scaleY)
	glyph := '>'
	if snap.BodyVel < 0 {
		glyph = '^'
	}
	color := core.ColorBrightYellow
	if snap.Phase == flappy.PhaseGameOver {
		color = core.ColorRed
	}
	s.FillRect(bx0, v.top+by0, bx1-bx0+1, by1-by0+1, glyph, color)

	hud := fmt.Sprintf(" Score: %d   %s   tick %d", snap.Score, snap.Difficulty.Title(), snap.Tick)
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	s.DrawTextColored(0, 0, hud, core.ColorWhite)

	if snap.Phase == flappy.PhaseGameOver {
		renderGameOver(s, snap.Score)
	}
}

func renderGameOver(s *core.Screen, score int) {
	lines := []string{
		"G A M E   O V E R",
		fmt.Sprintf("Score: %d", score),
		"",
		"space/r: restart   b: menu   q: quit",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorRed)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorRed
		}
		s.DrawTextCentered(y+1+i, l, c)
	}
}

// renderMenu draws the difficulty picker.
func renderMenu(s *core.Screen, cursor int, gravity config.GravityTable) {
	s.Clear()

	y := max(1, s.Height()/2-6)
	s.DrawTextCentered(y, "F L A P P Y", core.ColorBrightYellow)
	s.DrawTextCentered(y+2, "Select a difficulty", core.ColorGray)

	for i, d := range flappy.Difficulties() {
		prefix := "  "
		c := core.ColorWhite
		if i == cursor {
			prefix = "> "
			c = core.ColorBrightGreen
		}
		line := fmt.Sprintf("%s%-7s  g=%.2f", prefix, d.Title(), gravity.At(int(d)))
		s.DrawTextCentered(y+4+i, line, c)
	}
}
