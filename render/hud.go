package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Garyljackson/3d-pipes/status"
)

// KeyHelp lists the keyboard controls
const KeyHelp = "r:restart  s:style  f:speed  o:orbit  m:mute  space:pause  q:quit"

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 220)).Background(tcell.NewRGBColor(20, 20, 36))
	dimStyle    = hudStyle.Foreground(tcell.NewRGBColor(100, 100, 110))
	pausedStyle = hudStyle.Foreground(tcell.NewRGBColor(255, 200, 50)).Bold(true)
)

// HUD is the two-line overlay under the viewport
type HUD struct {
	Status *status.Registry
	Paused bool
	Orbit  bool
	Muted  bool
}

// StatsLine formats the counters the way the status bar shows them
func (h HUD) StatsLine() string {
	if h.Status == nil {
		return ""
	}
	reg := h.Status
	return fmt.Sprintf("Pipes: %d  Segments: %d  Fill: %.1f%%  Style: %s  Speed: %s  Epoch: %d",
		reg.Ints.Get(status.KeyPipes).Load(),
		reg.Ints.Get(status.KeySegments).Load(),
		reg.Floats.Get(status.KeyFill).Get()*100,
		reg.Strings.Get(status.KeyStyle).Load(),
		reg.Strings.Get(status.KeySpeed).Load(),
		reg.Ints.Get(status.KeyEpoch).Load(),
	)
}

// Flags lists the toggles that are on, shown right aligned
func (h HUD) Flags() string {
	s := ""
	if !h.Orbit {
		s += "[FIXED] "
	}
	if h.Muted {
		s += "[MUTED] "
	}
	if h.Paused {
		s += "[PAUSED] "
	}
	return s
}

// Draw fills the bottom two rows of a cols x rows screen
func (h HUD) Draw(screen tcell.Screen, cols, rows int) {
	if rows < HUDRows || cols <= 0 {
		return
	}
	statsY, helpY := rows-2, rows-1
	fillRow(screen, statsY, cols)
	fillRow(screen, helpY, cols)

	flags := h.Flags()
	flagsW := runewidth.StringWidth(flags)
	stats := runewidth.Truncate(h.StatsLine(), max(0, cols-flagsW-1), "…")
	drawText(screen, 1, statsY, stats, hudStyle)
	if flags != "" && flagsW < cols {
		drawText(screen, cols-flagsW, statsY, flags, pausedStyle)
	}
	drawText(screen, 1, helpY, runewidth.Truncate(KeyHelp, max(0, cols-1), "…"), dimStyle)
}

func fillRow(screen tcell.Screen, y, cols int) {
	for x := 0; x < cols; x++ {
		screen.SetContent(x, y, ' ', nil, hudStyle)
	}
}

// drawText writes s at (x, y) advancing by display width
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
