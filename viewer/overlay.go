package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *game) drawTimings(screen *ebiten.Image) {
	for row, text := range g.timingLines() {
		ebitenutil.DebugPrintAt(screen, text, 16, 16+16*row)
	}
}

func (g *game) timingLines() []string {
	var maxNameLength int
	for _, name := range g.stats.Order {
		maxNameLength = max(maxNameLength, len(name))
	}

	lines := []string{
		fmt.Sprintf("time=%.2fs, paused=%v, fps=%.1f, tps=%.1f",
			g.clock.Seconds(), g.clock.IsPaused(), ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	for _, name := range g.stats.Order {
		t := g.stats.ByName[name]

		lines = append(lines, fmt.Sprintf("%-[1]*s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
			maxNameLength,
			name,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		))
	}

	return lines
}
