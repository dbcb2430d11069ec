// Package viewer presents a shapematch simulation in a window using ebiten.
//
// Every tick of the game loop advances the simulation by a single step,
// every frame draws the edges of all quads.
package viewer

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/shapematch"
	"github.com/oliverbestmann/shapematch/gm"
)

var (
	meshColor = color.Black
	restColor = color.Gray{Y: 0xc8}
)

type Options struct {
	Title  string
	Width  int
	Height int

	// ViewHeight is half the height of the visible world area.
	ViewHeight float32

	// Dt is the simulation time step in seconds.
	Dt float32

	// TimeScale scales the time passed to the boundary drive.
	TimeScale float64
}

// Run opens the window and runs the simulation until the window is closed
// or escape is pressed. Failing to create the window is returned as an error.
func Run(state *shapematch.State, opts Options) error {
	g := newGame(state, opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("Opening window",
		slog.String("title", opts.Title),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Int("quads", len(state.Quads)),
		slog.Int("vertices", len(state.Position)),
	)

	var options ebiten.RunGameOptions
	options.SingleThread = true

	if err := ebiten.RunGameWithOptions(g, &options); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	slog.Info("Window closed", slog.Int("steps", g.stats.ByName[timingStep].Count))

	return nil
}

const (
	timingStep = "step"
	timingDraw = "draw"
)

type game struct {
	state *shapematch.State
	dt    float32

	clock      Clock
	projection OrthographicProjection
	stats      *TimingStats

	showTimings bool
	showRest    bool
}

func newGame(state *shapematch.State, opts Options) *game {
	return &game{
		state: state,
		dt:    opts.Dt,
		clock: NewVirtualTime(opts.TimeScale),
		projection: OrthographicProjection{
			ViewportOrigin: gm.VecSplat[float32](0.5),
			ScalingMode:    ScalingModeFixedVertical{ViewportHeight: 2 * opts.ViewHeight},
			Scale:          1,
		},
		stats: NewTimingStats(),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleInput()

	g.clock.Advance(time.Now())
	if g.clock.IsPaused() {
		return nil
	}

	stopwatch := g.stats.Measure(timingStep)
	g.state.Step(g.dt, g.clock.Seconds())
	stopwatch.Stop()

	return nil
}

func (g *game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showTimings = !g.showTimings
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showRest = !g.showRest
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.SetPaused(!g.clock.IsPaused())

		slog.Info("Toggle pause",
			slog.Bool("paused", g.clock.IsPaused()),
			slog.Float64("time", g.clock.Seconds()))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reset()
		g.clock.Restart()

		slog.Info("Simulation reset")
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	stopwatch := g.stats.Measure(timingDraw)

	screen.Fill(color.White)

	tr := g.projection.WorldToScreen(imageSizeOf(screen))

	if g.showRest {
		rest := canvas{Transform: tr}
		g.state.DrawRestEdges(&rest)
		rest.Stroke(screen, restColor, 1)
	}

	mesh := canvas{Transform: tr}
	g.state.DrawEdges(&mesh)
	mesh.Stroke(screen, meshColor, 1)

	stopwatch.Stop()

	if g.showTimings {
		g.drawTimings(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func imageSizeOf(image *ebiten.Image) gm.Vec {
	b := image.Bounds()
	return gm.Vec{X: float32(b.Dx()), Y: float32(b.Dy())}
}
