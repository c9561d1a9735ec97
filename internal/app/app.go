//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"chipfire/internal/core"
	"chipfire/internal/logging"
	"chipfire/internal/render"
	"chipfire/internal/ui"
	"chipfire/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	orbitSpeed    = 0.01
	dragThreshold = 3
	zoomStep      = 0.9
)

// Game adapts the plane explorer to the ebiten.Game interface.
type Game struct {
	log *slog.Logger

	scene   *render.Scene
	painter *render.Painter
	plane   *view.Plane
	axes    *view.Axes

	label   *ui.Label
	prompt  *ui.Prompt
	hud     *ui.HUD
	overlay *ui.Overlay

	pressed      bool
	dragging     bool
	pressX       int
	pressY       int
	lastX, lastY int
}

// New constructs a Game and draws the initial plane.
func New(cfg *Config, cache *core.NeighborCache, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = logging.NewNop()
	}
	cam := render.NewCamera(cfg.Width, cfg.Height, cfg.CameraDistance, cfg.FOV)
	scene := render.NewScene(cam)
	if cfg.PickRadius > 0 {
		scene.PickRadius = cfg.PickRadius
	}
	label := ui.NewLabel()
	prompt := ui.NewPrompt(strconv.Itoa(cfg.Sigma))

	g := &Game{
		log:     log,
		scene:   scene,
		painter: render.NewPainter(),
		plane: view.NewPlane(scene, label, cache, view.Options{
			MaxSigma:   cfg.MaxSigma,
			NodeRadius: cfg.NodeRadius,
			Logger:     log,
		}),
		axes:    view.NewAxes(scene, cfg.AxisLength),
		label:   label,
		prompt:  prompt,
		hud:     ui.NewHUD(prompt, 0),
		overlay: ui.NewOverlay(label),
	}
	g.axes.SetVisible(cfg.ShowAxes)
	if err := g.plane.Draw(cfg.Sigma); err != nil {
		return nil, err
	}
	g.afterDraw()
	return g, nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.axes.Toggle()
	}
	if value, ok := g.hud.Update(g.plane.Parameters()); ok {
		g.drawPlane(value)
	}

	moved := g.handleMouse()
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scene.Camera().Zoom(math.Pow(zoomStep, dy))
		moved = true
	}
	if moved {
		g.plane.Selection().OnViewportChange()
	}
	return nil
}

// handleMouse orbits on drag and picks on click. It reports whether the
// camera moved.
func (g *Game) handleMouse() bool {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed, g.dragging = true, false
		g.pressX, g.pressY = x, y
		g.lastX, g.lastY = x, y
		return false
	}
	if !g.pressed {
		return false
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		if !g.dragging {
			h, ok := g.scene.Pick(float64(x), float64(y))
			g.plane.Selection().OnPick(h, ok)
		}
		return false
	}
	if !g.dragging && (abs(x-g.pressX) > dragThreshold || abs(y-g.pressY) > dragThreshold) {
		g.dragging = true
	}
	if !g.dragging || (x == g.lastX && y == g.lastY) {
		return false
	}
	g.scene.Camera().Orbit(-float64(x-g.lastX)*orbitSpeed, float64(y-g.lastY)*orbitSpeed)
	g.lastX, g.lastY = x, y
	return true
}

func (g *Game) drawPlane(value string) {
	if err := g.plane.DrawText(value); err != nil {
		g.log.Warn("plane not drawn", "input", value, "error", err)
		g.prompt.SetStatus(err.Error(), true)
		return
	}
	g.afterDraw()
}

func (g *Game) afterDraw() {
	sigma, _ := g.plane.Sigma()
	g.scene.Camera().Focus(g.plane.Center())
	g.prompt.SetStatus(fmt.Sprintf("sigma=%d: %d nodes", sigma, len(g.plane.Nodes())), false)
	g.log.Info("plane ready", "sigma", sigma, "nodes", len(g.plane.Nodes()))
}

// Draw renders the scene, the label and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Draw(screen, g.scene)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so projections stay correct after resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.scene.Camera().Resize(outsideWidth, outsideHeight) {
		g.plane.Selection().OnViewportChange()
	}
	return outsideWidth, outsideHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
