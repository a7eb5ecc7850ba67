//go:build ebiten

// Package desktop runs a cubes mode in an ebiten window, drawing the real
// sprite images at their pixel positions.
package desktop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
	"github.com/vovakirdan/thecubes/internal/games/cubes"
	"github.com/vovakirdan/thecubes/internal/storage"
)

var background = color.RGBA{R: 12, G: 12, B: 20, A: 255}

// keyActions maps held keys to game actions.
var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionStop},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
}

// Game adapts a cubes game to the ebiten.Game interface.
type Game struct {
	game    *cubes.Game
	store   *storage.Store
	logger  *log.Logger
	runtime core.RuntimeConfig
	images  map[image.Image]*ebiten.Image
	saved   bool
}

// New constructs a window adapter for game. store may be nil.
func New(game *cubes.Game, store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetLogger(logger)
	game.Reset(runtime)
	return &Game{
		game:    game,
		store:   store,
		logger:  logger,
		runtime: runtime,
		images:  make(map[image.Image]*ebiten.Image),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.game.Err(); err != nil {
		return err
	}

	state := g.game.State()
	if state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runtime.Seed = time.Now().UnixNano()
		g.game.Reset(g.runtime)
		g.saved = false
		return nil
	}

	in := core.NewInputFrame()
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(ka.action)
			}
		}
	}

	res := g.game.Step(in)
	if res.State.GameOver && !g.saved {
		g.saved = true
		g.save(res.State.Score)
	}
	return nil
}

// save stores the finished run. Failures are logged only.
func (g *Game) save(score int) {
	st := g.game.Stats()
	g.logger.Info("run finished", "game", g.game.ID(), "score", score, "ticks", st.Ticks)
	if g.store == nil {
		return
	}
	if score > 0 {
		if _, err := g.store.SaveScore(g.game.ID(), score); err != nil {
			g.logger.Warn("cannot save score", "error", err)
		}
	}
	_, err := g.store.SaveRun(storage.RunRecord{
		GameID:    g.game.ID(),
		Score:     score,
		Ticks:     st.Ticks,
		Spawned:   st.Spawned,
		Despawned: st.Despawned,
		Wrapped:   st.Wrapped,
		Diamonds:  st.Diamonds,
	})
	if err != nil {
		g.logger.Warn("cannot save run", "error", err)
	}
}

// Draw renders every entity surface stretched over its rectangle.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.game.Player() == nil {
		return
	}

	for _, e := range g.game.Cubes() {
		g.drawEntity(screen, e)
	}
	g.drawEntity(screen, g.game.Player())

	state := g.game.State()
	hud := fmt.Sprintf("Score: %d", state.Score)
	switch {
	case state.GameOver:
		hud += "\nGAME OVER - press R to restart"
	case state.Paused:
		hud += "\nPAUSED - press P to resume"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) drawEntity(screen *ebiten.Image, e *entity.Entity) {
	if e.Surface == nil {
		return
	}
	img, ok := g.images[e.Surface]
	if !ok {
		img = ebiten.NewImageFromImage(e.Surface)
		g.images[e.Surface] = img
	}

	b := e.Surface.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.Rect.W)/float64(b.Dx()), float64(e.Rect.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(e.Rect.X), float64(e.Rect.Y))
	screen.DrawImage(img, op)
}

// Layout returns the logical screen size, which is the viewport in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.game.Viewport()
	return vp.Width, vp.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	vp := g.game.Viewport()
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.runtime.TickRate)
	ebiten.SetWindowSize(vp.Width, vp.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
