// Package cubes implements The Cubes: steer the player cube around a
// wrapping play field, dodge the cubes drifting in from the edges and
// collect diamonds.
package cubes

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/thecubes/internal/asset"
	"github.com/vovakirdan/thecubes/internal/config"
	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
	"github.com/vovakirdan/thecubes/internal/registry"
)

// Visual characters for rendering
const (
	CubeChar   = '█'
	PlayerChar = '▓'
)

// scoreEvery is how many ticks of survival earn one point.
const scoreEvery = 60

// RunStats counts what happened during one run.
type RunStats struct {
	Ticks     int
	Spawned   int
	Despawned int
	Wrapped   int
	Diamonds  int
}

// Game implements the cubes game logic.
type Game struct {
	id     string
	title  string
	policy entity.Policy

	runtime    core.RuntimeConfig
	cfg        config.CubesConfig
	viewport   entity.Viewport
	assets     *asset.Library
	factory    *entity.Factory
	difficulty *config.DifficultyManager
	player     *entity.Entity
	spawner    *Spawner
	logger     *log.Logger

	score     int
	tickCount int
	gameOver  bool
	paused    bool
	stats     RunStats
	err       error // Setup or spawn failure; the game halts and shows it
}

// New creates a cubes game where drifting cubes vanish once off screen.
func New() *Game {
	return &Game{id: "cubes", title: "The Cubes", policy: entity.PolicyDespawn, logger: discard()}
}

// NewWrap creates a cubes game where drifting cubes wrap around the edges.
func NewWrap() *Game {
	return &Game{id: "cubes_wrap", title: "The Cubes (Wrap)", policy: entity.PolicyWrap, logger: discard()}
}

func discard() *log.Logger {
	return log.New(io.Discard)
}

// SetLogger directs debug output (spawns, despawns, collisions) to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = discard()
	}
	g.logger = l.WithPrefix(g.id)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Stats returns the counters for the current run.
func (g *Game) Stats() RunStats {
	return g.stats
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.stats = RunStats{}
	g.err = nil

	if err := g.setup(); err != nil {
		g.err = err
		g.logger.Error("cannot start game", "error", err)
	}
}

func (g *Game) setup() error {
	cfg, err := config.Load(g.runtime.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(g.runtime.Preset))
	if g.runtime.Only != "" {
		k, err := entity.ParseSpawnKind(g.runtime.Only)
		if err != nil {
			return err
		}
		cfg.Gameplay.Weights = onlyWeights(k)
	}

	vp, err := entity.NewViewport(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Gameplay.SpawnBuffer)
	if err != nil {
		return err
	}
	g.viewport = vp

	// Sprites are decoded once per game instance and reused across restarts.
	if g.assets == nil || g.cfg.Images != cfg.Images {
		g.assets = asset.NewLibrary(cfg.Images)
	}
	g.cfg = cfg
	if err := g.assets.Preload(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(g.runtime.Seed))
	g.factory = entity.NewFactory(vp, rng, g.assets)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = NewSpawner(g.factory, g.policy, &g.cfg, g.difficulty)

	g.player, err = g.factory.NewPlayer()
	if err != nil {
		return err
	}

	g.logger.Debug("game reset",
		"viewport", fmt.Sprintf("%dx%d", vp.Width, vp.Height),
		"buffer", vp.SpawnBuffer,
		"policy", g.policy,
		"seed", g.runtime.Seed,
	)
	return nil
}

// onlyWeights returns spawn weights that select k every time.
func onlyWeights(k entity.Kind) config.SpawnWeights {
	var w config.SpawnWeights
	switch k {
	case entity.KindHorizontalLeft:
		w.HoriLeft = 1
	case entity.KindHorizontalRight:
		w.HoriRight = 1
	case entity.KindVerticalTop:
		w.VertiTop = 1
	case entity.KindVerticalBottom:
		w.VertiBottom = 1
	case entity.KindRock:
		w.Rock = 1
	case entity.KindDiamond:
		w.Diamond = 1
	}
	return w
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.stats.Ticks = g.tickCount
	g.steer(in)

	g.player.Move()
	g.player.KeepOnScreen(g.viewport)

	events, err := g.spawner.Update(g.score, g.tickCount, g.keepOutZone())
	if err != nil {
		g.err = err
		g.logger.Error("spawn failed", "error", err)
		return core.StepResult{State: g.State(), Events: events}
	}

	events = append(events, g.collide()...)
	if g.tickCount%scoreEvery == 0 {
		g.score++
	}

	for _, ev := range events {
		g.count(ev)
		g.logger.Debug(ev.Kind.String(), "entity", ev.Entity, "x", ev.X, "y", ev.Y, "tick", g.tickCount)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// steer turns directional input into player velocity. The last direction
// pressed keeps the cube moving until another arrives.
func (g *Game) steer(in core.InputFrame) {
	v := g.cfg.Gameplay.PlayerSpeed
	switch {
	case in.Has(core.ActionUp):
		g.player.SetSpeed(0, -v)
	case in.Has(core.ActionDown):
		g.player.SetSpeed(0, v)
	case in.Has(core.ActionLeft):
		g.player.SetSpeed(-v, 0)
	case in.Has(core.ActionRight):
		g.player.SetSpeed(v, 0)
	case in.Has(core.ActionStop):
		g.player.SetSpeed(0, 0)
	}
}

// keepOutZone is the area around the player where no hazard may appear: the
// player rect grown by half its size on every side.
func (g *Game) keepOutZone() core.Rect {
	return g.player.Rect.Inflate(g.player.Rect.W, g.player.Rect.H)
}

// collide resolves player contact: diamonds are collected, anything else
// ends the run.
func (g *Game) collide() []core.Event {
	var events []core.Event
	for i := 0; i < g.spawner.Len(); i++ {
		c := g.spawner.cubes[i]
		if !g.player.Rect.Intersects(c.Rect) {
			continue
		}
		if c.Kind.Hazard() {
			g.gameOver = true
			events = append(events, newEvent(core.EventCrash, c.Entity))
			break
		}
		g.score += g.cfg.Gameplay.DiamondPoints
		events = append(events, newEvent(core.EventCollect, c.Entity))
		g.spawner.Remove(i)
		i--
	}
	return events
}

func (g *Game) count(ev core.Event) {
	switch ev.Kind {
	case core.EventSpawn:
		g.stats.Spawned++
	case core.EventDespawn:
		g.stats.Despawned++
	case core.EventWrap:
		g.stats.Wrapped++
	case core.EventCollect:
		g.stats.Diamonds++
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Player returns the player entity. It is nil until a successful Reset.
func (g *Game) Player() *entity.Entity {
	return g.player
}

// Cubes returns the live non-player entities.
func (g *Game) Cubes() []*entity.Entity {
	if g.spawner == nil {
		return nil
	}
	return g.spawner.Cubes()
}

// Viewport returns the play area in pixels.
func (g *Game) Viewport() entity.Viewport {
	return g.viewport
}

// Register the game modes with the registry
func init() {
	registry.Register("cubes", func() registry.Game {
		return New()
	})
	registry.Register("cubes_wrap", func() registry.Game {
		return NewWrap()
	})
}
