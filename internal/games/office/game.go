// Package office adapts the office chase simulation to the arcade registry:
// it keeps score, lives and level progression, and renders the current
// simulation state into a core.Screen.
package office

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/office-chase/internal/config"
	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/sim"
	"github.com/vovakirdan/office-chase/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"  // Simulation advancing
	StatePaused   = "paused"   // Tick skipped until unpaused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Final level cleared (campaign only)
	StateError    = "error"    // Level could not be built
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Clear MaxLevel levels to win
	ModeEndless                  // Levels continue until game over
)

// SidePanelWidth is the minimum width of the HUD column right of the maze.
const SidePanelWidth = 22

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel is the level a new run begins at
var startLevel = 1

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level new runs start at.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetLogger routes game logging. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the office chase game for the registry.
type Game struct {
	mode GameMode

	// Simulation. sim is replaced, never mutated, on each tick.
	sim *sim.State
	rng *rand.Rand

	// Bookkeeping
	state   string
	score   int
	lives   int
	level   int
	smashed int // targets smashed on the current level
	ticks   int
	runID   string
	err     error

	// Banner shown over the maze for a short while
	flash      string
	flashTicks int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.OfficeConfig
	difficulty *config.DifficultyManager
	log        *log.Logger
}

// New creates a new office chase game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new office chase game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("office", func() registry.Game { return New() })
	registry.Register("office_endless", func() registry.Game { return NewEndless() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "office_endless"
	}
	return "office"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Office Chase (Endless)"
	}
	return "Office Chase"
}

// RunID identifies the current run. It changes on every Reset.
func (g *Game) RunID() string {
	return g.runID
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.WithPrefix(g.ID())

	// Load game config
	cfg, err := config.LoadOffice(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultOfficeConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyOfficePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	g.runID = uuid.NewString()
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.ticks = 0
	g.err = nil
	g.flash = ""
	g.flashTicks = 0

	g.log.Info("new run", "run", g.runID, "seed", seed, "preset", difficultyPreset)
	g.loadLevel(startLevel)
}

// loadLevel builds a fresh maze and entity layout for the given level.
func (g *Game) loadLevel(level int) {
	g.level = level
	g.smashed = 0

	progress := config.Progress{Score: g.score, Ticks: g.ticks, Level: level}
	st, err := sim.Initialize(simConfig(g.cfg, g.mode, g.difficulty, progress), level, g.rng)
	if err != nil {
		g.err = fmt.Errorf("office: level %d: %w", level, err)
		g.state = StateError
		g.log.Error("level setup failed", "level", level, "error", err)
		return
	}
	g.sim = st
	g.state = StatePlaying

	ms := st.MazeStats
	g.log.Debug("maze generated", "level", level,
		"open", ms.Open, "reachable", ms.Reachable, "carves", ms.Carves, "sealed", ms.Sealed, "closed", ms.Closed, "trimmed", ms.Trimmed)
	if st.Fallbacks > 0 {
		g.log.Debug("placement fallbacks", "level", level, "count", st.Fallbacks)
	}
	g.log.Info("level start", "level", level, "executives", len(st.Executives),
		"vision", st.Cfg.VisionDistance, "move_chance", st.Cfg.MoveChance(level))
}

// levelGoal is how many computers and wall art must be smashed to advance.
func (g *Game) levelGoal() int {
	if g.cfg.Gameplay.LevelGoal > 0 {
		return g.cfg.Gameplay.LevelGoal
	}
	return g.cfg.Items.Computers + g.cfg.Items.WallArt
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin || g.state == StateError) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Cues: []string{"restart"}}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or finished
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.flashTicks = core.Countdown(g.flashTicks)

	next, ev := sim.Tick(g.sim, sim.InputFromFrame(in), g.rng)
	g.sim = next

	cues := g.applyEvents(ev)
	return core.StepResult{State: g.State(), Cues: cues}
}

// applyEvents folds one tick's events into score, lives and level.
func (g *Game) applyEvents(ev sim.Events) []string {
	var cues []string

	g.score += ev.ScoreDelta

	for _, d := range ev.Damaged {
		cues = append(cues, "smashed "+d.Kind.String())
	}
	for _, id := range ev.Scared {
		cues = append(cues, g.executiveName(id)+" is scared")
	}
	if ev.PowerUpsConsumed > 0 {
		cues = append(cues, "coffee boost")
		g.setFlash("COFFEE!")
	}

	if ev.LifeLost {
		g.lives--
		name := g.executiveName(ev.CaughtBy)
		cues = append(cues, "caught by "+name)
		g.setFlash("CAUGHT BY " + name)
		g.log.Info("life lost", "by", name, "lives", g.lives, "tick", g.ticks)
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			g.log.Info("game over", "score", g.score, "level", g.level)
			return append(cues, "game over")
		}
	}

	g.smashed += ev.TargetsSmashed()
	if g.smashed >= g.levelGoal() {
		cues = append(cues, g.completeLevel()...)
	}
	return cues
}

// completeLevel awards the level bonus and either wins or moves on.
func (g *Game) completeLevel() []string {
	g.score += g.cfg.Gameplay.LevelBonus * g.level
	g.log.Info("level cleared", "level", g.level, "score", g.score, "ticks", g.ticks)

	if g.mode == ModeCampaign && g.level >= g.cfg.Gameplay.MaxLevel {
		g.state = StateWin
		return []string{"level cleared", "you win"}
	}

	g.loadLevel(g.level + 1)
	g.setFlash(fmt.Sprintf("LEVEL %d", g.level))
	return []string{"level cleared", fmt.Sprintf("level %d", g.level)}
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = 90
}

func (g *Game) executiveName(id int) string {
	if g.sim != nil {
		for _, e := range g.sim.Executives {
			if e.ID == id {
				return e.Name
			}
		}
	}
	return fmt.Sprintf("executive %d", id)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver || g.state == StateWin || g.state == StateError,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Sim returns the current simulation snapshot. Callers must not modify it.
func (g *Game) Sim() *sim.State {
	return g.sim
}

// Err returns the level setup error, if any.
func (g *Game) Err() error {
	return g.err
}

// GetState returns the current state string (for testing).
func (g *Game) GetState() string {
	return g.state
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}
