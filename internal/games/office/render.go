package office

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/sim"
)

// Visual characters for rendering
const (
	WallChar         = '█'
	ConeChar         = '·'
	PlayerChar       = '@'
	ExecutiveChar    = 'E'
	ScaredChar       = 'e'
	ComputerChar     = '▣'
	WallArtChar      = '▤'
	CoworkerChar     = '☺'
	HurtCoworkerChar = '☹'
	DamagedChar      = '▒'
	CoffeeChar       = 'U'
	CoinChar         = '$'
	LifeChar         = '♥'
	BoostSegmentChar = '▮'
)

const (
	coinHop          = 1.5 // cells a spawning coin falls from
	coinRise         = 0.8 // cells a collected coin floats up
	coinBlinkTicks   = 120 // coins blink when this close to expiring
	boostBarSegments = 10
	overlayMinWidth  = 24
	overlayHeight    = 5
)

// layout maps grid coordinates to screen cells.
type layout struct {
	cellW  int // screen columns per grid cell
	mazeW  int // maze width in screen columns
	mazeH  int
	panelX int // -1 when the HUD overlays the maze
}

func (g *Game) layout(dst *core.Screen) layout {
	w, h := g.cfg.Maze.Width, g.cfg.Maze.Height
	if g.sim != nil {
		w, h = g.sim.Grid.W, g.sim.Grid.H
	}
	l := layout{cellW: 1, mazeH: h, panelX: -1}
	if dst.Width() >= 2*w+SidePanelWidth {
		l.cellW = 2
	}
	l.mazeW = w * l.cellW
	if dst.Width() >= l.mazeW+SidePanelWidth {
		l.panelX = l.mazeW + 1
	}
	return l
}

// screenX places a continuous x on the left column of the covering cell.
func (l layout) screenX(x float64) int {
	return int(math.Floor((x-0.5)*float64(l.cellW) + 0.5))
}

func (l layout) screenY(y float64) int {
	return int(math.Floor(y))
}

// put draws r over the whole width of a grid cell.
func (l layout) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < l.cellW; i++ {
		dst.SetColored(x*l.cellW+i, y, r, c)
	}
}

func (l layout) putAt(dst *core.Screen, pos core.Vec, r rune, c core.Color) {
	dst.SetColored(l.screenX(pos.X), l.screenY(pos.Y), r, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		g.drawMessage(dst, "OFFICE CHASE", g.errText(), core.ColorBrightRed)
		return
	}

	l := g.layout(dst)
	if dst.Width() < l.mazeW || dst.Height() < l.mazeH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", l.mazeW, l.mazeH))
		return
	}

	st := g.sim
	g.drawMaze(dst, l, st)
	g.drawCones(dst, l, st)
	g.drawProps(dst, l, st)
	g.drawCoins(dst, l, st)
	g.drawExecutives(dst, l, st)
	g.drawPlayer(dst, l, st)

	if l.panelX >= 0 {
		g.drawPanel(dst, l, st)
	} else {
		g.drawCompactHUD(dst)
	}

	if g.flashTicks > 0 && g.flash != "" {
		drawCenteredIn(dst, 0, l.mazeW, 1, " "+g.flash+" ", core.ColorBrightYellow)
	}

	switch g.state {
	case StatePaused:
		g.drawOverlay(dst, l, "PAUSED", "Press P to resume", core.ColorBrightCyan)
	case StateGameOver:
		g.drawOverlay(dst, l, "GAME OVER", fmt.Sprintf("Score %d  R restart", g.score), core.ColorBrightRed)
	case StateWin:
		g.drawOverlay(dst, l, "YOU WIN", fmt.Sprintf("Score %d  R restart", g.score), core.ColorBrightGreen)
	case StateError:
		g.drawOverlay(dst, l, "ERROR", g.errText(), core.ColorBrightRed)
	}
}

func (g *Game) errText() string {
	if g.err == nil {
		return "no level loaded"
	}
	return g.err.Error()
}

func (g *Game) drawMaze(dst *core.Screen, l layout, st *sim.State) {
	for y := 0; y < st.Grid.H; y++ {
		for x := 0; x < st.Grid.W; x++ {
			if st.Grid.IsWall(x, y) {
				l.put(dst, x, y, WallChar, core.ColorGray)
			}
		}
	}
}

// drawCones shades what each patrolling executive can see, using the same
// test the catch check uses.
func (g *Game) drawCones(dst *core.Screen, l layout, st *sim.State) {
	v := st.Cfg.Vision()
	for _, e := range st.Executives {
		for _, c := range sim.VisibleCells(st.Grid, e, v) {
			l.put(dst, c.X, c.Y, ConeChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) drawProps(dst *core.Screen, l layout, st *sim.State) {
	for _, p := range st.Props {
		r, c := propGlyph(p)
		l.putAt(dst, p.Pos, r, c)
	}
	for _, p := range st.PowerUps {
		l.putAt(dst, p.Pos, CoffeeChar, core.ColorOrange)
	}
}

func propGlyph(p sim.Prop) (rune, core.Color) {
	switch p.Kind {
	case sim.Computer:
		if p.Damaged {
			return DamagedChar, core.ColorGray
		}
		return ComputerChar, core.ColorCyan
	case sim.WallArt:
		if p.Damaged {
			return DamagedChar, core.ColorGray
		}
		return WallArtChar, core.ColorMagenta
	default:
		if p.Damaged {
			return HurtCoworkerChar, core.ColorYellow
		}
		return CoworkerChar, core.ColorGreen
	}
}

// tweenAt samples an easing curve from 0 to 1 after elapsed of duration ticks.
func tweenAt(fn ease.TweenFunc, elapsed, duration int) float64 {
	if duration <= 0 {
		return 1
	}
	tw := gween.New(0, 1, float32(duration), fn)
	v, _ := tw.Update(float32(min(elapsed, duration)))
	return float64(v)
}

// coinFrame returns where and how a coin is drawn this frame.
func coinFrame(c sim.Coin, cfg sim.Config, ticks uint64) (core.Vec, rune, core.Color) {
	if c.Collected {
		t := tweenAt(ease.OutQuad, c.Pop, cfg.PopTicks)
		pos := c.Pos.Sub(core.V(0, t*coinRise))
		switch {
		case t < 0.34:
			return pos, '*', core.ColorBrightWhite
		case t < 0.67:
			return pos, '+', core.ColorBrightYellow
		default:
			return pos, '·', core.ColorYellow
		}
	}

	if !c.Landed(cfg.BounceTicks) {
		slide := tweenAt(ease.OutQuad, c.Bounce, cfg.BounceTicks)
		drop := tweenAt(ease.OutBounce, c.Bounce, cfg.BounceTicks)
		pos := c.From.Lerp(c.Pos, slide).Sub(core.V(0, (1-drop)*coinHop))
		return pos, CoinChar, core.ColorBrightYellow
	}

	if c.Expire < coinBlinkTicks && ticks%10 < 5 {
		return c.Pos, CoinChar, core.ColorYellow
	}
	return c.Pos, CoinChar, core.ColorBrightYellow
}

func (g *Game) drawCoins(dst *core.Screen, l layout, st *sim.State) {
	for _, c := range st.Coins {
		pos, r, col := coinFrame(c, st.Cfg, st.Ticks)
		l.putAt(dst, pos, r, col)
	}
}

func (g *Game) drawExecutives(dst *core.Screen, l layout, st *sim.State) {
	for _, e := range st.Executives {
		if e.IsScared() {
			l.putAt(dst, e.Pos, ScaredChar, core.ColorBlue)
			continue
		}
		l.putAt(dst, e.Pos, ExecutiveChar, core.ColorBrightRed)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout, st *sim.State) {
	p := st.Player
	color := core.ColorBrightGreen
	switch {
	case p.Invincible():
		if st.Ticks%8 < 4 {
			color = core.ColorWhite
		}
	case p.Boosted():
		color = core.ColorBrightYellow
	}
	l.putAt(dst, p.Pos, PlayerChar, color)
}

func (g *Game) drawPanel(dst *core.Screen, l layout, st *sim.State) {
	x := l.panelX
	y := 0
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(g.Title(), core.ColorBrightWhite)
	y++
	line(fmt.Sprintf("Score  %d", g.score), core.ColorBrightYellow)
	line("Lives  "+strings.Repeat(string(LifeChar), max(g.lives, 0)), core.ColorRed)
	line(fmt.Sprintf("Level  %d", g.level), core.ColorBrightCyan)
	line(fmt.Sprintf("Smash  %d/%d", g.smashed, g.levelGoal()), core.ColorWhite)

	if st.Player.Boosted() {
		n := int(math.Ceil(float64(st.Player.BoostTicks) / float64(max(st.Cfg.BoostTicks, 1)) * boostBarSegments))
		line("Boost  "+strings.Repeat(string(BoostSegmentChar), n), core.ColorOrange)
	} else {
		y++
	}
	if st.Player.Invincible() {
		line("Shield", core.ColorBrightWhite)
	} else {
		y++
	}

	y++
	line("Executives", core.ColorBrightWhite)
	for _, e := range st.Executives {
		if e.IsScared() {
			line(fmt.Sprintf(" %c %-9s %ds", ScaredChar, e.Name, (e.ScaredTicks+59)/60), core.ColorBlue)
			continue
		}
		line(fmt.Sprintf(" %c %s", ExecutiveChar, e.Name), core.ColorRed)
	}

	y++
	line("Arrows/WASD move", core.ColorGray)
	line("Space/E smash", core.ColorGray)
	line("P pause  Q quit", core.ColorGray)
}

// drawCompactHUD writes a one-line HUD over the top wall row.
func (g *Game) drawCompactHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %d  %s  L%d  %d/%d ", g.score,
		strings.Repeat(string(LifeChar), max(g.lives, 0)), g.level, g.smashed, g.levelGoal())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

func (g *Game) drawOverlay(dst *core.Screen, l layout, title, sub string, c core.Color) {
	w := max(len([]rune(sub))+4, overlayMinWidth)
	w = min(w, l.mazeW)
	h := overlayHeight
	r := core.NewRect((l.mazeW-w)/2, (l.mazeH-h)/2, w, h)
	dst.DrawBox(r)
	drawCenteredIn(dst, r.X, r.W, r.Y+1, title, c)
	drawCenteredIn(dst, r.X, r.W, r.Y+3, sub, core.ColorWhite)
}

func (g *Game) drawMessage(dst *core.Screen, title, sub string, c core.Color) {
	y := dst.Height() / 2
	drawCenteredIn(dst, 0, dst.Width(), y-1, title, core.ColorBrightWhite)
	drawCenteredIn(dst, 0, dst.Width(), y+1, sub, c)
}

// drawCenteredIn centers text within the columns [x, x+w).
func drawCenteredIn(dst *core.Screen, x, w, y int, text string, c core.Color) {
	n := len([]rune(text))
	dst.DrawTextColored(x+max((w-n)/2, 0), y, text, c)
}
