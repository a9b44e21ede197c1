package ski

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/state"
)

// Visual characters for rendering
const (
	SkierChar    = '☻'
	AirChar      = '☺'
	ShadowChar   = '·'
	CashChar     = '$'
	RampChar     = '◭'
	ParticleChar = '*'
	EdgeChar     = '║'
	DividerChar  = '┆'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

var obstacleGlyphs = map[string]struct {
	r rune
	c core.Color
}{
	"tree":    {'♣', core.ColorGreen},
	"snowman": {'☃', core.ColorBrightWhite},
	"rock":    {'●', core.ColorGray},
	"cone":    {'▲', core.ColorOrange},
}

const hudRows = 2

// trackView maps world coordinates to screen cells. The player sits near
// the bottom; the view reaches 60% of the spawn horizon ahead.
type trackView struct {
	centerX   int
	laneCols  int
	laneWidth float64
	top       int
	playerRow int
	zPerRow   float64
}

func (g *Game) newTrackView(dst *core.Screen) trackView {
	lanes := max(g.session.LaneCount(), 1)
	laneCols := core.Clamp((dst.Width()-4)/lanes, 3, 9)
	playerRow := dst.Height() - 3
	rows := max(playerRow-hudRows, 1)
	return trackView{
		centerX:   dst.Width() / 2,
		laneCols:  laneCols,
		laneWidth: g.cfg.World.LaneWidth,
		top:       hudRows,
		playerRow: playerRow,
		zPerRow:   g.cfg.World.SpawnDistance * 0.6 / float64(rows),
	}
}

func (v trackView) col(x float64) int {
	return v.centerX + int(math.Round(x/v.laneWidth*float64(v.laneCols)))
}

func (v trackView) row(z float64) int {
	return v.playerRow + int(math.Round(z/v.zPerRow))
}

func (v trackView) visible(row int) bool {
	return row >= v.top && row < v.playerRow+3
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	v := g.newTrackView(dst)
	g.drawTrack(dst, v)
	g.drawObjects(dst, v)
	g.drawParticles(dst, v)
	g.drawSkier(dst, v)
	g.drawHUD(dst)

	switch g.session.Status() {
	case state.StatusMenu:
		g.drawMessage(dst, "SKI RUNNER",
			fmt.Sprintf("Collect every year from %s", g.targetRange()),
			"←/→ steer   SPACE jump   ENTER start")
	case state.StatusShop:
		g.drawShop(dst)
	case state.StatusGameOver:
		g.drawMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Distance: %dm", g.session.Score(), g.session.Distance()),
			"Press R to restart  |  B for menu")
	case state.StatusVictory:
		g.drawMessage(dst, "ALL YEARS COLLECTED!",
			fmt.Sprintf("Score: %d  Distance: %dm", g.session.Score(), g.session.Distance()),
			"Press R to ride again")
	}

	if g.paused {
		g.drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) targetRange() string {
	t := g.session.Targets()
	if len(t) == 0 {
		return ""
	}
	return t[0].Value + " to " + t[len(t)-1].Value
}

func (g *Game) drawTrack(dst *core.Screen, v trackView) {
	half := core.HalfLanes(g.session.LaneCount())
	left := v.col(-(float64(half) + 0.5) * v.laneWidth)
	right := v.col((float64(half) + 0.5) * v.laneWidth)
	length := dst.Height() - v.top

	dst.DrawVLine(left, v.top, length, EdgeChar, core.ColorCyan)
	dst.DrawVLine(right, v.top, length, EdgeChar, core.ColorCyan)

	// Dashes scroll with the distance so the slope appears to move.
	offset := int(g.engine.Distance()/v.zPerRow) % 2
	for l := -half; l < half; l++ {
		x := v.col((float64(l) + 0.5) * v.laneWidth)
		for y := v.top; y < dst.Height(); y++ {
			if (y+offset)%2 == 0 {
				dst.SetColored(x, y, DividerChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawObjects(dst *core.Screen, v trackView) {
	for _, o := range g.engine.Objects() {
		if !o.Active {
			continue
		}
		y := v.row(o.Position.Z)
		if !v.visible(y) {
			continue
		}
		x := v.col(o.Position.X)

		switch o.Type {
		case ObjectObstacle:
			glyph, ok := obstacleGlyphs[o.Kind]
			if !ok {
				glyph = obstacleGlyphs["rock"]
			}
			dst.SetColored(x, y, glyph.r, glyph.c)
		case ObjectRamp:
			dst.DrawTextHex(x-1, y, string([]rune{RampChar, RampChar, RampChar}), o.Color)
		case ObjectCash:
			dst.SetHex(x, y, CashChar, o.Color)
		case ObjectYearToken:
			dst.DrawTextHex(x-utf8.RuneCountInString(o.Value)/2, y, o.Value, o.Color)
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen, v trackView) {
	g.particles.Live(func(p Particle) {
		y := v.row(p.Position.Z) - int(p.Position.Y/2)
		if !v.visible(y) {
			return
		}
		dst.SetHex(v.col(p.Position.X), y, ParticleChar, p.Color)
	})
}

func (g *Game) drawSkier(dst *core.Screen, v trackView) {
	pos, ok := g.player.WorldPosition()
	if !ok || !g.player.Visible() {
		return
	}
	x := v.col(pos.X)
	color := core.ColorBrightWhite
	if g.session.IsImmortalityActive() {
		color = core.ColorBrightRed
	}

	if !g.player.Airborne() {
		dst.SetColored(x, v.playerRow, SkierChar, color)
		return
	}
	// Airborne skiers float above their shadow.
	lift := core.Clamp(int(pos.Y/2), 1, 3)
	dst.SetColored(x, v.playerRow, ShadowChar, core.ColorGray)
	dst.SetColored(x, v.playerRow-lift, AirChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session

	var hearts strings.Builder
	for i := 0; i < s.MaxLives(); i++ {
		if i < s.Lives() {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}
	dst.DrawTextColored(1, 0, hearts.String(), core.ColorBrightRed)

	stats := fmt.Sprintf(" Score: %d  Dist: %dm  Spd: %.1f ", s.Score(), s.Distance(), s.Speed())
	dst.DrawText(s.MaxLives()+2, 0, stats)

	// Collected years light up in their color.
	collected := make(map[int]bool)
	for _, i := range s.CollectedLetters() {
		collected[i] = true
	}
	targets := s.Targets()
	width := 0
	for _, t := range targets {
		width += utf8.RuneCountInString(t.Value) + 1
	}
	x := dst.Width() - width
	for i, t := range targets {
		if collected[i] {
			dst.DrawTextHex(x, 1, t.Value, t.Color)
		} else {
			dst.DrawTextColored(x, 1, t.Value, core.ColorGray)
		}
		x += utf8.RuneCountInString(t.Value) + 1
	}

	var perks []string
	if s.HasDoubleJump() {
		perks = append(perks, "DOUBLE JUMP")
	}
	if s.IsImmortalityActive() {
		perks = append(perks, fmt.Sprintf("RAGE %.1fs", s.ImmortalityRemaining()))
	} else if s.HasImmortality() {
		perks = append(perks, "RAGE READY [E]")
	}
	dst.DrawTextColored(1, 1, strings.Join(perks, "  "), core.ColorBrightYellow)
}

func (g *Game) drawShop(dst *core.Screen) {
	lines := []string{fmt.Sprintf("Score: %d", g.session.Score()), ""}
	for i, item := range g.session.Offers() {
		lines = append(lines,
			fmt.Sprintf("%d) %-14s %5d", i+1, item.Name, item.Cost),
			"   "+item.Description)
	}
	if g.notice != "" {
		lines = append(lines, "", g.notice)
	}
	lines = append(lines, "", "1-3 buy   ENTER resume")
	g.drawMessage(dst, "SKI SHOP", lines...)
}

// drawMessage draws a message box in the center of the screen.
func (g *Game) drawMessage(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightCyan)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
