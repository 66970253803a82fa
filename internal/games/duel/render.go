package duel

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// Minimum screen size for the full layout
const (
	minWidth  = 44
	minHeight = 18
	panelH    = 6
)

// Render draws the duel into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < minWidth || h < minHeight {
		dst.DrawTextCentered(h/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(h/2, fmt.Sprintf("need %dx%d, have %dx%d", minWidth, minHeight, w, h), core.ColorGray)
		return
	}

	title := fmt.Sprintf("%s - %s", g.Title(), g.encounter.Title)
	dst.DrawTextCentered(0, title, core.ColorBrightYellow)

	panels := core.NewRect(1, 2, w-2, panelH)
	left, right := panels.SplitColumns(2)
	g.renderCharacter(dst, left, g.session.Player(), core.ColorCyan)
	g.renderCharacter(dst, right, g.session.Monster(), core.ColorMagenta)

	y := panels.Bottom() + 1
	g.renderBanner(dst, y)
	y += 2

	if g.mode == ModeTactics {
		g.renderLoadout(dst, y)
		y += 2
	}

	logBox := core.NewRect(1, y, w-2, h-y-2)
	g.renderLog(dst, logBox)

	dst.DrawTextCentered(h-1, g.controlsHint(), core.ColorGray)
}

// renderCharacter draws one combatant panel. HP is shown as is, including
// negative values after a finishing blow; only the bar is clamped.
func (g *Game) renderCharacter(dst *core.Screen, r core.Rect, c combat.Character, accent core.Color) {
	dst.DrawBox(r, accent)
	inner := r.Inset(1)
	inner.X++
	inner.W -= 2

	name := runewidth.Truncate(c.Name, inner.W, "…")
	dst.DrawTextColored(inner.X, inner.Y, name, accent)

	hpColor := core.HealthColor(c.HP, c.Stats.MaxHP)
	dst.DrawBar(inner.X, inner.Y+1, inner.W, c.HP, c.Stats.MaxHP, hpColor)
	dst.DrawTextColored(inner.X, inner.Y+2, fmt.Sprintf("HP: %d / %d", c.HP, c.Stats.MaxHP), hpColor)
	dst.DrawTextColored(inner.X, inner.Y+3,
		fmt.Sprintf("ATK %d  DEF %d", c.Stats.Attack, c.Stats.Defense), core.ColorGray)
}

func (g *Game) renderBanner(dst *core.Screen, y int) {
	st := g.session.State()
	switch st.Kind {
	case combat.PlayerTurn:
		dst.DrawTextCentered(y, ">>> YOUR TURN <<<", core.ColorBrightGreen)
	case combat.MonsterTurn:
		dst.DrawTextCentered(y, g.session.Monster().Name+" is preparing to attack...", core.ColorOrange)
	case combat.GameOver:
		if st.Winner == combat.Player {
			dst.DrawTextCentered(y, "VICTORY!", core.ColorBrightGreen)
		} else {
			dst.DrawTextCentered(y, "DEFEAT!", core.ColorBrightRed)
		}
	}

	if g.notice != "" && g.tick < g.noticeUntil {
		dst.DrawTextCentered(y+1, g.notice, core.ColorYellow)
	}
}

func (g *Game) renderLoadout(dst *core.Screen, y int) {
	parts := make([]string, 0, 3)
	for i, slot := range g.session.Loadout() {
		if i >= len(skillActions) {
			break
		}
		label := fmt.Sprintf("[%d] %s", i+1, slot.Ability.Name)
		if !slot.Ready() {
			label += fmt.Sprintf(" (%d)", slot.Remaining)
		}
		parts = append(parts, label)
	}
	dst.DrawTextCentered(y, strings.Join(parts, "   "), core.ColorWhite)
}

func (g *Game) renderLog(dst *core.Screen, r core.Rect) {
	if r.H < 3 {
		return
	}
	dst.DrawBox(r, core.ColorGray)
	dst.DrawText(r.X+2, r.Y, " Combat Log ")

	inner := r.Inset(1)
	inner.X++
	inner.W -= 2

	lines := g.cfg.Log.Visible
	if lines <= 0 || lines > inner.H {
		lines = inner.H
	}
	events := g.session.RecentLog(lines)
	for i, ev := range events {
		color := core.ColorOrange
		if ev.Attacker == g.session.Player().Name {
			color = core.ColorBrightRed
		}
		line := fmt.Sprintf("%2d. %s", ev.Turn, ev.String())
		dst.DrawTextColored(inner.X, inner.Y+i, runewidth.Truncate(line, inner.W, "…"), color)
	}
}

func (g *Game) controlsHint() string {
	if g.session.State().IsOver() {
		return "R: Rematch  |  C: Copy log  |  B: Menu  |  Q: Quit"
	}
	if g.mode == ModeTactics {
		return "1-3: Ability  |  Space: Attack  |  C: Copy log  |  Q: Quit"
	}
	return "Space: Attack  |  C: Copy log  |  Q: Quit"
}

// LogText returns the full transcript as plain text, one event per line.
func (g *Game) LogText() string {
	if g.session == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s\n", g.Title(), g.encounter.Title)
	for _, ev := range g.transcript {
		fmt.Fprintf(&sb, "%d. %s\n", ev.Turn, ev.String())
	}
	if st := g.session.State(); st.IsOver() {
		fmt.Fprintf(&sb, "Winner: %s\n", st.Winner)
	}
	return sb.String()
}
