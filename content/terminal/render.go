package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"rocket-dodge/content/config"
	"rocket-dodge/content/core"
	"rocket-dodge/content/flow"
	"rocket-dodge/content/utils"
)

var (
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleRocket    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleMeteor    = tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	styleSatellite = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCursor    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLawnGreen)
	styleToast     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	styleOver      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

const (
	glyphRocket    = '>'
	glyphMeteor    = '@'
	glyphSatellite = '#'
)

// project 将游戏区域中的矩形映射到第 1 行以下的终端格子，至少占一个格子
func project(r core.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	nx, ny := utils.Normalize(r.X, r.Y)
	x0, y0 = utils.ReNormalize(nx, ny, cols, rows)
	nx, ny = utils.Normalize(r.Right(), r.Bottom())
	x1, y1 = utils.ReNormalize(nx, ny, cols, rows)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0 + 1, x1, y1 + 1
}

func draw(s tcell.Screen, fl *flow.Flow) {
	s.Clear()
	w, h := s.Size()

	switch fl.Scene() {
	case config.SceneTitle:
		drawTitle(s, fl, w, h)
	default:
		if snap, ok := fl.Snapshot(); ok {
			drawField(s, snap, w, h)
			if snap.Phase == core.PhaseGameOver {
				drawCentered(s, w/2, h/2, " GAME OVER ", styleOver)
				drawCentered(s, w/2, h/2+1, fmt.Sprintf(" SCORE %d  BEST %d ", snap.Score, snap.Best), styleOver)
				drawCentered(s, w/2, h/2+2, " SPACE: RESTART  ESC: MODES ", styleOver)
			}
		}
	}

	for i, n := range fl.Toasts() {
		drawCentered(s, w/2, 2+i, " "+n.Text+" ", styleToast)
	}
	s.Show()
}

func drawTitle(s tcell.Screen, fl *flow.Flow, w, h int) {
	drawCentered(s, w/2, h/3, "ROCKET DODGE", styleTitle)
	drawCentered(s, w/2, h/3+1, "Choose your network", tcell.StyleDefault)

	options := []struct {
		mode  core.Mode
		label string
	}{
		{core.ModeLowTier, "1) 4G  laggy, slow"},
		{core.ModeHighTier, "2) 5G  fast, smooth"},
	}
	for i, o := range options {
		st := tcell.StyleDefault
		if fl.Cursor() == o.mode {
			st = styleCursor
		}
		drawCentered(s, w/2, h/3+3+i, o.label, st)
	}
	drawCentered(s, w/2, h/3+6, "ARROWS + ENTER, ESC/CTRL-C TO QUIT", tcell.StyleDefault)
}

func drawField(s tcell.Screen, snap core.Snapshot, w, h int) {
	rows := h - 1
	if rows <= 0 || w <= 0 {
		return
	}

	for _, o := range snap.Obstacles {
		glyph, st := glyphMeteor, styleMeteor
		if o.Variant == core.VariantSatellite {
			glyph, st = glyphSatellite, styleSatellite
		}
		fill(s, o.Rect, w, h, glyph, st)
	}
	fill(s, snap.Rocket.Rect, w, h, glyphRocket, styleRocket)

	hud := fmt.Sprintf(" %s  SCORE %d  BEST %d ", snap.Mode, snap.Score, snap.Best)
	if snap.Phase == core.PhaseFrozen {
		hud += " LAG "
	}
	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, styleHUD)
	}
	drawText(s, 0, 0, hud, styleHUD)
}

func fill(s tcell.Screen, r core.Rect, w, h int, glyph rune, st tcell.Style) {
	x0, y0, x1, y1 := project(r, w, h-1)
	for y := y0; y < y1; y++ {
		if y < 1 || y >= h {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= w {
				continue
			}
			s.SetContent(x, y, glyph, nil, st)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
