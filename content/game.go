package main

import (
	"image/color"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"

	"rocket-dodge/content/config"
	"rocket-dodge/content/core"
	"rocket-dodge/content/flow"
)

// toastAnchor 提示信息的位置（第一条的中心点）
var toastAnchor = f64.Vec2{config.ScreenWidth / 2, 48}

type Game struct {
	flow      *flow.Flow
	keys      []ebiten.Key
	hitPlayer *audio.Player
	logger    *log.Logger
}

func (g *Game) Update() error {
	// 模式选择画面按 Esc 退出
	if g.flow.Scene() == config.SceneTitle && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.resolveKeys()

	switch g.flow.Update() {
	case flow.EventGameOver:
		if g.hitPlayer != nil {
			if err := g.hitPlayer.Rewind(); err != nil {
				return err
			}
			g.hitPlayer.Play()
		}
	case flow.EventLeft:
		g.logger.Debug("left session")
	}
	return nil
}

// resolveKeys 把本帧的按下/松开事件交给游戏逻辑，键名由 core 统一转为小写
func (g *Game) resolveKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.flow.KeyDown(k.String())
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.flow.KeyUp(k.String())
	}
}

// Draw 每次绘制都会调用这个函数，只读取状态，不修改
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSpace)

	var titleTexts string
	var texts string
	switch g.flow.Scene() {
	case config.SceneTitle:
		titleTexts = "Rocket Dodge"
		texts = "PRESS 1 FOR 4G, 2 FOR 5G"
	case config.SceneGameOver:
		titleTexts = "Game Over"
		texts = "PRESS SPACE KEY TO RESTART"
	}

	if snap, ok := g.flow.Snapshot(); ok && g.flow.Scene() != config.SceneTitle {
		g.drawField(screen, snap)
		g.drawHUD(screen, snap)
		if snap.Phase == core.PhaseGameOver {
			texts += "\nSCORE " + strconv.Itoa(snap.Score) + "  BEST " + strconv.Itoa(snap.Best)
		}
	}

	// 绘制标题
	drawText(screen, titleTexts, config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, text.AlignCenter, color.White)
	drawText(screen, texts, config.ScreenWidth/2, 7*config.TitleFontSize, config.FontSize, text.AlignCenter, color.White)

	if g.flow.Scene() == config.SceneTitle {
		g.drawModeOptions(screen)
	}

	g.drawToasts(screen)
}

func (g *Game) drawModeOptions(screen *ebiten.Image) {
	options := []struct {
		mode  core.Mode
		label string
	}{
		{core.ModeLowTier, "4G  LAGGY AND SLOW"},
		{core.ModeHighTier, "5G  FAST AND SMOOTH"},
	}
	for i, o := range options {
		y := 10*config.TitleFontSize + float64(i)*3*config.FontSize
		clr := color.Color(color.Gray{0x90})
		if g.flow.Cursor() == o.mode {
			clr = colorFlame
			vector.StrokeRect(screen, config.ScreenWidth/2-150, float32(y)-6, 300, config.FontSize+12, 2, colorFlame, false)
		}
		drawText(screen, o.label, config.ScreenWidth/2, y, config.FontSize, text.AlignCenter, clr)
	}
	drawText(screen, "ARROWS TO CHOOSE, ENTER TO START", config.ScreenWidth/2, config.ScreenHeight-4*config.FontSize, config.FontSize, text.AlignCenter, color.Gray{0x90})
}

func (g *Game) drawField(screen *ebiten.Image, snap core.Snapshot) {
	// 绘制障碍物
	for _, o := range snap.Obstacles {
		img := meteorImage
		if o.Variant == core.VariantSatellite {
			img = satelliteImage
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, op)
	}

	// 绘制火箭
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(snap.Rocket.X, snap.Rocket.Y)
	screen.DrawImage(rocketImage, op)

	// 卡顿时画面变暗
	if snap.Phase == core.PhaseFrozen {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, colorFreezeDim, false)
		drawText(screen, "LAG", config.ScreenWidth/2, config.ScreenHeight/2, config.TitleFontSize, text.AlignCenter, colorNose)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap core.Snapshot) {
	// 绘制分数
	drawText(screen, "Score: "+strconv.Itoa(snap.Score), config.HUDPadding, config.HUDPadding, config.FontSize, text.AlignStart, color.White)
	drawText(screen, "Best: "+strconv.Itoa(snap.Best), config.ScreenWidth/2, config.HUDPadding, config.FontSize, text.AlignCenter, color.White)
	drawText(screen, snap.Mode.String(), config.ScreenWidth-config.HUDPadding, config.HUDPadding, config.FontSize, text.AlignEnd, colorWindow)
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	for i, n := range g.flow.Toasts() {
		clr := colorFlame
		if n.Kind == core.NoticeFreeze {
			clr = colorNose
		}
		y := toastAnchor[1] + float64(i)*2*config.FontSize
		w := float32(len(n.Text)*config.FontSize + 2*config.HUDPadding)
		vector.DrawFilledRect(screen, float32(toastAnchor[0])-w/2, float32(y)-config.HUDPadding/2, w, config.FontSize+config.HUDPadding, color.RGBA{0, 0, 0, 0xc0}, false)
		drawText(screen, n.Text, toastAnchor[0], y, config.FontSize, text.AlignCenter, clr)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
