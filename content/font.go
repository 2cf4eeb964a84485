package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	arcadeFaceSource *text.GoTextFaceSource
)

func InitFont() error {
	// 加载字体
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return err
	}
	arcadeFaceSource = s
	return nil
}

// drawText 在 (x, y) 处绘制一行文字
func drawText(screen *ebiten.Image, str string, x, y, size float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, str, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}
