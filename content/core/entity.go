package core

import (
	"rocket-dodge/content/config"
	"rocket-dodge/content/utils"
)

// Rect 以像素为单位的轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Collides 两个矩形严格相交时返回 true，边缘相接不算
func Collides(a, b Rect) bool {
	return utils.Overlap(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
}

type Rocket struct {
	Rect
	Speed float64
}

// Variant 障碍物的种类
type Variant int

const (
	VariantMeteor Variant = iota
	VariantSatellite
)

func (v Variant) String() string {
	if v == VariantSatellite {
		return "satellite"
	}
	return "meteor"
}

// Size 障碍物的边长
func (v Variant) Size() float64 {
	if v == VariantSatellite {
		return config.SatelliteSize
	}
	return config.MeteorSize
}

type Obstacle struct {
	Rect
	Speed   float64
	Variant Variant
}

// Field 游戏区域的大小
type Field struct {
	Width, Height float64
}

func DefaultField() Field {
	return Field{Width: config.ScreenWidth, Height: config.ScreenHeight}
}

func centeredRocket(field Field, speed float64) Rocket {
	return Rocket{
		Rect: Rect{
			X: (field.Width - config.RocketWidth) / 2,
			Y: (field.Height - config.RocketHeight) / 2,
			W: config.RocketWidth,
			H: config.RocketHeight,
		},
		Speed: speed,
	}
}
