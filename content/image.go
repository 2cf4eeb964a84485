package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rocket-dodge/content/config"
)

var (
	rocketImage    *ebiten.Image
	meteorImage    *ebiten.Image
	satelliteImage *ebiten.Image
)

var (
	colorSpace     = color.RGBA{0x0b, 0x0d, 0x21, 0xff}
	colorHull      = color.RGBA{0xe8, 0xe8, 0xf0, 0xff}
	colorNose      = color.RGBA{0xff, 0x45, 0x2d, 0xff}
	colorFlame     = color.RGBA{0xff, 0xb3, 0x00, 0xff}
	colorWindow    = color.RGBA{0x3c, 0x9e, 0xff, 0xff}
	colorRock      = color.RGBA{0x8b, 0x6a, 0x4e, 0xff}
	colorCrater    = color.RGBA{0x5e, 0x45, 0x33, 0xff}
	colorPanel     = color.RGBA{0x2a, 0x5c, 0xc9, 0xff}
	colorBus       = color.RGBA{0xc0, 0xc0, 0xc8, 0xff}
	colorFreezeDim = color.RGBA{0x10, 0x10, 0x30, 0x90}
)

// InitImage 精灵图全部用矢量图形生成，不需要图片资源
func InitImage() {
	rocketImage = ebiten.NewImage(config.RocketWidth, config.RocketHeight)
	w, h := float32(config.RocketWidth), float32(config.RocketHeight)
	// 尾焰
	vector.DrawFilledRect(rocketImage, 0, h*0.35, w*0.15, h*0.3, colorFlame, false)
	// 箭身
	vector.DrawFilledRect(rocketImage, w*0.15, h*0.25, w*0.6, h*0.5, colorHull, false)
	// 尾翼
	vector.DrawFilledRect(rocketImage, w*0.15, 0, w*0.15, h, colorNose, false)
	// 箭头
	vector.DrawFilledCircle(rocketImage, w*0.75, h/2, h*0.25, colorNose, true)
	// 舷窗
	vector.DrawFilledCircle(rocketImage, w*0.5, h/2, h*0.12, colorWindow, true)

	meteorImage = ebiten.NewImage(config.MeteorSize, config.MeteorSize)
	m := float32(config.MeteorSize)
	vector.DrawFilledCircle(meteorImage, m/2, m/2, m/2, colorRock, true)
	vector.DrawFilledCircle(meteorImage, m*0.35, m*0.4, m*0.1, colorCrater, true)
	vector.DrawFilledCircle(meteorImage, m*0.65, m*0.65, m*0.08, colorCrater, true)

	satelliteImage = ebiten.NewImage(config.SatelliteSize, config.SatelliteSize)
	s := float32(config.SatelliteSize)
	vector.DrawFilledRect(satelliteImage, 0, s*0.3, s*0.3, s*0.4, colorPanel, false)
	vector.DrawFilledRect(satelliteImage, s*0.7, s*0.3, s*0.3, s*0.4, colorPanel, false)
	vector.DrawFilledRect(satelliteImage, s*0.3, s*0.25, s*0.4, s*0.5, colorBus, false)
	vector.StrokeLine(satelliteImage, s/2, 0, s/2, s*0.25, 2, colorBus, true)
}
