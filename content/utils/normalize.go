package utils

import "rocket-dodge/content/config"

// Normalize 将屏幕坐标换算为 [0, 1] 区间内的比例
func Normalize(x, y float64) (float64, float64) {
	return x / config.ScreenWidth, y / config.ScreenHeight
}

// ReNormalize 将比例换算回宽 w 高 h 的网格坐标
func ReNormalize(x, y float64, w, h int) (int, int) {
	return int(x * float64(w)), int(y * float64(h))
}
