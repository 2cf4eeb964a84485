package config

// Scene 当前显示的画面
type Scene int

const (
	SceneTitle    Scene = iota // 模式选择
	SceneGame                  // 游戏中
	SceneGameOver              // 游戏结束
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case SceneGame:
		return "game"
	case SceneGameOver:
		return "game-over"
	}
	return "unknown"
}

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	TitleFontSize = FontSize * 2
	FontSize      = 12
	HUDPadding    = 8
)

const (
	RocketWidth   = 50
	RocketHeight  = 30
	MeteorSize    = 30
	SatelliteSize = 40
)

const (
	FrameRate     = 60 // 宿主每秒调用 Update 的次数
	ToastLifetime = 90 // 提示信息保留的帧数
)
