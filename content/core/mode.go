package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode 模拟的网络模式，会话开始时选定，之后不可更改
type Mode int

const (
	ModeHighTier Mode = iota // 5G，默认
	ModeLowTier              // 4G，会随机卡顿
)

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode 解析 "4G" / "5G"，空字符串返回默认的 5G
func ParseMode(label string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "":
		return ModeHighTier, nil
	case "5G":
		return ModeHighTier, nil
	case "4G":
		return ModeLowTier, nil
	}
	return ModeHighTier, errors.Wrapf(ErrUnknownMode, "%q", label)
}

func (m Mode) String() string {
	if m == ModeLowTier {
		return "4G"
	}
	return "5G"
}

// ScoreKey 最高分在存储中的键名
func (m Mode) ScoreKey() string {
	return "highScore_" + m.String()
}

const (
	FreezePeriod   = 120 // 每隔多少帧抛一次硬币决定是否卡顿
	FreezeDuration = 15  // 卡顿持续的帧数
	ClearReward    = 10  // 每躲过一个障碍物的得分
)

// Policy 模式相关的参数
type Policy struct {
	RocketSpeed   float64 // 火箭每帧移动的像素
	SpawnInterval int     // 障碍物生成间隔（帧）
	ObstacleSpeed float64 // 障碍物每帧向左移动的像素
	Degraded      bool    // 是否启用随机卡顿
}

func PolicyFor(m Mode) Policy {
	if m == ModeLowTier {
		return Policy{
			RocketSpeed:   3,
			SpawnInterval: 90,
			ObstacleSpeed: 3,
			Degraded:      true,
		}
	}
	return Policy{
		RocketSpeed:   5,
		SpawnInterval: 60,
		ObstacleSpeed: 5,
	}
}
