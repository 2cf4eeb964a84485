package core

// State 一局游戏的全部可变状态，由 Driver 持有并以指针传给各个组件
type State struct {
	Rocket                Rocket
	Obstacles             []Obstacle
	Score                 int
	FrameCounter          int
	LastSpawnFrame        int
	IsFrozen              bool
	FreezeFramesRemaining int
	GameOver              bool
}

// noSpawnYet 新会话的 LastSpawnFrame，使第一个障碍物恰好在第 SpawnInterval 帧出现
const noSpawnYet = -1

func newState(field Field, p Policy) State {
	return State{
		Rocket:         centeredRocket(field, p.RocketSpeed),
		Obstacles:      make([]Obstacle, 0, 8),
		LastSpawnFrame: noSpawnYet,
	}
}
