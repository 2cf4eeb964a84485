package core

import "rocket-dodge/content/utils"

// moveRocket 按住的方向键移动火箭，超出边界时贴边
func moveRocket(st *State, in InputState, field Field) {
	dir := in.direction()
	rk := &st.Rocket
	rk.X = utils.Clamp(rk.X+dir[0]*rk.Speed, 0, field.Width-rk.W)
	rk.Y = utils.Clamp(rk.Y+dir[1]*rk.Speed, 0, field.Height-rk.H)
}

// moveObstacles 障碍物向左移动，完全离开左边界的障碍物被移除并加分，返回本帧移除的数量
func moveObstacles(st *State) int {
	cleared := 0
	kept := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		o.X -= o.Speed
		if o.Right() < 0 {
			// 移除与加分必须同时发生
			st.Score += ClearReward
			cleared++
			continue
		}
		kept = append(kept, o)
	}
	st.Obstacles = kept
	return cleared
}

// firstCollision 返回第一个与火箭相交的障碍物下标
func firstCollision(rocket Rect, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if Collides(rocket, o.Rect) {
			return i, true
		}
	}
	return -1, false
}
