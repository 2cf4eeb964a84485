package core

// spawnObstacle 距离上次生成超过 SpawnInterval 帧时，从右边缘生成一个障碍物
func spawnObstacle(st *State, p Policy, field Field, r Rand) (Obstacle, bool) {
	if st.FrameCounter-st.LastSpawnFrame <= p.SpawnInterval {
		return Obstacle{}, false
	}

	variant := VariantMeteor
	if coin(r) {
		variant = VariantSatellite
	}
	size := variant.Size()
	o := Obstacle{
		Rect: Rect{
			X: field.Width,
			Y: r.Float64() * (field.Height - size),
			W: size,
			H: size,
		},
		Speed:   p.ObstacleSpeed,
		Variant: variant,
	}
	st.Obstacles = append(st.Obstacles, o)
	st.LastSpawnFrame = st.FrameCounter
	return o, true
}
