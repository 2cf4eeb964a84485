package core

// advanceFreeze 在帧计数已经自增之后调用。返回本帧是否被冻结，以及是否在本帧开始了新的卡顿。
// 触发卡顿的那一帧本身就是第一帧冻结帧，所以一次卡顿恰好覆盖 FreezeDuration 帧。
func advanceFreeze(st *State, p Policy, r Rand) (frozen, began bool) {
	if !p.Degraded {
		return false, false
	}
	if st.FreezeFramesRemaining == 0 && st.FrameCounter > 0 && st.FrameCounter%FreezePeriod == 0 && coin(r) {
		st.IsFrozen = true
		st.FreezeFramesRemaining = FreezeDuration
		began = true
	}
	if st.FreezeFramesRemaining == 0 {
		return false, false
	}
	st.FreezeFramesRemaining--
	if st.FreezeFramesRemaining == 0 {
		st.IsFrozen = false
	}
	return true, began
}
