package core

import (
	"math/rand"
	"time"
)

// Rand 随机数来源，*rand.Rand 满足此接口
type Rand interface {
	Float64() float64
}

// NewRand seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func coin(r Rand) bool {
	return r.Float64() < 0.5
}
