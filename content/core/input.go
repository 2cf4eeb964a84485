package core

import (
	"strings"

	"golang.org/x/image/math/f64"
)

// InputState 按键名到是否按住的映射，键名统一为小写
type InputState map[string]bool

// NormalizeKey 统一键名格式，例如 "ArrowUp" -> "arrowup"
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (in InputState) Press(key string) {
	in[NormalizeKey(key)] = true
}

func (in InputState) Release(key string) {
	delete(in, NormalizeKey(key))
}

func (in InputState) Held(key string) bool {
	return in[NormalizeKey(key)]
}

func (in InputState) Clear() {
	for k := range in {
		delete(in, k)
	}
}

var moveKeys = []struct {
	keys []string
	dir  f64.Vec2
}{
	{[]string{"arrowup", "w"}, f64.Vec2{0, -1}},
	{[]string{"arrowdown", "s"}, f64.Vec2{0, 1}},
	{[]string{"arrowleft", "a"}, f64.Vec2{-1, 0}},
	{[]string{"arrowright", "d"}, f64.Vec2{1, 0}},
}

// direction 根据按住的方向键计算位移方向，同一方向的多个键只算一次
func (in InputState) direction() f64.Vec2 {
	var v f64.Vec2
	for _, mk := range moveKeys {
		for _, k := range mk.keys {
			if in[k] {
				v[0] += mk.dir[0]
				v[1] += mk.dir[1]
				break
			}
		}
	}
	return v
}
