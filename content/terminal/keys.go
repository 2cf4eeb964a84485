package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"rocket-dodge/content/core"
)

// holdDuration 终端没有松键事件，最后一次按下后这么久仍视为按住。
// 需要覆盖终端自动重复的首次延迟，否则按住方向键时火箭会顿一下。
const holdDuration = 150 * time.Millisecond

// keyName 将 tcell 按键事件转换为与 ebiten 一致的小写键名，无关的键返回空字符串
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrowup"
	case tcell.KeyDown:
		return "arrowdown"
	case tcell.KeyLeft:
		return "arrowleft"
	case tcell.KeyRight:
		return "arrowright"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return core.NormalizeKey(string(ev.Rune()))
	}
	return ""
}

type holdTracker struct {
	hold time.Duration
	seen map[string]time.Time
}

func newHoldTracker(hold time.Duration) *holdTracker {
	return &holdTracker{hold: hold, seen: make(map[string]time.Time)}
}

func (h *holdTracker) press(name string, now time.Time) {
	h.seen[name] = now
}

// expire 返回已超过保持时间、应视为松开的键
func (h *holdTracker) expire(now time.Time) []string {
	var released []string
	for name, at := range h.seen {
		if now.Sub(at) >= h.hold {
			released = append(released, name)
			delete(h.seen, name)
		}
	}
	return released
}
