package core

import "rocket-dodge/content/config"

// NoticeKind 提示的类型
type NoticeKind int

const (
	NoticeFreeze    NoticeKind = iota // 4G 模式开始卡顿
	NoticeHighScore                   // 游戏结束时破纪录
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// Notifier 提示信息的出口，只发不收
type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type toast struct {
	Notice
	ttl int
}

// Toasts 按帧计时自动消失的提示队列，实现 Notifier
type Toasts struct {
	items    []toast
	lifetime int
}

func NewToasts() *Toasts {
	return &Toasts{lifetime: config.ToastLifetime}
}

func (t *Toasts) Notify(n Notice) {
	t.items = append(t.items, toast{Notice: n, ttl: t.lifetime})
}

// Tick 每帧调用一次
func (t *Toasts) Tick() {
	kept := t.items[:0]
	for _, it := range t.items {
		it.ttl--
		if it.ttl > 0 {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

// Active 当前仍在显示的提示，最新的在最后
func (t *Toasts) Active() []Notice {
	out := make([]Notice, 0, len(t.items))
	for _, it := range t.items {
		out = append(out, it.Notice)
	}
	return out
}

func (t *Toasts) Reset() {
	t.items = t.items[:0]
}
