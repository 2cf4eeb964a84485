// Package flow 在模式选择、游戏、游戏结束三个画面之间切换，宿主只负责喂按键和绘制
package flow

import (
	"github.com/charmbracelet/log"

	"rocket-dodge/content/config"
	"rocket-dodge/content/core"
)

// Event 本帧发生的、宿主可能关心的事情
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventGameOver
	EventLeft // 离开游戏回到模式选择
)

type Options struct {
	Store  core.Store
	Seed   int64
	Logger *log.Logger
}

type Flow struct {
	scene   config.Scene
	cursor  core.Mode
	driver  *core.Driver
	toasts  *core.Toasts
	input   core.InputState
	pressed []string // 本帧刚按下的键
	rng     core.Rand
	store   core.Store
	logger  *log.Logger
}

func New(opts Options) *Flow {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Flow{
		scene:  config.SceneTitle,
		cursor: core.ModeHighTier,
		toasts: core.NewToasts(),
		input:  core.InputState{},
		rng:    core.NewRand(opts.Seed),
		store:  opts.Store,
		logger: logger,
	}
}

// Start 直接以 mode 开始一局
func (f *Flow) Start(mode core.Mode) {
	f.cursor = mode
	f.toasts.Reset()
	f.driver = core.NewDriver(mode,
		core.WithRand(f.rng),
		core.WithStore(f.store),
		core.WithNotifier(f.toasts),
		core.WithLogger(f.logger),
	)
	f.scene = config.SceneGame
	f.logger.Info("session started", "mode", mode, "best", f.driver.Best())
}

// StartLabel 按 "4G" / "5G" 开始；无法识别时留在模式选择画面
func (f *Flow) StartLabel(label string) error {
	mode, err := core.ParseMode(label)
	if err != nil {
		f.leave()
		return err
	}
	f.Start(mode)
	return nil
}

func (f *Flow) KeyDown(name string) {
	name = core.NormalizeKey(name)
	if !f.input.Held(name) {
		f.pressed = append(f.pressed, name)
	}
	f.input.Press(name)
}

func (f *Flow) KeyUp(name string) {
	f.input.Release(name)
}

// Update 每帧调用一次
func (f *Flow) Update() Event {
	defer func() { f.pressed = f.pressed[:0] }()
	f.toasts.Tick()

	switch f.scene {
	case config.SceneTitle:
		return f.resolveTitle()
	case config.SceneGame:
		return f.resolveGame()
	case config.SceneGameOver:
		return f.resolveGameOver()
	}
	return EventNone
}

func (f *Flow) resolveTitle() Event {
	for _, k := range f.pressed {
		switch k {
		case "1", "digit1":
			f.Start(core.ModeLowTier)
			return EventStarted
		case "2", "digit2":
			f.Start(core.ModeHighTier)
			return EventStarted
		case "arrowup", "arrowdown", "arrowleft", "arrowright", "w", "s", "a", "d", "tab":
			if f.cursor == core.ModeHighTier {
				f.cursor = core.ModeLowTier
			} else {
				f.cursor = core.ModeHighTier
			}
		case "enter", "space":
			f.Start(f.cursor)
			return EventStarted
		}
	}
	return EventNone
}

func (f *Flow) resolveGame() Event {
	if f.justPressed("escape") {
		f.leave()
		return EventLeft
	}
	if f.driver.Step(f.input) == core.PhaseGameOver {
		f.scene = config.SceneGameOver
		return EventGameOver
	}
	return EventNone
}

func (f *Flow) resolveGameOver() Event {
	if f.justPressed("escape") {
		f.leave()
		return EventLeft
	}
	if f.justPressed("space") || f.justPressed("enter") || f.justPressed("r") {
		f.driver.Restart()
		f.toasts.Reset()
		f.scene = config.SceneGame
		return EventStarted
	}
	return EventNone
}

// leave 丢弃当前会话并回到模式选择
func (f *Flow) leave() {
	f.driver = nil
	f.scene = config.SceneTitle
	f.input.Clear()
}

func (f *Flow) justPressed(key string) bool {
	for _, k := range f.pressed {
		if k == key {
			return true
		}
	}
	return false
}

func (f *Flow) Scene() config.Scene {
	return f.scene
}

// Cursor 模式选择画面上当前高亮的模式
func (f *Flow) Cursor() core.Mode {
	return f.cursor
}

// Snapshot 没有进行中的会话时 ok 为 false
func (f *Flow) Snapshot() (snap core.Snapshot, ok bool) {
	if f.driver == nil {
		return core.Snapshot{}, false
	}
	return f.driver.Snapshot(), true
}

func (f *Flow) Toasts() []core.Notice {
	return f.toasts.Active()
}
