// Package terminal 在终端里运行游戏，画面按比例缩放到字符网格上
package terminal

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"rocket-dodge/content/config"
	"rocket-dodge/content/flow"
)

// Run 占用 screen 直到 ctx 取消或玩家退出，返回前恢复终端
func Run(ctx context.Context, screen tcell.Screen, fl *flow.Flow, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / config.FrameRate)
	defer tick.Stop()
	holds := newHoldTracker(holdDuration)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("terminal loop cancelled")
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlC {
					return nil
				}
				if e.Key() == tcell.KeyEscape && fl.Scene() == config.SceneTitle {
					return nil
				}
				name := keyName(e)
				if name == "" {
					continue
				}
				holds.press(name, time.Now())
				fl.KeyDown(name)
			}
		case now := <-tick.C:
			for _, name := range holds.expire(now) {
				fl.KeyUp(name)
			}
			if ev := fl.Update(); ev == flow.EventGameOver {
				logger.Debug("game over on terminal")
			}
			draw(screen, fl)
		}
	}
}
