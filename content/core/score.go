package core

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// Store 持久化的键值存储，只用于保存每种模式的最高分
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Scoreboard 某一模式的最高分。会话开始时读取一次，只在游戏结束且破纪录时写入。
type Scoreboard struct {
	store  Store
	key    string
	best   int
	logger *log.Logger
}

func NewScoreboard(store Store, mode Mode, logger *log.Logger) *Scoreboard {
	if logger == nil {
		logger = log.Default()
	}
	b := &Scoreboard{
		store:  store,
		key:    mode.ScoreKey(),
		logger: logger,
	}
	b.best = b.load()
	return b
}

// load 缺失或无法解析的记录都当作 0
func (b *Scoreboard) load() int {
	if b.store == nil {
		return 0
	}
	raw, ok := b.store.Get(b.key)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		b.logger.Debug("ignoring unreadable high score", "key", b.key, "value", raw)
		return 0
	}
	return v
}

func (b *Scoreboard) Best() int {
	return b.best
}

// Submit 分数严格大于最高分时更新并写入存储，返回是否破纪录
func (b *Scoreboard) Submit(score int) (bool, error) {
	if score <= b.best {
		return false, nil
	}
	b.best = score
	if b.store == nil {
		return true, nil
	}
	return true, b.store.Set(b.key, strconv.Itoa(score))
}
