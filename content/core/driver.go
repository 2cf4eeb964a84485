package core

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Phase 游戏循环的状态
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseFrozen
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFrozen:
		return "frozen"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Driver 每帧被宿主调用一次，串起卡顿、移动、生成、碰撞和计分。
// 不阻塞，不启动 goroutine，输入和 Step 必须在同一个 goroutine 上。
type Driver struct {
	mode     Mode
	policy   Policy
	field    Field
	state    State
	phase    Phase
	rng      Rand
	store    Store
	board    *Scoreboard
	notifier Notifier
	logger   *log.Logger
}

type Option func(d *Driver)

func WithRand(r Rand) Option {
	return func(d *Driver) {
		d.rng = r
	}
}

func WithStore(s Store) Option {
	return func(d *Driver) {
		d.store = s
	}
}

func WithNotifier(n Notifier) Option {
	return func(d *Driver) {
		d.notifier = n
	}
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

func WithField(f Field) Option {
	return func(d *Driver) {
		d.field = f
	}
}

// NewDriver 开始一局新游戏，并从存储中读取该模式的最高分
func NewDriver(mode Mode, options ...Option) *Driver {
	d := &Driver{
		mode:   mode,
		policy: PolicyFor(mode),
		field:  DefaultField(),
	}
	for _, option := range options {
		option(d)
	}
	if d.rng == nil {
		d.rng = NewRand(0)
	}
	if d.notifier == nil {
		d.notifier = NotifierFunc(func(Notice) {})
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	d.logger = d.logger.With("mode", mode)
	d.board = NewScoreboard(d.store, mode, d.logger)
	d.Restart()
	return d
}

// Restart 重置本局状态，不改变模式，也不影响其他模式的最高分
func (d *Driver) Restart() {
	d.state = newState(d.field, d.policy)
	d.phase = PhaseRunning
	d.logger.Debug("session started", "best", d.board.Best())
}

// Step 推进一帧。游戏结束后不再做任何修改，直到调用 Restart。
func (d *Driver) Step(in InputState) Phase {
	if d.phase == PhaseGameOver {
		return d.phase
	}
	st := &d.state
	st.FrameCounter++

	frozen, began := advanceFreeze(st, d.policy, d.rng)
	if began {
		d.logger.Info("network lag", "frame", st.FrameCounter, "frames", FreezeDuration)
		d.notifier.Notify(Notice{Kind: NoticeFreeze, Text: "Network lag! Signal lost..."})
	}
	if frozen {
		d.phase = PhaseFrozen
		return d.phase
	}
	d.phase = PhaseRunning

	moveRocket(st, in, d.field)
	moveObstacles(st)
	if o, ok := spawnObstacle(st, d.policy, d.field, d.rng); ok {
		d.logger.Debug("spawned obstacle", "frame", st.FrameCounter, "variant", o.Variant, "y", o.Y)
	}
	if _, hit := firstCollision(st.Rocket.Rect, st.Obstacles); hit {
		d.endGame()
	}
	return d.phase
}

func (d *Driver) endGame() {
	d.state.GameOver = true
	d.phase = PhaseGameOver
	score := d.state.Score
	d.logger.Info("game over", "score", score, "frame", d.state.FrameCounter)

	record, err := d.board.Submit(score)
	if err != nil {
		d.logger.Error("failed to save high score", "score", score, "err", err)
	}
	if record {
		d.notifier.Notify(Notice{Kind: NoticeHighScore, Text: fmt.Sprintf("New high score: %d!", score)})
	}
}

func (d *Driver) Mode() Mode {
	return d.mode
}

func (d *Driver) Phase() Phase {
	return d.phase
}

func (d *Driver) Policy() Policy {
	return d.policy
}

func (d *Driver) Best() int {
	return d.board.Best()
}

// Snapshot 当前状态的只读副本，供渲染使用
type Snapshot struct {
	Mode                  Mode
	Phase                 Phase
	Rocket                Rocket
	Obstacles             []Obstacle
	Score                 int
	Best                  int
	Frame                 int
	FreezeFramesRemaining int
}

func (d *Driver) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(d.state.Obstacles))
	copy(obstacles, d.state.Obstacles)
	return Snapshot{
		Mode:                  d.mode,
		Phase:                 d.phase,
		Rocket:                d.state.Rocket,
		Obstacles:             obstacles,
		Score:                 d.state.Score,
		Best:                  d.board.Best(),
		Frame:                 d.state.FrameCounter,
		FreezeFramesRemaining: d.state.FreezeFramesRemaining,
	}
}

// State 返回内部状态的副本
func (d *Driver) State() State {
	st := d.state
	st.Obstacles = make([]Obstacle, len(d.state.Obstacles))
	copy(st.Obstacles, d.state.Obstacles)
	return st
}
