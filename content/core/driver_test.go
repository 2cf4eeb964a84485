package core

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestDriver(mode Mode, r Rand, opts ...Option) *Driver {
	opts = append([]Option{WithRand(r), WithLogger(quietLogger())}, opts...)
	return NewDriver(mode, opts...)
}

func TestNewDriverInitialState(t *testing.T) {
	d := newTestDriver(ModeHighTier, fixedRand(0.5))
	st := d.State()

	if d.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", d.Phase())
	}
	if st.Score != 0 || st.FrameCounter != 0 || len(st.Obstacles) != 0 || st.GameOver {
		t.Errorf("unexpected initial state %+v", st)
	}
	field := DefaultField()
	if st.Rocket.X != (field.Width-st.Rocket.W)/2 || st.Rocket.Y != (field.Height-st.Rocket.H)/2 {
		t.Errorf("rocket not centered: %+v", st.Rocket)
	}
	if st.Rocket.Speed != PolicyFor(ModeHighTier).RocketSpeed {
		t.Errorf("rocket speed = %v", st.Rocket.Speed)
	}
}

func TestFrameCounterAdvancesAcrossFreezes(t *testing.T) {
	rec := &recorder{}
	// 0 always wins the coin flip and keeps obstacles on the top edge, away from the rocket.
	d := newTestDriver(ModeLowTier, fixedRand(0), WithNotifier(rec))

	const n = 500
	frozen := 0
	for i := 0; i < n; i++ {
		if d.Step(InputState{}) == PhaseFrozen {
			frozen++
		}
	}
	if got := d.State().FrameCounter; got != n {
		t.Errorf("FrameCounter = %d, want %d", got, n)
	}
	// freezes begin on frames 120, 240, 360 and 480
	if want := 4; rec.count(NoticeFreeze) != want {
		t.Errorf("freeze notices = %d, want %d", rec.count(NoticeFreeze), want)
	}
	if frozen != 4*FreezeDuration {
		t.Errorf("frozen frames = %d, want %d", frozen, 4*FreezeDuration)
	}
}

func TestFreezeSkipsExactlyFifteenFrames(t *testing.T) {
	rec := &recorder{}
	d := newTestDriver(ModeLowTier, fixedRand(0), WithNotifier(rec))
	in := InputState{"arrowright": true}

	for i := 1; i < FreezePeriod; i++ {
		if p := d.Step(in); p != PhaseRunning {
			t.Fatalf("frame %d: phase %v before the first freeze", i, p)
		}
	}
	before := d.State()

	for i := 0; i < FreezeDuration; i++ {
		if p := d.Step(in); p != PhaseFrozen {
			t.Fatalf("frozen frame %d: phase %v", i, p)
		}
		st := d.State()
		if st.Rocket.X != before.Rocket.X {
			t.Fatalf("rocket moved while frozen: %v -> %v", before.Rocket.X, st.Rocket.X)
		}
		if len(st.Obstacles) != len(before.Obstacles) {
			t.Fatalf("obstacle count changed while frozen")
		}
		for j := range st.Obstacles {
			if st.Obstacles[j].X != before.Obstacles[j].X {
				t.Fatalf("obstacle %d moved while frozen", j)
			}
		}
		if st.FreezeFramesRemaining != FreezeDuration-1-i {
			t.Fatalf("FreezeFramesRemaining = %d, want %d", st.FreezeFramesRemaining, FreezeDuration-1-i)
		}
	}
	if d.State().IsFrozen {
		t.Error("IsFrozen should clear once the countdown reaches zero")
	}

	if p := d.Step(in); p != PhaseRunning {
		t.Fatalf("phase after freeze = %v, want running", p)
	}
	if got, want := d.State().Rocket.X, before.Rocket.X+PolicyFor(ModeLowTier).RocketSpeed; got != want {
		t.Errorf("rocket x after freeze = %v, want %v", got, want)
	}
	if rec.count(NoticeFreeze) != 1 {
		t.Errorf("freeze notices = %d, want 1", rec.count(NoticeFreeze))
	}
}

func TestFreezeNeedsCoinFlip(t *testing.T) {
	d := newTestDriver(ModeLowTier, fixedRand(0.9))
	for i := 0; i < 3*FreezePeriod; i++ {
		if p := d.Step(InputState{}); p == PhaseFrozen {
			t.Fatalf("frame %d frozen although the coin never came up", i+1)
		}
	}
}

func TestHighTierNeverFreezes(t *testing.T) {
	d := newTestDriver(ModeHighTier, fixedRand(0))
	for i := 0; i < 3*FreezePeriod; i++ {
		if p := d.Step(InputState{}); p == PhaseFrozen {
			t.Fatalf("frame %d frozen in 5G", i+1)
		}
	}
}

func TestHighTierFirstSpawnAfterOneInterval(t *testing.T) {
	d := newTestDriver(ModeHighTier, rand.New(rand.NewSource(1)))
	p := d.Policy()

	for i := 1; i < p.SpawnInterval; i++ {
		d.Step(InputState{})
	}
	if n := len(d.State().Obstacles); n != 0 {
		t.Fatalf("%d obstacles before frame %d", n, p.SpawnInterval)
	}

	d.Step(InputState{})
	st := d.State()
	if len(st.Obstacles) != 1 {
		t.Fatalf("obstacles after %d frames = %d, want 1", p.SpawnInterval, len(st.Obstacles))
	}
	o := st.Obstacles[0]
	if o.X != 800 {
		t.Errorf("x = %v, want 800", o.X)
	}
	if o.Y < 0 || o.Y > 600-o.H {
		t.Errorf("y = %v outside [0, %v]", o.Y, 600-o.H)
	}

	const elapsed = 10
	for i := 0; i < elapsed; i++ {
		d.Step(InputState{})
	}
	o = d.State().Obstacles[0]
	if want := 800 - elapsed*o.Speed; o.X != want {
		t.Errorf("x after %d frames = %v, want %v", elapsed, o.X, want)
	}
}

func TestCollisionEndsGameAndRecordsHighScore(t *testing.T) {
	store := newMapStore()
	store.values[ModeLowTier.ScoreKey()] = "90"
	rec := &recorder{}
	d := newTestDriver(ModeHighTier, fixedRand(0.5), WithStore(store), WithNotifier(rec))

	d.state.Score = 40
	d.state.Obstacles = append(d.state.Obstacles, Obstacle{Rect: d.state.Rocket.Rect})

	if p := d.Step(InputState{}); p != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", p)
	}
	if !d.State().GameOver {
		t.Error("GameOver flag not set")
	}
	if got := store.int(ModeHighTier.ScoreKey()); got != 40 {
		t.Errorf("stored 5G best = %d, want 40", got)
	}
	if got := store.int(ModeLowTier.ScoreKey()); got != 90 {
		t.Errorf("4G best changed to %d", got)
	}
	if d.Best() != 40 {
		t.Errorf("Best = %d, want 40", d.Best())
	}
	if rec.count(NoticeHighScore) != 1 {
		t.Errorf("high score notices = %d, want 1", rec.count(NoticeHighScore))
	}

	frame := d.State().FrameCounter
	rocket := d.State().Rocket
	for i := 0; i < 10; i++ {
		d.Step(InputState{"arrowup": true})
	}
	st := d.State()
	if st.FrameCounter != frame || st.Rocket != rocket || st.Score != 40 {
		t.Errorf("state mutated after game over: %+v", st)
	}
	if store.sets != 1 {
		t.Errorf("store written %d times, want 1", store.sets)
	}
}

func TestHighScoreNeedsStrictImprovement(t *testing.T) {
	for _, score := range []int{30, 50} {
		store := newMapStore()
		store.values[ModeHighTier.ScoreKey()] = "50"
		rec := &recorder{}
		d := newTestDriver(ModeHighTier, fixedRand(0.5), WithStore(store), WithNotifier(rec))

		d.state.Score = score
		d.state.Obstacles = append(d.state.Obstacles, Obstacle{Rect: d.state.Rocket.Rect})
		d.Step(InputState{})

		if store.sets != 0 {
			t.Errorf("score %d: store written %d times", score, store.sets)
		}
		if rec.count(NoticeHighScore) != 0 {
			t.Errorf("score %d: unexpected high score notice", score)
		}
		if d.Best() != 50 {
			t.Errorf("score %d: Best = %d, want 50", score, d.Best())
		}
	}
}

func TestUnreadableHighScoreCountsAsZero(t *testing.T) {
	store := newMapStore()
	store.values[ModeHighTier.ScoreKey()] = "lots"
	d := newTestDriver(ModeHighTier, fixedRand(0.5), WithStore(store))
	if d.Best() != 0 {
		t.Errorf("Best = %d, want 0", d.Best())
	}
}

func TestRestartResetsSession(t *testing.T) {
	store := newMapStore()
	store.values[ModeLowTier.ScoreKey()] = "120"
	d := newTestDriver(ModeHighTier, rand.New(rand.NewSource(3)), WithStore(store))

	// nothing spawns before frame 60, so these frames cannot end the game
	for i := 0; i < 30; i++ {
		d.Step(InputState{"arrowdown": true})
	}
	d.state.Score = 70
	d.state.Obstacles = append(d.state.Obstacles, Obstacle{Rect: d.state.Rocket.Rect})
	d.Step(InputState{})
	if d.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", d.Phase())
	}

	d.Restart()
	st := d.State()
	if d.Phase() != PhaseRunning {
		t.Errorf("phase after restart = %v", d.Phase())
	}
	if st.FrameCounter != 0 || st.Score != 0 || len(st.Obstacles) != 0 || st.GameOver {
		t.Errorf("state after restart = %+v", st)
	}
	if d.Mode() != ModeHighTier {
		t.Errorf("mode changed to %v", d.Mode())
	}
	if got := store.values[ModeLowTier.ScoreKey()]; got != "120" {
		t.Errorf("4G best = %q, want 120", got)
	}
	if d.Best() != 70 {
		t.Errorf("Best after restart = %d, want 70", d.Best())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	d := newTestDriver(ModeLowTier, rand.New(rand.NewSource(11)))
	keys := []string{"arrowup", "arrowdown", "arrowleft", "arrowright"}
	r := rand.New(rand.NewSource(12))
	in := InputState{}

	last := 0
	for i := 0; i < 3000 && d.Phase() != PhaseGameOver; i++ {
		in.Clear()
		in.Press(keys[r.Intn(len(keys))])
		d.Step(in)
		score := d.State().Score
		if score < last {
			t.Fatalf("frame %d: score dropped from %d to %d", i+1, last, score)
		}
		if (score-last)%ClearReward != 0 {
			t.Fatalf("frame %d: score moved by %d", i+1, score-last)
		}
		last = score
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	d := newTestDriver(ModeHighTier, fixedRand(0))
	for i := 0; i < 61; i++ {
		d.Step(InputState{})
	}
	snap := d.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("snapshot obstacles = %d", len(snap.Obstacles))
	}
	snap.Obstacles[0].X = -1000
	if d.State().Obstacles[0].X == -1000 {
		t.Error("snapshot shares obstacle storage with the driver")
	}
	if snap.Phase != PhaseRunning || snap.Mode != ModeHighTier || snap.Frame != 61 {
		t.Errorf("snapshot = %+v", snap)
	}
}
