package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/engine"
)

type fakeStore struct {
	best     map[string]int
	bestErr  error
	setErr   error
	setCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{best: make(map[string]int)}
}

func (s *fakeStore) Best(key string) (int, error) {
	if s.bestErr != nil {
		return 0, s.bestErr
	}
	return s.best[key], nil
}

func (s *fakeStore) SetBest(key string, best int) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.best[key] = best
	return nil
}

func newTestController(variant config.Variant, store BestStore) *Controller {
	return New(variant, Options{
		Seed:   42,
		Store:  store,
		Logger: log.New(io.Discard),
	})
}

func TestNewGameSpawnsTwoTiles(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)

	if got := engine.TileCount(c.grid); got != 2 {
		t.Errorf("initial tile count = %d, want 2", got)
	}
	if c.score != 0 || c.hasWon || c.gameOver {
		t.Error("fresh session must start clean")
	}
}

func TestDeterministicStart(t *testing.T) {
	c1 := newTestController(config.DefaultClassic(), nil)
	c2 := newTestController(config.DefaultClassic(), nil)

	if c1.grid != c2.grid {
		t.Errorf("same seed must produce same initial board:\n%v\nvs\n%v", c1.grid, c2.grid)
	}
}

func TestMoveMergesAndSpawns(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)
	c.grid = engine.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	snap, applied := c.Move(engine.Left)
	if !applied {
		t.Fatal("move should apply")
	}
	if snap.Grid[0][0] != 4 {
		t.Errorf("grid[0][0] = %d, want 4", snap.Grid[0][0])
	}
	if snap.ScoreGain != 4 {
		t.Errorf("ScoreGain = %d, want 4", snap.ScoreGain)
	}
	if snap.Spawn == nil {
		t.Fatal("a changed move must spawn exactly one tile")
	}
	if got := engine.TileCount(snap.Grid); got != 2 {
		t.Errorf("tile count = %d, want 2 (merged tile + spawn)", got)
	}
	if v := snap.Grid[snap.Spawn.Row][snap.Spawn.Col]; v != snap.Spawn.Value {
		t.Errorf("spawn cell holds %d, want %d", v, snap.Spawn.Value)
	}
	if len(snap.Motions) == 0 {
		t.Error("changed move must carry a motion ledger")
	}
}

func TestNoOpMoveHasNoSideEffects(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)
	c.grid = engine.Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := c.grid
	scoreBefore := c.score

	_, applied := c.Move(engine.Left)
	if applied {
		t.Fatal("left on a left-aligned grid must be refused")
	}
	if c.grid != before {
		t.Error("no-op move mutated the grid")
	}
	if c.score != scoreBefore {
		t.Error("no-op move changed the score")
	}
	if c.Animating() {
		t.Error("no-op move must not raise the animating gate")
	}
}

func TestAnimatingGate(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)
	c.grid = engine.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if _, applied := c.Move(engine.Left); !applied {
		t.Fatal("first move should apply")
	}
	if !c.Animating() {
		t.Fatal("applied move must raise the animating gate")
	}
	if _, applied := c.Move(engine.Right); applied {
		t.Error("moves must be refused while animating")
	}

	c.FinishAnimation()
	if _, applied := c.Move(engine.Right); !applied {
		t.Error("move should apply again once animation finished")
	}
}

func TestWinTriggersOnce(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)

	c.grid = engine.Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	snap, applied := c.Move(engine.Left)
	if !applied {
		t.Fatal("move should apply")
	}
	if !snap.WonNow || !snap.HasWon {
		t.Error("first 2048 must set the win flag")
	}
	if snap.GameOver {
		t.Error("winning must not end the game")
	}

	// A second 2048 does not re-trigger the one-time event.
	c.FinishAnimation()
	c.grid = engine.Grid{
		{2048, 1024, 1024, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	snap, applied = c.Move(engine.Left)
	if !applied {
		t.Fatal("move should apply")
	}
	if snap.WonNow {
		t.Error("win event must fire only once per session")
	}
	if !snap.HasWon {
		t.Error("win flag must stay set")
	}
}

func TestGameOverTransition(t *testing.T) {
	c := newTestController(config.DefaultClassic(), nil)

	// Left merges row 0 into [4,8,16,_]; the spawn (2 or 4) lands in the
	// only empty cell, whose neighbors 16 and 64 can never match it, so
	// the board is terminal either way.
	c.grid = engine.Grid{
		{2, 2, 8, 16},
		{32, 64, 32, 64},
		{128, 256, 128, 256},
		{512, 1024, 512, 1024},
	}

	snap, applied := c.Move(engine.Left)
	if !applied {
		t.Fatal("move should apply")
	}
	if !snap.GameOver {
		t.Error("terminal board after spawn must transition to game over")
	}
	if c.ReviveAvailable() {
		t.Error("classic variant must not offer revive")
	}

	c.FinishAnimation()
	if _, applied := c.Move(engine.Up); applied {
		t.Error("moves must be refused after game over")
	}
}

func TestBestScorePersistence(t *testing.T) {
	store := newFakeStore()
	store.best["classic"] = 100

	c := newTestController(config.DefaultClassic(), store)
	if c.best != 100 {
		t.Fatalf("best = %d, want 100 from store", c.best)
	}

	// Gain below the stored best must not write.
	c.grid = engine.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	c.Move(engine.Left)
	if store.setCalls != 0 {
		t.Errorf("SetBest called %d times for a non-record score", store.setCalls)
	}

	// Beat the best.
	c.FinishAnimation()
	c.grid = engine.Grid{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	snap, _ := c.Move(engine.Left)
	if snap.Best != snap.Score {
		t.Errorf("best = %d, want %d after a record move", snap.Best, snap.Score)
	}
	if store.best["classic"] != snap.Best {
		t.Errorf("store best = %d, want %d", store.best["classic"], snap.Best)
	}
}

func TestBestStoreFailuresAreNotFatal(t *testing.T) {
	store := newFakeStore()
	store.bestErr = errors.New("disk gone")

	c := newTestController(config.DefaultClassic(), store)
	if c.best != 0 {
		t.Errorf("failed read must mean no prior best, got %d", c.best)
	}

	store.bestErr = nil
	store.setErr = errors.New("disk still gone")
	c.grid = engine.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	snap, applied := c.Move(engine.Left)
	if !applied {
		t.Fatal("move should apply despite persistence failure")
	}
	if snap.Best != snap.Score {
		t.Error("in-memory best must still update when the write fails")
	}
}

func TestNewGameKeepsBest(t *testing.T) {
	store := newFakeStore()
	store.best["classic"] = 500

	c := newTestController(config.DefaultClassic(), store)
	c.grid = engine.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	c.Move(engine.Left)

	snap := c.NewGame()
	if snap.Score != 0 {
		t.Errorf("score = %d after new game, want 0", snap.Score)
	}
	if snap.Best != 500 {
		t.Errorf("best = %d after new game, want 500", snap.Best)
	}
	if got := engine.TileCount(snap.Grid); got != 2 {
		t.Errorf("tile count = %d after new game, want 2", got)
	}
}

func TestRevive(t *testing.T) {
	c := newTestController(config.DefaultMission(), nil)

	c.grid = engine.Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	c.score = 100
	c.gameOver = true

	if !c.Revive() {
		t.Fatal("revive should apply on game over with an unused revive")
	}
	if c.score != 50 {
		t.Errorf("score = %d after revive, want 50 (penalty 2)", c.score)
	}
	if got := engine.TileCount(c.grid); got != 14 {
		t.Errorf("tile count = %d after revive, want 14 (2 cells cleared)", got)
	}
	if c.gameOver {
		t.Error("revive must return to playing")
	}

	c.gameOver = true
	if c.Revive() {
		t.Error("revive must be single-use")
	}
}

func TestReviveUnavailable(t *testing.T) {
	c := newTestController(config.DefaultMission(), nil)
	if c.Revive() {
		t.Error("revive must be refused while playing")
	}

	classic := newTestController(config.DefaultClassic(), nil)
	classic.gameOver = true
	if classic.Revive() {
		t.Error("revive must be refused when the variant disables it")
	}
}
