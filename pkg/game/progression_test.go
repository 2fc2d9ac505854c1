package game

import (
	"math"
	"testing"

	"github.com/decker502/pretzelfall/pkg/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProgressionInitial(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig())

	if p.Score != 0 || p.Lives != 5 || p.Multiplier != 1 || p.EnemySpeed != 2 || p.Phase != PhasePlaying {
		t.Errorf("unexpected initial progression %+v", p)
	}
}

func TestProgressionScoreUsesMultiplier(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig())

	if got := p.AddScore(5); got != 5 {
		t.Errorf("AddScore(5) at x1 = %d, want 5", got)
	}
	p.SetMultiplier(3)
	if got := p.AddScore(15); got != 45 {
		t.Errorf("AddScore(15) at x3 = %d, want 45", got)
	}
	if p.Score != 50 {
		t.Errorf("score = %d, want 50", p.Score)
	}
	p.ResetMultiplier()
	if p.Multiplier != 1 {
		t.Errorf("multiplier = %d after reset", p.Multiplier)
	}
}

func TestProgressionLoseLife(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig())

	for i := 4; i >= 1; i-- {
		if p.LoseLife() {
			t.Fatalf("should not be terminal with %d lives left", p.Lives)
		}
		if p.Lives != i {
			t.Errorf("lives = %d, want %d", p.Lives, i)
		}
	}
	if !p.LoseLife() {
		t.Fatal("losing the last life should be terminal")
	}
	if p.Phase != PhaseGameOver || !p.Phase.IsTerminal() {
		t.Errorf("phase = %s, want game_over", p.Phase)
	}
}

func TestProgressionSlowRampPersists(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig())

	p.ApplySlow()
	if !approx(p.EnemySpeed, 1) || !p.Slowed {
		t.Fatalf("slow from 2 should give 1, got %v", p.EnemySpeed)
	}

	// 减速期间提速只影响基准速度
	p.RampSpeed()
	p.RampSpeed()
	if !approx(p.EnemySpeed, 1) {
		t.Errorf("slowed speed should stay frozen, got %v", p.EnemySpeed)
	}
	if !approx(p.BaseSpeed, 2.4) {
		t.Errorf("baseline = %v, want 2.4", p.BaseSpeed)
	}

	p.RestoreSpeed()
	if !approx(p.EnemySpeed, 2.4) || p.Slowed {
		t.Errorf("restore should return to ramped baseline 2.4, got %v", p.EnemySpeed)
	}
}

func TestProgressionSlowMinimum(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemy.StartSpeed = 1.5
	p := NewProgression(cfg)

	p.ApplySlow()
	if !approx(p.EnemySpeed, 1) {
		t.Errorf("slow must not go below minimum 1, got %v", p.EnemySpeed)
	}
}

func TestProgressionSecondSlowHalvesBaseline(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemy.StartSpeed = 8
	p := NewProgression(cfg)

	p.ApplySlow()
	p.ApplySlow()
	if !approx(p.EnemySpeed, 4) {
		t.Errorf("second slow should halve the baseline (8/2=4), got %v", p.EnemySpeed)
	}
}

func TestProgressionSlowLegacyRestore(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Effects.RampPersistsThroughSlow = false
	p := NewProgression(cfg)

	p.ApplySlow()
	p.RampSpeed()
	if !approx(p.EnemySpeed, 1.2) {
		t.Errorf("legacy ramp adds to slowed speed, got %v", p.EnemySpeed)
	}

	p.RestoreSpeed()
	if !approx(p.EnemySpeed, 2) || !approx(p.BaseSpeed, 2) {
		t.Errorf("legacy restore returns to speed captured at slow start (2), got %v/%v", p.EnemySpeed, p.BaseSpeed)
	}
}

func TestProgressionRestoreWithoutSlowIsNoop(t *testing.T) {
	p := NewProgression(config.DefaultGameConfig())
	p.RampSpeed()
	p.RestoreSpeed()
	if !approx(p.EnemySpeed, 2.2) {
		t.Errorf("restore without slow changed speed to %v", p.EnemySpeed)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		name     string
		terminal bool
	}{
		{PhasePlaying, "playing", false},
		{PhaseGameOver, "game_over", true},
		{PhaseWin, "win", true},
		{Phase(42), "unknown", false},
	}
	for _, tt := range tests {
		if tt.phase.String() != tt.name || tt.phase.IsTerminal() != tt.terminal {
			t.Errorf("%d: got %s/%v", tt.phase, tt.phase.String(), tt.phase.IsTerminal())
		}
	}
}
