package systems

import (
	"testing"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
)

func newTestPlayer() (*entities.Player, *InputSystem) {
	cfg := config.DefaultGameConfig()
	return entities.NewPlayer(cfg.Player, testFieldWidth, testFieldHeight), NewInputSystem(&cfg.Player)
}

// TestInputKeyboardStep 方向键按住期间每帧移动 10
func TestInputKeyboardStep(t *testing.T) {
	tests := []struct {
		name  string
		left  bool
		right bool
		ticks int
		wantX float64
	}{
		{"右移三帧", false, true, 3, 245},
		{"左移两帧", true, false, 2, 195},
		{"同时按下抵消", true, true, 5, 215},
		{"左移到边界", true, false, 100, 0},
		{"右移到边界", false, true, 100, 430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, input := newTestPlayer()
			input.SetMovementKey(KeyLeft, tt.left)
			input.SetMovementKey(KeyRight, tt.right)
			for i := 0; i < tt.ticks; i++ {
				input.Apply(player, testFieldWidth, testFieldHeight)
			}
			if player.X != tt.wantX {
				t.Errorf("X = %v, want %v", player.X, tt.wantX)
			}
		})
	}
}

// TestInputPointerTarget 指针目标只应用一次，越界时夹回场地内
func TestInputPointerTarget(t *testing.T) {
	player, input := newTestPlayer()

	input.SetHorizontalTarget(-1000)
	input.Apply(player, testFieldWidth, testFieldHeight)
	if player.X != 0 {
		t.Errorf("X = %v, want clamped 0", player.X)
	}

	player.X = 200
	input.Apply(player, testFieldWidth, testFieldHeight)
	if player.X != 200 {
		t.Error("pointer target should be consumed after one application")
	}

	input.SetHorizontalTarget(300)
	input.SetMovementKey(KeyRight, true)
	input.Apply(player, testFieldWidth, testFieldHeight)
	if player.X != 285 {
		t.Errorf("pointer then key step: X = %v, want 285", player.X)
	}
}

func TestInputReleaseAndReset(t *testing.T) {
	player, input := newTestPlayer()
	input.SetMovementKey(KeyRight, true)
	input.SetMovementKey(KeyRight, false)
	input.Apply(player, testFieldWidth, testFieldHeight)
	if player.X != 215 {
		t.Errorf("released key should not move, X = %v", player.X)
	}

	input.SetShooting(true)
	input.SetMovementKey(KeyLeft, true)
	input.Reset()
	input.Apply(player, testFieldWidth, testFieldHeight)
	if input.Shooting() || player.X != 215 {
		t.Errorf("reset should clear input, shooting=%v X=%v", input.Shooting(), player.X)
	}
}

// TestInputFollowsResize 场地缩小后玩家重新贴底并夹回场地内
func TestInputFollowsResize(t *testing.T) {
	player, input := newTestPlayer()
	player.X = 400

	input.Apply(player, 200, 300)
	if player.X != 150 || player.Y != 240 {
		t.Errorf("after resize: (%v, %v), want (150, 240)", player.X, player.Y)
	}
}
