package systems

import (
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
)

// Key 方向键
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// InputSystem 缓存展示层送来的输入，每帧开始时应用到玩家
//
// 指针目标只应用一次；方向键按住期间每帧移动 keyboardStep。
type InputSystem struct {
	cfg *config.PlayerConfig

	left, right bool
	shooting    bool

	target    float64
	hasTarget bool
}

// NewInputSystem 创建输入系统
func NewInputSystem(cfg *config.PlayerConfig) *InputSystem {
	return &InputSystem{cfg: cfg}
}

// SetHorizontalTarget 指针或触摸位置，玩家中心将移动到 x
func (s *InputSystem) SetHorizontalTarget(x float64) {
	s.target = x
	s.hasTarget = true
}

// SetMovementKey 方向键按下或松开
func (s *InputSystem) SetMovementKey(key Key, pressed bool) {
	switch key {
	case KeyLeft:
		s.left = pressed
	case KeyRight:
		s.right = pressed
	}
}

// SetShooting 开始或停止自动射击
func (s *InputSystem) SetShooting(pressed bool) {
	s.shooting = pressed
}

// Shooting 是否处于射击状态
func (s *InputSystem) Shooting() bool {
	return s.shooting
}

// Apply 把缓存的输入应用到玩家，坐标越界时夹回场地内
func (s *InputSystem) Apply(player *entities.Player, fieldWidth, fieldHeight float64) {
	player.Pin(fieldWidth, fieldHeight, s.cfg.BottomMargin)

	if s.hasTarget {
		player.CenterOn(s.target, fieldWidth)
		s.hasTarget = false
	}
	if s.left {
		player.Nudge(-s.cfg.KeyboardStep, fieldWidth)
	}
	if s.right {
		player.Nudge(s.cfg.KeyboardStep, fieldWidth)
	}
}

// Reset 清空所有输入状态
func (s *InputSystem) Reset() {
	*s = InputSystem{cfg: s.cfg}
}
