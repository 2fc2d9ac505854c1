package engine

import (
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/systems"
)

// PlayField 场地尺寸，每帧读取一次
type PlayField interface {
	Width() float64
	Height() float64
}

// FixedPlayField 固定尺寸的场地，用于测试和无窗口运行
type FixedPlayField struct {
	W, H float64
}

func (f FixedPlayField) Width() float64  { return f.W }
func (f FixedPlayField) Height() float64 { return f.H }

// ResizablePlayField 尺寸可由展示层更新的场地
// 只在游戏循环所在的 goroutine 中读写
type ResizablePlayField struct {
	w, h float64
}

// NewResizablePlayField 创建可缩放场地
func NewResizablePlayField(width, height float64) *ResizablePlayField {
	f := &ResizablePlayField{}
	f.Resize(width, height)
	return f
}

// Resize 更新场地尺寸，不小于最小场地尺寸
func (f *ResizablePlayField) Resize(width, height float64) {
	f.w, f.h = config.ClampPlayField(width, height)
}

func (f *ResizablePlayField) Width() float64  { return f.w }
func (f *ResizablePlayField) Height() float64 { return f.h }

// Key 方向键
type Key = systems.Key

const (
	KeyLeft  = systems.KeyLeft
	KeyRight = systems.KeyRight
)

// Input 展示层可调用的输入接口，由 *Engine 实现
type Input interface {
	SetHorizontalTarget(x float64)
	SetMovementKey(key Key, pressed bool)
	SetShooting(pressed bool)
}

// SetHorizontalTarget 玩家中心移动到 x，越界坐标被夹回场地内
func (e *Engine) SetHorizontalTarget(x float64) {
	e.input.SetHorizontalTarget(x)
}

// SetMovementKey 方向键按下或松开
func (e *Engine) SetMovementKey(key Key, pressed bool) {
	e.input.SetMovementKey(key, pressed)
}

// SetShooting 开始或停止自动射击
func (e *Engine) SetShooting(pressed bool) {
	e.input.SetShooting(pressed)
}
