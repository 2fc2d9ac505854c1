package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/pretzelfall/pkg/engine"
)

// InputFrame 一帧的原始输入
// 由 pollInput 从 ebiten 读取，InputMapper 负责翻译成引擎输入
type InputFrame struct {
	// CursorX 鼠标 X（逻辑坐标）
	CursorX float64
	// HasCursor 鼠标位置是否有效（移动端没有鼠标）
	HasCursor bool
	// TouchX 当前所有触摸点的 X，按触摸 ID 顺序
	TouchX []float64

	Left, Right bool // 方向键（含 A/D）
	Fire        bool // 空格
	Restart     bool // R 刚按下
	Tap         bool // 有新的触摸，终局后用于重新开始
}

// pollInput 读取当前帧的鼠标、触摸和键盘状态
func pollInput(touchIDs []ebiten.TouchID) (InputFrame, []ebiten.TouchID) {
	var f InputFrame

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, _ := ebiten.TouchPosition(id)
		f.TouchX = append(f.TouchX, float64(x))
	}

	if len(touchIDs) == 0 {
		x, _ := ebiten.CursorPosition()
		f.CursorX = float64(x)
		f.HasCursor = true
	}

	f.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	f.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	f.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	f.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	f.Tap = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	return f, touchIDs
}

// InputMapper 把原始输入翻译成引擎输入
//
//   - 鼠标只在移动后才设置目标位置，避免静止的鼠标盖住方向键
//   - 触摸时玩家跟随第一个触摸点并持续射击，松开即停止
//   - 空格按住射击
type InputMapper struct {
	lastCursor float64
	seenCursor bool
}

// Apply 把一帧输入送入引擎
func (m *InputMapper) Apply(in engine.Input, f InputFrame) {
	if f.HasCursor {
		if !m.seenCursor || f.CursorX != m.lastCursor {
			if m.seenCursor {
				in.SetHorizontalTarget(f.CursorX)
			}
			m.lastCursor = f.CursorX
			m.seenCursor = true
		}
	}

	touching := len(f.TouchX) > 0
	if touching {
		in.SetHorizontalTarget(f.TouchX[0])
	}

	in.SetMovementKey(engine.KeyLeft, f.Left)
	in.SetMovementKey(engine.KeyRight, f.Right)
	in.SetShooting(f.Fire || touching)
}

// Reset 忘记上一帧的鼠标位置
func (m *InputMapper) Reset() {
	m.seenCursor = false
}
