package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可独立更新和绘制的画面（如游戏画面）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上次调用的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口逻辑尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}
