package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/utils"
)

// SceneManager 管理当前活动场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene  Scene
	logger        *zap.Logger
	width, height int // 最近一次布局尺寸，切换场景时转交给新场景
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(logger *zap.Logger) *SceneManager {
	return &SceneManager{
		logger: utils.OrNop(logger).Named("SceneManager"),
	}
}

// SwitchTo 切换活动场景
// 如果已经知道窗口尺寸，新场景会立刻收到一次 Resize
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
	sm.logger.Debug("scene switched", zap.String("scene", sceneName(scene)))
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 记录新的逻辑尺寸，尺寸变化时通知当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
	sm.logger.Debug("layout changed", zap.Int("width", width), zap.Int("height", height))
}

func sceneName(s Scene) string {
	switch s.(type) {
	case nil:
		return "none"
	case *GameScene:
		return "game"
	default:
		return "custom"
	}
}
