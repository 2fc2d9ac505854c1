package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// ResizableMockScene 额外记录 Resize 调用
type ResizableMockScene struct {
	MockScene
	resizes [][2]int
}

func (m *ResizableMockScene) Resize(width, height int) {
	m.resizes = append(m.resizes, [2]int{width, height})
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager(nil)
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene initially")
	}
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager(nil)
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager(nil)

	// 没有场景时不应 panic
	sm.Update(1.0 / 60)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60
	sm.Update(deltaTime)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != deltaTime {
		t.Errorf("Update not forwarded correctly: called=%v dt=%v", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Draw not forwarded")
	}
}

func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager(nil)
	scene := &ResizableMockScene{}
	sm.SwitchTo(scene)
	if len(scene.resizes) != 0 {
		t.Fatal("no layout known yet, scene should not be resized")
	}

	sm.Resize(480, 720)
	sm.Resize(480, 720)
	sm.Resize(600, 800)

	if len(scene.resizes) != 2 {
		t.Fatalf("expected 2 resizes (duplicates skipped), got %v", scene.resizes)
	}

	next := &ResizableMockScene{}
	sm.SwitchTo(next)
	if len(next.resizes) != 1 || next.resizes[0] != [2]int{600, 800} {
		t.Errorf("new scene should inherit the current layout, got %v", next.resizes)
	}

	// 不可缩放的场景也能正常切换
	sm.SwitchTo(&MockScene{})
	sm.Resize(300, 400)
	t.Logf("✓ resize forwarded only to Resizable scenes")
}
