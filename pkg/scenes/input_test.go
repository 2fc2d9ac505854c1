package scenes

import (
	"testing"

	"github.com/decker502/pretzelfall/pkg/engine"
)

// fakeInput 记录引擎输入调用
type fakeInput struct {
	targets  []float64
	keys     map[engine.Key]bool
	shooting bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[engine.Key]bool{}}
}

func (f *fakeInput) SetHorizontalTarget(x float64)               { f.targets = append(f.targets, x) }
func (f *fakeInput) SetMovementKey(key engine.Key, pressed bool) { f.keys[key] = pressed }
func (f *fakeInput) SetShooting(pressed bool)                    { f.shooting = pressed }

func TestInputMapperCursor(t *testing.T) {
	m := &InputMapper{}
	in := newFakeInput()

	// 第一帧只记录位置，不移动玩家
	m.Apply(in, InputFrame{CursorX: 100, HasCursor: true})
	if len(in.targets) != 0 {
		t.Fatalf("first cursor sample should not move the player, got %v", in.targets)
	}

	m.Apply(in, InputFrame{CursorX: 100, HasCursor: true})
	m.Apply(in, InputFrame{CursorX: 140, HasCursor: true})
	m.Apply(in, InputFrame{CursorX: 140, HasCursor: true, Left: true})

	if len(in.targets) != 1 || in.targets[0] != 140 {
		t.Errorf("only cursor movement should set a target, got %v", in.targets)
	}
	if !in.keys[engine.KeyLeft] || in.keys[engine.KeyRight] {
		t.Errorf("key state not forwarded: %v", in.keys)
	}
	if in.shooting {
		t.Error("cursor alone must not shoot")
	}

	m.Reset()
	m.Apply(in, InputFrame{CursorX: 50, HasCursor: true})
	if len(in.targets) != 1 {
		t.Error("after Reset the next sample is a baseline again")
	}
}

func TestInputMapperTouch(t *testing.T) {
	tests := []struct {
		name       string
		frame      InputFrame
		wantTarget bool
		wantShoot  bool
	}{
		{"touch start moves and shoots", InputFrame{TouchX: []float64{200}}, true, true},
		{"multi touch follows the first", InputFrame{TouchX: []float64{300, 20}}, true, true},
		{"touch end stops shooting", InputFrame{}, false, false},
		{"space shoots", InputFrame{Fire: true}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &InputMapper{}
			in := newFakeInput()
			m.Apply(in, tt.frame)

			if got := len(in.targets) > 0; got != tt.wantTarget {
				t.Errorf("target set = %v, want %v", got, tt.wantTarget)
			}
			if tt.wantTarget && in.targets[0] != tt.frame.TouchX[0] {
				t.Errorf("target = %v, want %v", in.targets[0], tt.frame.TouchX[0])
			}
			if in.shooting != tt.wantShoot {
				t.Errorf("shooting = %v, want %v", in.shooting, tt.wantShoot)
			}
		})
	}
}
