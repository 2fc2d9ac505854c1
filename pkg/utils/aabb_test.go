package utils

import (
	"math/rand"
	"testing"
)

// TestIsColliding_Hit 测试AABB碰撞检测 - 矩形重叠
func TestIsColliding_Hit(t *testing.T) {
	tests := []struct {
		name  string
		a     Rect
		b     Rect
		descr string
	}{
		{
			name:  "完全重叠",
			a:     NewRect(100, 100, 50, 50),
			b:     NewRect(100, 100, 50, 50),
			descr: "两个矩形完全重叠应该检测到碰撞",
		},
		{
			name:  "部分重叠 - 右边",
			a:     NewRect(100, 100, 50, 50),
			b:     NewRect(120, 100, 50, 50),
			descr: "矩形部分重叠（右边）应该检测到碰撞",
		},
		{
			name:  "部分重叠 - 上边",
			a:     NewRect(100, 100, 50, 50),
			b:     NewRect(100, 80, 50, 50),
			descr: "矩形部分重叠（上边）应该检测到碰撞",
		},
		{
			name:  "边界刚好接触",
			a:     NewRect(100, 100, 50, 50),
			b:     NewRect(150, 100, 50, 50),
			descr: "边界刚好接触应该检测到碰撞",
		},
		{
			name:  "包含",
			a:     NewRect(0, 0, 200, 200),
			b:     NewRect(50, 50, 10, 10),
			descr: "小矩形完全在大矩形内部应该检测到碰撞",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsColliding(tt.a, tt.b) {
				t.Errorf("%s: IsColliding(%v, %v) = false, want true", tt.descr, tt.a, tt.b)
			}
		})
	}
}

// TestIsColliding_Miss 测试AABB碰撞检测 - 矩形分离
func TestIsColliding_Miss(t *testing.T) {
	tests := []struct {
		name string
		a    Rect
		b    Rect
	}{
		{"完全分离 - 水平", NewRect(100, 100, 50, 50), NewRect(200, 100, 50, 50)},
		{"完全分离 - 垂直", NewRect(100, 100, 50, 50), NewRect(100, 200, 50, 50)},
		{"对角分离", NewRect(100, 100, 50, 50), NewRect(200, 200, 50, 50)},
		{"相差极小", NewRect(0, 0, 10, 10), NewRect(10.001, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsColliding(tt.a, tt.b) {
				t.Errorf("IsColliding(%v, %v) = true, want false", tt.a, tt.b)
			}
		})
	}
}

// TestIsColliding_Symmetric 随机矩形对的碰撞结果必须与参数顺序无关
func TestIsColliding_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randRect := func() Rect {
		return NewRect(rng.Float64()*400-50, rng.Float64()*400-50, rng.Float64()*80, rng.Float64()*80)
	}

	for i := 0; i < 10000; i++ {
		a, b := randRect(), randRect()
		if IsColliding(a, b) != IsColliding(b, a) {
			t.Fatalf("asymmetric result for %v and %v", a, b)
		}
	}
	t.Logf("✓ 10000 random pairs are symmetric")
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{5, 0, -10, 0}, // 区域比实体窄
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
