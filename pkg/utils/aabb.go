// Package utils 提供游戏逻辑中常用的工具函数
//
// aabb.go 提供轴对齐包围盒（AABB）的重叠检测。
//
// # 坐标约定
//
//   - 原点在游戏区域左上角，X 向右，Y 向下
//   - Rect 的 X/Y 是左上角坐标，W/H 是宽高
//   - 边界刚好接触也算碰撞（与浏览器 getBoundingClientRect 的判定一致）
package utils

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y float64 // 左上角坐标
	W, H float64 // 宽度、高度
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right 返回右边界的 X 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回下边界的 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// IsColliding 检查两个矩形是否重叠
//
// 只要任一轴上完全分离就不碰撞；边界接触视为碰撞。
// 判定对两个参数对称：IsColliding(a, b) == IsColliding(b, a)。
func IsColliding(a, b Rect) bool {
	return !(a.Right() < b.X ||
		a.X > b.Right() ||
		a.Bottom() < b.Y ||
		a.Y > b.Bottom())
}

// Intersects 是 IsColliding 的方法形式
func (r Rect) Intersects(other Rect) bool {
	return IsColliding(r, other)
}

// Clamp 将 v 限制在 [lo, hi] 范围内
// 如果 hi < lo（例如游戏区域比实体还窄），返回 lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
