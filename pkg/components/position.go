package components

// PositionComponent 存储实体左上角在游戏区域中的坐标
type PositionComponent struct {
	X float64
	Y float64
}
