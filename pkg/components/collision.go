package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以 PositionComponent 为左上角，用于碰撞系统检测
// 玩家、敌人、子弹与掉落物之间的重叠
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度
}
