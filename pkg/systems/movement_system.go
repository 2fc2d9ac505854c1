package systems

import (
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
)

// MovementSystem 推进实体运动并移除离开场地的实体
type MovementSystem struct {
	world    *entities.World
	progress *game.Progression
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(world *entities.World, progress *game.Progression) *MovementSystem {
	return &MovementSystem{world: world, progress: progress}
}

// Update 敌人按当前敌人速度下落，随后回收越界实体
//
// 返回: 回收的实体数量
func (s *MovementSystem) Update(fieldHeight float64) int {
	s.world.Advance(s.progress.EnemySpeed)
	return s.world.Reap(fieldHeight)
}
