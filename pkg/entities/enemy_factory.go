package entities

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// Enemy 下落的敌人
// 下落速度由 Progression.EnemySpeed 统一决定，不存储在实体上
type Enemy struct {
	components.PositionComponent
	components.CollisionComponent
}

// Bounds 返回敌人的碰撞盒
func (e *Enemy) Bounds() utils.Rect {
	return utils.NewRect(e.X, e.Y, e.Width, e.Height)
}

// SpawnEnemy 在场地顶部外侧生成一个敌人
//
// 参数:
//   - x: 左上角X坐标，调用方负责在 [0, width-enemyWidth) 内取值
//
// 返回: 新生成的敌人
func (w *World) SpawnEnemy(x float64) *Enemy {
	size := w.cfg.Enemy.SizeConfig
	e := &Enemy{
		PositionComponent:  components.PositionComponent{X: x, Y: -size.Height},
		CollisionComponent: components.CollisionComponent{Width: size.Width, Height: size.Height},
	}
	w.Enemies.Add(w.ids.CreateEntity(), e)
	return e
}
