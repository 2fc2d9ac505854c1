package entities

import (
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/ecs"
)

// World 持有一局游戏中的全部实体
//
// 敌人、子弹、道具分别存放在按插入顺序迭代的 ecs.Store 中，
// 删除立即生效，没有延迟销毁列表。
type World struct {
	cfg *config.GameConfig
	ids *ecs.EntityManager

	Player      *Player
	Enemies     *ecs.Store[*Enemy]
	Projectiles *ecs.Store[*Projectile]
	Items       *ecs.Store[*DroppedItem]
}

// NewWorld 创建空场地并放置玩家
func NewWorld(cfg *config.GameConfig, fieldWidth, fieldHeight float64) *World {
	return &World{
		cfg:         cfg,
		ids:         ecs.NewEntityManager(),
		Player:      NewPlayer(cfg.Player, fieldWidth, fieldHeight),
		Enemies:     ecs.NewStore[*Enemy](),
		Projectiles: ecs.NewStore[*Projectile](),
		Items:       ecs.NewStore[*DroppedItem](),
	}
}

// Advance 推进一帧的运动
// 敌人按 enemySpeed 下落，道具按固定速度下落，子弹按固定速度上升
func (w *World) Advance(enemySpeed float64) {
	w.Enemies.Each(func(_ ecs.EntityID, e *Enemy) bool {
		e.Y += enemySpeed
		return true
	})
	fall := w.cfg.Items.FallSpeed
	w.Items.Each(func(_ ecs.EntityID, d *DroppedItem) bool {
		d.Y += fall
		return true
	})
	rise := w.cfg.Projectile.Speed
	w.Projectiles.Each(func(_ ecs.EntityID, p *Projectile) bool {
		p.Y -= rise
		return true
	})
}

// Reap 移除离开场地的实体
// 敌人和道具的顶边低于场地底部、子弹的顶边高于场地顶部时移除
//
// 返回: 移除的实体数量
func (w *World) Reap(fieldHeight float64) int {
	n := w.Enemies.RemoveIf(func(e *Enemy) bool { return e.Y > fieldHeight })
	n += w.Items.RemoveIf(func(d *DroppedItem) bool { return d.Y > fieldHeight })
	n += w.Projectiles.RemoveIf(func(p *Projectile) bool { return p.Y < 0 })
	return n
}

// Clear 清空场地上的敌人、子弹和道具，玩家保留
func (w *World) Clear() {
	w.Enemies.Clear()
	w.Projectiles.Clear()
	w.Items.Clear()
}

// Reset 清空场地并重新放置玩家，用于重新开始
func (w *World) Reset(fieldWidth, fieldHeight float64) {
	w.Clear()
	w.ids.Reset()
	w.Player = NewPlayer(w.cfg.Player, fieldWidth, fieldHeight)
}

// Count 返回场上实体总数（不含玩家）
func (w *World) Count() int {
	return w.Enemies.Len() + w.Projectiles.Len() + w.Items.Len()
}
