package entities

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// Projectile 玩家发射的子弹，以固定速度上升
type Projectile struct {
	components.PositionComponent
	components.CollisionComponent
}

// Bounds 返回子弹的碰撞盒
func (p *Projectile) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.Width, p.Height)
}

// SpawnProjectiles 以 centerX 为中心发射一轮齐射
//
// 第 i 颗子弹（从 0 开始）的左边缘为
// centerX - width/2 + (i - (count-1)/2) * spread，顶边为 top。
//
// 参数:
//   - count: 子弹数量（玩家的 WeaponCount）
//   - centerX: 玩家水平中心
//   - top: 玩家顶边
//
// 返回: 本轮生成的子弹，按从左到右排列
func (w *World) SpawnProjectiles(count int, centerX, top float64) []*Projectile {
	if count <= 0 {
		return nil
	}

	cfg := w.cfg.Projectile
	baseLeft := centerX - cfg.Width/2
	volley := make([]*Projectile, 0, count)
	for i := 0; i < count; i++ {
		offset := (float64(i) - float64(count-1)/2) * cfg.Spread
		p := &Projectile{
			PositionComponent:  components.PositionComponent{X: baseLeft + offset, Y: top},
			CollisionComponent: components.CollisionComponent{Width: cfg.Width, Height: cfg.Height},
		}
		w.Projectiles.Add(w.ids.CreateEntity(), p)
		volley = append(volley, p)
	}
	return volley
}
