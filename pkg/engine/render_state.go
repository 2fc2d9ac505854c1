package engine

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/ecs"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// PlayerView 玩家的渲染数据
type PlayerView struct {
	utils.Rect
	Shield      bool
	Flicker     bool
	WeaponCount int
}

// ItemView 道具的渲染数据
type ItemView struct {
	utils.Rect
	Kind  components.ItemKind
	Glyph rune // 仅字母道具有效
}

// RenderState 一帧的渲染数据，全部为值拷贝，展示层可以随意保存
type RenderState struct {
	Tick          uint64
	Width, Height float64
	EnemySpeed    float64

	Player      PlayerView
	Enemies     []utils.Rect
	Projectiles []utils.Rect
	Items       []ItemView
	Effects     []components.ExpiringEffect
}

// RenderState 构造当前帧的渲染数据
func (e *Engine) RenderState() RenderState {
	w := e.world
	width, height := e.fieldSize()
	rs := RenderState{
		Tick:       e.progress.Tick,
		Width:      width,
		Height:     height,
		EnemySpeed: e.progress.EnemySpeed,
		Player: PlayerView{
			Rect:        w.Player.Bounds(),
			Shield:      w.Player.Shield,
			Flicker:     w.Player.HitFlicker,
			WeaponCount: w.Player.WeaponCount,
		},
		Enemies:     make([]utils.Rect, 0, w.Enemies.Len()),
		Projectiles: make([]utils.Rect, 0, w.Projectiles.Len()),
		Items:       make([]ItemView, 0, w.Items.Len()),
		Effects:     e.effects.Effects(),
	}

	w.Enemies.Each(func(_ ecs.EntityID, en *entities.Enemy) bool {
		rs.Enemies = append(rs.Enemies, en.Bounds())
		return true
	})
	w.Projectiles.Each(func(_ ecs.EntityID, p *entities.Projectile) bool {
		rs.Projectiles = append(rs.Projectiles, p.Bounds())
		return true
	})
	w.Items.Each(func(_ ecs.EntityID, d *entities.DroppedItem) bool {
		rs.Items = append(rs.Items, ItemView{Rect: d.Bounds(), Kind: d.Kind, Glyph: d.Glyph})
		return true
	})
	return rs
}
