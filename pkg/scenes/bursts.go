package scenes

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// BurstDuration 爆炸特效显示时长（秒）
const BurstDuration = 0.5

// Burst 一次爆炸特效
type Burst struct {
	X, Y   float64 // 中心
	Radius float64 // 最大半径
	Life   components.LifetimeComponent
}

// CurrentRadius 随时间扩张的半径
func (b *Burst) CurrentRadius() float64 {
	return utils.Lerp(b.Radius*0.3, b.Radius, utils.EaseOutCubic(b.Life.Progress()))
}

// Alpha 随时间淡出的不透明度
func (b *Burst) Alpha() float64 {
	return 1 - utils.EaseOutQuad(b.Life.Progress())
}

// Bursts 活动中的爆炸特效
type Bursts struct {
	items []Burst
}

// Add 在矩形中心添加一次爆炸
func (bs *Bursts) Add(r utils.Rect) {
	radius := r.W
	if r.H > radius {
		radius = r.H
	}
	bs.items = append(bs.items, Burst{
		X:      r.X + r.W/2,
		Y:      r.Y + r.H/2,
		Radius: radius * 0.75,
		Life:   components.LifetimeComponent{MaxLifetime: BurstDuration},
	})
}

// Update 推进所有特效并移除过期的
func (bs *Bursts) Update(deltaTime float64) {
	live := bs.items[:0]
	for _, b := range bs.items {
		if !b.Life.Advance(deltaTime) {
			live = append(live, b)
		}
	}
	bs.items = live
}

// Items 当前特效
func (bs *Bursts) Items() []Burst {
	return bs.items
}

// Clear 移除全部特效
func (bs *Bursts) Clear() {
	bs.items = bs.items[:0]
}
