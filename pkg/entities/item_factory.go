package entities

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// DroppedItem 下落的可拾取道具
type DroppedItem struct {
	components.PositionComponent
	components.CollisionComponent

	Kind components.ItemKind

	// LetterIndex 和 Glyph 仅对 ItemLetter 有效
	LetterIndex int
	Glyph       rune
}

// Bounds 返回道具的碰撞盒
func (d *DroppedItem) Bounds() utils.Rect {
	return utils.NewRect(d.X, d.Y, d.Width, d.Height)
}

// SpawnDroppedItem 在 (x, y) 生成一个敌人掉落的道具
// 掉落位置为被摧毁敌人的左上角
func (w *World) SpawnDroppedItem(kind components.ItemKind, x, y float64) *DroppedItem {
	return w.addItem(&DroppedItem{
		PositionComponent:  components.PositionComponent{X: x, Y: y},
		CollisionComponent: components.CollisionComponent{Width: w.cfg.Items.Width, Height: w.cfg.Items.Height},
		Kind:               kind,
	})
}

// SpawnLetter 在场地顶部外侧生成短语中第 index 个字母
func (w *World) SpawnLetter(index int, glyph rune, x float64) *DroppedItem {
	size := w.cfg.Letters.SizeConfig
	return w.addItem(&DroppedItem{
		PositionComponent:  components.PositionComponent{X: x, Y: -size.Height},
		CollisionComponent: components.CollisionComponent{Width: size.Width, Height: size.Height},
		Kind:               components.ItemLetter,
		LetterIndex:        index,
		Glyph:              glyph,
	})
}

// SpawnPretzel 生成椒盐卷饼
// 场上已有椒盐卷饼时不生成，返回 nil
func (w *World) SpawnPretzel(x float64) *DroppedItem {
	if w.HasPretzel() {
		return nil
	}
	size := w.cfg.Pretzel
	return w.addItem(&DroppedItem{
		PositionComponent:  components.PositionComponent{X: x, Y: -size.Height},
		CollisionComponent: components.CollisionComponent{Width: size.Width, Height: size.Height},
		Kind:               components.ItemPretzel,
	})
}

// HasPretzel 场上是否存在椒盐卷饼
func (w *World) HasPretzel() bool {
	_, _, ok := w.Items.Find(func(d *DroppedItem) bool {
		return d.Kind == components.ItemPretzel
	})
	return ok
}

func (w *World) addItem(d *DroppedItem) *DroppedItem {
	w.Items.Add(w.ids.CreateEntity(), d)
	return d
}
