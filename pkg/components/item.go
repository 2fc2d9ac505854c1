package components

import "fmt"

// ItemKind 掉落物类型
type ItemKind int

const (
	ItemNone       ItemKind = iota // 无掉落
	ItemLife                       // 加一条命
	ItemPoints                     // 加分
	ItemSlow                       // 敌人减速
	ItemMultiplier                 // 分数倍率
	ItemWeapon                     // 增加子弹数量
	ItemShield                     // 护盾
	ItemLetter                     // 短语字母
	ItemPretzel                    // 椒盐卷饼（胜利道具）
)

var itemKindNames = map[ItemKind]string{
	ItemNone:       "none",
	ItemLife:       "life",
	ItemPoints:     "points",
	ItemSlow:       "slow",
	ItemMultiplier: "multiplier",
	ItemWeapon:     "weapon",
	ItemShield:     "shield",
	ItemLetter:     "letter",
	ItemPretzel:    "pretzel",
}

// String 返回配置文件中使用的名称
func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// IsDroppable 是否可以由敌人被消灭时掉落
// 字母和椒盐卷饼只由生成系统产生
func (k ItemKind) IsDroppable() bool {
	switch k {
	case ItemLife, ItemPoints, ItemSlow, ItemMultiplier, ItemWeapon, ItemShield:
		return true
	}
	return false
}

// ParseItemKind 从名称解析掉落物类型
func ParseItemKind(name string) (ItemKind, error) {
	for kind, n := range itemKindNames {
		if n == name {
			return kind, nil
		}
	}
	return ItemNone, fmt.Errorf("unknown item kind %q", name)
}
