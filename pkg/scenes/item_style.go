package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/pretzelfall/pkg/components"
)

// itemStyle 道具的绘制样式
type itemStyle struct {
	Fill  color.RGBA
	Label string
}

var (
	colorBackground = color.RGBA{0x05, 0x05, 0x18, 0xff}
	colorPlayer     = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	colorEnemy      = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	colorEnemyEye   = color.RGBA{0xff, 0xeb, 0x3b, 0xff}
	colorProjectile = color.RGBA{0xff, 0xf1, 0x76, 0xff}
	colorShield     = color.RGBA{0x80, 0xde, 0xea, 0xc0}
	colorBurst      = color.RGBA{0xff, 0x98, 0x00, 0xff}
	colorHUD        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorHeart      = color.RGBA{0xff, 0x52, 0x52, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	colorLetterBox  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorLetterText = color.RGBA{0x1a, 0x23, 0x7e, 0xff}
)

// itemStyles 各类道具的颜色和标记
var itemStyles = map[components.ItemKind]itemStyle{
	components.ItemLife:       {Fill: color.RGBA{0xff, 0x52, 0x52, 0xff}, Label: "♥"},
	components.ItemPoints:     {Fill: color.RGBA{0xff, 0xd7, 0x00, 0xff}, Label: "$"},
	components.ItemSlow:       {Fill: color.RGBA{0xad, 0xd8, 0xe6, 0xff}, Label: "~"},
	components.ItemMultiplier: {Fill: color.RGBA{0xff, 0x69, 0xb4, 0xff}, Label: "x"},
	components.ItemWeapon:     {Fill: color.RGBA{0xff, 0x8a, 0x65, 0xff}, Label: "W"},
	components.ItemShield:     {Fill: color.RGBA{0x90, 0xee, 0x90, 0xff}, Label: "O"},
	components.ItemLetter:     {Fill: colorLetterBox},
	components.ItemPretzel:    {Fill: color.RGBA{0xc6, 0x8b, 0x3e, 0xff}},
}

// styleFor 返回道具样式，倍率道具显示实际倍数
func styleFor(kind components.ItemKind, multiplier int) itemStyle {
	s, ok := itemStyles[kind]
	if !ok {
		return itemStyle{Fill: colorHUD, Label: "?"}
	}
	if kind == components.ItemMultiplier {
		s.Label = fmt.Sprintf("x%d", multiplier)
	}
	return s
}
