package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces 场景使用的字体
type faces struct {
	hud   text.Face // 分数、生命、短语
	glyph text.Face // 字母道具和道具标记
	title text.Face // 终止画面标题
	hint  text.Face // 操作提示
}

// loadFaces 从内置的 Go 字体创建字体
func loadFaces() (*faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建字体源 goregular: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建字体源 gobold: %w", err)
	}

	return &faces{
		hud:   &text.GoTextFace{Source: regular, Size: 18},
		glyph: &text.GoTextFace{Source: bold, Size: 22},
		title: &text.GoTextFace{Source: bold, Size: 40},
		hint:  text.NewGoXFace(basicfont.Face7x13),
	}, nil
}
