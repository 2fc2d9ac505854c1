package scenes

import (
	"image/color"
	"math/rand"

	"github.com/decker502/pretzelfall/pkg/config"
)

// Star 背景星星
type Star struct {
	X, Y  float64
	Size  float64 // 半径
	Speed float64 // 每帧下落距离
	Color color.RGBA
}

// Starfield 装饰性的下落星空，与游戏逻辑无关
type Starfield struct {
	Stars         []Star
	width, height float64
	rng           *rand.Rand
}

// NewStarfield 在给定区域内随机生成星空
func NewStarfield(width, height float64, rng *rand.Rand) *Starfield {
	s := &Starfield{rng: rng}
	s.Resize(width, height)
	return s
}

// Resize 按新尺寸重新生成全部星星
func (s *Starfield) Resize(width, height float64) {
	s.width, s.height = width, height
	s.Stars = s.Stars[:0]
	for i := 0; i < config.StarCount; i++ {
		c := config.StarPalette[s.rng.Intn(len(config.StarPalette))]
		s.Stars = append(s.Stars, Star{
			X:     s.rng.Float64() * width,
			Y:     s.rng.Float64() * height,
			Size:  config.StarMinSize + s.rng.Float64()*(config.StarMaxSize-config.StarMinSize),
			Speed: config.StarMinSpeed + s.rng.Float64()*(config.StarMaxSpeed-config.StarMinSpeed),
			Color: color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff},
		})
	}
}

// Update 星星下落一帧，越过底部的星星回到顶部随机位置
func (s *Starfield) Update() {
	for i := range s.Stars {
		star := &s.Stars[i]
		star.Y += star.Speed
		if star.Y > s.height {
			star.Y = 0
			star.X = s.rng.Float64() * s.width
		}
	}
}
