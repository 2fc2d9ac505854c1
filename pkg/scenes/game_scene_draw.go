package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// flickerPeriod 受击闪烁的半周期（帧）
const flickerPeriod = 6

// Draw 绘制背景、实体、特效、HUD 和终局画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s.drawStars(screen)
	for _, p := range s.state.Projectiles {
		drawProjectile(screen, p)
	}
	for _, e := range s.state.Enemies {
		drawEnemy(screen, e)
	}
	for _, it := range s.state.Items {
		s.drawItem(screen, it)
	}
	if !s.ui.Phase.IsTerminal() {
		s.drawPlayer(screen, s.state.Player)
	}
	s.drawBursts(screen)
	s.drawHUD(screen)

	if s.ui.Phase.IsTerminal() {
		s.drawOverlay(screen)
	}
}

func (s *GameScene) drawStars(screen *ebiten.Image) {
	for _, star := range s.stars.Stars {
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), star.Color, false)
	}
}

func drawProjectile(screen *ebiten.Image, r utils.Rect) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W/2), colorProjectile, true)
}

// drawEnemy 红色圆形加两只眼睛
func drawEnemy(screen *ebiten.Image, r utils.Rect) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W/2), colorEnemy, true)

	eye := float32(r.W / 8)
	vector.DrawFilledCircle(screen, float32(cx-r.W/5), float32(cy-r.H/8), eye, colorEnemyEye, true)
	vector.DrawFilledCircle(screen, float32(cx+r.W/5), float32(cy-r.H/8), eye, colorEnemyEye, true)
}

func (s *GameScene) drawItem(screen *ebiten.Image, it engine.ItemView) {
	style := styleFor(it.Kind, s.cfg.Effects.MultiplierValue)
	cx, cy := it.X+it.W/2, it.Y+it.H/2

	switch it.Kind {
	case components.ItemLetter:
		vector.DrawFilledRect(screen, float32(it.X), float32(it.Y), float32(it.W), float32(it.H), style.Fill, false)
		vector.StrokeRect(screen, float32(it.X), float32(it.Y), float32(it.W), float32(it.H), 2, colorLetterText, false)
		drawCenteredText(screen, string(it.Glyph), s.faces.glyph, cx, cy, colorLetterText)
	case components.ItemPretzel:
		// 三个相交的环
		r := float32(it.W / 3)
		vector.StrokeCircle(screen, float32(cx-it.W/5), float32(cy-it.H/8), r, 4, style.Fill, true)
		vector.StrokeCircle(screen, float32(cx+it.W/5), float32(cy-it.H/8), r, 4, style.Fill, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy+it.H/6), r, 4, style.Fill, true)
	default:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(it.W/2), style.Fill, true)
		drawCenteredText(screen, style.Label, s.faces.hint, cx, cy, colorBackground)
	}
}

// drawPlayer 绘制玩家飞船、护盾和受击闪烁
func (s *GameScene) drawPlayer(screen *ebiten.Image, p engine.PlayerView) {
	if p.Flicker && (s.frame/flickerPeriod)%2 == 1 {
		return
	}

	x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)
	vector.DrawFilledRect(screen, x+w*0.35, y+h*0.2, w*0.3, h*0.8, colorPlayer, true)
	vector.DrawFilledRect(screen, x, y+h*0.6, w, h*0.25, colorPlayer, true)
	vector.DrawFilledCircle(screen, x+w/2, y+h*0.25, w*0.15, colorProjectile, true)

	if p.Shield {
		vector.StrokeCircle(screen, x+w/2, y+h/2, w*0.8, 3, colorShield, true)
	}
}

func (s *GameScene) drawBursts(screen *ebiten.Image) {
	for _, b := range s.bursts.Items() {
		c := color.NRGBA{R: colorBurst.R, G: colorBurst.G, B: colorBurst.B, A: uint8(255 * b.Alpha())}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.CurrentRadius()), c, true)
	}
}

// drawText 在 (x, y) 绘制一行文字，align 决定 x 是左端、中点还是右端
func drawText(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, str, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字
func drawCenteredText(dst *ebiten.Image, str string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}
