package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// scoreLine HUD 左上角的分数文字
func scoreLine(ui game.UIState) string {
	return "Score: " + utils.FormatScore(ui.Score) + utils.MultiplierLabel(ui.Multiplier)
}

// overlayTitle 终局标题
func overlayTitle(phase game.Phase) string {
	if phase == game.PhaseWin {
		return "YOU WIN!"
	}
	return "GAME OVER"
}

// restartHint 终局提示，触屏设备提示点击
func restartHint(mobile bool) string {
	if mobile {
		return "Tap to play again"
	}
	return "Press R to play again"
}

// drawHUD 分数、生命和短语
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	width := s.field.Width()
	m := config.HUDMargin

	drawText(screen, scoreLine(s.ui), s.faces.hud, m, m, colorHUD, text.AlignStart)
	drawText(screen, utils.Hearts(s.ui.Lives, config.HeartGlyph), s.faces.hud, width-m, m, colorHeart, text.AlignEnd)
	drawText(screen, s.ui.Phrase, s.faces.hud, width/2, m+config.HUDLineHeight+8, colorHUD, text.AlignCenter)

	if s.ui.WeaponCount > 1 {
		drawText(screen, fmt.Sprintf("W%d", s.ui.WeaponCount), s.faces.hint, m, m+config.HUDLineHeight+10, colorProjectile, text.AlignStart)
	}
}

// drawOverlay 终局遮罩、标题、最终分数和重新开始提示
func (s *GameScene) drawOverlay(screen *ebiten.Image) {
	width, height := s.field.Width(), s.field.Height()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), colorOverlay, false)

	cx, cy := width/2, height/2
	drawCenteredText(screen, overlayTitle(s.ui.Phase), s.faces.title, cx, cy-40, colorHUD)
	drawCenteredText(screen, "Final score: "+utils.FormatScore(s.finalScore), s.faces.hud, cx, cy+10, colorHUD)
	drawCenteredText(screen, restartHint(utils.IsMobile()), s.faces.hint, cx, cy+50, colorHUD)
}
