package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/sound"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// burstTicks 爆炸标记显示的帧数（0.5 秒）
const burstTicks = 30

var (
	styleDefault    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePlayer     = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShield     = styleDefault.Foreground(tcell.ColorLightGreen)
	styleEnemy      = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleProjectile = styleDefault.Foreground(tcell.ColorYellow)
	styleBurst      = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleLetter     = styleDefault.Reverse(true).Bold(true)
	styleHeart      = styleDefault.Foreground(tcell.ColorRed)
	styleHUD        = styleDefault.Bold(true)
)

// itemRunes 道具在终端中的字符
var itemRunes = map[components.ItemKind]rune{
	components.ItemLife:       '♥',
	components.ItemPoints:     '$',
	components.ItemSlow:       '~',
	components.ItemMultiplier: 'x',
	components.ItemWeapon:     'W',
	components.ItemShield:     'O',
	components.ItemPretzel:    '&',
}

// burst 一个爆炸标记
type burst struct {
	col, row int
	ticks    int
}

// Terminal 终端前端：把按键翻译成引擎输入，并把引擎回调绘制到 tcell 屏幕
type Terminal struct {
	screen tcell.Screen
	engine *engine.Engine
	cfg    *config.GameConfig
	field  *engine.ResizablePlayField
	audio  *beepAudio
	logger *zap.Logger

	state      engine.RenderState
	ui         game.UIState
	finalScore int
	bursts     []burst

	shooting     bool
	releaseLeft  bool
	releaseRight bool
}

// NewTerminal 创建终端前端并开始第一局
func NewTerminal(screen tcell.Screen, cfg *config.GameConfig, audio *beepAudio, logger *zap.Logger, opts ...engine.Option) (*Terminal, error) {
	logger = utils.OrNop(logger)
	cols, rows := screen.Size()
	w, h := fieldSizeFor(cols, rows)

	t := &Terminal{
		screen: screen,
		field:  engine.NewResizablePlayField(w, h),
		audio:  audio,
		logger: logger.Named("Terminal"),
	}

	all := append([]engine.Option{engine.WithLogger(logger)}, opts...)
	all = append(all, engine.WithListener(t))
	eng, err := engine.New(cfg, t.field, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	t.engine = eng
	t.cfg = eng.Config()
	eng.Start()
	t.state = eng.RenderState()
	return t, nil
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			// 终端只有按下事件：按一次移动一步，按住时依赖键盘自动重复
			t.engine.SetMovementKey(engine.KeyLeft, true)
			t.releaseLeft = true
		case tcell.KeyRight:
			t.engine.SetMovementKey(engine.KeyRight, true)
			t.releaseRight = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.shooting = !t.shooting
				t.engine.SetShooting(t.shooting)
			case 'r', 'R':
				t.restart()
			}
		}
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.field.Resize(fieldSizeFor(cols, rows))
		t.screen.Sync()
	}
	return true
}

// Step 推进一帧：引擎、按键释放、爆炸标记
func (t *Terminal) Step() {
	t.engine.Tick()

	if t.releaseLeft {
		t.engine.SetMovementKey(engine.KeyLeft, false)
		t.releaseLeft = false
	}
	if t.releaseRight {
		t.engine.SetMovementKey(engine.KeyRight, false)
		t.releaseRight = false
	}

	live := t.bursts[:0]
	for _, b := range t.bursts {
		if b.ticks--; b.ticks > 0 {
			live = append(live, b)
		}
	}
	t.bursts = live
}

func (t *Terminal) restart() {
	t.logger.Info("restarting", zap.Int("previousScore", t.finalScore))
	t.bursts = t.bursts[:0]
	t.finalScore = 0
	t.engine.Reset()
	t.engine.SetShooting(t.shooting)
	t.state = t.engine.RenderState()
}

// OnTick 保存最新的渲染数据
func (t *Terminal) OnTick(state engine.RenderState) { t.state = state }

// OnUIChange 保存最新的 UI 状态
func (t *Terminal) OnUIChange(ui game.UIState) { t.ui = ui }

// OnEvent 记录爆炸位置并播放音效
func (t *Terminal) OnEvent(ev game.Event) {
	switch ev.Type {
	case game.EventExplosion:
		t.addBurst(ev.X+t.cfg.Enemy.Width/2, ev.Y+t.cfg.Enemy.Height/2)
	case game.EventPlayerHit:
		t.addBurst(ev.X+t.cfg.Player.Width/2, ev.Y+t.cfg.Player.Height/2)
	}
	if cue, ok := sound.CueFor(ev); ok {
		t.audio.Play(cue)
	}
}

func (t *Terminal) addBurst(x, y float64) {
	col, row := cellOf(x, y)
	t.bursts = append(t.bursts, burst{col: col, row: row, ticks: burstTicks})
}

// OnTerminal 记录终局分数
func (t *Terminal) OnTerminal(phase game.Phase, finalScore int) {
	t.finalScore = finalScore
	t.logger.Info("game finished", zap.Stringer("phase", phase), zap.Int("score", finalScore))
	if cue, ok := sound.CueForPhase(phase); ok {
		t.audio.Play(cue)
	}
}

// Draw 绘制整帧
func (t *Terminal) Draw() {
	t.screen.SetStyle(styleDefault)
	t.screen.Clear()

	for _, p := range t.state.Projectiles {
		t.putCenter(p, '|', styleProjectile)
	}
	for _, e := range t.state.Enemies {
		t.putCenter(e, 'V', styleEnemy)
	}
	for _, it := range t.state.Items {
		if it.Kind == components.ItemLetter {
			t.putCenter(it.Rect, it.Glyph, styleLetter)
			continue
		}
		t.putCenter(it.Rect, itemRunes[it.Kind], styleDefault.Foreground(tcell.ColorGold))
	}
	if !t.ui.Phase.IsTerminal() {
		t.drawPlayer()
	}
	for _, b := range t.bursts {
		t.screen.SetContent(b.col, b.row, '*', nil, styleBurst)
	}

	t.drawHUD()
	if t.ui.Phase.IsTerminal() {
		t.drawOverlay()
	}
	t.screen.Show()
}

// putCenter 在矩形中心所在的字符格绘制一个字符
func (t *Terminal) putCenter(r utils.Rect, ch rune, style tcell.Style) {
	col, row := cellOf(r.X+r.W/2, r.Y+r.H/2)
	t.screen.SetContent(col, row, ch, nil, style)
}

// drawPlayer 玩家占据其宽度覆盖的所有列：/=A=\
func (t *Terminal) drawPlayer() {
	p := t.state.Player
	if p.Flicker && (t.state.Tick/8)%2 == 1 {
		return
	}
	first, last := spanOf(p.X, p.W)
	_, row := cellOf(p.X, p.Y+p.H/2)
	mid := (first + last) / 2
	for col := first; col <= last; col++ {
		ch := '='
		switch {
		case col == first:
			ch = '/'
		case col == last:
			ch = '\\'
		case col == mid:
			ch = 'A'
		}
		t.screen.SetContent(col, row, ch, nil, stylePlayer)
	}
	if p.Shield {
		t.screen.SetContent(first-1, row, '(', nil, styleShield)
		t.screen.SetContent(last+1, row, ')', nil, styleShield)
	}
}

// drawHUD 第一行分数和生命，第二行短语
func (t *Terminal) drawHUD() {
	cols, _ := t.screen.Size()
	score := "Score: " + utils.FormatScore(t.ui.Score) + utils.MultiplierLabel(t.ui.Multiplier)
	t.putString(0, 0, score, styleHUD)

	hearts := utils.Hearts(t.ui.Lives, config.HeartGlyph)
	t.putString(cols-len([]rune(hearts)), 0, hearts, styleHeart)

	t.putString((cols-len([]rune(t.ui.Phrase)))/2, 1, t.ui.Phrase, styleHUD)
}

func (t *Terminal) drawOverlay() {
	cols, rows := t.screen.Size()
	title := "GAME OVER"
	if t.ui.Phase == game.PhaseWin {
		title = "YOU WIN!"
	}
	lines := []string{title, "Final score: " + utils.FormatScore(t.finalScore), "r: play again   q: quit"}
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		t.putString((cols-len([]rune(line)))/2, top+i, line, styleHUD)
	}
}

func (t *Terminal) putString(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
