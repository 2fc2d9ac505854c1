package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/engine"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/sound"
	"github.com/decker502/pretzelfall/pkg/utils"
)

// CuePlayer 播放合成音效
type CuePlayer interface {
	Play(cue sound.Cue)
}

// GameScene 游戏主画面
//
// 每个 ebiten Update 推进引擎一帧；场景作为引擎的 Listener 保存最新的渲染数据、
// UI 状态和展示事件，Draw 只读取这些数据。
type GameScene struct {
	engine *engine.Engine
	field  *engine.ResizablePlayField
	cfg    *config.GameConfig
	audio  CuePlayer
	logger *zap.Logger
	faces  *faces

	mapper   InputMapper
	touchIDs []ebiten.TouchID

	stars  *Starfield
	bursts Bursts

	state      engine.RenderState
	ui         game.UIState
	finalScore int
	frame      int // 已绘制的帧数，用于闪烁
}

// NewGameScene 创建游戏画面并开始第一局
//
// 参数:
//   - cfg: 游戏调参，nil 表示默认值
//   - width/height: 初始逻辑尺寸
//   - audio: 音效播放器，nil 表示静音
//   - logger: 日志器，nil 表示不输出
//   - opts: 额外的引擎选项（如固定种子）
//
// 返回:
//   - *GameScene: 已开始的游戏画面
//   - error: 配置无效或字体加载失败
func NewGameScene(cfg *config.GameConfig, width, height int, audio CuePlayer, logger *zap.Logger, opts ...engine.Option) (*GameScene, error) {
	logger = utils.OrNop(logger)
	field := engine.NewResizablePlayField(float64(width), float64(height))

	s := &GameScene{
		field:  field,
		audio:  audio,
		logger: logger.Named("GameScene"),
	}

	all := append([]engine.Option{engine.WithLogger(logger)}, opts...)
	all = append(all, engine.WithListener(s))
	eng, err := engine.New(cfg, field, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	s.engine = eng
	s.cfg = eng.Config()

	s.faces, err = loadFaces()
	if err != nil {
		return nil, err
	}

	s.stars = NewStarfield(field.Width(), field.Height(), rand.New(rand.NewSource(time.Now().UnixNano())))

	eng.Start()
	s.state = eng.RenderState()
	return s, nil
}

// Update 读取输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	var frame InputFrame
	frame, s.touchIDs = pollInput(s.touchIDs)
	s.step(frame, deltaTime)
}

// step 处理一帧输入并推进引擎和装饰动画
func (s *GameScene) step(frame InputFrame, deltaTime float64) {
	if s.ui.Phase.IsTerminal() {
		if frame.Restart || frame.Tap {
			s.restart()
		}
	} else {
		s.mapper.Apply(s.engine, frame)
		s.engine.Tick()
	}

	s.stars.Update()
	s.bursts.Update(deltaTime)
	s.frame++
}

// restart 开始新的一局
func (s *GameScene) restart() {
	s.logger.Info("restarting", zap.Int("previousScore", s.finalScore))
	s.bursts.Clear()
	s.mapper.Reset()
	s.finalScore = 0
	s.engine.Reset()
	s.state = s.engine.RenderState()
}

// Resize 窗口尺寸变化时调整场地和星空
func (s *GameScene) Resize(width, height int) {
	s.field.Resize(float64(width), float64(height))
	s.stars.Resize(s.field.Width(), s.field.Height())
	s.logger.Debug("play field resized",
		zap.Float64("width", s.field.Width()),
		zap.Float64("height", s.field.Height()))
}

// OnTick 保存最新的渲染数据
func (s *GameScene) OnTick(state engine.RenderState) {
	s.state = state
}

// OnUIChange 保存最新的 UI 状态
func (s *GameScene) OnUIChange(ui game.UIState) {
	s.ui = ui
}

// OnEvent 把展示事件转成爆炸特效和音效
func (s *GameScene) OnEvent(ev game.Event) {
	switch ev.Type {
	case game.EventExplosion:
		s.bursts.Add(utils.NewRect(ev.X, ev.Y, s.cfg.Enemy.Width, s.cfg.Enemy.Height))
	case game.EventPlayerHit:
		s.bursts.Add(utils.NewRect(ev.X, ev.Y, s.cfg.Player.Width, s.cfg.Player.Height))
	}
	if cue, ok := sound.CueFor(ev); ok {
		s.play(cue)
	}
}

// OnTerminal 记录终局分数
func (s *GameScene) OnTerminal(phase game.Phase, finalScore int) {
	s.finalScore = finalScore
	s.logger.Info("game finished", zap.Stringer("phase", phase), zap.Int("score", finalScore))
	if cue, ok := sound.CueForPhase(phase); ok {
		s.play(cue)
	}
}

func (s *GameScene) play(cue sound.Cue) {
	if s.audio != nil {
		s.audio.Play(cue)
	}
}
