// Package engine 把各个系统组装成一局可逐帧推进的游戏
//
// Engine 不依赖任何渲染或输入库：展示层通过 Input 方法送入输入，
// 通过 Listener 接收每帧状态、UI 变化、终止通知和展示事件。
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/systems"
	"github.com/decker502/pretzelfall/pkg/utils"
	"go.uber.org/zap"
)

// Engine 游戏状态引擎
//
// 单 goroutine 持有：Tick、Reset 和所有 Input 方法必须在同一个 goroutine 中调用。
type Engine struct {
	cfg      *config.GameConfig
	field    PlayField
	listener Listener
	logger   *zap.Logger
	rng      *rand.Rand

	world    *entities.World
	progress *game.Progression
	phrase   *game.PhraseProgress
	sched    *game.Scheduler
	events   *game.EventQueue

	spawn      *systems.SpawnSystem
	effects    *systems.EffectSystem
	input      *systems.InputSystem
	fire       *systems.FireSystem
	movement   *systems.MovementSystem
	collisions *systems.CollisionSystem

	started      bool
	terminalSent bool
	uiSent       bool
	lastUI       game.UIState
}

// Option 配置 Engine 的可选项
type Option func(*Engine)

// WithLogger 注入日志，默认不输出
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = utils.OrNop(logger) }
}

// WithListener 注入展示层回调
func WithListener(l Listener) Option {
	return func(e *Engine) { e.SetListener(l) }
}

// WithRand 注入随机源，测试中用于固定结果
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed 使用固定种子
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New 创建引擎
//
// 参数:
//   - cfg: 游戏调参，nil 表示使用默认值
//   - field: 场地尺寸来源，不可为 nil
//
// 返回:
//   - *Engine: 尚未开始的引擎，调用 Start 后 Tick 才会推进
//   - error: 配置无效
func New(cfg *config.GameConfig, field PlayField, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if field == nil {
		return nil, fmt.Errorf("play field cannot be nil")
	}

	drops, err := systems.NewDropTable(cfg.DropTable)
	if err != nil {
		return nil, fmt.Errorf("failed to build drop table: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		field:    field,
		listener: NopListener{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := e.logger
	e.logger = logger.Named("Engine")

	width, height := e.fieldSize()
	e.world = entities.NewWorld(cfg, width, height)
	e.progress = game.NewProgression(cfg)
	e.phrase = game.NewPhraseProgress(cfg.Phrase)
	e.sched = game.NewScheduler()
	e.events = game.NewEventQueue()

	e.spawn = systems.NewSpawnSystem(cfg, e.world, e.progress, e.phrase, e.sched, e.events, e.rng, e.fieldSize, logger)
	e.effects = systems.NewEffectSystem(cfg, e.world, e.progress, e.phrase, e.sched, e.events, e.spawn, logger)
	e.input = systems.NewInputSystem(&cfg.Player)
	e.fire = systems.NewFireSystem(cfg, e.world, e.progress, e.input, e.sched, e.events)
	e.movement = systems.NewMovementSystem(e.world, e.progress)
	e.collisions = systems.NewCollisionSystem(cfg, e.world, e.progress, e.effects, drops, e.rng, e.events, logger)

	return e, nil
}

// SetListener 替换展示层回调，nil 表示忽略所有回调
func (e *Engine) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	e.listener = l
}

// fieldSize 读取场地尺寸，过小时按最小尺寸处理
func (e *Engine) fieldSize() (float64, float64) {
	return config.ClampPlayField(e.field.Width(), e.field.Height())
}

// Start 登记所有计时器并通知初始 UI 状态，重复调用无效
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true

	e.spawn.Start()
	e.fire.Start()

	e.logger.Info("game started",
		zap.String("phrase", e.cfg.Phrase),
		zap.Int("lives", e.progress.Lives))
	e.emitUI()
}

// Tick 推进一个逻辑帧
//
// 顺序：输入 → 到期计时器（含自动射击）→ 运动与回收 → 碰撞结算 → 终止处理 → 通知展示层。
// 未开始或已处于终止阶段时为无操作。
func (e *Engine) Tick() {
	if !e.started || !e.progress.IsPlaying() {
		return
	}

	e.progress.Tick++

	width, height := e.fieldSize()
	e.input.Apply(e.world.Player, width, height)
	e.sched.Advance(e.progress.Tick)
	e.movement.Update(height)
	res := e.collisions.Update()

	terminal := !e.progress.IsPlaying()
	if terminal {
		e.sched.CancelAll()
		e.effects.Reset()
		e.world.Clear()
	}

	if res.PlayerHits > 0 || res.Pickups > 0 {
		e.logger.Debug("collisions resolved",
			zap.Uint64("tick", e.progress.Tick),
			zap.Int("hits", res.PlayerHits),
			zap.Int("kills", res.Kills),
			zap.Int("pickups", res.Pickups))
	}

	for _, ev := range e.events.Drain() {
		e.listener.OnEvent(ev)
	}
	e.listener.OnTick(e.RenderState())
	e.emitUI()

	if terminal && !e.terminalSent {
		e.terminalSent = true
		e.logger.Info("game ended",
			zap.Stringer("phase", e.progress.Phase),
			zap.Int("score", e.progress.Score),
			zap.Uint64("tick", e.progress.Tick))
		e.listener.OnTerminal(e.progress.Phase, e.progress.Score)
	}
}

// emitUI UI 状态有变化时通知展示层
func (e *Engine) emitUI() {
	ui := e.Snapshot()
	if e.uiSent && ui == e.lastUI {
		return
	}
	e.uiSent = true
	e.lastUI = ui
	e.listener.OnUIChange(ui)
}

// Reset 重新开始一局：清空场地、进度、收集状态和计时器
func (e *Engine) Reset() {
	e.sched.Reset()
	e.events.Reset()
	e.effects.Reset()
	e.input.Reset()
	e.progress.Reset()
	e.phrase.Reset()
	width, height := e.fieldSize()
	e.world.Reset(width, height)

	e.started = false
	e.terminalSent = false
	e.uiSent = false

	e.logger.Info("game reset")
	e.Start()
}

// Snapshot 返回当前 UI 状态
func (e *Engine) Snapshot() game.UIState {
	return game.UIState{
		Score:       e.progress.Score,
		Lives:       e.progress.Lives,
		Multiplier:  e.progress.Multiplier,
		Phrase:      e.phrase.Display(),
		Phase:       e.progress.Phase,
		WeaponCount: e.world.Player.WeaponCount,
		Shield:      e.world.Player.Shield,
	}
}

// Phase 当前阶段
func (e *Engine) Phase() game.Phase {
	return e.progress.Phase
}

// Ticks 已推进的逻辑帧数
func (e *Engine) Ticks() uint64 {
	return e.progress.Tick
}

// Config 引擎使用的调参
func (e *Engine) Config() *config.GameConfig {
	return e.cfg
}

// Effects 生效中的限时效果
func (e *Engine) Effects() []components.ExpiringEffect {
	return e.effects.Effects()
}
