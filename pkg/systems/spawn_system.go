package systems

import (
	"math/rand"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
	"go.uber.org/zap"
)

// FieldSize 返回当前场地宽高，每次生成时读取，窗口缩放后立即生效
type FieldSize func() (width, height float64)

// SpawnSystem 管理敌人、字母和椒盐卷饼的定时生成以及敌人提速
//
// 所有计时器都登记在 game.Scheduler 上：
//   - enemy.spawn: 每 enemy.spawnInterval 秒生成一个敌人
//   - enemy.ramp: 每 enemy.speedRampInterval 秒提升基准速度
//   - letters.spawn: 每 letters.spawnInterval 秒掉落一个字母（或补发椒盐卷饼）
type SpawnSystem struct {
	cfg      *config.GameConfig
	world    *entities.World
	progress *game.Progression
	phrase   *game.PhraseProgress
	sched    *game.Scheduler
	events   *game.EventQueue
	rng      *rand.Rand
	field    FieldSize
	logger   *zap.Logger

	letterTimer game.TimerID
}

// NewSpawnSystem 创建生成系统，需要调用 Start 登记计时器
func NewSpawnSystem(
	cfg *config.GameConfig,
	world *entities.World,
	progress *game.Progression,
	phrase *game.PhraseProgress,
	sched *game.Scheduler,
	events *game.EventQueue,
	rng *rand.Rand,
	field FieldSize,
	logger *zap.Logger,
) *SpawnSystem {
	return &SpawnSystem{
		cfg:      cfg,
		world:    world,
		progress: progress,
		phrase:   phrase,
		sched:    sched,
		events:   events,
		rng:      rng,
		field:    field,
		logger:   logger.Named("SpawnSystem"),
	}
}

// Start 登记生成和提速计时器
func (s *SpawnSystem) Start() {
	s.sched.Every("enemy.spawn", s.cfg.Ticks(s.cfg.Enemy.SpawnInterval), func() {
		s.SpawnEnemy()
	})
	s.sched.Every("enemy.ramp", s.cfg.Ticks(s.cfg.Enemy.SpeedRampInterval), func() {
		s.progress.RampSpeed()
		s.logger.Debug("enemy speed ramped",
			zap.Float64("baseline", s.progress.BaseSpeed),
			zap.Float64("speed", s.progress.EnemySpeed))
	})
	s.scheduleLetters()

	s.logger.Info("spawn timers started",
		zap.Float64("enemyInterval", s.cfg.Enemy.SpawnInterval),
		zap.Float64("letterInterval", s.cfg.Letters.SpawnInterval),
		zap.String("selection", string(s.cfg.Letters.Selection)),
		zap.String("completion", string(s.cfg.Letters.Completion)))
}

func (s *SpawnSystem) scheduleLetters() {
	s.letterTimer = s.sched.Every("letters.spawn", s.cfg.Ticks(s.cfg.Letters.SpawnInterval), func() {
		s.SpawnLetter()
	})
}

// randomX 在 [0, fieldWidth-width) 内均匀取值
func (s *SpawnSystem) randomX(width float64) float64 {
	fieldWidth, _ := s.field()
	span := fieldWidth - width
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}

// SpawnEnemy 在场地顶部随机位置生成一个敌人
func (s *SpawnSystem) SpawnEnemy() *entities.Enemy {
	if !s.progress.IsPlaying() {
		return nil
	}
	return s.world.SpawnEnemy(s.randomX(s.cfg.Enemy.Width))
}

// SpawnLetter 字母计时器触发
//
// 短语未完成时按选择策略掉落一个未收集的字母。
// 短语已完成时：
//   - pretzel 模式只在场上没有椒盐卷饼时补发一个
//   - cycle 模式补发椒盐卷饼，清空收集进度并从此刻重新计时
//
// 返回: 生成的字母；没有生成字母时返回 nil
func (s *SpawnSystem) SpawnLetter() *entities.DroppedItem {
	if !s.progress.IsPlaying() {
		return nil
	}

	index, ok := s.phrase.NextLetter(s.cfg.Letters.Selection, s.rng)
	if !ok {
		s.ReleasePretzel()
		if s.cfg.Letters.Completion == config.CompletionCycle {
			s.phrase.Reset()
			s.sched.Cancel(s.letterTimer)
			s.scheduleLetters()
			s.logger.Info("phrase cycle restarted")
		}
		return nil
	}

	glyph := s.phrase.Rune(index)
	s.logger.Debug("letter spawned", zap.Int("index", index), zap.String("glyph", string(glyph)))
	return s.world.SpawnLetter(index, glyph, s.randomX(s.cfg.Letters.Width))
}

// ReleasePretzel 放出椒盐卷饼，场上已有时不重复生成
//
// 返回: 是否生成了新的椒盐卷饼
func (s *SpawnSystem) ReleasePretzel() bool {
	if !s.progress.IsPlaying() {
		return false
	}
	p := s.world.SpawnPretzel(s.randomX(s.cfg.Pretzel.Width))
	if p == nil {
		return false
	}
	s.events.Push(game.Event{Type: game.EventPretzelReleased, Tick: s.progress.Tick, X: p.X, Y: p.Y})
	s.logger.Info("pretzel released", zap.Float64("x", p.X))
	return true
}
