package systems

import (
	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
	"go.uber.org/zap"
)

// PretzelReleaser 在短语集齐时放出椒盐卷饼
type PretzelReleaser interface {
	ReleasePretzel() bool
}

type activeEffect struct {
	record components.ExpiringEffect
	timer  game.TimerID
}

// EffectSystem 结算道具效果和受击
//
// 限时效果（减速、倍率、护盾、受击闪烁）每种只保留一条记录，
// 重复触发时取消旧的到期定时器并重新计时，不叠加、不延长。
type EffectSystem struct {
	cfg      *config.GameConfig
	world    *entities.World
	progress *game.Progression
	phrase   *game.PhraseProgress
	sched    *game.Scheduler
	events   *game.EventQueue
	pretzel  PretzelReleaser
	logger   *zap.Logger

	active map[components.EffectKind]*activeEffect
}

// NewEffectSystem 创建效果系统
//
// 参数:
//   - pretzel: 短语集齐时调用，通常是 SpawnSystem
func NewEffectSystem(
	cfg *config.GameConfig,
	world *entities.World,
	progress *game.Progression,
	phrase *game.PhraseProgress,
	sched *game.Scheduler,
	events *game.EventQueue,
	pretzel PretzelReleaser,
	logger *zap.Logger,
) *EffectSystem {
	return &EffectSystem{
		cfg:      cfg,
		world:    world,
		progress: progress,
		phrase:   phrase,
		sched:    sched,
		events:   events,
		pretzel:  pretzel,
		logger:   logger.Named("EffectSystem"),
		active:   make(map[components.EffectKind]*activeEffect),
	}
}

// Apply 结算拾取的道具
// 得分使用拾取前的倍率（倍率道具本身按旧倍率计分）
//
// 返回: 本次得分
func (s *EffectSystem) Apply(item *entities.DroppedItem) int {
	player := s.world.Player
	scoring := s.cfg.Scoring
	points := 0

	switch item.Kind {
	case components.ItemLife:
		points = s.progress.AddScore(scoring.Life)
		s.progress.GainLife()

	case components.ItemPoints:
		points = s.progress.AddScore(scoring.Points)

	case components.ItemSlow:
		points = s.progress.AddScore(scoring.Slow)
		s.progress.ApplySlow()
		s.start(components.EffectSlow, s.cfg.Effects.Duration, func() {
			s.progress.RestoreSpeed()
			s.logger.Debug("slow expired", zap.Float64("speed", s.progress.EnemySpeed))
		})

	case components.ItemMultiplier:
		points = s.progress.AddScore(scoring.Multiplier)
		s.progress.SetMultiplier(s.cfg.Effects.MultiplierValue)
		s.start(components.EffectMultiplier, s.cfg.Effects.Duration, func() {
			s.progress.ResetMultiplier()
		})

	case components.ItemWeapon:
		points = s.progress.AddScore(scoring.Weapon)
		if player.WeaponCount < s.cfg.Player.MaxWeapons {
			player.WeaponCount++
		}

	case components.ItemShield:
		points = s.progress.AddScore(scoring.Shield)
		if !player.Shield {
			player.Shield = true
			s.events.Push(game.Event{Type: game.EventShieldUp, Tick: s.progress.Tick, X: player.X, Y: player.Y})
		}
		s.start(components.EffectShield, s.cfg.Effects.Duration, func() {
			player.Shield = false
			s.events.Push(game.Event{Type: game.EventShieldDown, Tick: s.progress.Tick, X: player.X, Y: player.Y})
		})

	case components.ItemLetter:
		if s.phrase.Collect(item.LetterIndex) {
			points = s.progress.AddScore(scoring.Letter)
		}
		if s.phrase.IsComplete() && s.pretzel != nil {
			s.pretzel.ReleasePretzel()
		}

	case components.ItemPretzel:
		points = s.progress.AddScore(scoring.Pretzel)
		s.progress.Win()
		s.logger.Info("pretzel collected", zap.Int("score", s.progress.Score))
	}

	s.events.Push(game.Event{
		Type:   game.EventItemCollected,
		Tick:   s.progress.Tick,
		X:      item.X,
		Y:      item.Y,
		Item:   item.Kind,
		Points: points,
	})
	s.logger.Debug("item applied",
		zap.Stringer("kind", item.Kind),
		zap.Int("points", points),
		zap.Int("score", s.progress.Score))
	return points
}

// HitPlayer 玩家被敌人撞到（调用方已确认玩家不处于无敌状态）
// 扣一条命；仍存活时开始受击无敌并产生 EventPlayerHit
//
// 返回: 是否因此进入终止阶段
func (s *EffectSystem) HitPlayer() bool {
	player := s.world.Player
	if s.progress.LoseLife() {
		s.logger.Info("player destroyed", zap.Int("score", s.progress.Score))
		return true
	}

	player.HitFlicker = true
	s.events.Push(game.Event{Type: game.EventPlayerHit, Tick: s.progress.Tick, X: player.X, Y: player.Y})
	s.start(components.EffectHitFlicker, s.cfg.Player.HitInvulnerability, func() {
		player.HitFlicker = false
		s.events.Push(game.Event{Type: game.EventFlickerEnd, Tick: s.progress.Tick})
	})
	s.logger.Debug("player hit", zap.Int("lives", s.progress.Lives))
	return false
}

// start 开始或重新开始一个限时效果窗口
func (s *EffectSystem) start(kind components.EffectKind, seconds float64, expire func()) {
	if prev, ok := s.active[kind]; ok {
		s.sched.Cancel(prev.timer)
	}

	duration := s.cfg.Ticks(seconds)
	now := s.progress.Tick
	e := &activeEffect{
		record: components.ExpiringEffect{Kind: kind, StartedAtTick: now, ExpiresAtTick: now + duration},
	}
	e.timer = s.sched.After(kind.String()+".expire", duration, func() {
		delete(s.active, kind)
		expire()
	})
	s.active[kind] = e
}

// Active 返回某种效果的当前记录
func (s *EffectSystem) Active(kind components.EffectKind) (components.ExpiringEffect, bool) {
	e, ok := s.active[kind]
	if !ok {
		return components.ExpiringEffect{}, false
	}
	return e.record, true
}

// Effects 返回所有生效中的效果记录，按种类排序
func (s *EffectSystem) Effects() []components.ExpiringEffect {
	out := make([]components.ExpiringEffect, 0, len(s.active))
	for _, kind := range []components.EffectKind{
		components.EffectSlow,
		components.EffectMultiplier,
		components.EffectShield,
		components.EffectHitFlicker,
	} {
		if e, ok := s.active[kind]; ok {
			out = append(out, e.record)
		}
	}
	return out
}

// Reset 丢弃所有效果记录（定时器由调度器统一取消）
func (s *EffectSystem) Reset() {
	clear(s.active)
}
