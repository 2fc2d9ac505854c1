package systems

import (
	"math/rand"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/ecs"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
	"github.com/decker502/pretzelfall/pkg/utils"
	"go.uber.org/zap"
)

// CollisionResult 一帧碰撞结算的统计
type CollisionResult struct {
	PlayerHits int // 玩家受伤次数
	Rammed     int // 撞上玩家被摧毁的敌人
	Kills      int // 被子弹摧毁的敌人
	Pickups    int // 拾取的道具
	Drops      int // 敌人掉落的道具
}

// CollisionSystem 碰撞与战斗结算
//
// 每帧按固定顺序结算：
//  1. 玩家与敌人：玩家非无敌时受伤；敌人无论如何都被摧毁
//  2. 子弹与敌人：每颗子弹摧毁按插入顺序第一个重叠的存活敌人
//  3. 玩家与道具：结算效果后移除道具
//
// 一旦进入终止阶段立即停止结算。
type CollisionSystem struct {
	cfg      *config.GameConfig
	world    *entities.World
	progress *game.Progression
	effects  *EffectSystem
	drops    *DropTable
	rng      *rand.Rand
	events   *game.EventQueue
	logger   *zap.Logger
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(
	cfg *config.GameConfig,
	world *entities.World,
	progress *game.Progression,
	effects *EffectSystem,
	drops *DropTable,
	rng *rand.Rand,
	events *game.EventQueue,
	logger *zap.Logger,
) *CollisionSystem {
	return &CollisionSystem{
		cfg:      cfg,
		world:    world,
		progress: progress,
		effects:  effects,
		drops:    drops,
		rng:      rng,
		events:   events,
		logger:   logger.Named("CollisionSystem"),
	}
}

// Update 结算本帧的全部碰撞
func (s *CollisionSystem) Update() CollisionResult {
	var res CollisionResult
	if !s.progress.IsPlaying() {
		return res
	}

	s.playerVsEnemies(&res)
	if !s.progress.IsPlaying() {
		return res
	}
	s.projectilesVsEnemies(&res)
	s.playerVsItems(&res)
	return res
}

func (s *CollisionSystem) playerVsEnemies(res *CollisionResult) {
	player := s.world.Player
	s.world.Enemies.Each(func(id ecs.EntityID, e *entities.Enemy) bool {
		if !utils.IsColliding(player.Bounds(), e.Bounds()) {
			return true
		}
		if !player.Invincible() {
			res.PlayerHits++
			if s.effects.HitPlayer() {
				s.destroyEnemy(id, e, res)
				res.Rammed++
				return false
			}
		}
		s.destroyEnemy(id, e, res)
		res.Rammed++
		return true
	})
}

func (s *CollisionSystem) projectilesVsEnemies(res *CollisionResult) {
	s.world.Projectiles.Each(func(pid ecs.EntityID, p *entities.Projectile) bool {
		bounds := p.Bounds()
		eid, enemy, ok := s.world.Enemies.Find(func(e *entities.Enemy) bool {
			return utils.IsColliding(bounds, e.Bounds())
		})
		if !ok {
			return true
		}

		s.world.Projectiles.Remove(pid)
		s.destroyEnemy(eid, enemy, res)
		s.progress.AddScore(s.cfg.Scoring.EnemyKill)
		res.Kills++
		return true
	})
}

func (s *CollisionSystem) playerVsItems(res *CollisionResult) {
	player := s.world.Player
	s.world.Items.Each(func(id ecs.EntityID, item *entities.DroppedItem) bool {
		if !utils.IsColliding(player.Bounds(), item.Bounds()) {
			return true
		}
		s.effects.Apply(item)
		s.world.Items.Remove(id)
		res.Pickups++
		return s.progress.IsPlaying()
	})
}

// destroyEnemy 移除敌人，在其位置产生爆炸并掷一次掉落
func (s *CollisionSystem) destroyEnemy(id ecs.EntityID, e *entities.Enemy, res *CollisionResult) {
	s.world.Enemies.Remove(id)
	s.events.Push(game.Event{Type: game.EventExplosion, Tick: s.progress.Tick, X: e.X, Y: e.Y})

	kind := s.drops.RollRandom(s.rng)
	if kind == components.ItemNone {
		return
	}
	s.world.SpawnDroppedItem(kind, e.X, e.Y)
	res.Drops++
	s.logger.Debug("item dropped", zap.Stringer("kind", kind), zap.Float64("x", e.X), zap.Float64("y", e.Y))
}
