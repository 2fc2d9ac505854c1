package systems

import (
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
)

// FireSystem 自动射击
// 固定间隔的计时器独立于射击输入运行，只在射击状态下发射齐射
type FireSystem struct {
	cfg      *config.GameConfig
	world    *entities.World
	progress *game.Progression
	input    *InputSystem
	sched    *game.Scheduler
	events   *game.EventQueue
}

// NewFireSystem 创建射击系统，需要调用 Start 登记计时器
func NewFireSystem(
	cfg *config.GameConfig,
	world *entities.World,
	progress *game.Progression,
	input *InputSystem,
	sched *game.Scheduler,
	events *game.EventQueue,
) *FireSystem {
	return &FireSystem{
		cfg:      cfg,
		world:    world,
		progress: progress,
		input:    input,
		sched:    sched,
		events:   events,
	}
}

// Start 登记自动射击计时器
func (s *FireSystem) Start() {
	s.sched.Every("player.autofire", s.cfg.Ticks(s.cfg.Projectile.FireInterval), func() {
		if s.input.Shooting() {
			s.Volley()
		}
	})
}

// Volley 以玩家中心发射一轮齐射，子弹数量为玩家的 WeaponCount
func (s *FireSystem) Volley() int {
	if !s.progress.IsPlaying() {
		return 0
	}
	player := s.world.Player
	volley := s.world.SpawnProjectiles(player.WeaponCount, player.CenterX(), player.Y)
	s.events.Push(game.Event{
		Type:  game.EventVolley,
		Tick:  s.progress.Tick,
		X:     player.CenterX(),
		Y:     player.Y,
		Count: len(volley),
	})
	return len(volley)
}
