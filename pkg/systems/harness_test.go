package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/entities"
	"github.com/decker502/pretzelfall/pkg/game"
	"go.uber.org/zap"
)

const (
	testFieldWidth  = 480.0
	testFieldHeight = 720.0
)

// harness 把所有系统按 Engine 的方式组装起来，但不经过 Engine
type harness struct {
	cfg        *config.GameConfig
	world      *entities.World
	progress   *game.Progression
	phrase     *game.PhraseProgress
	sched      *game.Scheduler
	events     *game.EventQueue
	rng        *rand.Rand
	drops      *DropTable
	spawn      *SpawnSystem
	effects    *EffectSystem
	input      *InputSystem
	fire       *FireSystem
	movement   *MovementSystem
	collisions *CollisionSystem
}

func newHarness(t *testing.T, mutate func(cfg *config.GameConfig)) *harness {
	t.Helper()

	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	drops, err := NewDropTable(cfg.DropTable)
	if err != nil {
		t.Fatalf("NewDropTable: %v", err)
	}

	logger := zap.NewNop()
	h := &harness{
		cfg:      cfg,
		world:    entities.NewWorld(cfg, testFieldWidth, testFieldHeight),
		progress: game.NewProgression(cfg),
		phrase:   game.NewPhraseProgress(cfg.Phrase),
		sched:    game.NewScheduler(),
		events:   game.NewEventQueue(),
		rng:      rand.New(rand.NewSource(7)),
		drops:    drops,
	}
	field := func() (float64, float64) { return testFieldWidth, testFieldHeight }

	h.spawn = NewSpawnSystem(cfg, h.world, h.progress, h.phrase, h.sched, h.events, h.rng, field, logger)
	h.effects = NewEffectSystem(cfg, h.world, h.progress, h.phrase, h.sched, h.events, h.spawn, logger)
	h.input = NewInputSystem(&cfg.Player)
	h.fire = NewFireSystem(cfg, h.world, h.progress, h.input, h.sched, h.events)
	h.movement = NewMovementSystem(h.world, h.progress)
	h.collisions = NewCollisionSystem(cfg, h.world, h.progress, h.effects, h.drops, h.rng, h.events, logger)
	return h
}

// advance 推进 n 帧，只运行计时器
func (h *harness) advance(n int) {
	for i := 0; i < n; i++ {
		h.progress.Tick++
		h.sched.Advance(h.progress.Tick)
	}
}

// countEvents 统计并清空事件队列中某种类型的事件
func (h *harness) countEvents(typ game.EventType) int {
	n := 0
	for _, e := range h.events.Drain() {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// enemyOnPlayer 在玩家正上方放置一个与玩家重叠的敌人
func (h *harness) enemyOnPlayer() *entities.Enemy {
	e := h.world.SpawnEnemy(h.world.Player.X)
	e.Y = h.world.Player.Y
	return e
}

// itemOnPlayer 在玩家位置放置一个道具
func (h *harness) itemOnPlayer(d *entities.DroppedItem) *entities.DroppedItem {
	d.X = h.world.Player.X
	d.Y = h.world.Player.Y
	return d
}
