package systems

import (
	"math"
	"testing"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/ecs"
	"github.com/decker502/pretzelfall/pkg/entities"
)

// TestEnemySpawnInterval 每秒（60 帧）生成一个敌人
func TestEnemySpawnInterval(t *testing.T) {
	h := newHarness(t, nil)
	h.spawn.Start()

	h.advance(59)
	if h.world.Enemies.Len() != 0 {
		t.Fatalf("no enemy expected before 1s, got %d", h.world.Enemies.Len())
	}
	h.advance(1)
	if h.world.Enemies.Len() != 1 {
		t.Fatalf("expected 1 enemy at 1s, got %d", h.world.Enemies.Len())
	}
	h.advance(240)
	if h.world.Enemies.Len() != 5 {
		t.Errorf("expected 5 enemies at 5s, got %d", h.world.Enemies.Len())
	}
	t.Logf("✓ enemy spawned every 60 ticks")
}

// TestEnemySpawnRange 敌人横坐标在 [0, width-40) 内，顶边在 -40
func TestEnemySpawnRange(t *testing.T) {
	h := newHarness(t, nil)

	for i := 0; i < 2000; i++ {
		e := h.spawn.SpawnEnemy()
		if e.X < 0 || e.X >= testFieldWidth-40 {
			t.Fatalf("enemy x %v out of range", e.X)
		}
		if e.Y != -40 {
			t.Fatalf("enemy y = %v, want -40", e.Y)
		}
	}
}

func TestSpeedRamp(t *testing.T) {
	h := newHarness(t, nil)
	h.spawn.Start()

	h.advance(300 * 3)
	if math.Abs(h.progress.EnemySpeed-2.6) > 1e-9 {
		t.Errorf("speed after 15s = %v, want 2.6", h.progress.EnemySpeed)
	}
}

func TestLetterSequential(t *testing.T) {
	h := newHarness(t, nil)
	h.spawn.Start()

	h.advance(600)
	letter := onlyLetter(t, h)
	if letter.LetterIndex != 0 || letter.Glyph != 'H' || letter.Y != -50 {
		t.Errorf("unexpected first letter %+v", letter)
	}
}

func TestLetterRandomSkipsCollected(t *testing.T) {
	h := newHarness(t, func(cfg *config.GameConfig) {
		cfg.Phrase = "abc"
		cfg.Letters.Selection = config.LetterRandom
	})
	h.phrase.Collect(0)
	h.phrase.Collect(2)

	for i := 0; i < 50; i++ {
		if l := h.spawn.SpawnLetter(); l == nil || l.LetterIndex != 1 {
			t.Fatalf("only index 1 is collectible, got %+v", l)
		}
	}
}

// TestCompletionPretzelMode 集齐后计时器只补发椒盐卷饼
func TestCompletionPretzelMode(t *testing.T) {
	h := newHarness(t, func(cfg *config.GameConfig) { cfg.Phrase = "ab" })
	h.phrase.Collect(0)
	h.phrase.Collect(1)

	if l := h.spawn.SpawnLetter(); l != nil {
		t.Fatalf("complete phrase must not spawn letters, got %+v", l)
	}
	if !h.world.HasPretzel() {
		t.Fatal("timer should offer a pretzel when none is present")
	}

	h.spawn.SpawnLetter()
	if h.world.Items.Len() != 1 {
		t.Errorf("pretzel must stay single, items=%d", h.world.Items.Len())
	}
	if !h.phrase.IsComplete() {
		t.Error("pretzel mode keeps the phrase complete")
	}

	// 错过的椒盐卷饼可以再次出现
	h.world.Items.Clear()
	h.spawn.SpawnLetter()
	if !h.world.HasPretzel() {
		t.Error("missed pretzel should be re-offered")
	}
}

// TestCompletionCycleMode 集齐后放出椒盐卷饼并开始新一轮收集
func TestCompletionCycleMode(t *testing.T) {
	h := newHarness(t, func(cfg *config.GameConfig) {
		cfg.Phrase = "ab"
		cfg.Letters.Completion = config.CompletionCycle
	})
	h.spawn.Start()
	h.phrase.Collect(0)
	h.phrase.Collect(1)

	h.advance(600)
	if !h.world.HasPretzel() {
		t.Fatal("cycle mode offers a pretzel")
	}
	if h.phrase.IsComplete() || h.phrase.Display() != "__" {
		t.Errorf("cycle mode resets the phrase, got %q", h.phrase.Display())
	}

	h.advance(600)
	letters := 0
	h.world.Items.Each(func(_ ecs.EntityID, d *entities.DroppedItem) bool {
		if d.Kind == components.ItemLetter {
			letters++
		}
		return true
	})
	if letters != 1 {
		t.Errorf("next round should drop a letter, got %d", letters)
	}
}

func TestSpawnStopsWhenTerminal(t *testing.T) {
	h := newHarness(t, nil)
	h.progress.Win()

	if h.spawn.SpawnEnemy() != nil || h.spawn.SpawnLetter() != nil || h.spawn.ReleasePretzel() {
		t.Error("no spawns after the game has ended")
	}
	if h.world.Count() != 0 {
		t.Errorf("world should stay empty, got %d", h.world.Count())
	}
	if h.events.Len() != 0 {
		t.Error("no events after the game has ended")
	}
}

func onlyLetter(t *testing.T, h *harness) *entities.DroppedItem {
	t.Helper()
	var found *entities.DroppedItem
	h.world.Items.Each(func(_ ecs.EntityID, d *entities.DroppedItem) bool {
		if d.Kind == components.ItemLetter {
			if found != nil {
				t.Fatal("more than one letter on the field")
			}
			found = d
		}
		return true
	})
	if found == nil {
		t.Fatal("no letter on the field")
	}
	return found
}
