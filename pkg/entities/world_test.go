package entities

import (
	"testing"

	"github.com/decker502/pretzelfall/pkg/components"
	"github.com/decker502/pretzelfall/pkg/ecs"
)

func TestNewPlayerPlacement(t *testing.T) {
	w := newTestWorld()
	p := w.Player

	if p.X != 215 {
		t.Errorf("expected centered X = 215, got %v", p.X)
	}
	if p.Y != 660 {
		t.Errorf("expected Y pinned to 720-50-10 = 660, got %v", p.Y)
	}
	if p.WeaponCount != 1 {
		t.Errorf("expected 1 weapon, got %d", p.WeaponCount)
	}
	if p.Invincible() {
		t.Error("new player should not be invincible")
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	tests := []struct {
		name  string
		move  func(p *Player)
		wantX float64
	}{
		{"指针居中", func(p *Player) { p.CenterOn(100, testFieldWidth) }, 75},
		{"指针越过左边界", func(p *Player) { p.CenterOn(-500, testFieldWidth) }, 0},
		{"指针越过右边界", func(p *Player) { p.CenterOn(5000, testFieldWidth) }, 430},
		{"方向键右移", func(p *Player) { p.Nudge(10, testFieldWidth) }, 225},
		{"方向键左移越界", func(p *Player) { p.Nudge(-1000, testFieldWidth) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestWorld().Player
			tt.move(p)
			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
		})
	}
}

func TestPlayerPinAfterResize(t *testing.T) {
	p := newTestWorld().Player
	p.CenterOn(470, testFieldWidth)

	p.Pin(300, 400, 10)
	if p.X != 250 || p.Y != 340 {
		t.Errorf("expected (250, 340) after shrink, got (%v, %v)", p.X, p.Y)
	}
}

func TestSpawnPositions(t *testing.T) {
	w := newTestWorld()

	e := w.SpawnEnemy(100)
	if e.Y != -40 || e.Width != 40 {
		t.Errorf("enemy should spawn at y=-40 with width 40, got y=%v w=%v", e.Y, e.Width)
	}

	l := w.SpawnLetter(3, 'p', 20)
	if l.Y != -50 || l.Kind != components.ItemLetter || l.LetterIndex != 3 || l.Glyph != 'p' {
		t.Errorf("unexpected letter %+v", l)
	}

	d := w.SpawnDroppedItem(components.ItemShield, 5, 7)
	if d.X != 5 || d.Y != 7 || d.Kind != components.ItemShield {
		t.Errorf("unexpected dropped item %+v", d)
	}

	p := w.SpawnPretzel(10)
	if p == nil || p.Y != -40 {
		t.Fatalf("expected pretzel at y=-40, got %+v", p)
	}
}

func TestSpawnPretzelSingleInstance(t *testing.T) {
	w := newTestWorld()

	if w.HasPretzel() {
		t.Fatal("empty world should have no pretzel")
	}
	if w.SpawnPretzel(10) == nil {
		t.Fatal("first pretzel should spawn")
	}
	if w.SpawnPretzel(20) != nil {
		t.Error("second pretzel must not spawn while one exists")
	}

	count := 0
	w.Items.Each(func(_ ecs.EntityID, d *DroppedItem) bool {
		if d.Kind == components.ItemPretzel {
			count++
		}
		return true
	})
	if count != 1 {
		t.Errorf("expected exactly 1 pretzel, got %d", count)
	}
}

func TestAdvanceAndReap(t *testing.T) {
	w := newTestWorld()

	e := w.SpawnEnemy(0)
	d := w.SpawnDroppedItem(components.ItemPoints, 0, 0)
	volley := w.SpawnProjectiles(1, 100, 5)

	w.Advance(2.5)

	if e.Y != -37.5 {
		t.Errorf("enemy Y = %v, want -37.5", e.Y)
	}
	if d.Y != 2 {
		t.Errorf("item should fall at its own speed, Y = %v, want 2", d.Y)
	}
	if volley[0].Y != -5 {
		t.Errorf("projectile Y = %v, want -5", volley[0].Y)
	}

	if n := w.Reap(testFieldHeight); n != 1 {
		t.Errorf("expected 1 reaped (projectile above top), got %d", n)
	}
	if w.Projectiles.Len() != 0 {
		t.Error("projectile should be reaped")
	}

	e.Y = testFieldHeight + 1
	d.Y = testFieldHeight
	w.Reap(testFieldHeight)
	if w.Enemies.Len() != 0 {
		t.Error("enemy below the bottom edge should be reaped")
	}
	if w.Items.Len() != 1 {
		t.Error("item exactly at the bottom edge should survive")
	}
}

func TestClearAndReset(t *testing.T) {
	w := newTestWorld()
	w.SpawnEnemy(1)
	w.SpawnProjectiles(3, 100, 100)
	w.SpawnPretzel(1)
	w.Player.WeaponCount = 7

	w.Clear()
	if w.Count() != 0 {
		t.Errorf("expected empty world after Clear, got %d entities", w.Count())
	}
	if w.Player.WeaponCount != 7 {
		t.Error("Clear must keep the player")
	}

	w.SpawnEnemy(1)
	w.Reset(testFieldWidth, testFieldHeight)
	if w.Count() != 0 || w.Player.WeaponCount != 1 {
		t.Errorf("Reset should empty the world and rebuild the player, count=%d weapons=%d", w.Count(), w.Player.WeaponCount)
	}
	t.Logf("✓ world reset")
}
