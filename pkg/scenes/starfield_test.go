package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/pretzelfall/pkg/config"
	"github.com/decker502/pretzelfall/pkg/utils"
)

func TestStarfield(t *testing.T) {
	s := NewStarfield(480, 720, rand.New(rand.NewSource(7)))
	if len(s.Stars) != config.StarCount {
		t.Fatalf("expected %d stars, got %d", config.StarCount, len(s.Stars))
	}
	for _, star := range s.Stars {
		if star.X < 0 || star.X > 480 || star.Y < 0 || star.Y > 720 {
			t.Fatalf("star outside the field: %+v", star)
		}
		if star.Size < config.StarMinSize || star.Size > config.StarMaxSize {
			t.Fatalf("star size out of range: %v", star.Size)
		}
		if star.Speed < config.StarMinSpeed || star.Speed > config.StarMaxSpeed {
			t.Fatalf("star speed out of range: %v", star.Speed)
		}
	}

	// 足够多帧后每颗星都至少回绕过一次，仍在场内
	for i := 0; i < 1000; i++ {
		s.Update()
	}
	for _, star := range s.Stars {
		if star.Y < 0 || star.Y > 720 {
			t.Fatalf("star escaped after wrap: %+v", star)
		}
	}

	s.Resize(200, 300)
	if len(s.Stars) != config.StarCount {
		t.Errorf("resize should keep the star count, got %d", len(s.Stars))
	}
	for _, star := range s.Stars {
		if star.X > 200 || star.Y > 300 {
			t.Fatalf("star outside the resized field: %+v", star)
		}
	}
	t.Logf("✓ starfield stays within bounds")
}

func TestBursts(t *testing.T) {
	var bs Bursts
	bs.Add(utils.NewRect(100, 100, 40, 40))

	b := bs.Items()[0]
	if b.X != 120 || b.Y != 120 {
		t.Errorf("burst should be centered on the rect, got (%v,%v)", b.X, b.Y)
	}
	if b.Alpha() != 1 {
		t.Errorf("fresh burst should be opaque, got %v", b.Alpha())
	}

	bs.Update(0.25)
	if len(bs.Items()) != 1 {
		t.Fatal("burst should still be visible halfway")
	}
	mid := bs.Items()[0]
	if mid.CurrentRadius() <= b.CurrentRadius() || mid.Alpha() >= 1 {
		t.Errorf("burst should grow and fade: r=%v a=%v", mid.CurrentRadius(), mid.Alpha())
	}

	bs.Update(0.25)
	if len(bs.Items()) != 0 {
		t.Errorf("burst should be gone after %.1fs", BurstDuration)
	}

	bs.Add(utils.NewRect(0, 0, 10, 10))
	bs.Clear()
	if len(bs.Items()) != 0 {
		t.Error("Clear should remove every burst")
	}
}
