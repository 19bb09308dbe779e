package pong

import (
	"math"
	"testing"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
)

func testSpawner(rng core.Rand) *Spawner {
	return NewSpawner(config.Default().PowerUps, 800, 450, 60, rng)
}

func TestSpawnerCountdownAndSpawn(t *testing.T) {
	// All draws at zero: the countdown rolls to the minimum delay.
	rng := &fixedRand{floats: []float64{0}}
	s := testSpawner(rng)

	minFrames := int(config.Default().PowerUps.SpawnMinSeconds * 60)
	for i := 0; i < minFrames-1; i++ {
		s.TickSpawn(i)
		if s.Current != nil {
			t.Fatalf("power-up spawned at tick %d, before the countdown expired", i)
		}
	}

	s.TickSpawn(minFrames)
	if s.Current == nil {
		t.Fatal("no power-up after countdown expired")
	}
}

func TestSpawnerSingleSlot(t *testing.T) {
	rng := &fixedRand{floats: []float64{0}}
	s := testSpawner(rng)

	// Drain the countdown and let one spawn.
	for i := 0; s.Current == nil; i++ {
		s.TickSpawn(i)
	}
	first := s.Current

	// The countdown holds at zero while the slot is occupied: many more
	// ticks must not replace or duplicate the power-up.
	for i := 0; i < 10000; i++ {
		s.TickSpawn(i)
	}
	if s.Current != first {
		t.Error("occupied slot was replaced while still floating")
	}
}

func TestSpawnerRespawnsAfterPickup(t *testing.T) {
	rng := &fixedRand{floats: []float64{0}}
	s := testSpawner(rng)

	for i := 0; s.Current == nil; i++ {
		s.TickSpawn(i)
	}
	p := s.Current

	// A ball exactly on the power-up always collects it.
	got := s.CheckPickup(Ball{X: p.X, Y: p.Y, Radius: 8})
	if got != p {
		t.Fatal("pickup did not return the floating power-up")
	}
	if s.Current != nil {
		t.Fatal("slot not cleared after pickup")
	}

	// The already-rolled countdown eventually fills the slot again.
	for i := 0; i < 20*60 && s.Current == nil; i++ {
		s.TickSpawn(i)
	}
	if s.Current == nil {
		t.Error("no respawn after the slot emptied")
	}
}

func TestSpawnPositionRespectsMargin(t *testing.T) {
	cfg := config.Default().PowerUps

	// Extreme draws in both directions stay inside the margin band.
	for _, f := range []float64{0, 0.999} {
		rng := &fixedRand{floats: []float64{f}}
		s := testSpawner(rng)
		for i := 0; s.Current == nil; i++ {
			s.TickSpawn(i)
		}
		p := s.Current
		if p.BaseX < cfg.EdgeMargin || p.BaseX > 800-cfg.EdgeMargin {
			t.Errorf("draw %v: BaseX = %v outside margin band", f, p.BaseX)
		}
		if p.BaseY < cfg.EdgeMargin || p.BaseY > 450-cfg.EdgeMargin {
			t.Errorf("draw %v: BaseY = %v outside margin band", f, p.BaseY)
		}
	}
}

func TestCheckPickupMiss(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.5}}
	s := testSpawner(rng)
	for i := 0; s.Current == nil; i++ {
		s.TickSpawn(i)
	}
	p := s.Current

	// Well outside the pickup radius: no collection, slot intact.
	far := Ball{X: p.X + 200, Y: p.Y, Radius: 8}
	if got := s.CheckPickup(far); got != nil {
		t.Error("pickup triggered outside the radius")
	}
	if s.Current == nil {
		t.Error("slot cleared on a miss")
	}
}

func TestFloatRadiusGrowth(t *testing.T) {
	cfg := config.Default().PowerUps

	// Starts at the base radius.
	if r := floatRadius(cfg, 0); r != cfg.BaseFloatRadius {
		t.Errorf("radius at t=0 = %v, want %v", r, cfg.BaseFloatRadius)
	}

	// Strictly monotonic until the cap.
	prev := 0.0
	for s := 0.0; s <= 30; s += 5 {
		r := floatRadius(cfg, s)
		if r < prev {
			t.Errorf("radius shrank: %v at %vs after %v", r, s, prev)
		}
		prev = r
	}

	// Exactly one growth factor per ten seconds.
	want := cfg.BaseFloatRadius * cfg.GrowthPer10s
	if r := floatRadius(cfg, 10); math.Abs(r-want) > 1e-9 {
		t.Errorf("radius at 10s = %v, want %v", r, want)
	}

	// Long waits cap out.
	if r := floatRadius(cfg, 100); r != cfg.MaxFloatRadius {
		t.Errorf("radius at 100s = %v, want cap %v", r, cfg.MaxFloatRadius)
	}
}

func TestAnimateStaysInsideCanvas(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.9}}
	s := testSpawner(rng)
	for i := 0; s.Current == nil; i++ {
		s.TickSpawn(i)
	}

	// Run the float animation long enough for the orbit to reach its
	// maximum radius; the displaced position must never leave the field.
	for i := 0; i < 120*60; i++ {
		s.Animate(s.Current.SpawnTick + i)
		p := s.Current
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 450 {
			t.Fatalf("power-up escaped at tick %d: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestAnimateClampSnapsBase(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.5}}
	s := testSpawner(rng)
	for i := 0; s.Current == nil; i++ {
		s.TickSpawn(i)
	}
	p := s.Current

	// Force the base next to the left edge so the orbit must clamp.
	p.BaseX = 1
	p.FloatPhase = math.Pi // cos = -1, maximum leftward displacement
	p.FloatSpeed = 0

	s.Animate(p.SpawnTick + 1)

	margin := clampMarginBase + clampMarginScale*p.FloatRadius
	if p.X < margin-1e-9 {
		t.Errorf("X = %v, want clamped to margin %v", p.X, margin)
	}
	// The base point snaps to the clamped value so the orbit re-centers
	// instead of grinding against the wall.
	if p.BaseX != p.X {
		t.Errorf("BaseX = %v, want snapped to clamped X %v", p.BaseX, p.X)
	}
}

func TestOwnerSide(t *testing.T) {
	tests := []struct {
		dx   float64
		want Side
	}{
		{5, SideRight},
		{-5, SideLeft},
		{0, SideLeft}, // stationary tie-break
	}

	for _, tt := range tests {
		if got := OwnerSide(Ball{DX: tt.dx}); got != tt.want {
			t.Errorf("OwnerSide(dx=%v) = %v, want %v", tt.dx, got, tt.want)
		}
	}
}

func TestPowerUpTypeMetadata(t *testing.T) {
	types := []PowerUpType{PowerBigPaddle, PowerFastBall, PowerMultiBall, PowerShield}

	seen := make(map[rune]bool)
	for _, typ := range types {
		if typ.String() == "?" {
			t.Errorf("type %d has no name", typ)
		}
		sym := typ.Symbol()
		if seen[sym] {
			t.Errorf("duplicate symbol %q", sym)
		}
		seen[sym] = true
		if typ.Color() == core.ColorWhite {
			t.Errorf("type %v fell through to the fallback color", typ)
		}
	}
}
