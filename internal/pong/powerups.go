package pong

import (
	"math"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/geom"
)

// PowerUpType is one of the four fixed pickup kinds.
type PowerUpType int

const (
	PowerBigPaddle PowerUpType = iota
	PowerFastBall
	PowerMultiBall
	PowerShield
	powerUpTypeCount
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerBigPaddle:
		return "BigPaddle"
	case PowerFastBall:
		return "FastBall"
	case PowerMultiBall:
		return "MultiBall"
	case PowerShield:
		return "Shield"
	default:
		return "?"
	}
}

// Symbol returns the display glyph for the power-up type.
func (t PowerUpType) Symbol() rune {
	switch t {
	case PowerBigPaddle:
		return '▲'
	case PowerFastBall:
		return '»'
	case PowerMultiBall:
		return '◆'
	case PowerShield:
		return '◈'
	default:
		return '?'
	}
}

// Color returns the screen color for the power-up type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerBigPaddle:
		return core.ColorGreen
	case PowerFastBall:
		return core.ColorYellow
	case PowerMultiBall:
		return core.ColorMagenta
	case PowerShield:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

// Floating animation constants.
const (
	rotationStep     = 0.05
	floatSpeedMin    = 0.04
	floatSpeedRange  = 0.04
	clampMarginBase  = 20
	clampMarginScale = 0.5
)

// PowerUp is a floating pickup on the field. Its visible position orbits
// BaseX/BaseY; the orbit radius grows the longer the pickup waits, which
// makes it progressively harder to catch.
type PowerUp struct {
	ID           int
	Type         PowerUpType
	X, Y         float64
	BaseX, BaseY float64
	Rotation     float64
	FloatPhase   float64
	FloatSpeed   float64
	FloatRadius  float64
	SpawnTick    int
}

// Spawner owns the spawn countdown and the single floating power-up slot.
// At most one power-up occupies the field at a time.
type Spawner struct {
	cfg      config.PowerUpConfig
	canvasW  float64
	canvasH  float64
	tickRate int
	rng      core.Rand

	timer   int // frames until next spawn attempt
	nextID  int
	Current *PowerUp
}

// NewSpawner creates a spawner with a freshly rolled countdown.
func NewSpawner(cfg config.PowerUpConfig, canvasW, canvasH float64, tickRate int, rng core.Rand) *Spawner {
	s := &Spawner{
		cfg:      cfg,
		canvasW:  canvasW,
		canvasH:  canvasH,
		tickRate: tickRate,
		rng:      rng,
	}
	s.timer = s.rollTimer()
	return s
}

// rollTimer draws the next spawn delay uniformly from the configured
// [min, max] second range, converted to frames.
func (s *Spawner) rollTimer() int {
	span := s.cfg.SpawnMaxSeconds - s.cfg.SpawnMinSeconds
	seconds := s.cfg.SpawnMinSeconds + s.rng.Float64()*span
	return int(seconds * float64(s.tickRate))
}

// TickSpawn decrements the countdown and spawns a power-up when it expires
// and the field is empty. The countdown holds at zero while a power-up is
// still floating.
func (s *Spawner) TickSpawn(tick int) {
	if s.timer > 0 {
		s.timer--
	}
	if s.timer > 0 || s.Current != nil {
		return
	}

	margin := s.cfg.EdgeMargin
	x := margin + s.rng.Float64()*(s.canvasW-2*margin)
	y := margin + s.rng.Float64()*(s.canvasH-2*margin)

	s.nextID++
	s.Current = &PowerUp{
		ID:         s.nextID,
		Type:       PowerUpType(s.rng.Intn(int(powerUpTypeCount))),
		X:          x,
		Y:          y,
		BaseX:      x,
		BaseY:      y,
		FloatPhase: s.rng.Float64() * 2 * math.Pi,
		FloatSpeed: floatSpeedMin + s.rng.Float64()*floatSpeedRange,
		SpawnTick:  tick,
	}
	s.timer = s.rollTimer()
}

// floatRadius returns the orbit radius after the power-up has waited the
// given number of seconds: the base radius grows by GrowthPer10s for every
// ten seconds elapsed, capped at MaxFloatRadius.
func floatRadius(cfg config.PowerUpConfig, elapsedSeconds float64) float64 {
	r := cfg.BaseFloatRadius * math.Pow(cfg.GrowthPer10s, elapsedSeconds/10)
	if r > cfg.MaxFloatRadius {
		r = cfg.MaxFloatRadius
	}
	return r
}

// Animate advances the floating power-up by one tick: rotation and phase
// accumulate, the orbit radius grows with elapsed time, and the displaced
// position is clamped to the canvas minus a margin that grows with the
// radius. When clamping engages on an axis, the base point snaps to the
// clamped value so the power-up cannot oscillate against a wall.
func (s *Spawner) Animate(tick int) {
	p := s.Current
	if p == nil {
		return
	}

	p.Rotation += rotationStep
	p.FloatPhase += p.FloatSpeed

	elapsed := float64(tick-p.SpawnTick) / float64(s.tickRate)
	r := floatRadius(s.cfg, elapsed)
	p.FloatRadius = r

	x := p.BaseX + math.Cos(p.FloatPhase)*r
	y := p.BaseY + math.Sin(0.7*p.FloatPhase)*0.6*r

	margin := clampMarginBase + clampMarginScale*r
	if clamped := clampAxis(x, margin, s.canvasW-margin); clamped != x {
		x = clamped
		p.BaseX = clamped
	}
	if clamped := clampAxis(y, margin, s.canvasH-margin); clamped != y {
		y = clamped
		p.BaseY = clamped
	}

	p.X = x
	p.Y = y
}

func clampAxis(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CheckPickup tests the ball against the floating power-up with a fixed
// pickup radius. On a hit the power-up leaves the field and is returned;
// otherwise nil.
func (s *Spawner) CheckPickup(b Ball) *PowerUp {
	p := s.Current
	if p == nil {
		return nil
	}
	hit := geom.CircleVsCircle(
		geom.Circle{X: b.X, Y: b.Y, R: b.Radius},
		geom.Circle{X: p.X, Y: p.Y, R: s.cfg.PickupRadius},
	)
	if !hit.Collided {
		return nil
	}
	s.Current = nil
	return p
}

// OwnerSide assigns a picked-up power-up by ball direction: a ball moving
// right belongs to the right side, otherwise the left. A ball with dx
// exactly zero defaults to the left side; this tie-break is observable
// gameplay behavior and deliberately kept.
func OwnerSide(b Ball) Side {
	if b.DX > 0 {
		return SideRight
	}
	return SideLeft
}
