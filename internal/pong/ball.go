// Package pong implements the deterministic simulation core of a
// two-paddle ball game: kinematics, a scripted opponent, a timed power-up
// lifecycle, and the per-tick orchestrator that sequences them. The
// simulation runs in float64 canvas units; rendering, sound, and input
// hardware live behind the interfaces in events.go and core.InputFrame.
package pong

import (
	"math"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
)

// TrailParticle is one segment of a ball's fading trail.
type TrailParticle struct {
	X, Y float64
	Size float64
	Life float64 // 1 at spawn, 0 when fully faded
}

// Per-tick trail decay constants.
const (
	trailLifeDecay = 0.08
	trailSizeDecay = 0.9
)

// Ball is a moving circle with a bounded fading trail.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Trail  []TrailParticle
}

// NewBall places a ball at the canvas center with a random serve direction:
// dx is ±speedX chosen uniformly, dy is drawn uniformly from
// [-speedY, speedY] scaled by 0.8.
func NewBall(width, height, speedX, speedY, radius float64, rng core.Rand) Ball {
	dx := speedX
	if rng.Float64() < 0.5 {
		dx = -speedX
	}
	return Ball{
		X:      width / 2,
		Y:      height / 2,
		DX:     dx,
		DY:     (rng.Float64()*2 - 1) * speedY * 0.8,
		Radius: radius,
	}
}

// UpdatePosition advances the ball by its velocity scaled by m.
func (b *Ball) UpdatePosition(m float64) {
	b.X += b.DX * m
	b.Y += b.DY * m
}

// HitsWall reports whether the ball's leading edge touches or crosses the
// top or bottom boundary.
func (b Ball) HitsWall(height float64) bool {
	return b.Y-b.Radius <= 0 || b.Y+b.Radius >= height
}

// BounceOffWall reflects the ball off a horizontal wall: dy is negated,
// no energy is lost. Applying it twice restores the original velocity.
func (b *Ball) BounceOffWall() {
	b.DY = -b.DY
}

// OutOfBounds returns the side whose edge the ball has crossed, or
// SideNone. The result is the scoring signal: a ball out on the left means
// the right side scores.
func (b Ball) OutOfBounds(width float64) Side {
	if b.X < 0 {
		return SideLeft
	}
	if b.X > width {
		return SideRight
	}
	return SideNone
}

// Speed returns the Euclidean norm of the velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// ApplySpeedLimits rescales the velocity so its magnitude lies exactly on
// the nearest bound when outside [minSpeed, maxSpeed]. This guarantees
// gameplay never stalls or becomes unreturnable however much momentum
// transfer accumulated.
func (b *Ball) ApplySpeedLimits(minSpeed, maxSpeed float64) {
	speed := b.Speed()
	if speed == 0 {
		// Degenerate: a stationary ball cannot be rescaled. Restart it
		// horizontally at the floor speed.
		b.DX = minSpeed
		return
	}
	if speed < minSpeed {
		scale := minSpeed / speed
		b.DX *= scale
		b.DY *= scale
	} else if speed > maxSpeed {
		scale := maxSpeed / speed
		b.DX *= scale
		b.DY *= scale
	}
}

// PaddleBounce applies the full paddle-bounce response:
//
//  1. dx is negated (the ball reverses horizontally);
//  2. both components scale by the acceleration factor (rally speed-up);
//  3. the paddle's own velocity transfers into dy (momentum transfer);
//  4. the normalized hit position adds a deflection to dy, so edge hits
//     leave at sharp angles while center hits go straight;
//  5. with probability ChaosChance, dy gets a uniform random nudge;
//  6. dy is clamped to ±MaxSpeed.
//
// Steps 1-4 are deterministic given the inputs; step 5 is the only
// stochastic one and draws exclusively from rng.
func (b *Ball) PaddleBounce(paddleY, paddleHeight, paddleVelocity float64, phys config.PhysicsConfig, rng core.Rand) {
	b.DX = -b.DX

	b.DX *= phys.Acceleration
	b.DY *= phys.Acceleration

	b.DY += paddleVelocity * phys.PaddleInfluence

	paddleCenter := paddleY + paddleHeight/2
	hitPosition := (b.Y - paddleCenter) / (paddleHeight / 2)
	b.DY += hitPosition * phys.BounceAngleFactor

	if rng.Float64() < phys.ChaosChance {
		b.DY += (rng.Float64()*2 - 1) * phys.ChaosIntensity
	}

	if b.DY > phys.MaxSpeed {
		b.DY = phys.MaxSpeed
	} else if b.DY < -phys.MaxSpeed {
		b.DY = -phys.MaxSpeed
	}
}

// PredictY returns the y coordinate at which the ball will reach targetX,
// folding wall reflections into [0, height] with closed-form triangle-wave
// arithmetic rather than iterative bounce simulation.
//
// A ball with zero (or receding) horizontal velocity is not approaching;
// the current y is returned instead of propagating NaN or Infinity.
func PredictY(b Ball, targetX, height float64) float64 {
	if b.DX == 0 {
		return b.Y
	}
	t := (targetX - b.X) / b.DX
	if t < 0 {
		return b.Y
	}

	raw := b.Y + b.DY*t
	period := 2 * height
	folded := math.Mod(raw, period)
	if folded < 0 {
		folded += period
	}
	if folded > height {
		folded = period - folded
	}
	return folded
}

// UpdateTrail ages every trail particle by the constant per-tick decay,
// drops dead ones, and appends a fresh particle at the ball's position.
// The trail never exceeds maxLen particles.
func (b *Ball) UpdateTrail(maxLen int) {
	alive := b.Trail[:0]
	for _, p := range b.Trail {
		p.Life -= trailLifeDecay
		p.Size *= trailSizeDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	b.Trail = alive

	b.Trail = append(b.Trail, TrailParticle{X: b.X, Y: b.Y, Size: b.Radius, Life: 1})
	if len(b.Trail) > maxLen {
		b.Trail = b.Trail[len(b.Trail)-maxLen:]
	}
}
