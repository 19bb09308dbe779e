package pong

import "github.com/pongworks/neonpong/internal/geom"

// Paddle is one side's paddle. Y is the top edge in canvas units. PrevY is
// captured at the start of each tick so the tick can derive the paddle's
// own velocity for momentum transfer.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64
	PrevY float64
	VY    float64
}

// Move shifts the paddle by delta, clamped to [0, boundsHeight-H].
func (p *Paddle) Move(delta, boundsHeight float64) {
	p.Y += delta
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := boundsHeight - p.H; p.Y > maxY {
		p.Y = maxY
	}
}

// BeginTick captures the previous-tick position.
func (p *Paddle) BeginTick() {
	p.PrevY = p.Y
}

// SettleVelocity derives the paddle velocity from this tick's movement.
func (p *Paddle) SettleVelocity() {
	p.VY = p.Y - p.PrevY
}

// Rect returns the paddle's collision rectangle. While the big-paddle
// effect is active the height doubles, recentered so growth is symmetric
// around the paddle's original center.
func (p Paddle) Rect(big bool) geom.Rect {
	if !big {
		return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}
	return geom.Rect{X: p.X, Y: p.Y - p.H/2, W: p.W, H: p.H * 2}
}

// CenterY returns the vertical center of the paddle's base rectangle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.H/2
}
