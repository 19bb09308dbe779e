package pong

import (
	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/geom"
)

// BallView is a read-only view of one ball.
type BallView struct {
	X, Y   float64
	Radius float64
	Trail  []TrailParticle
}

// PowerUpView is a read-only view of a floating power-up.
type PowerUpView struct {
	Type        PowerUpType
	X, Y        float64
	Rotation    float64
	FloatRadius float64
	Symbol      rune
	Color       core.Color
}

// Snapshot is the per-tick read-only state handed to the renderer. It
// contains everything needed to draw a frame and nothing that can reach
// back into the simulation.
type Snapshot struct {
	CanvasW, CanvasH float64

	Ball       BallView
	ExtraBalls []BallView

	LeftPaddle  geom.Rect
	RightPaddle geom.Rect

	ScoreLeft  int
	ScoreRight int
	Winner     Side
	Rally      int
	Shake      float64
	Tick       int

	PowerUps []PowerUpView // zero or one floating power-up

	BigPaddleSide Side // SideNone when inactive
	FastBall      bool
	MultiBall     bool
	ShieldSide    Side
	ShieldUses    int
}

func ballView(b Ball) BallView {
	trail := make([]TrailParticle, len(b.Trail))
	copy(trail, b.Trail)
	return BallView{X: b.X, Y: b.Y, Radius: b.Radius, Trail: trail}
}

// Snapshot captures the current state. The result shares nothing mutable
// with the game; the renderer and any observer may keep it across ticks.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		CanvasW:     g.cfg.Canvas.Width,
		CanvasH:     g.cfg.Canvas.Height,
		Ball:        ballView(g.ball),
		LeftPaddle:  g.left.Rect(g.effects.BigPaddleFor(SideLeft)),
		RightPaddle: g.right.Rect(g.effects.BigPaddleFor(SideRight)),
		ScoreLeft:   g.scoreLeft,
		ScoreRight:  g.scoreRight,
		Winner:      g.winner,
		Rally:       g.rally,
		Shake:       g.shake,
		Tick:        g.tick,
		FastBall:    g.effects.FastBall.Active,
		MultiBall:   g.effects.MultiBall.Active,
	}

	if len(g.extraBalls) > 0 {
		snap.ExtraBalls = make([]BallView, 0, len(g.extraBalls))
		for _, b := range g.extraBalls {
			snap.ExtraBalls = append(snap.ExtraBalls, ballView(b))
		}
	}

	if g.effects.BigPaddle.Active {
		snap.BigPaddleSide = g.effects.BigPaddle.Side
	}
	if g.effects.Shield.Active {
		snap.ShieldSide = g.effects.Shield.Side
		snap.ShieldUses = g.effects.Shield.UsesLeft
	}

	if p := g.spawner.Current; p != nil {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{
			Type:        p.Type,
			X:           p.X,
			Y:           p.Y,
			Rotation:    p.Rotation,
			FloatRadius: p.FloatRadius,
			Symbol:      p.Type.Symbol(),
			Color:       p.Type.Color(),
		})
	}

	return snap
}
