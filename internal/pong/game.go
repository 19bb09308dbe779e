package pong

import (
	"time"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
	"github.com/pongworks/neonpong/internal/geom"
)

// Side identifies a player side, or none.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other side, or SideNone for SideNone.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Offsets for multi-ball spawning: two extra balls appear mirrored
// left/right of the primary ball.
const (
	multiBallOffset  = 30
	multiBallScatter = 1.5
)

// Game owns the full simulation state and is its sole mutator. Step runs
// to completion once per tick; the renderer and event sink only ever see
// read-only views, so no locking is involved anywhere.
type Game struct {
	cfg       config.Config
	tier      config.AITier
	aiEnabled bool
	events    Events

	runtime core.RuntimeConfig
	rng     core.Rand
	frameMs float64
	tick    int

	ball       Ball
	extraBalls []Ball
	left       Paddle
	right      Paddle

	scoreLeft  int
	scoreRight int
	winner     Side
	rally      int
	totalHits  int
	shake      float64

	spawner *Spawner
	effects EffectSet
	ai      AIState
}

// New creates a game with the given tuning and opponent difficulty.
// Call Reset before the first Step.
func New(cfg config.Config, preset config.DifficultyPreset) *Game {
	return &Game{
		cfg:       cfg,
		tier:      cfg.Tier(preset),
		aiEnabled: true,
		events:    NopEvents(),
	}
}

// SetEvents installs the event sink. A nil sink restores the no-op one.
func (g *Game) SetEvents(ev Events) {
	if ev == nil {
		ev = NopEvents()
	}
	g.events = ev
}

// SetAIEnabled toggles the scripted opponent. When disabled, the right
// paddle follows the right-side input signals instead.
func (g *Game) SetAIEnabled(enabled bool) {
	g.aiEnabled = enabled
}

// Reset initializes or restarts the whole game: paddles centered, scores
// zeroed, effects cleared, a fresh spawner, and a new serve.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.rng = core.NewRand(runtime.Seed)
	g.frameMs = 1000 / float64(runtime.TickRate)
	g.tick = 0

	w := g.cfg.Canvas.Width
	h := g.cfg.Canvas.Height
	pc := g.cfg.Paddles

	g.left = Paddle{
		X:     pc.Offset,
		Y:     h/2 - pc.Height/2,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	}
	g.right = Paddle{
		X:     w - pc.Offset - pc.Width,
		Y:     h/2 - pc.Height/2,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	}

	g.resetMatch()
}

// resetMatch clears scores, effects, and balls while keeping the paddles
// where they are. Used for both Reset and the in-game reset signal.
func (g *Game) resetMatch() {
	g.scoreLeft = 0
	g.scoreRight = 0
	g.winner = SideNone
	g.rally = 0
	g.totalHits = 0
	g.shake = 0
	g.extraBalls = nil
	g.effects.Clear()
	g.spawner = NewSpawner(g.cfg.PowerUps, g.cfg.Canvas.Width, g.cfg.Canvas.Height, g.runtime.TickRate, g.rng)
	g.ai.Reset(g.right.CenterY())
	g.resetBall()
}

// resetBall starts a new point: only the primary ball is replaced; extra
// balls persist until their own effect expires.
func (g *Game) resetBall() {
	phys := g.cfg.Physics
	g.ball = NewBall(g.cfg.Canvas.Width, g.cfg.Canvas.Height, phys.BallSpeedX, phys.BallSpeedY, phys.BallRadius, g.rng)
}

// Step advances the simulation by one fixed tick. The sequence is strict:
// each step reads state the previous step may have mutated.
func (g *Game) Step(in core.InputFrame) {
	g.tick++

	// 1. Reset signal short-circuits the rest of the tick.
	if in.Has(core.ActionReset) {
		g.resetMatch()
		return
	}

	// 2. A set winner freezes all further physics.
	if g.winner != SideNone {
		return
	}

	w := g.cfg.Canvas.Width
	h := g.cfg.Canvas.Height

	// 3. Decay screen shake.
	g.shake *= g.cfg.Gameplay.ShakeDecay
	if g.shake < 0.1 {
		g.shake = 0
	}

	// 4-5. Spawn scheduling, then floating animation.
	g.spawner.TickSpawn(g.tick)
	g.spawner.Animate(g.tick)

	// 6. Effect countdowns; multi-ball expiry clears its extra balls.
	if g.effects.Tick() {
		g.extraBalls = nil
	}

	// 7. Left paddle from input signals and drag delta.
	g.left.BeginTick()
	var leftDelta float64
	if in.Has(core.ActionLeftUp) {
		leftDelta -= g.left.Speed
	}
	if in.Has(core.ActionLeftDown) {
		leftDelta += g.left.Speed
	}
	if in.LeftDrag.Active {
		leftDelta += in.LeftDrag.DeltaY
	}
	g.left.Move(leftDelta, h)
	g.left.SettleVelocity()

	// 8. Right paddle: opponent controller, or input when AI is off.
	g.right.BeginTick()
	if g.aiEnabled {
		nowMs := float64(g.tick) * g.frameMs
		UpdateOpponent(&g.ai, &g.right, g.ball, g.tier, h, nowMs, g.frameMs, g.rng)
	} else {
		var rightDelta float64
		if in.Has(core.ActionRightUp) {
			rightDelta -= g.right.Speed
		}
		if in.Has(core.ActionRightDown) {
			rightDelta += g.right.Speed
		}
		if in.RightDrag.Active {
			rightDelta += in.RightDrag.DeltaY
		}
		g.right.Move(rightDelta, h)
	}
	g.right.SettleVelocity()

	// 9. Advance all balls.
	m := g.effects.SpeedMultiplier(g.cfg.Physics.FastBallMultiplier)
	g.ball.UpdatePosition(m)
	for i := range g.extraBalls {
		g.extraBalls[i].UpdatePosition(m)
	}

	// 10. Trails.
	g.ball.UpdateTrail(g.cfg.Physics.TrailLength)
	for i := range g.extraBalls {
		g.extraBalls[i].UpdateTrail(g.cfg.Physics.TrailLength)
	}

	// 11. Power-up pickup by the primary ball. Only one power-up floats
	// at a time, so a ball collects at most one per tick.
	if p := g.spawner.CheckPickup(g.ball); p != nil {
		g.activatePowerUp(p)
	}

	// 12. Wall bounces, primary then extras.
	g.resolveWall(&g.ball, h)
	for i := range g.extraBalls {
		g.resolveWall(&g.extraBalls[i], h)
	}

	// 13-14. Paddle collisions: primary ball feeds rally tracking, extra
	// balls bounce with the same formula but separate bookkeeping.
	g.resolvePaddle(&g.ball, true)
	for i := range g.extraBalls {
		g.resolvePaddle(&g.extraBalls[i], false)
	}

	// 15. Scoring for the primary ball; extra balls never score and are
	// dropped silently when they leave the field.
	if side := g.ball.OutOfBounds(w); side != SideNone {
		g.resolveOut(side, w)
	}
	g.dropLostExtraBalls(w)

	// 16. Win check freezes the game on subsequent ticks via step 2.
	g.checkWin()
}

// resolveWall reflects a ball off the top or bottom boundary. The position
// is clamped back inside so the bounce cannot re-trigger next tick.
func (g *Game) resolveWall(b *Ball, h float64) {
	if !b.HitsWall(h) {
		return
	}
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
	} else {
		b.Y = h - b.Radius
	}
	b.BounceOffWall()
	g.events.WallBounce()
}

// resolvePaddle tests a ball against the paddle it is moving toward and,
// on contact, applies the bounce formula, clamps speed, and repositions
// the ball flush against the paddle face to prevent tunneling.
func (g *Game) resolvePaddle(b *Ball, primary bool) {
	var p *Paddle
	var side Side
	switch {
	case b.DX < 0:
		p, side = &g.left, SideLeft
	case b.DX > 0:
		p, side = &g.right, SideRight
	default:
		return
	}

	rect := p.Rect(g.effects.BigPaddleFor(side))
	hit := geom.CircleVsRect(geom.Circle{X: b.X, Y: b.Y, R: b.Radius}, rect)
	if !hit.Collided {
		return
	}

	b.PaddleBounce(rect.Y, rect.H, p.VY, g.cfg.Physics, g.rng)
	b.ApplySpeedLimits(g.cfg.Physics.MinSpeed, g.cfg.Physics.MaxSpeed)

	if side == SideLeft {
		b.X = rect.Right() + b.Radius
	} else {
		b.X = rect.X - b.Radius
	}

	if primary {
		g.rally++
		g.totalHits++
	}
	g.events.PaddleHit(b.Speed())
}

// resolveOut handles the primary ball leaving the field: a shield owned by
// the conceding side spends one use to reflect the ball back into play;
// otherwise the opposite side scores and the ball is reset.
func (g *Game) resolveOut(conceding Side, w float64) {
	if g.effects.Shield.consume(conceding) {
		g.ball.DX = -g.ball.DX
		if conceding == SideLeft {
			g.ball.X = g.ball.Radius
		} else {
			g.ball.X = w - g.ball.Radius
		}
		g.events.WallBounce()
		return
	}

	scorer := conceding.Opposite()
	if scorer == SideLeft {
		g.scoreLeft++
	} else {
		g.scoreRight++
	}
	g.rally = 0
	g.shake = g.cfg.Gameplay.ShakeOnScore
	g.events.Score(scorer)
	g.resetBall()
}

// dropLostExtraBalls removes extra balls that left the field. They never
// score; multi-ball expiry clears any that remain.
func (g *Game) dropLostExtraBalls(w float64) {
	alive := g.extraBalls[:0]
	for _, b := range g.extraBalls {
		if b.OutOfBounds(w) == SideNone {
			alive = append(alive, b)
		}
	}
	g.extraBalls = alive
}

// checkWin sets the terminal winner once a score reaches the threshold.
func (g *Game) checkWin() {
	win := g.cfg.Gameplay.WinScore
	switch {
	case g.scoreLeft >= win:
		g.winner = SideLeft
	case g.scoreRight >= win:
		g.winner = SideRight
	default:
		return
	}
	g.events.Victory(g.winner)
}

// activatePowerUp applies a collected power-up to its owning side.
func (g *Game) activatePowerUp(p *PowerUp) {
	side := OwnerSide(g.ball)
	pu := g.cfg.PowerUps
	rate := float64(g.runtime.TickRate)

	switch p.Type {
	case PowerBigPaddle:
		g.effects.BigPaddle = ActiveEffect{
			Active:     true,
			FramesLeft: int(pu.BigPaddleSeconds * rate),
			Side:       side,
		}
	case PowerFastBall:
		g.effects.FastBall = ActiveEffect{
			Active:     true,
			FramesLeft: int(pu.FastBallSeconds * rate),
			Side:       side,
		}
	case PowerMultiBall:
		// Re-activation while active is a no-op: extra balls must not
		// stack or duplicate.
		if !g.effects.MultiBall.Active {
			g.effects.MultiBall = ActiveEffect{
				Active:     true,
				FramesLeft: int(pu.MultiBallSeconds * rate),
				Side:       side,
			}
			g.spawnExtraBalls()
		}
	case PowerShield:
		g.effects.Shield = ShieldEffect{
			Active:   true,
			UsesLeft: pu.ShieldUses,
			Side:     side,
		}
	}

	g.events.PowerUp(p.Type)
}

// spawnExtraBalls creates exactly two extra balls mirrored left and right
// of the primary ball, with the primary velocity plus an independent small
// random perturbation each.
func (g *Game) spawnExtraBalls() {
	for _, off := range [2]float64{-multiBallOffset, multiBallOffset} {
		g.extraBalls = append(g.extraBalls, Ball{
			X:      g.ball.X + off,
			Y:      g.ball.Y,
			DX:     g.ball.DX + (g.rng.Float64()*2-1)*multiBallScatter,
			DY:     g.ball.DY + (g.rng.Float64()*2-1)*multiBallScatter,
			Radius: g.ball.Radius,
		})
	}
}

// Winner returns the terminal winner, or SideNone while play continues.
func (g *Game) Winner() Side {
	return g.winner
}

// Scores returns the left and right score counters.
func (g *Game) Scores() (left, right int) {
	return g.scoreLeft, g.scoreRight
}

// Rally returns the current consecutive-hit counter.
func (g *Game) Rally() int {
	return g.rally
}
