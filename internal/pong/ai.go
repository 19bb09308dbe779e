package pong

import (
	"math"

	"github.com/pongworks/neonpong/internal/config"
	"github.com/pongworks/neonpong/internal/core"
)

// AIState is the opponent controller's memory across ticks: the target it
// is currently steering toward and when it last recomputed that target.
// The orchestrator owns the value; the controller mutates it.
type AIState struct {
	TargetY        float64
	LastReactionMs float64
}

// Reset prepares the state for a fresh match. LastReactionMs is pushed to
// negative infinity so the first approaching ball triggers an immediate
// reaction.
func (s *AIState) Reset(paddleCenterY float64) {
	s.TargetY = paddleCenterY
	s.LastReactionMs = math.Inf(-1)
}

// shouldReact reports whether enough wall-clock time (in simulated
// milliseconds) has elapsed since the last target recomputation.
func shouldReact(nowMs, lastMs float64, tier config.AITier, frameMs float64) bool {
	return nowMs-lastMs > tier.ReactionFrames*frameMs
}

// deadZone is the minimum center-to-target difference that makes the
// paddle move. It scales with paddle speed so the fastest tier cannot
// overshoot and oscillate around its target.
func deadZone(speed float64) float64 {
	return math.Max(10, speed*1.5)
}

// UpdateOpponent advances the right-side paddle one tick.
//
// If the ball is not approaching, the paddle holds position. Otherwise the
// target is recomputed once per reaction window: the predicted intercept y
// when the tier enables prediction, the ball's current y for naive
// tracking, plus an inaccuracy error scaled by (1-accuracy). Between
// reactions the paddle keeps moving toward the previous target, stepping
// by at most tier.Speed per tick and never inside the dead zone.
func UpdateOpponent(st *AIState, p *Paddle, ball Ball, tier config.AITier, canvasH float64, nowMs, frameMs float64, rng core.Rand) {
	if ball.DX <= 0 {
		return
	}

	if shouldReact(nowMs, st.LastReactionMs, tier, frameMs) {
		var target float64
		if tier.Prediction {
			target = PredictY(ball, p.X, canvasH)
		} else {
			target = ball.Y
		}
		target += (1 - tier.Accuracy) * 50 * (rng.Float64() - 0.5)
		if target < 0 {
			target = 0
		}
		if target > canvasH {
			target = canvasH
		}
		st.TargetY = target
		st.LastReactionMs = nowMs
	}

	diff := st.TargetY - p.CenterY()
	if math.Abs(diff) <= deadZone(tier.Speed) {
		return
	}

	step := tier.Speed
	if diff < 0 {
		step = -step
	}
	p.Move(step, canvasH)
}
