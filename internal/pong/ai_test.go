package pong

import (
	"math"
	"testing"

	"github.com/pongworks/neonpong/internal/config"
)

const (
	testCanvasH = 450.0
	testFrameMs = 1000.0 / 60.0
)

func testTier() config.AITier {
	return config.AITier{Speed: 5.5, ReactionFrames: 16, Accuracy: 1.0, Prediction: false}
}

func newAIFixture() (AIState, Paddle) {
	p := Paddle{X: 768, Y: 185, W: 12, H: 80, Speed: 7}
	var st AIState
	st.Reset(p.CenterY())
	return st, p
}

func TestOpponentHoldsWhenBallReceding(t *testing.T) {
	st, p := newAIFixture()
	before := p.Y

	ball := Ball{X: 400, Y: 50, DX: -5, DY: 3}
	for i := 0; i < 60; i++ {
		nowMs := float64(i) * testFrameMs
		UpdateOpponent(&st, &p, ball, testTier(), testCanvasH, nowMs, testFrameMs, &fixedRand{})
	}

	if p.Y != before {
		t.Errorf("paddle moved from %v to %v while ball receding", before, p.Y)
	}
}

func TestOpponentReactsImmediatelyAfterReset(t *testing.T) {
	st, p := newAIFixture()

	// Reset pushes the reaction clock to -Inf, so tick 0 must already
	// recompute the target rather than waiting a full reaction window.
	ball := Ball{X: 400, Y: 50, DX: 5, DY: 0}
	UpdateOpponent(&st, &p, ball, testTier(), testCanvasH, 0, testFrameMs, &fixedRand{floats: []float64{0.5}})

	if st.TargetY != 50 {
		t.Errorf("TargetY = %v, want 50 (ball y, naive tracking, full accuracy)", st.TargetY)
	}
	if math.IsInf(st.LastReactionMs, -1) {
		t.Error("LastReactionMs not updated after reaction")
	}
}

func TestOpponentReactionWindow(t *testing.T) {
	st, p := newAIFixture()
	tier := testTier() // 16 frames of delay

	ball := Ball{X: 400, Y: 50, DX: 5, DY: 0}
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, 0, testFrameMs, &fixedRand{floats: []float64{0.5}})
	firstTarget := st.TargetY

	// The ball teleports; within the reaction window the target is stale.
	ball.Y = 400
	nowMs := 10 * testFrameMs
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, nowMs, testFrameMs, &fixedRand{floats: []float64{0.5}})
	if st.TargetY != firstTarget {
		t.Errorf("target recomputed inside reaction window: %v -> %v", firstTarget, st.TargetY)
	}

	// Past the window it must pick up the new position.
	nowMs = 17 * testFrameMs
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, nowMs, testFrameMs, &fixedRand{floats: []float64{0.5}})
	if st.TargetY != 400 {
		t.Errorf("TargetY = %v, want 400 after reaction window elapsed", st.TargetY)
	}
}

func TestOpponentDeadZone(t *testing.T) {
	st, p := newAIFixture()
	p.Y = 300 // center 340
	st.TargetY = 340
	st.LastReactionMs = 0 // suppress recomputation this tick

	ball := Ball{X: 400, Y: 340, DX: 5, DY: 0}
	UpdateOpponent(&st, &p, ball, testTier(), testCanvasH, 1, testFrameMs, &fixedRand{})

	if p.Y != 300 {
		t.Errorf("paddle moved to %v inside dead zone, want 300", p.Y)
	}

	// Just beyond the dead zone it steps by exactly tier speed.
	tier := testTier()
	st.TargetY = 340 + deadZone(tier.Speed) + 1
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, 2, testFrameMs, &fixedRand{})
	if p.Y != 300+tier.Speed {
		t.Errorf("paddle Y = %v, want %v (one speed step down)", p.Y, 300+tier.Speed)
	}
}

func TestOpponentMovesTowardTarget(t *testing.T) {
	st, p := newAIFixture()
	tier := testTier()

	ball := Ball{X: 400, Y: 100, DX: 5, DY: 0}
	for i := 0; i < 120; i++ {
		nowMs := float64(i) * testFrameMs
		UpdateOpponent(&st, &p, ball, tier, testCanvasH, nowMs, testFrameMs, &fixedRand{floats: []float64{0.5}})
	}

	// After two seconds the paddle center should sit within the dead
	// zone of the target.
	if diff := math.Abs(p.CenterY() - 100); diff > deadZone(tier.Speed) {
		t.Errorf("paddle center %v, want within %v of target 100", p.CenterY(), deadZone(tier.Speed))
	}
}

func TestOpponentNoOscillationAtHighSpeed(t *testing.T) {
	st, p := newAIFixture()
	tier := config.AITier{Speed: 7.0, ReactionFrames: 6, Accuracy: 0.95, Prediction: true}

	ball := Ball{X: 100, Y: 225, DX: 7, DY: 0}
	var lastDir float64
	flips := 0
	for i := 0; i < 180; i++ {
		prevY := p.Y
		nowMs := float64(i) * testFrameMs
		UpdateOpponent(&st, &p, ball, tier, testCanvasH, nowMs, testFrameMs, &fixedRand{floats: []float64{0.5}})
		dir := p.Y - prevY
		if dir != 0 && lastDir != 0 && math.Signbit(dir) != math.Signbit(lastDir) {
			flips++
		}
		if dir != 0 {
			lastDir = dir
		}
	}

	// The dead zone scales with speed precisely to stop jitter around
	// the target. One direction change is legitimate retargeting; a
	// flip per window is oscillation.
	if flips > 2 {
		t.Errorf("paddle flipped direction %d times, dead zone not damping", flips)
	}
}

func TestOpponentPredictionUsesIntercept(t *testing.T) {
	st, p := newAIFixture()
	tier := config.AITier{Speed: 7.0, ReactionFrames: 6, Accuracy: 1.0, Prediction: true}

	// Ball heading up and to the right; the intercept at the paddle
	// plane differs from the current y.
	ball := Ball{X: 400, Y: 300, DX: 5, DY: -3}
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, 0, testFrameMs, &fixedRand{floats: []float64{0.5}})

	want := PredictY(ball, p.X, testCanvasH)
	if st.TargetY != want {
		t.Errorf("TargetY = %v, want predicted intercept %v", st.TargetY, want)
	}
	if st.TargetY == ball.Y {
		t.Error("prediction tier tracked current y instead of intercept")
	}
}

func TestOpponentInaccuracyBounded(t *testing.T) {
	st, p := newAIFixture()
	tier := config.AITier{Speed: 4.5, ReactionFrames: 28, Accuracy: 0.6, Prediction: false}

	// Worst-case draws push the error to ±(1-accuracy)*25.
	ball := Ball{X: 400, Y: 225, DX: 5, DY: 0}
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, 0, testFrameMs, &fixedRand{floats: []float64{1.0}})
	maxErr := (1 - tier.Accuracy) * 25
	if diff := math.Abs(st.TargetY - 225); diff > maxErr+1e-9 {
		t.Errorf("target error = %v, want <= %v", diff, maxErr)
	}
}

func TestOpponentTargetClampedToCanvas(t *testing.T) {
	st, p := newAIFixture()
	tier := config.AITier{Speed: 5.5, ReactionFrames: 16, Accuracy: 0.0, Prediction: false}

	// Ball near the top plus maximal negative error must not produce a
	// target above the field.
	ball := Ball{X: 400, Y: 2, DX: 5, DY: 0}
	UpdateOpponent(&st, &p, ball, tier, testCanvasH, 0, testFrameMs, &fixedRand{floats: []float64{0.0}})
	if st.TargetY < 0 || st.TargetY > testCanvasH {
		t.Errorf("TargetY = %v, want within [0, %v]", st.TargetY, testCanvasH)
	}
}

func TestTierMonotonicity(t *testing.T) {
	cfg := config.Default()
	easy := cfg.Tier(config.DifficultyEasy)
	medium := cfg.Tier(config.DifficultyMedium)
	hard := cfg.Tier(config.DifficultyHard)

	if !(easy.Speed < medium.Speed && medium.Speed < hard.Speed) {
		t.Errorf("speed not increasing: %v, %v, %v", easy.Speed, medium.Speed, hard.Speed)
	}
	if !(easy.ReactionFrames > medium.ReactionFrames && medium.ReactionFrames > hard.ReactionFrames) {
		t.Errorf("reaction delay not decreasing: %v, %v, %v",
			easy.ReactionFrames, medium.ReactionFrames, hard.ReactionFrames)
	}
	if !(easy.Accuracy < medium.Accuracy && medium.Accuracy < hard.Accuracy) {
		t.Errorf("accuracy not increasing: %v, %v, %v", easy.Accuracy, medium.Accuracy, hard.Accuracy)
	}
	if easy.Prediction {
		t.Error("easy tier should track naively, not predict")
	}
	if !hard.Prediction {
		t.Error("hard tier should predict the intercept")
	}
}
