package pong

// ActiveEffect is one timed effect slot: an active flag, a frame
// countdown, and the owning side where the effect is side-specific.
type ActiveEffect struct {
	Active     bool
	FramesLeft int
	Side       Side
}

// tick decrements the countdown and reports whether the effect expired
// this frame.
func (e *ActiveEffect) tick() bool {
	if !e.Active {
		return false
	}
	e.FramesLeft--
	if e.FramesLeft > 0 {
		return false
	}
	*e = ActiveEffect{}
	return true
}

// ShieldEffect is the use-counted effect: instead of a duration it grants
// a fixed number of saves to its owning side.
type ShieldEffect struct {
	Active   bool
	UsesLeft int
	Side     Side
}

// consume spends one shield use for the given side. Returns true when a
// use was available and spent; the effect clears at zero uses.
func (e *ShieldEffect) consume(side Side) bool {
	if !e.Active || e.Side != side || e.UsesLeft <= 0 {
		return false
	}
	e.UsesLeft--
	if e.UsesLeft == 0 {
		*e = ShieldEffect{}
	}
	return true
}

// EffectSet holds one slot per effect type. The orchestrator ticks it once
// per frame and clears expired slots.
type EffectSet struct {
	BigPaddle ActiveEffect
	FastBall  ActiveEffect
	MultiBall ActiveEffect
	Shield    ShieldEffect
}

// Tick advances every timed effect one frame. It reports whether the
// multi-ball effect expired this frame so the orchestrator can clear the
// extra-ball list without leaking entities.
func (s *EffectSet) Tick() (multiBallExpired bool) {
	s.BigPaddle.tick()
	s.FastBall.tick()
	return s.MultiBall.tick()
}

// Clear deactivates every effect.
func (s *EffectSet) Clear() {
	*s = EffectSet{}
}

// BigPaddleFor reports whether the big-paddle effect is active for side.
func (s EffectSet) BigPaddleFor(side Side) bool {
	return s.BigPaddle.Active && s.BigPaddle.Side == side
}

// SpeedMultiplier returns the ball speed multiplier for this tick: m while
// fast-ball is active, 1 otherwise.
func (s EffectSet) SpeedMultiplier(m float64) float64 {
	if s.FastBall.Active {
		return m
	}
	return 1
}
