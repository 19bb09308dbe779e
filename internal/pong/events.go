package pong

import "github.com/charmbracelet/log"

// Events receives fire-and-forget notifications from the simulation. Calls
// return nothing and implementations must not mutate game state; the sound
// layer (or any other observer) hangs off this interface.
type Events interface {
	WallBounce()
	PaddleHit(speed float64)
	PowerUp(kind PowerUpType)
	Score(side Side)
	Victory(side Side)
}

type nopEvents struct{}

func (nopEvents) WallBounce()         {}
func (nopEvents) PaddleHit(float64)   {}
func (nopEvents) PowerUp(PowerUpType) {}
func (nopEvents) Score(Side)          {}
func (nopEvents) Victory(Side)        {}

// NopEvents returns an Events sink that ignores every signal.
func NopEvents() Events {
	return nopEvents{}
}

type logEvents struct {
	logger *log.Logger
}

func (e logEvents) WallBounce() {
	e.logger.Debug("wall bounce")
}

func (e logEvents) PaddleHit(speed float64) {
	e.logger.Debug("paddle hit", "speed", speed)
}

func (e logEvents) PowerUp(kind PowerUpType) {
	e.logger.Info("power-up collected", "type", kind.String())
}

func (e logEvents) Score(side Side) {
	e.logger.Info("score", "side", side.String())
}

func (e logEvents) Victory(side Side) {
	e.logger.Info("victory", "side", side.String())
}

// LogEvents returns an Events sink that writes each signal to the logger.
// Useful as a stand-in sound trigger when debugging headless runs.
func LogEvents(logger *log.Logger) Events {
	return logEvents{logger: logger}
}
