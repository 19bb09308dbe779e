package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/pong.yaml and serves as the fallback when no file is found.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 450,
		},
		Physics: PhysicsConfig{
			BallSpeedX:         5.0,
			BallSpeedY:         5.0,
			BallRadius:         8,
			MinSpeed:           4.0,
			MaxSpeed:           14.0,
			Acceleration:       1.05,
			PaddleInfluence:    0.35,
			BounceAngleFactor:  4.0,
			ChaosChance:        0.2,
			ChaosIntensity:     1.5,
			FastBallMultiplier: 1.5,
			TrailLength:        12,
		},
		Paddles: PaddleConfig{
			Width:  12,
			Height: 80,
			Speed:  7.0,
			Offset: 20,
		},
		Gameplay: GameplayConfig{
			WinScore:     7,
			ShakeDecay:   0.9,
			ShakeOnScore: 8,
		},
		AI: AIConfig{
			Easy: AITier{
				Speed:          4.5,
				ReactionFrames: 28,
				Accuracy:       0.6,
				Prediction:     false,
			},
			Medium: AITier{
				Speed:          5.5,
				ReactionFrames: 16,
				Accuracy:       0.8,
				Prediction:     true,
			},
			Hard: AITier{
				Speed:          7.0,
				ReactionFrames: 6,
				Accuracy:       0.95,
				Prediction:     true,
			},
		},
		PowerUps: PowerUpConfig{
			SpawnMinSeconds:  5,
			SpawnMaxSeconds:  12,
			EdgeMargin:       60,
			PickupRadius:     22,
			BaseFloatRadius:  20,
			MaxFloatRadius:   80,
			GrowthPer10s:     1.6,
			BigPaddleSeconds: 8,
			FastBallSeconds:  6,
			MultiBallSeconds: 10,
			ShieldUses:       2,
		},
	}
}
