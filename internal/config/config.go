// Package config provides YAML-based configuration loading and difficulty
// presets for the simulation. Every physics constant consumed by the
// formulas in internal/pong is supplied from here; nothing is hard-wired.
package config

// Config contains the full tuning surface of the game.
type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	AI       AIConfig       `yaml:"ai"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
}

// CanvasConfig defines the virtual playfield dimensions in canvas units.
// The renderer scales these to terminal cells.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines ball kinematics tuning.
type PhysicsConfig struct {
	BallSpeedX         float64 `yaml:"ball_speed_x"`         // Initial horizontal speed on serve
	BallSpeedY         float64 `yaml:"ball_speed_y"`         // Vertical serve speed range (scaled by 0.8)
	BallRadius         float64 `yaml:"ball_radius"`
	MinSpeed           float64 `yaml:"min_speed"`            // Speed floor after every bounce
	MaxSpeed           float64 `yaml:"max_speed"`            // Speed ceiling after every bounce
	Acceleration       float64 `yaml:"acceleration"`         // Per-rally speed multiplier (>1)
	PaddleInfluence    float64 `yaml:"paddle_influence"`     // Fraction of paddle velocity imparted to the ball
	BounceAngleFactor  float64 `yaml:"bounce_angle_factor"`  // dy added per unit of normalized hit position
	ChaosChance        float64 `yaml:"chaos_chance"`         // Probability of a random dy nudge on paddle hit
	ChaosIntensity     float64 `yaml:"chaos_intensity"`      // Magnitude range of the nudge
	FastBallMultiplier float64 `yaml:"fast_ball_multiplier"` // Speed multiplier while fast-ball is active
	TrailLength        int     `yaml:"trail_length"`         // Max fading trail particles per ball
}

// PaddleConfig defines paddle dimensions and movement speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Offset float64 `yaml:"offset"` // Distance of the paddle face from the canvas edge
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore     int     `yaml:"win_score"`
	ShakeDecay   float64 `yaml:"shake_decay"` // Per-tick screen shake falloff
	ShakeOnScore float64 `yaml:"shake_on_score"`
}

// AITier defines one difficulty tier of the opponent controller.
// Lower ReactionFrames and higher Accuracy both make the opponent harder.
type AITier struct {
	Speed          float64 `yaml:"speed"`           // Paddle step per tick
	ReactionFrames float64 `yaml:"reaction_frames"` // Frames between target recomputations
	Accuracy       float64 `yaml:"accuracy"`        // 0..1, 1 = perfect aim
	Prediction     bool    `yaml:"prediction"`      // Use trajectory prediction instead of naive tracking
}

// AIConfig holds the three fixed difficulty tiers.
type AIConfig struct {
	Easy   AITier `yaml:"easy"`
	Medium AITier `yaml:"medium"`
	Hard   AITier `yaml:"hard"`
}

// PowerUpConfig defines spawn scheduling, floating animation, and effect
// durations. Durations are in seconds and converted to frames by the game.
type PowerUpConfig struct {
	SpawnMinSeconds  float64 `yaml:"spawn_min_seconds"`
	SpawnMaxSeconds  float64 `yaml:"spawn_max_seconds"`
	EdgeMargin       float64 `yaml:"edge_margin"`  // Spawn inset from canvas edges
	PickupRadius     float64 `yaml:"pickup_radius"`
	BaseFloatRadius  float64 `yaml:"base_float_radius"`
	MaxFloatRadius   float64 `yaml:"max_float_radius"`
	GrowthPer10s     float64 `yaml:"growth_per_10s"` // Float radius multiplier per 10s waited
	BigPaddleSeconds float64 `yaml:"big_paddle_seconds"`
	FastBallSeconds  float64 `yaml:"fast_ball_seconds"`
	MultiBallSeconds float64 `yaml:"multi_ball_seconds"`
	ShieldUses       int     `yaml:"shield_uses"`
}

// DifficultyPreset names one of the three opponent tiers.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Tier returns the AITier for a preset. Unknown presets fall back to medium.
func (c Config) Tier(preset DifficultyPreset) AITier {
	switch preset {
	case DifficultyEasy:
		return c.AI.Easy
	case DifficultyHard:
		return c.AI.Hard
	default:
		return c.AI.Medium
	}
}
