package config

import (
	"image/color"
	"time"
)

// PhysicsConfig contains movement and gravity tuning. Speeds are px/s and
// accelerations px/s².
type PhysicsConfig struct {
	// Global physics
	Gravity         float64 `mapstructure:"gravity"`
	MaxFallVelocity float64 `mapstructure:"maxFallVelocity"`
	MaxSpeedX       float64 `mapstructure:"maxSpeedX"` // hard horizontal clamp applied by the collision substrate

	// Movement
	GroundSpeed    float64 `mapstructure:"groundSpeed"`
	AirSpeed       float64 `mapstructure:"airSpeed"`
	GroundAccel    float64 `mapstructure:"groundAccel"`
	AirAccel       float64 `mapstructure:"airAccel"`
	GroundFriction float64 `mapstructure:"groundFriction"`
	AirDragRatio   float64 `mapstructure:"airDragRatio"` // air friction = AirAccel * AirDragRatio

	// Jumping
	JumpVelocity     float64 `mapstructure:"jumpVelocity"` // negative is up
	FastFallVelocity float64 `mapstructure:"fastFallVelocity"`
	MaxJumps         int     `mapstructure:"maxJumps"`

	// Frame delta handling in the collision substrate (seconds)
	MaxFrameDelta float64 `mapstructure:"maxFrameDelta"`
	SubstepDelta  float64 `mapstructure:"substepDelta"`
}

// AirFriction returns the deceleration applied while airborne with no input.
func (p PhysicsConfig) AirFriction() float64 {
	return p.AirAccel * p.AirDragRatio
}

// CombatConfig contains attack, knockback and stun tuning.
type CombatConfig struct {
	AttackDamage float64 `mapstructure:"attackDamage"`

	// Knockback = BaseKnockback + damage * KnockbackScale
	BaseKnockback          float64 `mapstructure:"baseKnockback"`
	KnockbackScale         float64 `mapstructure:"knockbackScale"`
	MinKnockbackPop        float64 `mapstructure:"minKnockbackPop"`        // minimum upward speed on hit
	VerticalKnockbackRatio float64 `mapstructure:"verticalKnockbackRatio"` // upward share of knockback

	// Hitstun = HitstunBase + damage * HitstunScale
	HitstunBase  time.Duration `mapstructure:"hitstunBase"`
	HitstunScale time.Duration `mapstructure:"hitstunScale"` // per damage point

	AttackCooldown time.Duration `mapstructure:"attackCooldown"`
	AttackActive   time.Duration `mapstructure:"attackActive"`
	RespawnInvuln  time.Duration `mapstructure:"respawnInvuln"`
}

// BodyConfig contains fighter body and hitbox dimensions.
type BodyConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	HitboxWidth   float64 `mapstructure:"hitboxWidth"`
	HitboxHeight  float64 `mapstructure:"hitboxHeight"`
	HitboxOffsetX float64 `mapstructure:"hitboxOffsetX"` // forward, scaled by facing
	HitboxOffsetY float64 `mapstructure:"hitboxOffsetY"`
}

// RoundConfig contains round rules.
type RoundConfig struct {
	Stocks int `mapstructure:"stocks"`
}

// ArenaConfig describes the visible play area and how far past each edge the
// blast zone sits.
type ArenaConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	BlastMarginLeft   float64 `mapstructure:"blastMarginLeft"`
	BlastMarginRight  float64 `mapstructure:"blastMarginRight"`
	BlastMarginTop    float64 `mapstructure:"blastMarginTop"`
	BlastMarginBottom float64 `mapstructure:"blastMarginBottom"`
}

// BlastZone is the KO boundary in world coordinates.
type BlastZone struct {
	Left, Right, Top, Bottom float64
}

// BlastZone returns the KO boundary for the arena.
func (a ArenaConfig) BlastZone() BlastZone {
	return BlastZone{
		Left:   -a.BlastMarginLeft,
		Right:  a.Width + a.BlastMarginRight,
		Top:    -a.BlastMarginTop,
		Bottom: a.Height + a.BlastMarginBottom,
	}
}

// Contains reports whether (x, y) is inside the boundary.
func (b BlastZone) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

type Config struct {
	Physics PhysicsConfig `mapstructure:"physics"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Body    BodyConfig    `mapstructure:"body"`
	Round   RoundConfig   `mapstructure:"round"`
	Arena   ArenaConfig   `mapstructure:"arena"`

	LogLevel string `mapstructure:"logLevel"`
}

// Default returns the stock tuning of the game.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:         1350,
			MaxFallVelocity: 1050,
			MaxSpeedX:       320 + 160,

			GroundSpeed:    320,
			AirSpeed:       250,
			GroundAccel:    2600,
			AirAccel:       1700,
			GroundFriction: 2400,
			AirDragRatio:   0.45,

			JumpVelocity:     -620,
			FastFallVelocity: 850,
			MaxJumps:         2,

			MaxFrameDelta: 0.1,
			SubstepDelta:  1.0 / 120,
		},
		Combat: CombatConfig{
			AttackDamage: 8,

			BaseKnockback:          260,
			KnockbackScale:         4.3,
			MinKnockbackPop:        180,
			VerticalKnockbackRatio: 0.55,

			HitstunBase:  180 * time.Millisecond,
			HitstunScale: 2300 * time.Microsecond,

			AttackCooldown: 260 * time.Millisecond,
			AttackActive:   120 * time.Millisecond,
			RespawnInvuln:  1800 * time.Millisecond,
		},
		Body: BodyConfig{
			Width:  38,
			Height: 54,

			HitboxWidth:   48,
			HitboxHeight:  30,
			HitboxOffsetX: 40,
			HitboxOffsetY: -4,
		},
		Round: RoundConfig{
			Stocks: 3,
		},
		Arena: ArenaConfig{
			Width:  960,
			Height: 540,

			BlastMarginLeft:   220,
			BlastMarginRight:  220,
			BlastMarginTop:    260,
			BlastMarginBottom: 220,
		},
		LogLevel: "info",
	}
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite     = color.RGBA{R: 241, G: 250, B: 238, A: 255}
	Red          = color.RGBA{R: 230, G: 57, B: 70, A: 255}
	Blue         = color.RGBA{R: 58, G: 134, B: 255, A: 255}
	Background   = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	SkyTop       = color.RGBA{R: 21, G: 32, B: 43, A: 255}
	SkyBottom    = color.RGBA{R: 42, G: 157, B: 143, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	// Translucent, so not premultiplied.
	HitboxTint = color.NRGBA{R: 255, G: 243, B: 176, A: 89}

	// PlatformColors is indexed by platform order, wrapping.
	PlatformColors = []color.RGBA{
		{R: 95, G: 75, B: 50, A: 255},
		{R: 111, G: 139, B: 94, A: 255},
		{R: 111, G: 139, B: 94, A: 255},
		{R: 76, G: 106, B: 136, A: 255},
	}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
