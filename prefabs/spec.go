package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerSpec is the player's movement tuning and body layout.
type PlayerSpec struct {
	Name               string        `yaml:"name"`
	MaxSpeed           float64       `yaml:"max_speed"`
	JumpVelocity       float64       `yaml:"jump_velocity"`
	Acceleration       float64       `yaml:"acceleration"`
	CameraFollow       bool          `yaml:"camera_follow"`
	AbilityCooldown    time.Duration `yaml:"ability_cooldown"`
	Coyote             time.Duration `yaml:"coyote"`
	Respawn            time.Duration `yaml:"respawn"`
	ExplosiveJumpScale float64       `yaml:"explosive_jump_scale"`
	SpeedUpScale       float64       `yaml:"speed_up_scale"`
	CheckpointLift     float64       `yaml:"checkpoint_lift"`
	Checkpoint         PointSpec     `yaml:"checkpoint"`
	CheckpointLevel    string        `yaml:"checkpoint_level"`
	Mass               float64       `yaml:"mass"`
	Collider           ColliderSpec  `yaml:"collider"`
	GroundDetector     ColliderSpec  `yaml:"ground_detector"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:               "player",
		MaxSpeed:           100,
		JumpVelocity:       200,
		Acceleration:       400,
		CameraFollow:       true,
		AbilityCooldown:    300 * time.Millisecond,
		Coyote:             100 * time.Millisecond,
		Respawn:            600 * time.Millisecond,
		ExplosiveJumpScale: 1.3,
		SpeedUpScale:       2,
		CheckpointLift:     3,
		Checkpoint:         PointSpec{X: -1064, Y: 776},
		Mass:               1,
		Collider:           ColliderSpec{Width: 8, Height: 14},
		GroundDetector:     ColliderSpec{Width: 8, Height: 6, OffsetY: -6},
	}
}

// LoadPlayerSpec reads player.yaml over the defaults so a partial file only
// overrides what it names.
func LoadPlayerSpec() (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := loadOver("player.yaml", &spec); err != nil {
		return DefaultPlayerSpec(), err
	}
	return spec, nil
}

type ProjectileSpec struct {
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
	Collider ColliderSpec  `yaml:"collider"`
}

// AbilitiesSpec tunes the three projectiles and the wind push.
type AbilitiesSpec struct {
	Fire  ProjectileSpec `yaml:"fire"`
	Wind  ProjectileSpec `yaml:"wind"`
	Water ProjectileSpec `yaml:"water"`
	// WindPushScale multiplies the projectile velocity written into a
	// pushed block. 1 and 4 are the two shipped variants.
	WindPushScale float64 `yaml:"wind_push_scale"`
	// SettleSpeed is the speed under which a pushed block can be pushed again.
	SettleSpeed float64 `yaml:"settle_speed"`
}

func DefaultAbilitiesSpec() AbilitiesSpec {
	bolt := ColliderSpec{Width: 5, Height: 1}
	return AbilitiesSpec{
		Fire:          ProjectileSpec{Speed: 150, Lifetime: 600 * time.Millisecond, Collider: bolt},
		Wind:          ProjectileSpec{Speed: 50, Lifetime: 600 * time.Millisecond, Collider: bolt},
		Water:         ProjectileSpec{Speed: 100, Lifetime: 600 * time.Millisecond, Collider: bolt},
		WindPushScale: 1,
		SettleSpeed:   1,
	}
}

func LoadAbilitiesSpec() (AbilitiesSpec, error) {
	spec := DefaultAbilitiesSpec()
	if err := loadOver("abilities.yaml", &spec); err != nil {
		return DefaultAbilitiesSpec(), err
	}
	return spec, nil
}

type AnimationSpec struct {
	FrameTime time.Duration `yaml:"frame_time"`
	Start     int           `yaml:"start"`
	End       int           `yaml:"end"`
}

// WorldSpec tunes the non-player level entities.
type WorldSpec struct {
	GoblinSpeed    float64       `yaml:"goblin_speed"`
	GoblinCollider ColliderSpec  `yaml:"goblin_collider"`
	FanStrength    float64       `yaml:"fan_strength"`
	DeathLinger    time.Duration `yaml:"death_linger"`
	Lava           AnimationSpec `yaml:"lava"`
	Water          AnimationSpec `yaml:"water"`
	Actor          AnimationSpec `yaml:"actor"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		GoblinSpeed:    20,
		GoblinCollider: ColliderSpec{Width: 12, Height: 14},
		FanStrength:    1000,
		DeathLinger:    600 * time.Millisecond,
		Lava:           AnimationSpec{FrameTime: 300 * time.Millisecond, Start: 0, End: 8},
		Water:          AnimationSpec{FrameTime: 150 * time.Millisecond, Start: 0, End: 8},
		Actor:          AnimationSpec{FrameTime: 100 * time.Millisecond},
	}
}

func LoadWorldSpec() (WorldSpec, error) {
	spec := DefaultWorldSpec()
	if err := loadOver("world.yaml", &spec); err != nil {
		return DefaultWorldSpec(), err
	}
	return spec, nil
}

func loadOver(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}
