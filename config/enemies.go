package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed enemies.yaml
var enemiesYAML []byte

var ErrInvalidArchetype = errors.New("invalid enemy archetype")

// EnemyArchetype contains configuration for a specific enemy type
type EnemyArchetype struct {
	Name      string `yaml:"name"`
	Animation string `yaml:"animation"`
	Health    int    `yaml:"health"`

	// Movement (pixels per tick, positive SpeedY is up)
	SpeedX float64 `yaml:"speedX"`
	SpeedY float64 `yaml:"speedY"`
	Bounce bool    `yaml:"bounce"`

	// Ranged attack; unarmed enemies only deal contact damage
	Armed            bool    `yaml:"armed"`
	AttackWindowMs   int     `yaml:"attackWindowMs"`
	AttackCooldownMs int     `yaml:"attackCooldownMs"`
	FireDelayMs      int     `yaml:"fireDelayMs"`
	BulletSpeed      float64 `yaml:"bulletSpeed"`
	BulletDamage     int     `yaml:"bulletDamage"`
	BulletAnimation  string  `yaml:"bulletAnimation"`

	ContactDamage int `yaml:"contactDamage"`
	ScoreValue    int `yaml:"scoreValue"`
}

func (a EnemyArchetype) AttackWindow() time.Duration {
	return time.Duration(a.AttackWindowMs) * time.Millisecond
}

func (a EnemyArchetype) AttackCooldown() time.Duration {
	return time.Duration(a.AttackCooldownMs) * time.Millisecond
}

func (a EnemyArchetype) FireDelay() time.Duration {
	return time.Duration(a.FireDelayMs) * time.Millisecond
}

type enemyFile struct {
	Enemies []EnemyArchetype `yaml:"enemies"`
}

// Enemies holds the archetypes loaded from the embedded enemies.yaml.
var Enemies []EnemyArchetype

// LoadEnemyArchetypes parses and validates an archetype file.
func LoadEnemyArchetypes(data []byte) ([]EnemyArchetype, error) {
	var f enemyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse enemy archetypes: %w", err)
	}
	if len(f.Enemies) == 0 {
		return nil, fmt.Errorf("at least one enemy archetype is required: %w", ErrInvalidArchetype)
	}

	seen := make(map[string]bool, len(f.Enemies))
	for _, a := range f.Enemies {
		if err := validateArchetype(a); err != nil {
			return nil, err
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("enemy %s: duplicate name: %w", a.Name, ErrInvalidArchetype)
		}
		seen[a.Name] = true
	}
	return f.Enemies, nil
}

func validateArchetype(a EnemyArchetype) error {
	if a.Name == "" {
		return fmt.Errorf("enemy archetype without a name: %w", ErrInvalidArchetype)
	}
	if a.Animation == "" {
		return fmt.Errorf("enemy %s: animation is required: %w", a.Name, ErrInvalidArchetype)
	}
	if a.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive, got %d: %w", a.Name, a.Health, ErrInvalidArchetype)
	}
	if a.ContactDamage < 0 || a.ScoreValue < 0 {
		return fmt.Errorf("enemy %s: contact damage and score cannot be negative: %w", a.Name, ErrInvalidArchetype)
	}
	if !a.Armed {
		return nil
	}
	if a.AttackWindowMs <= 0 {
		return fmt.Errorf("enemy %s: attackWindowMs must be positive, got %d: %w", a.Name, a.AttackWindowMs, ErrInvalidArchetype)
	}
	if a.AttackCooldownMs < 0 {
		return fmt.Errorf("enemy %s: attackCooldownMs cannot be negative, got %d: %w", a.Name, a.AttackCooldownMs, ErrInvalidArchetype)
	}
	if a.FireDelayMs <= 0 {
		return fmt.Errorf("enemy %s: fireDelayMs must be positive, got %d: %w", a.Name, a.FireDelayMs, ErrInvalidArchetype)
	}
	if a.BulletSpeed <= 0 {
		return fmt.Errorf("enemy %s: bulletSpeed must be positive: %w", a.Name, ErrInvalidArchetype)
	}
	if a.BulletDamage < 0 {
		return fmt.Errorf("enemy %s: bulletDamage cannot be negative: %w", a.Name, ErrInvalidArchetype)
	}
	if a.BulletAnimation == "" {
		return fmt.Errorf("enemy %s: bulletAnimation is required when armed: %w", a.Name, ErrInvalidArchetype)
	}
	return nil
}

func init() {
	enemies, err := LoadEnemyArchetypes(enemiesYAML)
	if err != nil {
		// Catch configuration errors at startup
		panic(err)
	}
	Enemies = enemies
}
