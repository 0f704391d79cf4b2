package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Monster MonsterConfig `yaml:"monster"`
	Session SessionConfig `yaml:"session"`
	Camera  CameraConfig  `yaml:"camera"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Monster: Monster,
		Session: Session,
		Camera:  Camera,
	}
}

// ParseTuning decodes YAML overrides on top of the live configuration.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) validate() error {
	switch {
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("tuning: player size must be positive")
	case t.Monster.SpawnChance < 0 || t.Monster.SpawnChance > 1:
		return fmt.Errorf("tuning: monster spawn_chance %v out of [0,1]", t.Monster.SpawnChance)
	case t.Monster.SpawnInterval <= 0:
		return fmt.Errorf("tuning: monster spawn_interval must be positive")
	case t.Monster.RiseSpeed <= 0:
		return fmt.Errorf("tuning: monster rise_speed must be positive")
	case t.Camera.TargetDivisor == 0:
		return fmt.Errorf("tuning: camera target_divisor must not be zero")
	case t.Session.StartingLives <= 0:
		return fmt.Errorf("tuning: session starting_lives must be positive")
	}
	return nil
}

// Apply replaces the live configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Monster = t.Monster
	Session = t.Session
	Camera = t.Camera
}

// LoadTuning reads a YAML file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}
