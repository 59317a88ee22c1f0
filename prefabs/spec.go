package prefabs

import (
	"errors"
	"fmt"

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

const SettingsFile = "settings.yaml"

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlayerSettings struct {
	Prefab             string `yaml:"prefab"`
	LogMovement        bool   `yaml:"log_player_movement"`
	LogCollectingStars bool   `yaml:"log_collecting_stars"`
}

type StarSettings struct {
	Prefab       string  `yaml:"prefab"`
	AtStartup    int     `yaml:"number_of_stars_at_startup"`
	SpawnSeconds float64 `yaml:"star_spawn_time"`
	PerSpawn     int     `yaml:"amount_of_stars_per_spawn"`
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type EnemySettings struct {
	Prefab          string    `yaml:"prefab"`
	PlayBounceSound bool      `yaml:"play_enemy_bounce_sound"`
	AtStartup       int       `yaml:"number_of_enemies"`
	Speed           RangeSpec `yaml:"enemy_speed_range"`
	SpawnSeconds    float64   `yaml:"enemy_spawn_timer"`
	PerSpawn        int       `yaml:"enemy_spawn_over_time"`
}

type SpawnPopSettings struct {
	Seconds float64 `yaml:"seconds"`
	Ease    string  `yaml:"ease"`
}

type AudioSettings struct {
	Volume  float64 `yaml:"volume"`
	Enabled bool    `yaml:"enabled"`
}

// Settings holds the game tunables.
type Settings struct {
	Window         WindowSettings   `yaml:"window"`
	Player         PlayerSettings   `yaml:"player"`
	Star           StarSettings     `yaml:"star"`
	Enemy          EnemySettings    `yaml:"enemy"`
	SpawnPop       SpawnPopSettings `yaml:"spawn_pop"`
	Audio          AudioSettings    `yaml:"audio"`
	DirectorScript string           `yaml:"director_script"`
}

func LoadSettings() (*Settings, error) {
	s, err := LoadSpec[Settings](SettingsFile)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", SettingsFile, err)
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Player.Prefab == "" || s.Star.Prefab == "" || s.Enemy.Prefab == "" {
		errs = append(errs, errors.New("player, star and enemy prefabs are required"))
	}
	if s.Star.AtStartup < 0 || s.Star.PerSpawn < 0 || s.Enemy.AtStartup < 0 || s.Enemy.PerSpawn < 0 {
		errs = append(errs, errors.New("spawn counts must not be negative"))
	}
	if s.Star.SpawnSeconds <= 0 || s.Enemy.SpawnSeconds <= 0 {
		errs = append(errs, errors.New("spawn timers must be positive"))
	}
	if s.Enemy.Speed.Min < 0 || s.Enemy.Speed.Max < s.Enemy.Speed.Min {
		errs = append(errs, fmt.Errorf("invalid enemy speed range [%v, %v)", s.Enemy.Speed.Min, s.Enemy.Speed.Max))
	}
	return errors.Join(errs...)
}
