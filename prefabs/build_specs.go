package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	Speed       float64 `yaml:"speed"`
	BoostFactor float64 `yaml:"boost_factor"`
}

type EnemyComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image string  `yaml:"image"`
	Size  float64 `yaml:"size"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

// ColliderComponentSpec sizes a circle collider. A zero radius means half
// the sprite size.
type ColliderComponentSpec struct {
	Radius float64 `yaml:"radius"`
}
