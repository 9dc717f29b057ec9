package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/softbody"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// TuningFile is the prefab holding the game's physics and rules.
const TuningFile = "tuning.yaml"

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

// TuningSpec is the decoded form of tuning.yaml.
type TuningSpec struct {
	Arena      ArenaSpec     `yaml:"arena"`
	Body       BodySpec      `yaml:"body"`
	Rules      RulesSpec     `yaml:"rules"`
	Spawn      SpawnSpec     `yaml:"spawn"`
	Palette    []PaletteSpec `yaml:"palette"`
	Background *YAMLColor    `yaml:"background"`
}

// LoadTuning reads and validates tuning.yaml.
func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type ArenaSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BodySpec struct {
	Nodes            int     `yaml:"nodes"`
	Attraction       float64 `yaml:"attraction"`
	Repulsion        float64 `yaml:"repulsion"`
	CrossBraceStride int     `yaml:"cross_brace_stride"`
	Substeps         int     `yaml:"substeps"`
	Gravity          VecSpec `yaml:"gravity"`
	Pressure         float64 `yaml:"pressure"`
	Friction         float64 `yaml:"friction"`
	SettleThreshold  float64 `yaml:"settle_threshold"`
	WallMargin       float64 `yaml:"wall_margin"`
	Restitution      float64 `yaml:"restitution"`
	RepulsionGain    float64 `yaml:"repulsion_gain"`
}

type RulesSpec struct {
	MoveForce        float64 `yaml:"move_force"`
	DownFactor       float64 `yaml:"down_factor"`
	TouchBuffer      float64 `yaml:"touch_buffer"`
	PointsPerBody    int     `yaml:"points_per_body"`
	SettleDwellTicks int     `yaml:"settle_dwell_ticks"`
}

type SpawnSpec struct {
	Script    string  `yaml:"script"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

type PaletteSpec struct {
	Name  string     `yaml:"name"`
	Color *YAMLColor `yaml:"color"`
}

// Bounds returns the arena rectangle anchored at the origin.
func (t *TuningSpec) Bounds() common.Bounds {
	return common.Bounds{Left: 0, Right: t.Arena.Width, Top: 0, Bottom: t.Arena.Height}
}

// Params returns the soft-body integrator tuning.
func (t *TuningSpec) Params() softbody.Params {
	b := t.Body
	return softbody.Params{
		Nodes:            b.Nodes,
		Attraction:       b.Attraction,
		Repulsion:        b.Repulsion,
		CrossBraceStride: b.CrossBraceStride,
		Substeps:         b.Substeps,
		Gravity:          common.V(b.Gravity.X, b.Gravity.Y),
		Pressure:         b.Pressure,
		Friction:         b.Friction,
		SettleThreshold:  b.SettleThreshold,
		WallMargin:       b.WallMargin,
		Restitution:      b.Restitution,
		RepulsionGain:    b.RepulsionGain,
	}
}

// GameRules returns the game rules with the palette names in file order.
func (t *TuningSpec) GameRules() component.Rules {
	names := make([]string, 0, len(t.Palette))
	for _, p := range t.Palette {
		names = append(names, p.Name)
	}
	return component.Rules{
		MoveForce:        t.Rules.MoveForce,
		DownFactor:       t.Rules.DownFactor,
		TouchBuffer:      t.Rules.TouchBuffer,
		PointsPerBody:    t.Rules.PointsPerBody,
		SettleDwellTicks: t.Rules.SettleDwellTicks,
		Palette:          names,
	}
}

// Colors maps palette names to their display colors.
func (t *TuningSpec) Colors() map[string]color.Color {
	out := make(map[string]color.Color, len(t.Palette))
	for _, p := range t.Palette {
		if p.Color != nil {
			out[p.Name] = p.Color.Color
		}
	}
	return out
}

func (t *TuningSpec) Validate() error {
	if !t.Bounds().Valid() {
		return fmt.Errorf("arena %vx%v: %w", t.Arena.Width, t.Arena.Height, ErrInvalidTuning)
	}
	if err := t.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTuning, err)
	}
	if t.Spawn.MinRadius <= 0 || t.Spawn.MaxRadius < t.Spawn.MinRadius {
		return fmt.Errorf("spawn radius [%v, %v]: %w", t.Spawn.MinRadius, t.Spawn.MaxRadius, ErrInvalidTuning)
	}
	if 2*t.Spawn.MaxRadius >= t.Arena.Width {
		return fmt.Errorf("spawn radius %v does not fit arena width %v: %w", t.Spawn.MaxRadius, t.Arena.Width, ErrInvalidTuning)
	}
	if len(t.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", ErrInvalidTuning)
	}
	seen := make(map[string]bool, len(t.Palette))
	for _, p := range t.Palette {
		if p.Name == "" || seen[p.Name] {
			return fmt.Errorf("palette name %q: %w", p.Name, ErrInvalidTuning)
		}
		seen[p.Name] = true
	}
	if t.Rules.TouchBuffer < 0 || t.Rules.SettleDwellTicks < 0 {
		return fmt.Errorf("negative touch buffer or dwell: %w", ErrInvalidTuning)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
