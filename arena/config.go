package arena

import (
	"errors"
	"fmt"

	"github.com/milk9111/blobdrop/common"
	"github.com/milk9111/blobdrop/ecs/component"
	"github.com/milk9111/blobdrop/ecs/system"
	"github.com/milk9111/blobdrop/prefabs"
	"github.com/milk9111/blobdrop/softbody"
)

var ErrInvalidConfig = errors.New("arena: invalid config")

// Config fixes the play field and the tuning an arena starts with.
type Config struct {
	Bounds  common.Bounds
	Physics softbody.Params
	Rules   component.Rules
}

// DefaultConfig returns a 400x600 arena with the shipped tuning.
func DefaultConfig() Config {
	return Config{
		Bounds:  common.Bounds{Left: 0, Right: 400, Top: 0, Bottom: 600},
		Physics: softbody.DefaultParams(),
		Rules:   component.DefaultRules(),
	}
}

func (c Config) Validate() error {
	if !c.Bounds.Valid() {
		return fmt.Errorf("bounds %+v: %w", c.Bounds, ErrInvalidConfig)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return validateRules(c.Rules)
}

func validateRules(r component.Rules) error {
	if r.TouchBuffer < 0 || r.SettleDwellTicks < 0 || r.PointsPerBody < 0 {
		return fmt.Errorf("rules %+v: %w", r, ErrInvalidConfig)
	}
	return nil
}

// ConfigFromTuning converts a loaded tuning file.
func ConfigFromTuning(t *prefabs.TuningSpec) Config {
	if t == nil {
		return DefaultConfig()
	}
	return Config{
		Bounds:  t.Bounds(),
		Physics: t.Params(),
		Rules:   t.GameRules(),
	}
}

// NewScriptSpawner compiles the spawn script named by the tuning file.
func NewScriptSpawner(t *prefabs.TuningSpec) (*system.ScriptSpawner, error) {
	src, err := prefabs.LoadScript(t.Spawn.Script)
	if err != nil {
		return nil, fmt.Errorf("arena: load spawn script %s: %w", t.Spawn.Script, err)
	}
	return system.NewScriptSpawner(src, t.Spawn.MinRadius, t.Spawn.MaxRadius)
}
