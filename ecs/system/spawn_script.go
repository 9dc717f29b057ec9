package system

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/blobdrop/common"
)

var ErrBadSpawn = errors.New("system: spawn script produced an invalid body")

// ScriptSpawner runs a tengo script to pick each new body. The script sees
// left, right, top, bottom, min_radius, max_radius, palette, count and seed,
// and must define x, y, radius and color. Scripts should draw from
// rand.rand(seed) rather than the rand module functions, which use the
// unseeded process-wide source.
type ScriptSpawner struct {
	compiled  *tengo.Compiled
	rng       *rand.Rand
	minRadius float64
	maxRadius float64
	count     int
}

func NewScriptSpawner(src []byte, minRadius, maxRadius float64) (*ScriptSpawner, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("spawn script: empty source")
	}
	script := tengo.NewScript(src)
	for _, name := range []string{"left", "right", "top", "bottom", "min_radius", "max_radius"} {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("palette", []any{})
	_ = script.Add("count", 0)
	_ = script.Add("seed", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script: compile: %w", err)
	}
	return &ScriptSpawner{
		compiled:  compiled,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		minRadius: minRadius,
		maxRadius: maxRadius,
	}, nil
}

// Reseed restarts the per-spawn seed sequence handed to the script.
func (s *ScriptSpawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *ScriptSpawner) Next(bounds common.Bounds, palette []string) (SpawnSpec, error) {
	colors := make([]any, len(palette))
	for i, c := range palette {
		colors[i] = c
	}
	vars := map[string]any{
		"left":       bounds.Left,
		"right":      bounds.Right,
		"top":        bounds.Top,
		"bottom":     bounds.Bottom,
		"min_radius": s.minRadius,
		"max_radius": s.maxRadius,
		"palette":    colors,
		"count":      s.count,
		"seed":       s.rng.Int63(),
	}
	for name, v := range vars {
		if err := s.compiled.Set(name, v); err != nil {
			return SpawnSpec{}, fmt.Errorf("spawn script: set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return SpawnSpec{}, fmt.Errorf("spawn script: run: %w", err)
	}

	for _, name := range []string{"x", "y", "radius", "color"} {
		if !s.compiled.IsDefined(name) {
			return SpawnSpec{}, fmt.Errorf("spawn script: %s undefined: %w", name, ErrBadSpawn)
		}
	}
	spec := SpawnSpec{
		X:      s.compiled.Get("x").Float(),
		Y:      s.compiled.Get("y").Float(),
		Radius: s.compiled.Get("radius").Float(),
		Color:  s.compiled.Get("color").String(),
	}
	if spec.Color == "" || !(spec.Radius > 0) || math.IsNaN(spec.X) || math.IsNaN(spec.Y) {
		return SpawnSpec{}, fmt.Errorf("spawn script: %+v: %w", spec, ErrBadSpawn)
	}
	s.count++
	return spec, nil
}
