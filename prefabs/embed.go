package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Dir is the on-disk prefab directory consulted before the embedded copies,
// so tuning and scripts can be edited without rebuilding.
var Dir = "prefabs"

// Load reads a tuning file such as "tuning.yaml" or "prefabs/tuning.yaml".
func Load(name string) ([]byte, error) {
	return read(relPath(name, ""))
}

// LoadScript reads a spawn script. "spawn.tengo", "scripts/spawn.tengo" and
// "prefabs/scripts/spawn.tengo" all name the same file.
func LoadScript(name string) ([]byte, error) {
	return read(relPath(name, "scripts"))
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

// relPath strips any leading "prefabs/" and sub segments, then roots the
// name under sub.
func relPath(name, sub string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if sub != "" {
		s = path.Join(sub, strings.TrimPrefix(s, sub+"/"))
	}
	return s
}
