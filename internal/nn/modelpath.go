package nn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deepholdem/internal/value"
)

// resolveModelPath looks for a weight file in the model directory, the
// working directory and next to the executable, returning the first
// existing candidate. Absence maps to value.ErrWeightsNotFound so callers
// can tell an unavailable model apart from a real failure.
func resolveModelPath(modelDir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty model file name")
	}
	candidates := make([]string, 0, 3)
	if modelDir != "" {
		candidates = append(candidates, filepath.Join(modelDir, name))
	}
	candidates = append(candidates, name)
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}

	checked := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		checked = append(checked, abs)
		info, err := os.Stat(abs)
		if err == nil && !info.IsDir() {
			return abs, nil
		}
	}

	return "", fmt.Errorf("%w: %s, checked: %s", value.ErrWeightsNotFound, name, strings.Join(checked, ", "))
}
