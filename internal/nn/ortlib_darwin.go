//go:build darwin

package nn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const darwinSharedLibraryName = "libonnxruntime.dylib"

func resolveSharedLibraryPath(libPath string) (string, error) {
	candidates := make([]string, 0, 3)

	// Prefer a project-local dylib when running from source.
	candidates = append(candidates, darwinSharedLibraryName)

	// Fall back to a dylib next to the executable.
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), darwinSharedLibraryName))
	}

	// An explicitly provided path is tried last.
	if libPath != "" {
		candidates = append(candidates, libPath)
	}

	checked := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		if p == "" {
			continue
		}
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

	return "", fmt.Errorf("cannot find %s, checked: %s", darwinSharedLibraryName, strings.Join(checked, ", "))
}

func configureSearchPath(libDir string) {
	prependPathEnv("DYLD_LIBRARY_PATH", libDir)
}
