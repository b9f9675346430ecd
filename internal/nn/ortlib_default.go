//go:build !darwin

package nn

import (
	"fmt"
	"path/filepath"
)

func resolveSharedLibraryPath(libPath string) (string, error) {
	if libPath == "" {
		return "", fmt.Errorf("empty onnxruntime shared library path")
	}
	absLibPath, err := filepath.Abs(libPath)
	if err != nil {
		return "", err
	}
	return absLibPath, nil
}

func configureSearchPath(libDir string) {
	prependPathEnv("LD_LIBRARY_PATH", libDir)
}
