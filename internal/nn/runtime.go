package nn

import (
	"os"
	"path/filepath"

	ort "github.com/yalue/onnxruntime_go"
)

// InitRuntime loads the onnxruntime shared library and initializes the
// environment, once per process. Calling it again after a successful init is
// a no-op.
func InitRuntime(libPath string) error {
	if ort.IsInitialized() {
		return nil
	}
	resolved, err := resolveSharedLibraryPath(libPath)
	if err != nil {
		return err
	}
	configureSearchPath(filepath.Dir(resolved))
	ort.SetSharedLibraryPath(resolved)
	return ort.InitializeEnvironment()
}

// DestroyRuntime tears the onnxruntime environment down at shutdown.
func DestroyRuntime() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

func prependPathEnv(key, dir string) {
	cur := os.Getenv(key)
	if cur == "" {
		_ = os.Setenv(key, dir)
		return
	}
	_ = os.Setenv(key, dir+string(os.PathListSeparator)+cur)
}
