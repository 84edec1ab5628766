package kernel

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// binaryNames maps GOOS/GOARCH to the kernel binary filename shipped for
// that platform.
var binaryNames = map[string]string{
	"linux/amd64":   "huefy-kernel-linux-amd64",
	"linux/arm64":   "huefy-kernel-linux-arm64",
	"darwin/amd64":  "huefy-kernel-darwin-amd64",
	"darwin/arm64":  "huefy-kernel-darwin-arm64",
	"windows/amd64": "huefy-kernel-windows-amd64.exe",
}

// ResolveBinary returns the path of the kernel binary for the current
// platform inside dir, verifying it exists and is executable. A missing
// or non-executable binary is a packaging defect and fails fatally.
func ResolveBinary(dir string) (string, error) {
	return resolveBinaryFor(dir, runtime.GOOS, runtime.GOARCH)
}

func resolveBinaryFor(dir, goos, goarch string) (string, error) {
	name, ok := binaryNames[goos+"/"+goarch]
	if !ok {
		return "", fmt.Errorf("unsupported platform %s/%s", goos, goarch)
	}

	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("kernel binary not found at %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("kernel binary path %s is a directory", path)
	}
	if goos != "windows" && info.Mode().Perm()&0o111 == 0 {
		return "", fmt.Errorf("kernel binary %s is not executable", path)
	}

	return path, nil
}
