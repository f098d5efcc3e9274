//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// PrepareSaveDir 确保 /data/data/{package}/saves 存在并可写
// gdata 在 Android 上不会预先创建子目录，需在 gdata.Open 之前调用
func PrepareSaveDir() error {
	dir := SavePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// SavePath 应用私有目录，包名从 /proc/self/cmdline 读取
func SavePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	name := bytes.TrimSpace(bytes.ReplaceAll(data, []byte{0}, nil))
	if len(name) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(name))
}
