//go:build !android

package utils

// PrepareSaveDir 非 Android 平台由 gdata 自行创建存储目录
func PrepareSaveDir() error {
	return nil
}

// SavePath 非 Android 平台返回空字符串（路径由 gdata 决定）
func SavePath() string {
	return ""
}
