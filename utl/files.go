package utl

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile 写入文件，目录不存在时自动创建，先写临时文件再重命名
func WriteFile(dst string, data []byte) error {
	if dst == "" {
		return fmt.Errorf("empty destination path")
	}

	// 创建目标目录
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
