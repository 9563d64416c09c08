package util

import (
	"os"
	"path/filepath"
	"strings"
)

// 文件名最大长度（按rune计）
const maxFilenameLength = 120

// DefaultFilename 计算后文件名为空时的兜底名称
const DefaultFilename = "document"

// SaveFile 保存文件
func SaveFile(path string, data []byte) error {
	// 确保目录存在
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// 写入文件
	return os.WriteFile(path, data, 0644)
}

// SanitizeFilename 清理下载文件名：去除非法字符、折叠空白、限制长度。
// 结果为空时返回 DefaultFilename。
func SanitizeFilename(name string) string {
	// 替换文件系统非法字符
	replacer := strings.NewReplacer(
		"/", "", "\\", "", ":", "", "*", "",
		"?", "", "\"", "", "<", "", ">", "", "|", "",
	)
	name = replacer.Replace(name)

	// 控制字符一律去除
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)

	// 折叠连续空白
	name = strings.Join(strings.Fields(name), " ")

	// 截断到最大长度
	runes := []rune(name)
	if len(runes) > maxFilenameLength {
		name = strings.TrimSpace(string(runes[:maxFilenameLength]))
	}

	if name == "" {
		return DefaultFilename
	}
	return name
}
