// Package configutil 配置路径工具
package configutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath 展开配置路径开头的 ~ 或 ~/ 以及 $VAR，其余形式如 ~user 原样保留
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
