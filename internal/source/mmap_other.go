//go:build !unix

package source

import (
	"io"
	"os"
)

// mapFile 不支持映射的平台直接读取
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	content := make([]byte, size)
	if _, err := io.ReadFull(f, content); err != nil {
		return nil, nil, err
	}
	return content, nil, nil
}
