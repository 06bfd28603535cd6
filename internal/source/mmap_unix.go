//go:build unix

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile 只读映射整个文件
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	content, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return content, func() error { return unix.Munmap(content) }, nil
}
