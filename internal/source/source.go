// Package source 读取待解析的输入，限制大小并统一转为 UTF-8
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// mmapThreshold 文件不小于该大小时使用内存映射读取
const mmapThreshold = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrTooLarge 输入超过大小限制
var ErrTooLarge = errors.New("input too large")

// Options 读取参数
type Options struct {
	MaxSize   int64 // <= 0 表示不限制
	Transcode bool  // 非 UTF-8 输入按检测到的编码转换
}

// Data 读取到的输入，使用完需要 Close
type Data struct {
	Bytes    []byte
	Encoding string
	Mapped   bool
	release  func() error
}

// Close 释放映射的内存，可以重复调用
func (d *Data) Close() error {
	if d.release == nil {
		return nil
	}
	release := d.release
	d.release = nil
	d.Bytes = nil
	return release()
}

func checkSize(size int64, opts Options) error {
	if opts.MaxSize > 0 && size > opts.MaxSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, size, opts.MaxSize)
	}
	return nil
}

// ReadFile 读取文件，path 为 "-" 时读取标准输入
func ReadFile(path string, opts Options) (*Data, error) {
	if path == "-" {
		return Read(os.Stdin, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return Read(f, opts)
	}
	if err := checkSize(info.Size(), opts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var d *Data
	if info.Size() >= mmapThreshold {
		content, release, err := mapFile(f, info.Size())
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", path, err)
		}
		d = &Data{Bytes: content, Mapped: release != nil, release: release}
	} else {
		content, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		d = &Data{Bytes: content}
	}
	if err := d.normalize(opts); err != nil {
		d.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read 从 r 读取全部输入
func Read(r io.Reader, opts Options) (*Data, error) {
	if opts.MaxSize > 0 {
		r = io.LimitReader(r, opts.MaxSize+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := checkSize(int64(len(content)), opts); err != nil {
		return nil, err
	}
	d := &Data{Bytes: content}
	if err := d.normalize(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// normalize 去掉 BOM，按需转码，转码后不再需要映射
func (d *Data) normalize(opts Options) error {
	if !opts.Transcode {
		d.Encoding = "utf-8"
		return nil
	}
	out, name, converted, err := transcode(d.Bytes)
	if err != nil {
		return err
	}
	if converted && d.Mapped {
		release := d.release
		d.release = nil
		d.Mapped = false
		if err := release(); err != nil {
			return err
		}
	}
	d.Bytes = out
	d.Encoding = name
	return nil
}

// Transcode 检测 content 的编码并转为 UTF-8，返回检测到的编码名
func Transcode(content []byte) ([]byte, string, error) {
	out, name, _, err := transcode(content)
	return out, name, err
}

func transcode(content []byte) ([]byte, string, bool, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return content, "utf-8", false, nil
	}

	// 处理 BOM 并猜测编码，无法判断时按 windows-1252
	e, name, _ := charset.DetermineEncoding(content, "")
	out, _, err := transform.Bytes(e.NewDecoder(), content)
	if err != nil {
		return nil, name, false, fmt.Errorf("transcode from %s: %w", name, err)
	}
	return bytes.TrimPrefix(out, utf8BOM), name, true, nil
}
