package log

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Entry 日志文件中的一条记录
type Entry struct {
	Timestamp string
	Level     string
	Module    string
	Message   string
}

// 2025/12/07 14:04:35 [INFO][log] log inited
var lineRe = regexp.MustCompile(`^(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})\s+\[([A-Z]+)\]\[([^\]]+)\]\s+(.*)$`)

var levelPriority = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// ParseLine 解析一行日志
func ParseLine(line string) (Entry, bool) {
	matches := lineRe.FindStringSubmatch(line)
	if len(matches) != 5 {
		return Entry{}, false
	}
	return Entry{
		Timestamp: matches[1],
		Level:     matches[2],
		Module:    matches[3],
		Message:   matches[4],
	}, true
}

// LevelAtLeast 判断 level 是否不低于 min，未知级别总是显示
func LevelAtLeast(level string, min string) bool {
	p, ok := levelPriority[level]
	if !ok {
		return true
	}
	minP, ok := levelPriority[strings.ToUpper(min)]
	if !ok {
		return true
	}
	return p >= minP
}

// ReadEntries 跳过前 skip 行后逐行回调，ok 为 false 表示该行无法解析
//
// 返回读到的总行数，用于下次增量读取。
func ReadEntries(r io.Reader, skip int, fn func(lineNum int, e Entry, ok bool, raw string)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= skip {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, ok := ParseLine(line)
		fn(lineNum, e, ok, line)
	}
	return lineNum, scanner.Err()
}
