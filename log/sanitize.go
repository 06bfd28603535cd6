package log

import (
	"regexp"
	"strconv"
	"strings"
)

// maxMessageLen 单条日志最大长度，超出部分截断
const maxMessageLen = 4096

// 密钥前缀
const prefixPattern = `(?:sk-|AIza|ak-|sk_|pk_|key-|app-|secret-|token-|Bearer|ghp_)`

var sensitiveRe = regexp.MustCompile(`\b(` + prefixPattern + `)[A-Za-z0-9-_]{8,}\b|(https?://|www\.)[^/\s]+(/\S*)?`)

// SanitizeSensitiveInfo 脱敏密钥和网址
// 密钥保留前缀替换为 sk-***，网址隐藏主机部分
func SanitizeSensitiveInfo(text string) string {
	if text == "" {
		return ""
	}

	result := sensitiveRe.ReplaceAllStringFunc(text, func(match string) string {
		submatches := sensitiveRe.FindStringSubmatch(match)
		if len(submatches) == 0 {
			return match
		}

		// 密钥
		if submatches[1] != "" {
			return submatches[1] + "***"
		}

		// 网址
		protocol := submatches[2]
		path := submatches[3]
		if path != "" {
			return protocol + "***" + path
		}
		return protocol + "***"
	})

	return strings.TrimSpace(result)
}

// truncate 截断过长的日志
func truncate(text string) string {
	if len(text) <= maxMessageLen {
		return text
	}
	return text[:maxMessageLen] + "...(" + strconv.Itoa(len(text)) + " bytes)"
}
