package product

import (
	"runtime"
	"strings"
)

// UserAgentTemplate --version 输出模板
const UserAgentTemplate = "Tinyjson/{version} ({system} {sysArch}) Go/{goVersion}"

// UserAgent 按 UserAgentTemplate 展开的版本信息
var UserAgent = Render(UserAgentTemplate)

// Render 替换模板中的 {version} {system} {sysArch} {goVersion}
func Render(tmpl string) string {
	return strings.NewReplacer(
		"{version}", Version,
		"{system}", runtime.GOOS,
		"{sysArch}", runtime.GOARCH,
		"{goVersion}", runtime.Version(),
	).Replace(tmpl)
}
