package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cxykevin/tinyjson/library/json"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorGray   = lipgloss.Color("245")
)

var (
	styleKey     = lipgloss.NewStyle().Foreground(colorBlue)
	styleString  = lipgloss.NewStyle().Foreground(colorGreen)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleLiteral = lipgloss.NewStyle().Foreground(colorYellow)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

// treeStyle 打印树时的配色
type treeStyle struct{}

func (treeStyle) Key(s string) string {
	return styleKey.Render(s)
}

func (treeStyle) Scalar(t json.Type, s string) string {
	switch t {
	case json.TypeString:
		return styleString.Render(s)
	case json.TypeNumber:
		return styleNumber.Render(s)
	default:
		return styleLiteral.Render(s)
	}
}

// style 返回打印配色，未开启颜色时为 nil
func (c *CLI) style() json.Style {
	if !c.color {
		return nil
	}
	return treeStyle{}
}

func (c *CLI) render(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

// printStatus 输出一行检查结果
func (c *CLI) printStatus(w io.Writer, name string, err error) {
	if err == nil {
		fmt.Fprintf(w, "%s: %s\n", name, c.render(styleSuccess, "ok"))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", name, c.render(styleError, "error: "+describe(err)))
}

// printKeyValue 输出带标签的值
func (c *CLI) printKeyValue(w io.Writer, key string, value string) {
	if c.color {
		fmt.Fprintln(w, styleLabel.Render(key)+" "+value)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", key, value)
}
