package json

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultIndent 打印时每层缩进
const DefaultIndent = " "

// Style 打印时给文本着色
type Style interface {
	Key(s string) string
	Scalar(t Type, s string) string
}

// Fprint 把 v 以缩进树的形式写到 w，用于调试，输出不是 JSON
func Fprint(w io.Writer, v *Value) error {
	return FprintStyle(w, v, DefaultIndent, nil)
}

// FprintIndent 同 Fprint，指定每层缩进
func FprintIndent(w io.Writer, v *Value, indent string) error {
	return FprintStyle(w, v, indent, nil)
}

// FprintStyle 同 FprintIndent，style 为 nil 时不着色
func FprintStyle(w io.Writer, v *Value, indent string, style Style) error {
	p := printer{w: bufio.NewWriter(w), indent: indent, style: style}
	p.value(v, indent)
	return p.w.Flush()
}

// Sprint 返回 Fprint 的输出
func Sprint(v *Value) string {
	var sb strings.Builder
	_ = Fprint(&sb, v)
	return sb.String()
}

type printer struct {
	w      *bufio.Writer
	indent string
	style  Style
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', 6, 64)
}

func (p *printer) scalar(t Type, s string) {
	if p.style != nil {
		s = p.style.Scalar(t, s)
	}
	p.w.WriteString(s)
}

func (p *printer) key(s string) {
	if p.style != nil {
		s = p.style.Key(s)
	}
	p.w.WriteString(s)
}

func (p *printer) value(v *Value, prefix string) {
	inner := prefix + p.indent
	switch v.Type() {
	case TypeNull:
		p.scalar(TypeNull, literalNull)
	case TypeBoolean:
		if v.b {
			p.scalar(TypeBoolean, literalTrue)
		} else {
			p.scalar(TypeBoolean, literalFalse)
		}
	case TypeNumber:
		p.scalar(TypeNumber, formatNumber(v.n))
	case TypeString:
		p.scalar(TypeString, `"`+string(v.s)+`"`)
	case TypeArray:
		p.w.WriteString("[\n")
		for i := range v.a {
			p.w.WriteString(inner)
			p.key(strconv.Itoa(i))
			p.w.WriteString(": ")
			p.value(&v.a[i], inner)
		}
		p.w.WriteString(prefix)
		p.w.WriteString("]")
	case TypeObject:
		p.w.WriteString("{\n")
		for i := range v.o {
			p.w.WriteString(inner)
			p.key(string(v.o[i].Key))
			p.w.WriteString(": ")
			p.value(&v.o[i].Value, inner)
		}
		p.w.WriteString(prefix)
		p.w.WriteString("}")
	}
	p.w.WriteString(",\n")
}
