package json

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cxykevin/tinyjson/library/stack"
)

const hexDigits = "0123456789ABCDEF"

// appendNumber 追加最短可往返的十进制表示，指数在 [-4, 17) 之外时使用科学计数法
func appendNumber(dst []byte, n float64) []byte {
	if abs := math.Abs(n); abs != 0 && (abs < 1e-4 || abs >= 1e17) {
		return strconv.AppendFloat(dst, n, 'e', -1, 64)
	}
	return strconv.AppendFloat(dst, n, 'f', -1, 64)
}

// Encoder 把 Value 树序列化为紧凑 JSON
type Encoder struct {
	initSize int
	num      [32]byte
}

// NewEncoder 创建序列化器
func NewEncoder(opts Options) *Encoder {
	size := opts.StringifyInitSize
	if size <= 0 {
		size = DefaultStringifyInitSize
	}
	return &Encoder{initSize: size}
}

// Encode 使用一次性的序列化器序列化 v
func Encode(v *Value) ([]byte, error) {
	return NewEncoder(Options{}).Encode(v)
}

// Encode 序列化 v，返回的缓冲归调用方所有
//
// 返回切片之后紧跟一个不属于 JSON 的 0 哨兵字节：out[:len(out)+1][len(out)] == 0。
func (e *Encoder) Encode(v *Value) ([]byte, error) {
	buf := stack.NewWithSize[byte](e.initSize)
	if err := e.stringifyValue(buf, v); err != nil {
		return nil, err
	}
	buf.Push(0)
	out := buf.Items()
	return out[:len(out)-1], nil
}

func (e *Encoder) stringifyString(buf *stack.Stack[byte], s []byte) {
	head := buf.Size()
	// 最坏情况每个字节都变成 \u00XX
	region := buf.PushN(len(s)*6 + 2)
	p := 0
	region[p] = '"'
	p++
	for _, ch := range s {
		switch ch {
		case '"':
			region[p], region[p+1] = '\\', '"'
			p += 2
		case '\\':
			region[p], region[p+1] = '\\', '\\'
			p += 2
		case '\b':
			region[p], region[p+1] = '\\', 'b'
			p += 2
		case '\f':
			region[p], region[p+1] = '\\', 'f'
			p += 2
		case '\n':
			region[p], region[p+1] = '\\', 'n'
			p += 2
		case '\r':
			region[p], region[p+1] = '\\', 'r'
			p += 2
		case '\t':
			region[p], region[p+1] = '\\', 't'
			p += 2
		default:
			if ch < 0x20 {
				copy(region[p:], `\u00`)
				region[p+4] = hexDigits[ch>>4]
				region[p+5] = hexDigits[ch&15]
				p += 6
			} else {
				region[p] = ch
				p++
			}
		}
	}
	region[p] = '"'
	p++
	buf.Truncate(head + p)
}

func (e *Encoder) stringifyValue(buf *stack.Stack[byte], v *Value) error {
	switch v.Type() {
	case TypeNull:
		buf.Push([]byte(literalNull)...)
	case TypeBoolean:
		if v.b {
			buf.Push([]byte(literalTrue)...)
		} else {
			buf.Push([]byte(literalFalse)...)
		}
	case TypeNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return &UnsupportedValueError{Number: v.n}
		}
		buf.Push(appendNumber(e.num[:0], v.n)...)
	case TypeString:
		e.stringifyString(buf, v.s)
	case TypeArray:
		buf.Push('[')
		for i := range v.a {
			if i > 0 {
				buf.Push(',')
			}
			if err := e.stringifyValue(buf, &v.a[i]); err != nil {
				return err
			}
		}
		buf.Push(']')
	case TypeObject:
		buf.Push('{')
		for i := range v.o {
			if i > 0 {
				buf.Push(',')
			}
			e.stringifyString(buf, v.o[i].Key)
			buf.Push(':')
			if err := e.stringifyValue(buf, &v.o[i].Value); err != nil {
				return err
			}
		}
		buf.Push('}')
	default:
		panic(fmt.Sprintf("json: invalid type %d", v.typ))
	}
	return nil
}
