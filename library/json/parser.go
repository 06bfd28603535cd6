package json

import (
	"bytes"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/cxykevin/tinyjson/library/stack"
)

// Options 编解码缓冲配置
type Options struct {
	StackInitSize     int // 解析暂存栈初始大小
	StringifyInitSize int // 序列化输出缓冲初始大小
	MaxDepth          int // 数组/对象最大嵌套层数
}

// Decoder 递归下降解析器
//
// Decoder 可以重复使用，但不能被多个 goroutine 同时使用。
type Decoder struct {
	json     []byte
	pos      int
	depth    int
	maxDepth int
	stack    *stack.Stack[byte] // 字符串暂存
}

// NewDecoder 创建解析器
func NewDecoder(opts Options) *Decoder {
	size := opts.StackInitSize
	if size <= 0 {
		size = DefaultStackInitSize
	}
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &Decoder{maxDepth: depth, stack: stack.NewWithSize[byte](size)}
}

// Decode 使用一次性的解析器解析 data
func Decode(data []byte) (Value, error) {
	return NewDecoder(Options{}).Decode(data)
}

// ScratchSize 返回暂存栈当前占用，两次 Decode 之间恒为 0
func (d *Decoder) ScratchSize() int {
	return d.stack.Size()
}

// Decode 解析 data，输入在切片末尾或第一个 0 字节处结束
//
// 失败时返回 null 和 *SyntaxError，本次调用暂存的内容全部回滚。
func (d *Decoder) Decode(data []byte) (Value, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	d.json = data
	d.pos = 0
	d.depth = 0
	d.stack.Reset()
	defer func() {
		d.json = nil
	}()

	var v Value
	d.parseWhitespace()
	code := d.parseValue(&v)
	if code == OK {
		d.parseWhitespace()
		if d.peek() != 0 {
			v.Free()
			code = ErrRootNotSingular
		}
	}
	if d.stack.Size() != 0 {
		panic("json: scratch stack not unwound")
	}
	if code != OK {
		return Value{}, &SyntaxError{Code: code, Offset: d.pos}
	}
	return v, nil
}

func (d *Decoder) at(p int) byte {
	if p < len(d.json) {
		return d.json[p]
	}
	return 0
}

func (d *Decoder) peek() byte {
	return d.at(d.pos)
}

func (d *Decoder) expect(ch byte) {
	if d.peek() != ch {
		panic("json: parser cursor out of sync")
	}
	d.pos++
}

func (d *Decoder) parseWhitespace() {
	p := d.pos
	for {
		switch d.at(p) {
		case ' ', '\t', '\n', '\r':
			p++
			continue
		}
		break
	}
	d.pos = p
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isDigit1to9(ch byte) bool { return ch >= '1' && ch <= '9' }

// parseLiteral 逐字符匹配 null / true / false
func (d *Decoder) parseLiteral(v *Value, literal string, t Type) ErrorCode {
	d.expect(literal[0])
	for i := 1; i < len(literal); i++ {
		if d.at(d.pos+i-1) != literal[i] {
			return ErrInvalidValue
		}
	}
	d.pos += len(literal) - 1
	v.typ = t
	v.b = t == TypeBoolean && literal == literalTrue
	return OK
}

func (d *Decoder) parseNumber(v *Value) ErrorCode {
	p := d.pos
	if d.at(p) == '-' {
		p++
	}
	if d.at(p) == '0' {
		p++
		// 单个 0 之后不能再跟数字，比如 0123
		if isDigit(d.at(p)) {
			return ErrInvalidValue
		}
	} else {
		if !isDigit1to9(d.at(p)) {
			return ErrInvalidValue
		}
		for p++; isDigit(d.at(p)); p++ {
		}
	}
	if d.at(p) == '.' {
		p++
		if !isDigit(d.at(p)) {
			return ErrInvalidValue
		}
		for p++; isDigit(d.at(p)); p++ {
		}
	}
	if d.at(p) == 'e' || d.at(p) == 'E' {
		p++
		if d.at(p) == '+' || d.at(p) == '-' {
			p++
		}
		if !isDigit(d.at(p)) {
			return ErrInvalidValue
		}
		for p++; isDigit(d.at(p)); p++ {
		}
	}
	n, err := strconv.ParseFloat(string(d.json[d.pos:p]), 64)
	if err != nil && math.IsInf(n, 0) {
		return ErrNumberTooBig
	}
	v.typ = TypeNumber
	v.n = n
	d.pos = p
	return OK
}

// parseHex4 读取 4 位 16 进制数
func (d *Decoder) parseHex4(p int) (rune, int, bool) {
	var u rune
	for i := 0; i < 4; i++ {
		ch := d.at(p)
		p++
		u <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			u |= rune(ch - '0')
		case ch >= 'A' && ch <= 'F':
			u |= rune(ch - 'A' + 10)
		case ch >= 'a' && ch <= 'f':
			u |= rune(ch - 'a' + 10)
		default:
			return 0, p, false
		}
	}
	return u, p, true
}

func (d *Decoder) encodeUTF8(u rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], u)
	d.stack.Push(buf[:n]...)
}

// parseStringRaw 解析字符串并返回独立分配的字节，失败时回滚暂存栈
func (d *Decoder) parseStringRaw() ([]byte, ErrorCode) {
	head := d.stack.Size()
	fail := func(p int, code ErrorCode) ([]byte, ErrorCode) {
		d.stack.Truncate(head)
		d.pos = p
		return nil, code
	}
	d.expect('"')
	p := d.pos
	for {
		ch := d.at(p)
		p++
		switch ch {
		case '"':
			d.pos = p
			s := d.stack.PopN(d.stack.Size() - head)
			if s == nil {
				s = []byte{}
			}
			return s, OK
		case '\\':
			esc := d.at(p)
			p++
			switch esc {
			case '"', '\\', '/':
				d.stack.Push(esc)
			case 'b':
				d.stack.Push('\b')
			case 'f':
				d.stack.Push('\f')
			case 'n':
				d.stack.Push('\n')
			case 'r':
				d.stack.Push('\r')
			case 't':
				d.stack.Push('\t')
			case 'u':
				u, np, ok := d.parseHex4(p)
				if !ok {
					return fail(p, ErrInvalidUnicodeHex)
				}
				p = np
				if u >= 0xDC00 && u <= 0xDFFF {
					return fail(p, ErrInvalidUnicodeSurrogate)
				}
				if u >= 0xD800 && u <= 0xDBFF {
					// 高代理项之后必须紧跟 \u 低代理项
					if d.at(p) != '\\' || d.at(p+1) != 'u' {
						return fail(p, ErrInvalidUnicodeSurrogate)
					}
					u2, np, ok := d.parseHex4(p + 2)
					if !ok {
						return fail(np, ErrInvalidUnicodeHex)
					}
					p = np
					if u2 < 0xDC00 || u2 > 0xDFFF {
						return fail(p, ErrInvalidUnicodeSurrogate)
					}
					u = (((u - 0xD800) << 10) | (u2 - 0xDC00)) + 0x10000
				}
				d.encodeUTF8(u)
			default:
				return fail(p, ErrInvalidStringEscape)
			}
		case 0:
			return fail(p-1, ErrMissingQuotationMark)
		default:
			if ch < 0x20 {
				return fail(p-1, ErrInvalidStringChar)
			}
			d.stack.Push(ch)
		}
	}
}

func (d *Decoder) parseString(v *Value) ErrorCode {
	s, code := d.parseStringRaw()
	if code != OK {
		return code
	}
	v.typ = TypeString
	v.s = s
	return OK
}

// enter 进入一层嵌套，超过 maxDepth 时返回 false
func (d *Decoder) enter() bool {
	d.depth++
	return d.depth <= d.maxDepth
}

func (d *Decoder) parseArray(v *Value) ErrorCode {
	d.expect('[')
	defer func() { d.depth-- }()
	if !d.enter() {
		return ErrInvalidValue
	}
	d.parseWhitespace()
	if d.peek() == ']' {
		d.pos++
		v.typ = TypeArray
		return OK
	}
	elems := stack.NewWithSize[Value](MinCapacity)
	var code ErrorCode
	for {
		var e Value
		if code = d.parseValue(&e); code != OK {
			break
		}
		d.parseWhitespace()
		elems.Push(e)
		if d.peek() == ',' {
			d.pos++
			d.parseWhitespace()
			if d.peek() == ']' {
				code = ErrMissingCommaOrSquareBracket
				break
			}
		} else if d.peek() == ']' {
			d.pos++
			size := elems.Size()
			v.typ = TypeArray
			v.a = make([]Value, size, max(MinCapacity, size))
			copy(v.a, elems.PopN(size))
			return OK
		} else {
			code = ErrMissingCommaOrSquareBracket
			break
		}
	}
	// 释放已暂存的元素
	for !elems.IsEmpty() {
		e, _ := elems.Pop()
		e.Free()
	}
	return code
}

func (d *Decoder) parseObject(v *Value) ErrorCode {
	d.expect('{')
	defer func() { d.depth-- }()
	if !d.enter() {
		return ErrInvalidValue
	}
	d.parseWhitespace()
	if d.peek() == '}' {
		d.pos++
		v.typ = TypeObject
		return OK
	}
	members := stack.NewWithSize[Member](MinCapacity)
	var code ErrorCode
	for {
		if d.peek() != '"' {
			code = ErrMissingKey
			break
		}
		var m Member
		if m.Key, code = d.parseStringRaw(); code != OK {
			break
		}
		d.parseWhitespace()
		if d.peek() != ':' {
			code = ErrMissingColon
			break
		}
		d.pos++
		d.parseWhitespace()
		if code = d.parseValue(&m.Value); code != OK {
			break
		}
		members.Push(m)
		d.parseWhitespace()
		if d.peek() == ',' {
			d.pos++
			d.parseWhitespace()
		} else if d.peek() == '}' {
			d.pos++
			size := members.Size()
			v.typ = TypeObject
			v.o = make([]Member, size, max(MinCapacity, size))
			copy(v.o, members.PopN(size))
			return OK
		} else {
			code = ErrMissingCommaOrCurlyBracket
			break
		}
	}
	// 释放已暂存的成员，未提交的键随 m 一起丢弃
	for !members.IsEmpty() {
		m, _ := members.Pop()
		m.Key = nil
		m.Value.Free()
	}
	return code
}

func (d *Decoder) parseValue(v *Value) ErrorCode {
	switch d.peek() {
	case 'n':
		return d.parseLiteral(v, literalNull, TypeNull)
	case 't':
		return d.parseLiteral(v, literalTrue, TypeBoolean)
	case 'f':
		return d.parseLiteral(v, literalFalse, TypeBoolean)
	case '"':
		return d.parseString(v)
	case '[':
		return d.parseArray(v)
	case '{':
		return d.parseObject(v)
	case 0:
		return ErrExpectValue
	default:
		return d.parseNumber(v)
	}
}
