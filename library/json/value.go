package json

import "fmt"

// Value JSON 值，零值为 null
//
// 一棵 Value 树独占它的全部内容：数组元素、对象成员和字符串字节都不与其他节点共享。
type Value struct {
	typ Type
	b   bool
	n   float64
	s   []byte
	a   []Value  // len 为元素数量，cap 为容量
	o   []Member // len 为成员数量，cap 为容量
}

// Member 对象成员
type Member struct {
	Key   []byte
	Value Value
}

// New 创建指定类型的空值
func New(t Type) Value {
	switch t {
	case TypeNull, TypeBoolean, TypeNumber, TypeArray, TypeObject:
		return Value{typ: t}
	case TypeString:
		return Value{typ: t, s: []byte{}}
	default:
		panic(fmt.Sprintf("json: invalid type %d", t))
	}
}

// NewNull 创建 null
func NewNull() Value {
	return Value{}
}

// NewBoolean 创建布尔值
func NewBoolean(b bool) Value {
	return Value{typ: TypeBoolean, b: b}
}

// NewNumber 创建数字
func NewNumber(n float64) Value {
	return Value{typ: TypeNumber, n: n}
}

// NewString 创建字符串，复制 s 的内容
func NewString(s []byte) Value {
	var v Value
	v.SetString(s)
	return v
}

// NewStringFrom 从 Go 字符串创建字符串值
func NewStringFrom(s string) Value {
	var v Value
	v.SetStringFrom(s)
	return v
}

// NewArray 创建空数组
func NewArray(capacity int) Value {
	var v Value
	v.SetArray(capacity)
	return v
}

// NewObject 创建空对象
func NewObject(capacity int) Value {
	var v Value
	v.SetObject(capacity)
	return v
}

func (v *Value) expect(op string, t Type) {
	if v == nil {
		panic(fmt.Sprintf("json: %s on nil value", op))
	}
	if v.typ != t {
		panic(fmt.Sprintf("json: %s on %s value, want %s", op, v.typ, t))
	}
}

// Type 返回值类型
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// Free 递归释放内容并重置为 null
func (v *Value) Free() {
	switch v.typ {
	case TypeArray:
		for i := range v.a {
			v.a[i].Free()
		}
	case TypeObject:
		for i := range v.o {
			v.o[i].Key = nil
			v.o[i].Value.Free()
		}
	}
	*v = Value{}
}

// GetNull 断言为 null
func (v *Value) GetNull() {
	v.expect("GetNull", TypeNull)
}

// SetNull 设置为 null
func (v *Value) SetNull() {
	v.Free()
}

// GetBoolean 获取布尔值
func (v *Value) GetBoolean() bool {
	v.expect("GetBoolean", TypeBoolean)
	return v.b
}

// SetBoolean 设置布尔值
func (v *Value) SetBoolean(b bool) {
	v.Free()
	v.typ = TypeBoolean
	v.b = b
}

// GetNumber 获取数字
func (v *Value) GetNumber() float64 {
	v.expect("GetNumber", TypeNumber)
	return v.n
}

// SetNumber 设置数字
func (v *Value) SetNumber(n float64) {
	v.Free()
	v.typ = TypeNumber
	v.n = n
}

// GetString 获取字符串字节，调用方不得修改返回的切片
func (v *Value) GetString() []byte {
	v.expect("GetString", TypeString)
	return v.s
}

// GetStringLen 获取字符串长度
func (v *Value) GetStringLen() int {
	v.expect("GetStringLen", TypeString)
	return len(v.s)
}

// GetText 以 Go 字符串形式获取字符串值
func (v *Value) GetText() string {
	v.expect("GetText", TypeString)
	return string(v.s)
}

// SetString 设置字符串，复制 s，调用方保留 s 的所有权
func (v *Value) SetString(s []byte) {
	buf := make([]byte, len(s))
	copy(buf, s)
	v.Free()
	v.typ = TypeString
	v.s = buf
}

// SetStringFrom 从 Go 字符串设置字符串值
func (v *Value) SetStringFrom(s string) {
	v.Free()
	v.typ = TypeString
	v.s = []byte(s)
}

// SetArray 设置为空数组，capacity 为 0 时不分配存储
func (v *Value) SetArray(capacity int) {
	v.Free()
	v.typ = TypeArray
	if capacity > 0 {
		v.a = make([]Value, 0, max(MinCapacity, capacity))
	}
}

// SetObject 设置为空对象，capacity 为 0 时不分配存储
func (v *Value) SetObject(capacity int) {
	v.Free()
	v.typ = TypeObject
	if capacity > 0 {
		v.o = make([]Member, 0, max(MinCapacity, capacity))
	}
}

// growCapacity 追加前容量已满时的新容量
func growCapacity(size int) int {
	return max(MinCapacity, size+size/2)
}

// shrinkCapacity 删除后的目标容量：元素不足容量一半时折半，直到不再满足条件
func shrinkCapacity(size, capacity int) int {
	for capacity > MinCapacity && size < capacity/2 {
		capacity = max(MinCapacity, capacity/2)
	}
	return capacity
}

// IsEqual 结构相等比较
func IsEqual(lhs, rhs *Value) bool {
	if lhs.Type() != rhs.Type() {
		return false
	}
	switch lhs.Type() {
	case TypeBoolean:
		return lhs.b == rhs.b
	case TypeNumber:
		return lhs.n == rhs.n
	case TypeString:
		return string(lhs.s) == string(rhs.s)
	case TypeArray:
		if len(lhs.a) != len(rhs.a) {
			return false
		}
		for i := range lhs.a {
			if !IsEqual(&lhs.a[i], &rhs.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		return objectEqual(lhs.o, rhs.o)
	default:
		return true
	}
}

// objectEqual 成员顺序无关，每个成员必须匹配对方一个尚未被匹配的成员
func objectEqual(lhs, rhs []Member) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	used := make([]bool, len(rhs))
	for i := range lhs {
		found := false
		for j := range rhs {
			if used[j] || string(lhs[i].Key) != string(rhs[j].Key) {
				continue
			}
			if IsEqual(&lhs[i].Value, &rhs[j].Value) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal 等价于 IsEqual(v, other)
func (v *Value) Equal(other *Value) bool {
	return IsEqual(v, other)
}

// Clone 返回深拷贝
func (v *Value) Clone() Value {
	switch v.Type() {
	case TypeString:
		s := make([]byte, len(v.s))
		copy(s, v.s)
		return Value{typ: TypeString, s: s}
	case TypeArray:
		out := Value{typ: TypeArray}
		if v.a != nil {
			out.a = make([]Value, len(v.a), cap(v.a))
			for i := range v.a {
				out.a[i] = v.a[i].Clone()
			}
		}
		return out
	case TypeObject:
		out := Value{typ: TypeObject}
		if v.o != nil {
			out.o = make([]Member, len(v.o), cap(v.o))
			for i := range v.o {
				key := make([]byte, len(v.o[i].Key))
				copy(key, v.o[i].Key)
				out.o[i] = Member{Key: key, Value: v.o[i].Value.Clone()}
			}
		}
		return out
	case TypeBoolean, TypeNumber:
		return *v
	default:
		return Value{}
	}
}

// Copy 把 src 深拷贝到 dst，dst 原内容被释放
func Copy(dst, src *Value) {
	if dst == src {
		return
	}
	c := src.Clone()
	dst.Free()
	*dst = c
}

// Move 把 src 的内容转移到 dst，src 重置为 null
func Move(dst, src *Value) {
	if dst == src {
		return
	}
	tmp := *src
	*src = Value{}
	dst.Free()
	*dst = tmp
}

// Swap 交换两个值的内容
func Swap(lhs, rhs *Value) {
	if lhs == rhs {
		return
	}
	*lhs, *rhs = *rhs, *lhs
}
