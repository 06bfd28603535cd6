package json

import "fmt"

func checkIndex(op string, index, size int) {
	if index < 0 || index >= size {
		panic(fmt.Sprintf("json: %s index %d out of range (size=%d)", op, index, size))
	}
}

// ===== 数组 =====

func (v *Value) arrayReserve() {
	if len(v.a) < cap(v.a) {
		return
	}
	a := make([]Value, len(v.a), growCapacity(len(v.a)))
	copy(a, v.a)
	v.a = a
}

func (v *Value) arrayShrink() {
	capacity := shrinkCapacity(len(v.a), cap(v.a))
	if capacity == cap(v.a) {
		return
	}
	a := make([]Value, len(v.a), capacity)
	copy(a, v.a)
	v.a = a
}

// ArraySize 返回数组元素数量
func (v *Value) ArraySize() int {
	v.expect("ArraySize", TypeArray)
	return len(v.a)
}

// ArrayCapacity 返回数组容量
func (v *Value) ArrayCapacity() int {
	v.expect("ArrayCapacity", TypeArray)
	return cap(v.a)
}

// ArrayGetIndex 返回第 index 个元素
func (v *Value) ArrayGetIndex(index int) *Value {
	v.expect("ArrayGetIndex", TypeArray)
	checkIndex("ArrayGetIndex", index, len(v.a))
	return &v.a[index]
}

// ArraySetIndex 用 e 替换第 index 个元素，e 的内容被转移；e 为 nil 时删除该元素
func (v *Value) ArraySetIndex(index int, e *Value) {
	v.expect("ArraySetIndex", TypeArray)
	checkIndex("ArraySetIndex", index, len(v.a))
	if e == nil {
		v.ArrayDelIndex(index)
		return
	}
	if e == &v.a[index] {
		return
	}
	Move(&v.a[index], e)
}

// ArrayAddElement 追加元素，e 的内容被转移
func (v *Value) ArrayAddElement(e *Value) {
	v.expect("ArrayAddElement", TypeArray)
	tmp := *e
	*e = Value{}
	v.arrayReserve()
	v.a = append(v.a, tmp)
}

// ArrayPushBack 追加一个 null 元素并返回它，供调用方填写
func (v *Value) ArrayPushBack() *Value {
	v.expect("ArrayPushBack", TypeArray)
	v.arrayReserve()
	v.a = v.a[:len(v.a)+1]
	v.a[len(v.a)-1] = Value{}
	return &v.a[len(v.a)-1]
}

// ArrayInsertIndex 在 index 处插入元素，后续元素后移，e 的内容被转移
func (v *Value) ArrayInsertIndex(index int, e *Value) {
	v.expect("ArrayInsertIndex", TypeArray)
	if index < 0 || index > len(v.a) {
		panic(fmt.Sprintf("json: ArrayInsertIndex index %d out of range (size=%d)", index, len(v.a)))
	}
	tmp := *e
	*e = Value{}
	v.arrayReserve()
	v.a = v.a[:len(v.a)+1]
	copy(v.a[index+1:], v.a[index:])
	v.a[index] = tmp
}

// ArrayDelIndex 删除第 index 个元素，先释放它再前移后续元素
func (v *Value) ArrayDelIndex(index int) {
	v.expect("ArrayDelIndex", TypeArray)
	checkIndex("ArrayDelIndex", index, len(v.a))
	v.a[index].Free()
	copy(v.a[index:], v.a[index+1:])
	v.a[len(v.a)-1] = Value{}
	v.a = v.a[:len(v.a)-1]
	v.arrayShrink()
}

// ArrayClear 释放全部元素
func (v *Value) ArrayClear() {
	v.expect("ArrayClear", TypeArray)
	if len(v.a) == 0 {
		return
	}
	for i := range v.a {
		v.a[i].Free()
	}
	v.a = v.a[:0]
	v.arrayShrink()
}

// ===== 对象 =====

func (v *Value) objectReserve() {
	if len(v.o) < cap(v.o) {
		return
	}
	o := make([]Member, len(v.o), growCapacity(len(v.o)))
	copy(o, v.o)
	v.o = o
}

func (v *Value) objectShrink() {
	capacity := shrinkCapacity(len(v.o), cap(v.o))
	if capacity == cap(v.o) {
		return
	}
	o := make([]Member, len(v.o), capacity)
	copy(o, v.o)
	v.o = o
}

// ObjectSize 返回成员数量
func (v *Value) ObjectSize() int {
	v.expect("ObjectSize", TypeObject)
	return len(v.o)
}

// ObjectCapacity 返回对象容量
func (v *Value) ObjectCapacity() int {
	v.expect("ObjectCapacity", TypeObject)
	return cap(v.o)
}

// ObjectGetIndex 返回第 index 个成员
func (v *Value) ObjectGetIndex(index int) *Member {
	v.expect("ObjectGetIndex", TypeObject)
	checkIndex("ObjectGetIndex", index, len(v.o))
	return &v.o[index]
}

// ObjectGetIndexKey 返回第 index 个成员的键
func (v *Value) ObjectGetIndexKey(index int) []byte {
	return v.ObjectGetIndex(index).Key
}

// ObjectGetIndexValue 返回第 index 个成员的值
func (v *Value) ObjectGetIndexValue(index int) *Value {
	return &v.ObjectGetIndex(index).Value
}

// ObjectSetIndex 用 m 替换第 index 个成员，m 的键和值被转移；m 为 nil 时删除该成员
func (v *Value) ObjectSetIndex(index int, m *Member) {
	v.expect("ObjectSetIndex", TypeObject)
	checkIndex("ObjectSetIndex", index, len(v.o))
	if m == nil {
		v.ObjectDelIndex(index)
		return
	}
	if m == &v.o[index] {
		return
	}
	key := m.Key
	m.Key = nil
	Move(&v.o[index].Value, &m.Value)
	v.o[index].Key = key
}

// ObjectAddMember 追加成员，复制 key，转移 val 的内容
func (v *Value) ObjectAddMember(key string, val *Value) {
	v.expect("ObjectAddMember", TypeObject)
	tmp := *val
	*val = Value{}
	v.objectReserve()
	v.o = append(v.o, Member{Key: []byte(key), Value: tmp})
}

// ObjectInsertIndex 在 index 处插入成员，后续成员后移
func (v *Value) ObjectInsertIndex(index int, key string, val *Value) {
	v.expect("ObjectInsertIndex", TypeObject)
	if index < 0 || index > len(v.o) {
		panic(fmt.Sprintf("json: ObjectInsertIndex index %d out of range (size=%d)", index, len(v.o)))
	}
	tmp := *val
	*val = Value{}
	v.objectReserve()
	v.o = v.o[:len(v.o)+1]
	copy(v.o[index+1:], v.o[index:])
	v.o[index] = Member{Key: []byte(key), Value: tmp}
}

// ObjectDelIndex 删除第 index 个成员
func (v *Value) ObjectDelIndex(index int) {
	v.expect("ObjectDelIndex", TypeObject)
	checkIndex("ObjectDelIndex", index, len(v.o))
	v.o[index].Key = nil
	v.o[index].Value.Free()
	copy(v.o[index:], v.o[index+1:])
	v.o[len(v.o)-1] = Member{}
	v.o = v.o[:len(v.o)-1]
	v.objectShrink()
}

// ObjectClear 释放全部成员
func (v *Value) ObjectClear() {
	v.expect("ObjectClear", TypeObject)
	if len(v.o) == 0 {
		return
	}
	for i := range v.o {
		v.o[i].Key = nil
		v.o[i].Value.Free()
	}
	v.o = v.o[:0]
	v.objectShrink()
}

// ObjectFindKeyIndex 查找第一个键为 key 的成员下标，不存在返回 -1
func (v *Value) ObjectFindKeyIndex(key string) int {
	v.expect("ObjectFindKeyIndex", TypeObject)
	for i := range v.o {
		if string(v.o[i].Key) == key {
			return i
		}
	}
	return -1
}

// ObjectFindKeyValue 查找键为 key 的成员值，不存在返回 nil
func (v *Value) ObjectFindKeyValue(key string) *Value {
	if i := v.ObjectFindKeyIndex(key); i >= 0 {
		return &v.o[i].Value
	}
	return nil
}

// ObjectSetValue 替换第一个键为 key 的成员值，不存在则追加
func (v *Value) ObjectSetValue(key string, val *Value) {
	if i := v.ObjectFindKeyIndex(key); i >= 0 {
		Move(&v.o[i].Value, val)
		return
	}
	v.ObjectAddMember(key, val)
}

// ObjectRemoveKey 删除第一个键为 key 的成员
func (v *Value) ObjectRemoveKey(key string) bool {
	i := v.ObjectFindKeyIndex(key)
	if i < 0 {
		return false
	}
	v.ObjectDelIndex(i)
	return true
}
