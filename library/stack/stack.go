// Package stack 可增长的 LIFO 暂存栈
package stack

// DefaultInitSize 首次扩容时的默认容量
const DefaultInitSize = 256

// Stack 结构体表示一个栈
type Stack[T any] struct {
	items    []T // len 为栈顶位置，cap 为已分配容量
	initSize int
}

// New 创建并返回一个新的栈
func New[T any]() *Stack[T] {
	return NewWithSize[T](DefaultInitSize)
}

// NewWithSize 创建指定初始容量的栈，容量在第一次压栈时才分配
func NewWithSize[T any](initSize int) *Stack[T] {
	if initSize <= 0 {
		initSize = DefaultInitSize
	}
	return &Stack[T]{initSize: initSize}
}

// grow 保证还能再放下 n 个元素，按 1.5 倍扩容
func (s *Stack[T]) grow(n int) {
	top := len(s.items)
	if top+n <= cap(s.items) {
		return
	}
	size := cap(s.items)
	if size == 0 {
		size = s.initSize
	}
	for top+n > size {
		size += size >> 1
		if size < 2 {
			size = 2
		}
	}
	items := make([]T, top, size)
	copy(items, s.items)
	s.items = items
}

// Push 将元素压入栈顶
func (s *Stack[T]) Push(items ...T) {
	if len(items) == 0 {
		return
	}
	s.grow(len(items))
	s.items = append(s.items, items...)
}

// PushN 在栈顶预留 n 个零值位置并返回，供调用方直接填写
//
// 返回的切片在下一次导致扩容的压栈之后不再指向栈内存，写入必须在那之前完成。
func (s *Stack[T]) PushN(n int) []T {
	if n <= 0 {
		return nil
	}
	s.grow(n)
	top := len(s.items)
	s.items = s.items[:top+n]
	region := s.items[top : top+n]
	var zero T
	for i := range region {
		region[i] = zero
	}
	return region
}

// Pop 弹出栈顶元素
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// PopN 弹出栈顶 n 个元素，返回其副本（按压栈顺序）
func (s *Stack[T]) PopN(n int) []T {
	if n > len(s.items) {
		panic("stack: pop beyond bottom")
	}
	if n <= 0 {
		return nil
	}
	top := len(s.items) - n
	out := make([]T, n)
	copy(out, s.items[top:])
	s.Truncate(top)
	return out
}

// Truncate 把栈顶回退到 size，用于失败时整体回滚
func (s *Stack[T]) Truncate(size int) {
	if size < 0 || size > len(s.items) {
		panic("stack: truncate out of range")
	}
	var zero T
	for i := size; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:size]
}

// Reset 清空栈，保留已分配的容量
func (s *Stack[T]) Reset() {
	s.Truncate(0)
}

// Top 查看栈顶元素但不移除
func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Bottom 查看栈底元素（最先入栈的元素）
func (s *Stack[T]) Bottom() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

// Items 返回当前栈内容的视图，下一次压栈后可能失效
func (s *Stack[T]) Items() []T {
	return s.items
}

// IsEmpty 检查栈是否为空
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size 返回栈中元素的数量
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Cap 返回已分配的容量
func (s *Stack[T]) Cap() int {
	return cap(s.items)
}
