package json

// Type JSON 值类型
type Type uint8

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String 返回类型名称
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// MinCapacity 数组/对象分配存储后的最小容量
const MinCapacity = 10

const (
	// DefaultStackInitSize 解析暂存栈的默认初始大小
	DefaultStackInitSize = 256
	// DefaultStringifyInitSize 序列化输出缓冲的默认初始大小
	DefaultStringifyInitSize = 256
	// DefaultMaxDepth 解析时数组/对象的默认最大嵌套层数
	DefaultMaxDepth = 10000
)

const (
	literalNull  = "null"
	literalTrue  = "true"
	literalFalse = "false"
)
