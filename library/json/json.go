// Package json JSON 编解码
//
// Value 是带标签的值树，Decode 用递归下降把 UTF-8 文本解析为 Value，
// Encode 把 Value 序列化为不含空白的紧凑 JSON。
//
//	v, err := json.Decode([]byte(`{"a":[1,2,true,null,"x"]}`))
//	if err != nil {
//		return json.CodeOf(err)
//	}
//	out, _ := json.Encode(&v) // {"a":[1,2,true,null,"x"]}
//
// 解析与序列化都是同步的，每次调用使用自己的暂存栈；复用的 Decoder / Encoder
// 不能被多个 goroutine 同时使用。
package json

// Valid 判断 data 是否为合法的单个 JSON 值
func Valid(data []byte) bool {
	_, err := Decode(data)
	return err == nil
}

// DecodeString 解析 Go 字符串
func DecodeString(s string) (Value, error) {
	return Decode([]byte(s))
}

// EncodeToString 序列化为 Go 字符串
func EncodeToString(v *Value) (string, error) {
	out, err := Encode(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
