package json

import (
	"fmt"
	"reflect"
	"sort"
)

// ToAny 转换为 Go 原生类型：nil / bool / float64 / string / []any / map[string]any
//
// 对象转为 map 后成员顺序丢失，重复的键以最后一个为准。
func ToAny(v *Value) any {
	switch v.Type() {
	case TypeBoolean:
		return v.b
	case TypeNumber:
		return v.n
	case TypeString:
		return string(v.s)
	case TypeArray:
		out := make([]any, len(v.a))
		for i := range v.a {
			out[i] = ToAny(&v.a[i])
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.o))
		for i := range v.o {
			out[string(v.o[i].Key)] = ToAny(&v.o[i].Value)
		}
		return out
	default:
		return nil
	}
}

// FromAny 从 Go 原生类型构造 Value，map 按键排序以保证输出稳定
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return t.Clone(), nil
	case *Value:
		return t.Clone(), nil
	case bool:
		return NewBoolean(t), nil
	case string:
		return NewStringFrom(t), nil
	case []byte:
		return NewString(t), nil
	case float64:
		return NewNumber(t), nil
	case []any:
		out := NewArray(len(t))
		for _, item := range t {
			e, err := FromAny(item)
			if err != nil {
				out.Free()
				return Value{}, err
			}
			out.ArrayAddElement(&e)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewObject(len(t))
		for _, k := range keys {
			e, err := FromAny(t[k])
			if err != nil {
				out.Free()
				return Value{}, err
			}
			out.ObjectAddMember(k, &e)
		}
		return out, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewNumber(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewNumber(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NewNumber(rv.Float()), nil
	case reflect.Bool:
		return NewBoolean(rv.Bool()), nil
	case reflect.String:
		return NewStringFrom(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NewNull(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NewNull(), nil
		}
		out := NewArray(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				out.Free()
				return Value{}, err
			}
			out.ArrayAddElement(&e)
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("json: unsupported map key type %s", rv.Type().Key())
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := NewObject(len(keys))
		for _, k := range keys {
			e, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				out.Free()
				return Value{}, err
			}
			out.ObjectAddMember(k.String(), &e)
		}
		return out, nil
	}
	return Value{}, fmt.Errorf("json: unsupported type %T", rv.Interface())
}
