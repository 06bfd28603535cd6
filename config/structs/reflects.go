package structs

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/cxykevin/tinyjson/library/json"
)

// BuildDefault 构造默认值
func BuildDefault[T any](obj T) T {
	v := reflect.ValueOf(&obj).Elem()
	if v.Kind() != reflect.Struct {
		panic("BuildDefault: obj must be a struct")
	}
	fillDefault(v)
	return obj
}

func fillDefault(elem reflect.Value) {
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := elem.Field(i)
		if !fv.CanSet() {
			continue
		}

		// 值类型结构体与结构体指针递归处理
		switch {
		case fv.Kind() == reflect.Struct:
			fillDefault(fv)
			continue
		case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Struct:
			if fv.IsNil() {
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			fillDefault(fv.Elem())
			continue
		}

		defaultTag := field.Tag.Get("default")
		if defaultTag == "" {
			continue
		}
		switch fv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			deg, err := strconv.ParseInt(defaultTag, 10, 64)
			if err != nil {
				panic(err)
			}
			fv.SetInt(deg)
		case reflect.String:
			fv.SetString(defaultTag)
		case reflect.Float32, reflect.Float64:
			deg, err := strconv.ParseFloat(defaultTag, 64)
			if err != nil {
				panic(err)
			}
			fv.SetFloat(deg)
		case reflect.Bool:
			deg, err := strconv.ParseBool(defaultTag)
			if err != nil {
				panic(err)
			}
			fv.SetBool(deg)
		}
	}
}

// ToValue 把结构体转为 JSON 对象，成员按字段顺序排列
func ToValue(obj any) (json.Value, error) {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return json.NewNull(), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return json.FromAny(rv.Interface())
	}
	t := rv.Type()
	out := json.NewObject(t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		e, err := ToValue(rv.Field(i).Interface())
		if err != nil {
			out.Free()
			return json.Value{}, fmt.Errorf("field %s: %w", t.Field(i).Name, err)
		}
		out.ObjectAddMember(t.Field(i).Name, &e)
	}
	return out, nil
}

// FromValue 把 JSON 对象的成员按字段名写入 out 指向的结构体
//
// 未知的键被忽略，缺失的键保留 out 中原有的值。
func FromValue(v *json.Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("FromValue: out must be a non-nil pointer")
	}
	return assign(v, rv.Elem(), "")
}

func assign(v *json.Value, fv reflect.Value, path string) error {
	mismatch := func() error {
		return fmt.Errorf("%s: cannot assign %s to %s", path, v.Type(), fv.Type())
	}
	switch fv.Kind() {
	case reflect.Struct:
		if v.Type() != json.TypeObject {
			return mismatch()
		}
		t := fv.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			member := v.ObjectFindKeyValue(t.Field(i).Name)
			if member == nil {
				continue
			}
			if err := assign(member, fv.Field(i), path+"."+t.Field(i).Name); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		if v.Type() == json.TypeNull {
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		}
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return assign(v, fv.Elem(), path)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() != json.TypeNumber {
			return mismatch()
		}
		n := v.GetNumber()
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 || fv.OverflowInt(int64(n)) {
			return fmt.Errorf("%s: %v out of range for %s", path, n, fv.Type())
		}
		fv.SetInt(int64(n))
	case reflect.Float32, reflect.Float64:
		if v.Type() != json.TypeNumber {
			return mismatch()
		}
		fv.SetFloat(v.GetNumber())
	case reflect.String:
		if v.Type() != json.TypeString {
			return mismatch()
		}
		fv.SetString(v.GetText())
	case reflect.Bool:
		if v.Type() != json.TypeBoolean {
			return mismatch()
		}
		fv.SetBool(v.GetBoolean())
	default:
		return fmt.Errorf("%s: unsupported field type %s", path, fv.Type())
	}
	return nil
}
