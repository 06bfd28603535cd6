// Package query 在文档上求值 expr 表达式
//
// 表达式中 doc 表示根值；根为对象时其成员也可以直接按名称访问，
// 同名时以 doc 为准。
package query

import (
	"fmt"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// rootName 根值在表达式中的名称
const rootName = "doc"

// Query 编译后的表达式，可以对多个文档重复求值
type Query struct {
	src     string
	program *vm.Program
}

// encodeFunc encode(x) 用 tinyjson 序列化任意值
func encodeFunc(params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("encode expects 1 argument, got %d", len(params))
	}
	v, err := json.FromAny(params[0])
	if err != nil {
		return nil, err
	}
	defer v.Free()
	return json.EncodeToString(&v)
}

// Compile 编译表达式
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.Function("encode", encodeFunc))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Query{src: src, program: program}, nil
}

// String 返回表达式源码
func (q *Query) String() string {
	return q.src
}

// Env 构造求值环境
func Env(doc *json.Value) map[string]any {
	root := json.ToAny(doc)
	env := map[string]any{}
	if members, ok := root.(map[string]any); ok {
		for k, v := range members {
			env[k] = v
		}
	}
	env[rootName] = root
	return env
}

// Run 在 doc 上求值，结果转换回 Value
func (q *Query) Run(doc *json.Value) (json.Value, error) {
	out, err := expr.Run(q.program, Env(doc))
	if err != nil {
		return json.Value{}, fmt.Errorf("run %q: %w", q.src, err)
	}
	v, err := json.FromAny(out)
	if err != nil {
		return json.Value{}, fmt.Errorf("result of %q: %w", q.src, err)
	}
	return v, nil
}

// Eval 编译并求值
func Eval(doc *json.Value, src string) (json.Value, error) {
	q, err := Compile(src)
	if err != nil {
		return json.Value{}, err
	}
	return q.Run(doc)
}
