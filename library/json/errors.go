package json

import (
	"errors"
	"fmt"
)

// ErrorCode 解析错误码
type ErrorCode int

const (
	OK ErrorCode = iota
	ErrExpectValue
	ErrInvalidValue
	ErrRootNotSingular
	ErrNumberTooBig
	ErrMissingQuotationMark
	ErrInvalidStringEscape
	ErrInvalidStringChar
	ErrInvalidUnicodeHex
	ErrInvalidUnicodeSurrogate
	ErrMissingCommaOrSquareBracket
	ErrMissingKey
	ErrMissingColon
	ErrMissingCommaOrCurlyBracket
)

var codeNames = [...]string{
	OK:                             "ok",
	ErrExpectValue:                 "expect_value",
	ErrInvalidValue:                "invalid_value",
	ErrRootNotSingular:             "root_not_singular",
	ErrNumberTooBig:                "number_too_big",
	ErrMissingQuotationMark:        "missing_quotation_mark",
	ErrInvalidStringEscape:         "invalid_string_escape",
	ErrInvalidStringChar:           "invalid_string_char",
	ErrInvalidUnicodeHex:           "invalid_unicode_hex",
	ErrInvalidUnicodeSurrogate:     "invalid_unicode_surrogate",
	ErrMissingCommaOrSquareBracket: "missing_comma_or_square_bracket",
	ErrMissingKey:                  "missing_key",
	ErrMissingColon:                "missing_colon",
	ErrMissingCommaOrCurlyBracket:  "missing_comma_or_curly_bracket",
}

// String 返回错误码名称
func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("error_code(%d)", int(c))
}

// Error 实现 error 接口
func (c ErrorCode) Error() string {
	return "json: " + c.String()
}

// SyntaxError 带输入偏移量的解析错误
type SyntaxError struct {
	Code   ErrorCode
	Offset int // 出错时解析游标所在的字节偏移
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json: %s at offset %d", e.Code.String(), e.Offset)
}

// Unwrap 支持 errors.Is(err, json.ErrMissingKey)
func (e *SyntaxError) Unwrap() error {
	return e.Code
}

// CodeOf 取出 err 对应的错误码，nil 返回 OK
func CodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return ErrInvalidValue
}

// UnsupportedValueError 无法表示为 JSON 的值（NaN / ±Inf）
type UnsupportedValueError struct {
	Number float64
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("json: unsupported number %v", e.Number)
}
