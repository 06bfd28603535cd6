package json

import (
	"strings"
	"testing"
)

func TestSprint(t *testing.T) {
	v := mustDecode(t, `{"a":[1,"x"],"b":null,"c":2.5,"d":true}`)
	expected := "{\n" +
		"  a: [\n" +
		"   0: 1,\n" +
		"   1: \"x\",\n" +
		"  ],\n" +
		"  b: null,\n" +
		"  c: 2.500000,\n" +
		"  d: true,\n" +
		" },\n"
	if got := Sprint(&v); got != expected {
		t.Errorf("Sprint mismatch:\n%s\nwant:\n%s", got, expected)
	}
}

func TestSprintScalar(t *testing.T) {
	v := NewNumber(-3)
	if got := Sprint(&v); got != "-3,\n" {
		t.Errorf("unexpected %q", got)
	}
}

type bracketStyle struct{}

func (bracketStyle) Key(s string) string { return "<" + s + ">" }

func (bracketStyle) Scalar(t Type, s string) string { return t.String() + "(" + s + ")" }

func TestFprintStyle(t *testing.T) {
	v := mustDecode(t, `{"k":["s",false]}`)
	var sb strings.Builder
	if err := FprintStyle(&sb, &v, "\t", bracketStyle{}); err != nil {
		t.Fatal(err)
	}
	expected := "{\n" +
		"\t\t<k>: [\n" +
		"\t\t\t<0>: string(\"s\"),\n" +
		"\t\t\t<1>: boolean(false),\n" +
		"\t\t],\n" +
		"\t},\n"
	if sb.String() != expected {
		t.Errorf("FprintStyle mismatch:\n%q\nwant:\n%q", sb.String(), expected)
	}
}
