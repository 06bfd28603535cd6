package structs

import (
	"testing"

	"github.com/cxykevin/tinyjson/library/json"
)

func TestBuildDefault(t *testing.T) {
	type Inner struct {
		Rate float64 `default:"95.5"`
	}
	type TestStruct struct {
		Name  string `default:"test"`
		Age   int    `default:"20"`
		Valid bool   `default:"true"`
		Inner Inner
		Ptr   *Inner
	}

	ts := BuildDefault(TestStruct{})
	if ts.Name != "test" {
		t.Errorf("Expected Name 'test', got %s", ts.Name)
	}
	if ts.Age != 20 {
		t.Errorf("Expected Age 20, got %d", ts.Age)
	}
	if ts.Valid != true {
		t.Errorf("Expected Valid true, got %v", ts.Valid)
	}
	if ts.Inner.Rate != 95.5 {
		t.Errorf("Expected nested Rate 95.5, got %f", ts.Inner.Rate)
	}
	if ts.Ptr == nil || ts.Ptr.Rate != 95.5 {
		t.Errorf("Expected pointer field to be allocated with defaults")
	}
}

func TestConfigDefault(t *testing.T) {
	cfg := BuildDefault(Config{})
	if cfg.Codec.StackInitSize != 256 || cfg.Codec.StringifyInitSize != 256 {
		t.Errorf("unexpected codec defaults %+v", cfg.Codec)
	}
	if cfg.Codec.MaxInputSize != 64<<20 {
		t.Errorf("Expected MaxInputSize 64 MiB, got %d", cfg.Codec.MaxInputSize)
	}
	if cfg.Storage.DBFile != "db.sqlite" || cfg.Output.Indent != " " {
		t.Errorf("unexpected defaults %+v %+v", cfg.Storage, cfg.Output)
	}
}

func TestToValue(t *testing.T) {
	cfg := BuildDefault(Config{Version: 3})
	v, err := ToValue(&cfg)
	if err != nil {
		t.Fatalf("ToValue failed: %v", err)
	}
	out, _ := json.EncodeToString(&v)
	want := `{"Version":3,"Codec":{"StackInitSize":256,"StringifyInitSize":256,"MaxInputSize":67108864,"MaxDepth":10000},` +
		`"Storage":{"DataPath":".tinyjson","DBFile":"db.sqlite"},"Output":{"Color":false,"Indent":" "}}`
	if out != want {
		t.Errorf("ToValue = %s; want %s", out, want)
	}
}

func TestFromValue(t *testing.T) {
	v, err := json.DecodeString(`{"Version":2,"Codec":{"StackInitSize":64},"Output":{"Color":true},"Extra":1}`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := BuildDefault(Config{})
	if err := FromValue(&v, &cfg); err != nil {
		t.Fatalf("FromValue failed: %v", err)
	}
	if cfg.Version != 2 || cfg.Codec.StackInitSize != 64 || !cfg.Output.Color {
		t.Errorf("members not applied: %+v", cfg)
	}
	if cfg.Codec.StringifyInitSize != 256 || cfg.Storage.DBFile != "db.sqlite" {
		t.Errorf("missing members should keep defaults: %+v", cfg)
	}
}

func TestFromValueErrors(t *testing.T) {
	tests := []string{
		`[]`,
		`{"Version":"1"}`,
		`{"Version":1.5}`,
		`{"Codec":{"StackInitSize":1e20}}`,
		`{"Output":{"Color":1}}`,
		`{"Storage":null}`,
	}
	for _, input := range tests {
		v, err := json.DecodeString(input)
		if err != nil {
			t.Fatal(err)
		}
		cfg := Config{}
		if err := FromValue(&v, &cfg); err == nil {
			t.Errorf("FromValue(%s) should fail", input)
		}
	}
	if err := FromValue(nil, Config{}); err == nil {
		t.Errorf("FromValue should reject non-pointer targets")
	}
}
