package structs

import "github.com/cxykevin/tinyjson/library/json"

// CodecConfig 编解码配置
type CodecConfig struct {
	StackInitSize     int32 `default:"256"`
	StringifyInitSize int32 `default:"256"`
	MaxInputSize      int64 `default:"67108864"` // 64 MiB
	MaxDepth          int32 `default:"10000"`
}

// Options 转为编解码参数
func (c CodecConfig) Options() json.Options {
	return json.Options{
		StackInitSize:     int(c.StackInitSize),
		StringifyInitSize: int(c.StringifyInitSize),
		MaxDepth:          int(c.MaxDepth),
	}
}

// StorageConfig 文档库配置
type StorageConfig struct {
	DataPath string `default:".tinyjson"`
	DBFile   string `default:"db.sqlite"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	Color  bool   `default:"false"`
	Indent string `default:" "`
}

// Config 配置文件
type Config struct {
	Version int32
	Codec   CodecConfig
	Storage StorageConfig
	Output  OutputConfig
}
