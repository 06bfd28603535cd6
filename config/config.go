package config

import (
	"os"
	"path/filepath"

	"github.com/cxykevin/tinyjson/config/structs"
	"github.com/cxykevin/tinyjson/internal/configutil"
	"github.com/cxykevin/tinyjson/library/json"
	"github.com/cxykevin/tinyjson/product"
)

// GlobalConfig 配置文件对象
var GlobalConfig = defaultConfig()

const defaultConfigPath = "~/.config/tinyjson/config.json"
const envConfigName = "TINYJSON_CONFIG_PATH"

var configPath string

func defaultConfig() *structs.Config {
	cfg := structs.BuildDefault(structs.Config{})
	cfg.Version = product.VersionID
	return &cfg
}

// Path 返回展开后的配置文件路径
func Path() string {
	return configutil.ExpandPath(configPath)
}

// Load 加载配置文件
func Load() {
	GlobalConfig = defaultConfig()

	// 读取环境变量
	if path := os.Getenv(envConfigName); path != "" {
		configPath = path
	} else {
		configPath = defaultConfigPath
	}
	expandedPath := Path()

	// 确保目录存在
	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// 目录创建失败，使用默认配置
		return
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			Save()
			return
		}
		backupAndReset(expandedPath)
		return
	}

	v, err := json.Decode(data)
	if err != nil {
		backupAndReset(expandedPath)
		return
	}
	defer v.Free()

	cfg := defaultConfig()
	if err := structs.FromValue(&v, cfg); err != nil {
		backupAndReset(expandedPath)
		return
	}
	GlobalConfig = cfg
}

// backupAndReset 备份无法使用的配置文件并写入默认配置
func backupAndReset(expandedPath string) {
	if _, err := os.Stat(expandedPath); err == nil {
		os.Rename(expandedPath, expandedPath+".bak")
	}
	Save()
}

// Save 保存配置文件
func Save() error {
	// 确保配置路径已设置
	if configPath == "" {
		Load()
	}
	expandedPath := Path()

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		return err
	}

	v, err := structs.ToValue(GlobalConfig)
	if err != nil {
		return err
	}
	defer v.Free()
	data, err := json.Encode(&v)
	if err != nil {
		return err
	}
	return os.WriteFile(expandedPath, data, 0644)
}

// CodecOptions 按配置构造编解码参数
func CodecOptions() json.Options {
	return GlobalConfig.Codec.Options()
}
