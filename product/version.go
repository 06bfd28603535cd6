package product

// Version 版本号
const Version = "0.1.0"

// VersionID 版本序号，写入配置文件用于迁移判断
const VersionID int32 = 1
