package structs

import "time"

// Configs 文档库元信息，只有一行
type Configs struct {
	ID        uint32 `gorm:"primaryKey;autoIncrement"`
	VersionID int32
	OpenedAt  time.Time
}
