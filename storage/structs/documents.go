package structs

import "time"

// Documents 文档表，Body 为规范化后的紧凑 JSON
type Documents struct {
	ID        uint32 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"uniqueIndex;not null"`
	Type      string // 根值类型
	Size      int64
	Body      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
