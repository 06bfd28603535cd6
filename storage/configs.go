package storage

import (
	"time"

	"github.com/cxykevin/tinyjson/product"
	"github.com/cxykevin/tinyjson/storage/structs"
	"gorm.io/gorm"
)

// GlobalConfig 文档库元信息
var GlobalConfig = structs.Configs{}

// ReadGlobalConfigs 读取元信息
func ReadGlobalConfigs(db *gorm.DB) error {
	return db.Order("id").First(&GlobalConfig).Error
}

// SaveGlobalConfigs 保存元信息
func SaveGlobalConfigs(db *gorm.DB) error {
	return db.Save(&GlobalConfig).Error
}

// touchGlobalConfigs 建立或更新元信息行
func touchGlobalConfigs(db *gorm.DB) error {
	if err := db.Order("id").FirstOrCreate(&GlobalConfig).Error; err != nil {
		return err
	}
	if GlobalConfig.VersionID > product.VersionID {
		logger.Warn("db version %d is newer than %d", GlobalConfig.VersionID, product.VersionID)
	}
	GlobalConfig.VersionID = product.VersionID
	GlobalConfig.OpenedAt = time.Now()
	return SaveGlobalConfigs(db)
}
