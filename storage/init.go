package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxykevin/tinyjson/storage/structs"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// DB 数据库连接
var DB *gorm.DB

const memoryDB = ":memory:"

// InitDB 初始化数据库
func InitDB(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(projectDataPath, sqliteFileName)
	}

	// 支持内存数据库
	if dbPath != memoryDB {
		dir := filepath.Dir(dbPath)
		if dir != "." {
			// 创建父目录（如果不存在）
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create db directory %s: %w", dir, err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: New()})
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", dbPath, err)
	}
	if dbPath == memoryDB {
		// 内存库每个连接都是独立的库
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(structs.Tables...); err != nil {
		return nil, fmt.Errorf("failed to automigrate: %w", err)
	}
	if err := touchGlobalConfigs(db); err != nil {
		return nil, fmt.Errorf("failed to init db meta: %w", err)
	}
	DB = db
	return db, nil
}
