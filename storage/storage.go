package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxykevin/tinyjson/internal/configutil"
	"github.com/cxykevin/tinyjson/log"
	"gorm.io/gorm"
)

const projectDataPath = ".tinyjson"
const sqliteFileName = "db.sqlite"

var logger *log.LogsObj

func init() {
	logger = log.New("storage")
}

// InitStorage 在 dataPath 下打开文档库
func InitStorage(dataPath string, dbFile string) (*gorm.DB, error) {
	if dataPath == "" {
		// 读取环境变量：TINYJSON_DEBUG_DATAPATH 和 TINYJSON_DEBUG_SQLITEFILE
		dataPath = projectDataPath
		if v := os.Getenv("TINYJSON_DEBUG_DATAPATH"); v != "" {
			dataPath = v
		}
	}
	if dbFile == "" {
		dbFile = sqliteFileName
		if v := os.Getenv("TINYJSON_DEBUG_SQLITEFILE"); v != "" {
			dbFile = v
		}
	}
	dataPath = configutil.ExpandPath(dataPath)

	logger.Info("storage init in %s/%s", dataPath, dbFile)

	dbPath := memoryDB
	if dbFile != memoryDB {
		// 确保工作目录存在
		if err := os.MkdirAll(dataPath, 0755); err != nil {
			logger.Error("failed to create data dir %s: %v", dataPath, err)
			return nil, fmt.Errorf("failed to create data dir %s: %w", dataPath, err)
		}
		dbPath = filepath.Join(dataPath, dbFile)
	}

	db, err := InitDB(dbPath)
	if err != nil {
		logger.Error("failed to init db %s: %v", dbPath, err)
		return nil, err
	}
	return db, nil
}
