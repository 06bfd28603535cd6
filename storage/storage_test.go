package storage

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/cxykevin/tinyjson/product"
	"github.com/cxykevin/tinyjson/storage/structs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 设置测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: New()})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(structs.Tables...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestInit(t *testing.T) {
	// 使用内存数据库进行测试
	t.Setenv("TINYJSON_DEBUG_SQLITEFILE", ":memory:")
	db, err := InitStorage("", "")
	if err != nil {
		t.Fatalf("InitStorage failed: %v", err)
	}
	if DB != db {
		t.Errorf("DB should be set to the opened database")
	}
	if err := ReadGlobalConfigs(db); err != nil {
		t.Fatalf("ReadGlobalConfigs failed: %v", err)
	}
	if GlobalConfig.VersionID != product.VersionID {
		t.Errorf("Expected VersionID %d, got %d", product.VersionID, GlobalConfig.VersionID)
	}
}

func TestInitFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	db, err := InitStorage(dir, "docs.sqlite")
	if err != nil {
		t.Fatalf("InitStorage failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "docs.sqlite")); err != nil {
		t.Errorf("db file not created: %v", err)
	}

	// 再次打开只保留一行元信息
	sqlDB, _ := db.DB()
	sqlDB.Close()
	db, err = InitStorage(dir, "docs.sqlite")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	var count int64
	db.Model(&structs.Configs{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 meta row, got %d", count)
	}
	sqlDB, _ = db.DB()
	sqlDB.Close()
}

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupTestDB(t), 0, json.Options{})

	doc, err := s.Put(ctx, "a", []byte(` { "a" : [ 1 , 2 , true , null , "x" ] } `))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if string(doc.Body) != `{"a":[1,2,true,null,"x"]}` || doc.Type != "object" || doc.Size != 25 {
		t.Errorf("unexpected document %+v", doc)
	}

	v, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want, _ := json.DecodeString(`{"a":[1,2,true,null,"x"]}`)
	if !json.IsEqual(&v, &want) {
		t.Errorf("Get returned a different value")
	}

	// 覆盖写入保留 ID
	doc2, err := s.Put(ctx, "a", []byte(`[1]`))
	if err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if doc2.ID != doc.ID || doc2.Type != "array" {
		t.Errorf("overwrite should update in place, got %+v", doc2)
	}
	raw, err := s.GetRaw(ctx, "a")
	if err != nil || string(raw.Body) != "[1]" {
		t.Errorf("GetRaw = %q, %v", raw.Body, err)
	}
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupTestDB(t), 8, json.Options{})

	var syntaxErr *json.SyntaxError
	if _, err := s.Put(ctx, "bad", []byte(`{"a":`)); !errors.As(err, &syntaxErr) {
		t.Errorf("Put of invalid JSON should return a syntax error, got %v", err)
	}
	if _, err := s.Put(ctx, "big", []byte(`[1,2,3,4,5]`)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Expected ErrTooLarge, got %v", err)
	}
	if _, err := s.Put(ctx, "", []byte(`1`)); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on delete, got %v", err)
	}
	nan := json.NewNumber(math.NaN())
	var unsupported *json.UnsupportedValueError
	if _, err := s.PutValue(ctx, "nan", &nan); !errors.As(err, &unsupported) {
		t.Errorf("Expected UnsupportedValueError, got %v", err)
	}
}

func TestStoreListDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupTestDB(t), 0, json.Options{})
	for _, name := range []string{"c", "a", "b"} {
		if _, err := s.Put(ctx, name, []byte(`"`+name+`"`)); err != nil {
			t.Fatalf("Put %s failed: %v", name, err)
		}
	}
	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 3 || docs[0].Name != "a" || docs[2].Name != "c" {
		t.Fatalf("unexpected list %+v", docs)
	}
	if docs[0].Body != nil || docs[0].Size != 3 || docs[0].Type != "string" {
		t.Errorf("List should return metadata only, got %+v", docs[0])
	}

	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	docs, _ = s.List(ctx)
	if len(docs) != 2 {
		t.Errorf("Expected 2 documents after delete, got %d", len(docs))
	}
}
