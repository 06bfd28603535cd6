package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/cxykevin/tinyjson/storage/structs"
	"gorm.io/gorm"
)

// maxNameLen 文档名最大长度
const maxNameLen = 255

var (
	// ErrNotFound 文档不存在
	ErrNotFound = errors.New("document not found")
	// ErrTooLarge 文档超过大小限制
	ErrTooLarge = errors.New("document too large")
	// ErrInvalidName 文档名为空或过长
	ErrInvalidName = errors.New("invalid document name")
)

// Store 文档库，写入时解析并规范化 JSON
type Store struct {
	db      *gorm.DB
	maxSize int64
	opts    json.Options
}

// NewStore 创建文档库，maxSize <= 0 表示不限制大小
func NewStore(db *gorm.DB, maxSize int64, opts json.Options) *Store {
	return &Store{db: db, maxSize: maxSize, opts: opts}
}

func checkName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Put 解析 data 并以紧凑形式保存为 name，已存在时覆盖
func (s *Store) Put(ctx context.Context, name string, data []byte) (structs.Documents, error) {
	if err := checkName(name); err != nil {
		return structs.Documents{}, err
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return structs.Documents{}, fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, len(data), s.maxSize)
	}
	v, err := json.NewDecoder(s.opts).Decode(data)
	if err != nil {
		return structs.Documents{}, fmt.Errorf("decode %s: %w", name, err)
	}
	defer v.Free()
	return s.PutValue(ctx, name, &v)
}

// PutValue 保存已解析的值
func (s *Store) PutValue(ctx context.Context, name string, v *json.Value) (structs.Documents, error) {
	if err := checkName(name); err != nil {
		return structs.Documents{}, err
	}
	body, err := json.NewEncoder(s.opts).Encode(v)
	if err != nil {
		return structs.Documents{}, fmt.Errorf("encode %s: %w", name, err)
	}

	var doc structs.Documents
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).First(&doc).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		doc.Name = name
		doc.Type = v.Type().String()
		doc.Size = int64(len(body))
		doc.Body = body
		return tx.Save(&doc).Error
	})
	if err != nil {
		logger.Error("failed to put document %s: %v", name, err)
		return structs.Documents{}, fmt.Errorf("put %s: %w", name, err)
	}
	logger.Info("put document %s (%s, %d bytes)", name, doc.Type, doc.Size)
	return doc, nil
}

// GetRaw 读取文档记录
func (s *Store) GetRaw(ctx context.Context, name string) (structs.Documents, error) {
	var doc structs.Documents
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return structs.Documents{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return structs.Documents{}, fmt.Errorf("get %s: %w", name, err)
	}
	return doc, nil
}

// Get 读取并解析文档
func (s *Store) Get(ctx context.Context, name string) (json.Value, error) {
	doc, err := s.GetRaw(ctx, name)
	if err != nil {
		return json.Value{}, err
	}
	v, err := json.NewDecoder(s.opts).Decode(doc.Body)
	if err != nil {
		// 库中内容只由 Put 写入，解析失败说明数据损坏
		logger.Error("stored document %s is corrupted: %v", name, err)
		return json.Value{}, fmt.Errorf("decode stored %s: %w", name, err)
	}
	return v, nil
}

// List 按名称列出文档，不加载内容
func (s *Store) List(ctx context.Context) ([]structs.Documents, error) {
	var docs []structs.Documents
	err := s.db.WithContext(ctx).
		Select("id", "name", "type", "size", "created_at", "updated_at").
		Order("name").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete 删除文档
func (s *Store) Delete(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&structs.Documents{})
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	logger.Info("deleted document %s", name)
	return nil
}
