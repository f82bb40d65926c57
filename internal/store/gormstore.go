package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is the relational shape of one document collection: the whole
// JSON array in a single row, keyed by collection name. Whole-collection
// read-modify-write semantics are identical to the file store's.
type Collection struct {
	Name string `gorm:"primaryKey;size:64"`
	Data []byte
}

// GormStore persists collections in an embedded sqlite database or a
// server-side postgres, selected by the DSN handed to the db package.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Load(ctx context.Context, collection string, out any) error {
	var row Collection
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if len(row.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *GormStore) Save(ctx context.Context, collection string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	row := Collection{Name: collection, Data: data}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}
