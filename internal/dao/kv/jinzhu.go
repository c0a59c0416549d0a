package kv

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/semver/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
)

var (
	_ core.KeyValueService = (*jinzhuKeyValueServant)(nil)
	_ core.VersionInfo     = (*jinzhuKeyValueServant)(nil)
)

// Entry is one row of the kv table.
type Entry struct {
	Key        string `gorm:"primaryKey;size:191"`
	Value      []byte `gorm:"type:longblob"`
	ModifiedOn int64
}

func (Entry) TableName() string {
	return conf.MySQLSetting.TablePrefix + TableKV
}

type jinzhuKeyValueServant struct {
	db *gorm.DB
}

func (s *jinzhuKeyValueServant) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrKeyNotFound
	} else if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *jinzhuKeyValueServant) Set(ctx context.Context, key string, value []byte) error {
	entry := &Entry{
		Key:        key,
		Value:      value,
		ModifiedOn: time.Now().Unix(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "modified_on"}),
	}).Create(entry).Error
}

func (s *jinzhuKeyValueServant) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("`key` = ?", key).Delete(&Entry{}).Error
}

func (s *jinzhuKeyValueServant) Name() string {
	return "MySQL"
}

func (s *jinzhuKeyValueServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
