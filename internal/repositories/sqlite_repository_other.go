//go:build !windows

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gpumanager/internal/models"
)

// sqliteRepository emulates the registry namespace with a single table. The
// table plays the role of the namespace key: it is absent until the first Set.
type sqliteRepository struct {
	db *gorm.DB
}

func NewSqliteRepository(db *gorm.DB) GpuPreferenceRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]models.RawEntry, error) {
	if !r.db.WithContext(ctx).Migrator().HasTable(&models.GpuPreferenceValue{}) {
		return nil, fmt.Errorf("open %s: %w", NamespaceKey, ErrNamespaceNotFound)
	}

	var values []models.GpuPreferenceValue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&values).Error; err != nil {
		return nil, classifySqlite("list values", err)
	}

	entries := make([]models.RawEntry, 0, len(values))
	for _, v := range values {
		entries = append(entries, models.RawEntry{Path: v.Path, Value: v.Data})
	}
	return entries, nil
}

func (r *sqliteRepository) Set(ctx context.Context, path string, pref models.Preference) error {
	if !pref.Valid() {
		return fmt.Errorf("set %s: invalid preference %d", path, int(pref))
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&models.GpuPreferenceValue{}); err != nil {
		return classifySqlite("create namespace", err)
	}

	value := models.GpuPreferenceValue{Path: path, Data: models.EncodeRawValue(pref)}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&value).Error
	if err != nil {
		return classifySqlite("set "+path, err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, path string) error {
	if !r.db.WithContext(ctx).Migrator().HasTable(&models.GpuPreferenceValue{}) {
		return fmt.Errorf("delete %s: %w", path, ErrEntryNotFound)
	}

	res := r.db.WithContext(ctx).Where("path = ?", path).Delete(&models.GpuPreferenceValue{})
	if res.Error != nil {
		return classifySqlite("delete "+path, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", path, ErrEntryNotFound)
	}
	return nil
}

func classifySqlite(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrReadonly || sqliteErr.Code == sqlite3.ErrPerm) {
		return fmt.Errorf("%s: %w: %w", op, ErrAccessDenied, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
