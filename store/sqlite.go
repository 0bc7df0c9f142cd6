package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Preference is the persisted per-video record
type Preference struct {
	VideoURL  string `gorm:"primaryKey"`
	LyricID   int
	DelayMs   int
	HasDelay  bool
	UpdatedAt time.Time
}

type sqliteRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// OpenSQLite opens (creating it if needed) the preferences database at path
func OpenSQLite(path string) (Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}
	// sqlite serializes writers anyway
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Preference{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &sqliteRepository{db, sqlDB}, nil
}

func (r *sqliteRepository) find(url string) (Preference, error) {
	var preference Preference
	if err := r.db.Where("video_url = ?", url).First(&preference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return preference, ErrNotFound
		}
		return preference, fmt.Errorf("querying preference: %w", err)
	}
	return preference, nil
}

func (r *sqliteRepository) upsert(preference Preference, columns ...string) error {
	preference.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_url"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(&preference).Error
}

func (r *sqliteRepository) LyricID(url string) (int, error) {
	preference, err := r.find(url)
	if err != nil {
		return 0, err
	}
	if preference.LyricID <= 0 {
		return 0, ErrNotFound
	}
	return preference.LyricID, nil
}

func (r *sqliteRepository) SetLyricID(url string, id int) error {
	if err := r.upsert(Preference{VideoURL: url, LyricID: id}, "lyric_id"); err != nil {
		return fmt.Errorf("storing lyric id: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delay(url string) (int, error) {
	preference, err := r.find(url)
	if err != nil {
		return 0, err
	}
	if !preference.HasDelay {
		return 0, ErrNotFound
	}
	return preference.DelayMs, nil
}

func (r *sqliteRepository) SetDelay(url string, ms int) error {
	if err := r.upsert(Preference{VideoURL: url, DelayMs: ms, HasDelay: true}, "delay_ms", "has_delay"); err != nil {
		return fmt.Errorf("storing delay: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	if r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}
