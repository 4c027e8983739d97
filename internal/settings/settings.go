// Package settings persists user settings across runs, most importantly
// the list of recently opened project files.
package settings

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrGeneral is returned when the settings database fails in a way the
// caller cannot do anything about.
var ErrGeneral = errors.New("there is a problem with the settings database, please check the server logs")

// RecentFileLimit is the number of recently opened files that are kept.
const RecentFileLimit = 10

// RecentFile is one entry of the recently opened files list. The path is
// unique, opening a known file again only bumps its timestamp.
type RecentFile struct {
	Path   string `gorm:"primaryKey"`
	UsedAt time.Time
}

// Store is the settings database.
type Store struct {
	db *gorm.DB
}

// Connect opens the settings database and migrates its schema.
func Connect(dsn string) (*Store, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to settings database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(RecentFile{}); err != nil {
		return nil, fmt.Errorf("error during settings migration: %w", err)
	}

	if err := db.Callback().Query().After("*").Register("comptes:after_query", generalCallback); err != nil {
		return nil, err
	}

	if err := db.Callback().Create().After("*").Register("comptes:after_create", generalCallback); err != nil {
		return nil, err
	}

	if err := db.Callback().Update().After("*").Register("comptes:after_update", generalCallback); err != nil {
		return nil, err
	}

	if err := db.Callback().Delete().After("*").Register("comptes:after_delete", generalCallback); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// generalCallback handles unspecified database errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Ping verifies the connection to the settings database.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Touch records that the file at path was just opened or saved. It moves
// the path to the front of the recent list and drops entries beyond the
// limit.
func (s *Store) Touch(path string) error {
	entry := RecentFile{Path: path, UsedAt: time.Now()}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"used_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("could not record recent file: %w", err)
	}

	return s.prune()
}

// RecentFiles returns the recently opened file paths, most recent first.
func (s *Store) RecentFiles() ([]string, error) {
	var entries []RecentFile
	err := s.db.Order("used_at DESC").Limit(RecentFileLimit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("could not read recent files: %w", err)
	}

	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}

	return paths, nil
}

// prune deletes entries beyond the recent file limit, oldest first.
func (s *Store) prune() error {
	var keep []RecentFile
	err := s.db.Order("used_at DESC").Limit(RecentFileLimit).Find(&keep).Error
	if err != nil {
		return err
	}

	if len(keep) < RecentFileLimit {
		return nil
	}

	cutoff := keep[len(keep)-1].UsedAt
	return s.db.Where("used_at < ?", cutoff).Delete(&RecentFile{}).Error
}
