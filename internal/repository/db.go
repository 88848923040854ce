package repository

import (
	"fmt"

	"github.com/voteflow/backend/internal/dto"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase connects to postgres when DATABASE_URL is set, otherwise to a
// local sqlite file. TranslateError is required so unique constraint
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func OpenDatabase(cfg dto.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return db, nil
}
