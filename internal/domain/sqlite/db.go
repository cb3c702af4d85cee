package sqlite

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Andriyshkoy/BurNote/internal/domain/entity"
)

func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Note{})
	if err != nil {
		return nil, err
	}

	// Single writer connection; SQLite serializes writes anyway and
	// the burn compare-and-set relies on that serialization.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
