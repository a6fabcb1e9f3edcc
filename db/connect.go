package db

import (
	"fmt"
	"log"

	"agroyield-server/confs"
	"agroyield-server/entities"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect() (Database, error) {
	path := confs.DBPath()
	log.Printf("Opening sqlite database at %s...", path)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(&entities.User{}, &entities.Prediction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrations completed successfully!")

	return &GormDatabase{DB: db}, nil
}
