package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/config"
	"github.com/Tharushi-Umesha/school-management-system/models"
)

// Connect opens the database and keeps the schema current.
// If the DB is not up yet the program fails immediately (early fail).
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

// Migrate creates or updates the five tables backing the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Event{},
		&models.Attendance{},
	)
}

// Ping reports whether the underlying connection is reachable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
