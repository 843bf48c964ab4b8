package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection behind the storefront key-value
// store. Without DB_URL the process runs on the in-memory backend instead;
// callers check HasDB.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// HasDB reports whether a database connection was configured.
func HasDB() bool {
	return DB != nil
}
