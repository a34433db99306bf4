package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

// ConnectStore selects the persistence backend from configuration. Badger is
// the default; postgres suits shared deployments and memory is for tests and
// throwaway runs.
func ConnectStore() (store.KeyValue, error) {
	switch utils.GetConfig("STORE_BACKEND") {
	case "postgres":
		db, err := connectDB()
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		path := utils.GetConfig("STORE_PATH")
		if path == "" {
			path = "./data"
		}
		return store.NewBadgerStore(path)
	}
}

func connectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
