package database

import (
	"log"

	"growing-backend/config"
	"growing-backend/internal/domain/billing"
	"growing-backend/internal/domain/entitlement"
	"growing-backend/internal/domain/finance"
	"growing-backend/internal/domain/posts"
	"growing-backend/internal/domain/users"
	"growing-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for uuid defaults on primary keys
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&entitlement.Entitlement{},
		&billing.PaymentEvent{},
		&billing.PromoCode{},

		// app
		&finance.Expense{},
		&finance.Goal{},
		&posts.Post{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	utils.LogSuccess("Database connected and migrated")
}
