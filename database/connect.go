package database

import (
	"log"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cement-crm-go-be/models"
)

// DB instance
var DB *gorm.DB

// ConnectDB connects to the database
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	slog.Info("connected to database")

	err = DB.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Dealer{},
		&models.SubDealer{},
		&models.Employee{},
		&models.Promoter{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database. \n", err)
	}
	slog.Info("database migrated")

	seedAdmin()
}

// seedAdmin creates the default administrator account when the admin table
// is empty, so a fresh deployment is reachable.
func seedAdmin() {
	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check admin table. \n", err)
	}
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@bestcement.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed admin password. \n", err)
	}
	if err := DB.Create(&models.Admin{Email: email, Password: string(hash)}).Error; err != nil {
		log.Fatal("Failed to seed admin account. \n", err)
	}
	slog.Info("seeded admin account", "email", email)
}
