package database

import (
	"errors"
	"log"

	"minhas-backend/internal/config"
	"minhas-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the admin seed depends on.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedAdmin(DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	log.Println("Database connected, migration complete.")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Service{},
		&models.Client{},
		&models.SiteInfo{},
		&models.AuditLog{},
	)
}

// SeedAdmin creates the admin user on first start. The unique index on
// username makes this safe against concurrent cold starts: the losing
// insert fails and is treated as already-seeded.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := insertAdmin(db, username, password); err != nil {
		return err
	}

	log.Printf("Default admin user %q created", username)
	return nil
}

// insertAdmin creates the admin row, treating a duplicate-key failure as
// already-seeded. That failure is exactly the concurrent cold-start race:
// another process inserted between our existence check and this create.
func insertAdmin(db *gorm.DB, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}
