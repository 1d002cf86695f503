package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medvisa/internal/config"
	"medvisa/internal/db"
	"medvisa/internal/model"
	"medvisa/internal/repository"
)

// Seeds the staff account. Admins are created out of band only; the portal
// itself never writes them.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	username := getEnv("ADMIN_USERNAME", "siteadmin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}
	if len(password) < 6 {
		log.Fatal("ADMIN_PASSWORD must be at least 6 characters")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	adminRepo := repository.NewAdminRepository(gormDB)
	ctx := context.Background()

	if existing, err := adminRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		log.Printf("admin %q already exists (id=%d), nothing to do", username, existing.ID)
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("lookup admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := &model.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin %q created (id=%d)", username, admin.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
