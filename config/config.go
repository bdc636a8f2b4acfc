package config

import (
	"fmt"
	"os"

	"github.com/Kas-Kady/bbq/internal/models"
	"github.com/Kas-Kady/bbq/internal/postmark"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

func LoadMailConfig() (*MailConfig, error) {
	cfg := &MailConfig{
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromName:     os.Getenv("MAIL_FROM_NAME"),
		FromEmail:    os.Getenv("MAIL_FROM_EMAIL"),
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "25"
	}
	if cfg.FromName == "" {
		cfg.FromName = "BBQ @ Kas Kady"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "bbq@bbq.kaskady.nl"
	}
	return cfg, nil
}

func (cfg *MailConfig) From() postmark.Address {
	return postmark.Address{Name: cfg.FromName, Email: cfg.FromEmail}
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.BBQ{}, &models.Upgrade{}, &models.Attendee{})
	if err != nil {
		return nil, err
	}

	seedAdmin(db)

	return db, nil
}

// seedAdmin creates the admin account from the environment on first boot,
// so date committing works without manual database surgery.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if result := db.Where("email = ?", email).First(&existing); result.Error == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	db.Create(&models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	})
}
