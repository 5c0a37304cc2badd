package database

import (
	"errors"
	"fmt"
	"log"

	"bluedock/config"
	"bluedock/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DSN builds the driver connection string for cfg
func DSN(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case "", "mysql":
		// clientFoundRows: UPDATE reports matched rows, so an update that
		// changes nothing on an existing id is not mistaken for a missing one
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local&clientFoundRows=true&foreign_key_checks=1",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		), nil
	case "postgres":
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			sslMode,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "postgres" {
		return postgres.Open(dsn), nil
	}
	return mysql.Open(dsn), nil
}

// Open connects to the configured database and sizes the pool
func Open(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Info
	if cfg.IsRelease() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	return db, nil
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.ServiceOrder{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedCategories inserts the named categories, skipping names already present
func SeedCategories(db *gorm.DB, names []string) error {
	if len(names) == 0 {
		return nil
	}
	cats := make([]models.Category, 0, len(names))
	for _, name := range names {
		cats = append(cats, models.Category{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cats).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

// SeedAdmin creates the configured staff account when auth is enabled and no
// account exists yet
func SeedAdmin(db *gorm.DB, cfg config.AuthConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return errors.New("auth enabled but admin_username/admin_password not set")
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := db.Create(&models.User{Username: cfg.AdminUsername, Password: string(hash)}).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("created staff account %q", cfg.AdminUsername)
	return nil
}

// Init opens the database, migrates and seeds it
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	names := cfg.Orders.Categories
	if len(names) == 0 {
		names = models.GetDefaultCategories()
	}
	if err := SeedCategories(db, names); err != nil {
		return nil, err
	}
	if err := SeedAdmin(db, cfg.Auth); err != nil {
		return nil, err
	}

	log.Println("database ready")
	return db, nil
}
