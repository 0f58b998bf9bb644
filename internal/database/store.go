package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/models"
)

var ErrNotFound = gorm.ErrRecordNotFound

type Store struct {
	DB *gorm.DB
}

// Open connects to PostgreSQL when DB_HOST is set and falls back to the
// SQLite file at DB_PATH otherwise.
func Open(cfg *config.Config) (*Store, error) {
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		return open(postgres.Open(dsn))
	}
	return OpenSQLite(cfg.DBPath)
}

func OpenSQLite(path string) (*Store, error) {
	return open(sqlite.Open(path))
}

func open(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}
	if err := db.AutoMigrate(
		&models.Template{},
		&models.TemplateEvent{},
		&models.SystemSetting{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SyncConfig lets credentials saved in the database override the
// environment, and seeds the table from the environment on first run.
func (s *Store) SyncConfig(cfg *config.Config) {
	settings := []struct {
		Key   string
		Value *string
	}{
		{"VERIFY_TOKEN", &cfg.VerifyToken},
		{"WHATSAPP_TOKEN", &cfg.WhatsAppToken},
		{"PHONE_NUMBER_ID", &cfg.PhoneNumberID},
		{"WABA_ID", &cfg.WhatsAppBusinessAccountID},
		{"META_APP_ID", &cfg.AppID},
	}

	for _, st := range settings {
		var setting models.SystemSetting
		err := s.DB.Where("key = ?", st.Key).First(&setting).Error
		switch {
		case err == nil:
			if setting.Value != "" {
				*st.Value = setting.Value
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if *st.Value != "" {
				if err := s.DB.Create(&models.SystemSetting{Key: st.Key, Value: *st.Value}).Error; err != nil {
					log.Printf("save setting %s: %v", st.Key, err)
				}
			}
		default:
			log.Printf("load setting %s: %v", st.Key, err)
		}
	}
}
