package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

var (
	DB  *gorm.DB
	Log zerolog.Logger
)

// InitLogger configura el logger global de la aplicación.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Consola legible en desarrollo, JSON en producción
	if os.Getenv("ENV") == "development" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Str("service", "leiny-informaciones").
			Logger()
		return
	}

	Log = zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "leiny-informaciones").
		Logger()
}

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	// DSN para PostgreSQL
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Santo_Domingo",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Log.Fatal().Err(err).Msg("No se pudo conectar a la base de datos")
	}

	DB = db

	// Pool de conexiones
	sqlDB, err := db.DB()
	if err != nil {
		Log.Fatal().Err(err).Msg("No se pudo obtener sql.DB de gorm")
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(DB); err != nil {
		Log.Fatal().Err(err).Msg("Error en AutoMigrate")
	}
	Log.Info().Msg("PostgreSQL conectado y migrado")
}

// Migrate corre AutoMigrate sobre todos los modelos. Separado para
// poder reutilizarlo con sqlite en los tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.AdSetting{},
		&models.LiveVideo{},
		&models.NewsletterSubscriber{},
	)
}
