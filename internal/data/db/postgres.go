package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/skillpath/skillpath-backend/internal/pkg/envutil"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(logg *logger.Logger) (*PostgresService, error) {
	serviceLog := logg.With("service", "PostgresService")

	host := envutil.Get("POSTGRES_HOST", "localhost", logg)
	port := envutil.Get("POSTGRES_PORT", "5432", logg)
	user := envutil.Get("POSTGRES_USER", "postgres", logg)
	password := envutil.Get("POSTGRES_PASSWORD", "", logg)
	name := envutil.Get("POSTGRES_NAME", "skillpath", logg)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(envutil.GetInt("POSTGRES_MAX_OPEN_CONNS", 25, logg))
	sqlDB.SetMaxIdleConns(envutil.GetInt("POSTGRES_MAX_IDLE_CONNS", 5, logg))
	sqlDB.SetConnMaxLifetime(time.Duration(envutil.GetInt("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30, logg)) * time.Minute)

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("uuid extension: %w", err)
	}

	serviceLog.Info("postgres connected", "host", host, "db", name)
	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (p *PostgresService) DB() *gorm.DB { return p.db }

func (p *PostgresService) AutoMigrateAll() error {
	return AutoMigrateAll(p.db)
}
