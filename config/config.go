package config

import (
	"fmt"
	"os"

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
		DBHost:     os.Getenv("DATABASE_HOST"),
		DBPort:     os.Getenv("DATABASE_PORT"),
		DBUser:     os.Getenv("DATABASE_USERNAME"),
		DBPassword: os.Getenv("DATABASE_PASSWORD"),
		DBName:     os.Getenv("DATABASE_NAME"),
	}, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func enablePgcryptoExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error
}

// The schema is a fixed idempotent bootstrap, not a migration chain.
const createVenuesTable = `
CREATE TABLE IF NOT EXISTS venues (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT,
	address TEXT,
	capacity INT
)`

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	id SERIAL PRIMARY KEY,
	venue_id INT NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	type TEXT,
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP,
	status TEXT NOT NULL DEFAULT 'ON_SALE',
	description TEXT
)`

func BootstrapSchema(db *gorm.DB) error {
	if err := enablePgcryptoExtension(db); err != nil {
		return err
	}

	for _, stmt := range []string{createVenuesTable, createEventsTable} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := BootstrapSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}
