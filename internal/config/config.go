// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

// StoreKind selects the persistence backend of the API server.
type StoreKind string

const (
	StoreMemory   StoreKind = "memory"
	StoreRowStore StoreKind = "rowstore"
	StorePostgres StoreKind = "postgres"
)

// ErrRowStoreCredentials is returned when STORE=rowstore but no usable
// credentials are configured. Fatal at process start.
var ErrRowStoreCredentials = errors.New(
	"row store selected but ROWSTORE_URL or a key (ROWSTORE_SERVICE_KEY or ROWSTORE_ANON_KEY) is missing")

type RowStore struct {
	URL        string `validate:"omitempty,url"`
	ServiceKey string
	AnonKey    string
	Schema     string
}

// Key returns the service key when present, the anon key otherwise.
func (r RowStore) Key() string {
	if r.ServiceKey != "" {
		return r.ServiceKey
	}
	return r.AnonKey
}

type Database struct {
	Port     uint16
	Host     string `validate:"omitempty,hostname_rfc1123"`
	Database string
	User     string
	Password string
}

// DSN renders the pgx connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

type Config struct {
	Port     uint16
	Env      string    `validate:"omitempty,oneof=DEV PROD"`
	Store    StoreKind `validate:"oneof=memory rowstore postgres"`
	RowStore RowStore
	Database Database
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment. A .env file and a
// .env.local override are applied first when present; variables already
// set in the environment always win.
func Load() (Config, error) {
	for _, file := range []string{".env", ".env.local"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	conf := Config{
		Env:   loadWithDefault("ENV", EnvDev),
		Store: StoreKind(loadWithDefault("STORE", string(StoreMemory))),
		RowStore: RowStore{
			URL:        os.Getenv("ROWSTORE_URL"),
			ServiceKey: os.Getenv("ROWSTORE_SERVICE_KEY"),
			AnonKey:    os.Getenv("ROWSTORE_ANON_KEY"),
			Schema:     loadWithDefault("ROWSTORE_SCHEMA", "public"),
		},
		Database: Database{
			Host:     loadWithDefault("DATABASE_HOST", "localhost"),
			Database: os.Getenv("DATABASE"),
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASSWORD"),
		},
	}

	port := loadWithDefault("PORT", "4000")
	if p, err := strconv.ParseUint(port, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid PORT (%q): %w", port, err)
	} else {
		conf.Port = uint16(p)
	}

	databasePort := loadWithDefault("DATABASE_PORT", "5432")
	if p, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(p)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(conf); err != nil {
		return conf, fmt.Errorf("validating config: %w", err)
	}

	switch conf.Store {
	case StoreRowStore:
		if conf.RowStore.URL == "" || conf.RowStore.Key() == "" {
			return conf, ErrRowStoreCredentials
		}
	case StorePostgres:
		if conf.Database.Database == "" || conf.Database.User == "" {
			return conf, errors.New("postgres store selected but DATABASE or DATABASE_USER is missing")
		}
	}

	return conf, nil
}
