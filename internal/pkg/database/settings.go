package database

import (
	"fmt"
	"net/url"
)

type PostgresSettings struct {
	User       string `env:"DB_USER" envDefault:"admin"`
	Password   string `env:"DB_PASSWORD" envDefault:"password"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"checkout_db"`
	SSlEnabled bool   `env:"DB_SSL" envDefault:"false"`
}

func (s PostgresSettings) GetUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   fmt.Sprintf("%s:%s", s.Host, s.Port),
		Path:   s.DBName,
	}

	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
