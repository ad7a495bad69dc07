package postgres

import (
	"testing"

	"github.com/leanttro/feiras-de-rua/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, "postgres://u:p@h/db", DSN(&config.DatabaseConfig{URL: "postgres://u:p@h/db", Host: "ignored"}))

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=feiras sslmode=disable",
		DSN(&config.DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "secret",
			DBName:   "feiras",
			SSLMode:  "disable",
		}),
	)
}
