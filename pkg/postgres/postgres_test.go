package postgres_test

import (
	"testing"

	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5432",
		Username: "catalog",
		Password: "p@ss",
		NameDB:   "library",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://catalog:p%40ss@db:5432/library?sslmode=disable", cfg.DSN())
}
