package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "storefront",
		Password: "secret",
		DBName:   "storefrontdb",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=storefront password=secret dbname=storefrontdb sslmode=disable", cfg.DSN())
}
