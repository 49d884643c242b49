package database

import (
	"testing"

	"vidtube/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "vid",
		DBPassword: "secret",
		DBName:     "vidtube",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=db user=vid password=secret dbname=vidtube port=5432 sslmode=disable", DSN(cfg))
}
