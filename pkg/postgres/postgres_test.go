package postgres

import (
	"testing"

	"recs-admin/pkg/config"
)

func TestDSNEscapesCredentials(t *testing.T) {
	got := DSN(&config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss word",
		DBName:   "recommendations",
		SSLMode:  "disable",
	})
	want := "postgres://app:p%40ss%20word@db:5432/recommendations?sslmode=disable"
	if got != want {
		t.Fatalf("unexpected dsn: got=%s want=%s", got, want)
	}
}
