package assets

import (
	"strings"
	"testing"
)

func TestMigrations(t *testing.T) {
	ms, err := Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(ms) == 0 {
		t.Fatal("expected at least one migration")
	}
	if ms[0].Name != "001_rounds.sql" {
		t.Fatalf("expected first migration 001_rounds.sql, got %q", ms[0].Name)
	}
	if !strings.Contains(ms[0].SQL, "CREATE TABLE IF NOT EXISTS rounds") {
		t.Fatalf("expected rounds table in first migration")
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Name >= ms[i].Name {
			t.Fatalf("expected lexical order, got %q before %q", ms[i-1].Name, ms[i].Name)
		}
	}
}
