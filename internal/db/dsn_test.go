package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{" 'postgres://u:p@h/db' ", "postgres://u:p@h/db"},
		{"host=localhost user=app dbname=av", "host=localhost user=app dbname=av sslmode=disable"},
		{"host=localhost  user=app   dbname=av sslmode=require", "host=localhost user=app dbname=av sslmode=require"},
		{"data/av.db", "data/av.db"},
		{"file:test?mode=memory", "file:test?mode=memory"},
	}
	for _, tc := range cases {
		if got := NormalizeDSN(tc.in); got != tc.want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPostgres(t *testing.T) {
	if !IsPostgres("postgres://u@h/db") || !IsPostgres("host=h dbname=d") {
		t.Fatal("postgres DSNs not recognized")
	}
	if IsPostgres("data/av.db") || IsPostgres("file:x?mode=memory") {
		t.Fatal("sqlite DSNs misclassified")
	}
}

func TestConnectAndMigrateSqlite(t *testing.T) {
	dbConn, err := ConnectAndMigrate("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !dbConn.Migrator().HasTable("collections") {
		t.Fatal("collections table missing")
	}
}

func TestConnectAndMigrateEmptyDSN(t *testing.T) {
	if _, err := ConnectAndMigrate(""); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestMaskDSN(t *testing.T) {
	got := maskDSN("host=h user=u password=secret dbname=d")
	if got != "host=h user=u password=*** dbname=d" {
		t.Fatalf("maskDSN = %q", got)
	}
}
