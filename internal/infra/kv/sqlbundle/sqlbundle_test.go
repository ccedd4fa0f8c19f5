package sqlbundle

import (
	"strings"
	"testing"
)

func TestBundlesDeclareStateTable(t *testing.T) {
	for name, stmts := range map[string][]string{"sqlite": SQLite(), "postgres": Postgres()} {
		if len(stmts) != 1 {
			t.Fatalf("%s: expected one statement, got %d", name, len(stmts))
		}
		if !strings.HasPrefix(stmts[0], "CREATE TABLE IF NOT EXISTS state") {
			t.Fatalf("%s: unexpected statement %q", name, stmts[0])
		}
	}
	if !strings.Contains(Postgres()[0], "BYTEA") || !strings.Contains(SQLite()[0], "BLOB") {
		t.Fatalf("payload column types differ from expected dialects")
	}
}

func TestSplitStatements(t *testing.T) {
	script := "-- header\nCREATE TABLE a (x INT);\n\n  -- note\nCREATE INDEX i ON a\n  (x);\nSELECT 1"
	got := SplitStatements(script)
	want := []string{"CREATE TABLE a (x INT);", "CREATE INDEX i ON a\n  (x);", "SELECT 1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d statements, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statement %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
