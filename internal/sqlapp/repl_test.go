package sqlapp

import (
	"bytes"
	"database/sql"
	"os"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func TestReplRunsQueriesUntilEOF(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}

	go func() {
		defer w.Close()
		w.WriteString("CREATE TABLE t (a INTEGER)\n")
		w.WriteString("INSERT INTO t (a) VALUES (1)\n")
		w.WriteString("SELECT a FROM t\n")
	}()

	var out bytes.Buffer
	if err := Repl(db, r, &out); err != nil {
		t.Fatalf("Repl: %v", err)
	}

	if !strings.Contains(out.String(), "1 rows") {
		t.Errorf("Repl output = %q, want it to report 1 row for the SELECT", out.String())
	}
	if !strings.Contains(out.String(), "rows changed") {
		t.Errorf("Repl output = %q, want an OK line for the INSERT", out.String())
	}
}

func TestReplReportsQueryErrorsWithoutStopping(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}

	go func() {
		defer w.Close()
		w.WriteString("SELECT * FROM nonexistent_table\n")
		w.WriteString("SELECT 1\n")
	}()

	var out bytes.Buffer
	if err := Repl(db, r, &out); err != nil {
		t.Fatalf("Repl: %v", err)
	}

	if !strings.Contains(out.String(), "error:") {
		t.Errorf("Repl output = %q, want an error line for the bad query", out.String())
	}
	if !strings.Contains(out.String(), "1 rows") {
		t.Errorf("Repl output = %q, want the REPL to keep processing after an error", out.String())
	}
}
