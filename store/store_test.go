package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lindacli/linda"
)

// open returns an initialized store backed by a temporary file.
func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), DefaultFilename))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

// statement is a helper turning a command line into its insert statement.
func statement(t *testing.T, text string) linda.Statement {
	t.Helper()
	cmd, err := linda.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	c, err := cmd.Classify()
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", text, err)
	}
	stmt, ok := linda.NewStatement(c)
	if !ok {
		t.Fatalf("NewStatement(%q): no statement", text)
	}
	return stmt
}

func TestInitIsIdempotent(t *testing.T) {
	s := open(t)

	// a second Init on the same file must not fail nor duplicate anything
	if err := s.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}

	var tables int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", linda.TableName)
	if err := row.Scan(&tables); err != nil {
		t.Fatalf("counting tables: %v", err)
	}
	if tables != 1 {
		t.Errorf("found %d %q tables, want exactly 1", tables, linda.TableName)
	}
}

func TestExecAndRecords(t *testing.T) {
	s := open(t)

	for _, text := range []string{"&10,some word", "&-7,refund"} {
		if err := s.Exec(statement(t, text)); err != nil {
			t.Fatalf("Exec(%q) failed: %v", text, err)
		}
	}

	records, err := s.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Records = %v, want 2 records", records)
	}
	if records[0].Tax != 10 || records[0].Category != "some word" {
		t.Errorf("records[0] = %+v, want tax 10 category %q", records[0], "some word")
	}
	if records[1].Tax != -7 || records[1].Category != "refund" {
		t.Errorf("records[1] = %+v, want tax -7 category %q", records[1], "refund")
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("records[0].CreatedAt is zero, want the insertion time")
	}
}

func TestExecWithoutSchema(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), DefaultFilename))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	// no Init: the table does not exist, the statement must fail
	if err := s.Exec(statement(t, "&10,word")); !errors.Is(err, ErrStatement) {
		t.Errorf("Exec without schema = %v, want ErrStatement", err)
	}
}

func TestExecMalformedStatement(t *testing.T) {
	s := open(t)
	err := s.Exec(linda.Statement{SQL: "INSERT INTO nowhere VALUES (?)", Args: []any{1}})
	if !errors.Is(err, ErrStatement) {
		t.Errorf("Exec(malformed) = %v, want ErrStatement", err)
	}
}

// The category is bound, not interpolated: hostile text lands in the row
// verbatim and the table survives.
func TestHostileCategoryIsBound(t *testing.T) {
	s := open(t)

	hostile := "x') DROP TABLE `transaction` --"
	if err := s.Exec(statement(t, "&10,"+hostile)); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	records, err := s.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 1 || records[0].Category != hostile {
		t.Errorf("Records = %+v, want one record with the hostile category verbatim", records)
	}
}
