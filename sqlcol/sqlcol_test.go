package sqlcol_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/confidential"
	"github.com/zoobzio/confidential/sqlcol"
)

func TestValueDelegatesToDefaultConverter(t *testing.T) {
	tests := []struct {
		name string
		col  driver.Valuer
		want driver.Value
	}{
		{"string", sqlcol.New("tok_123"), "tok_123"},
		{"int64", sqlcol.New(int64(42)), int64(42)},
		{"bool", sqlcol.New(true), true},
		{"float", sqlcol.New(2.5), 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.col.Value()
			if err != nil {
				t.Fatalf("Value() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

// expiringToken implements driver.Valuer with custom encoding.
type expiringToken struct {
	Raw    string
	Expiry time.Time
}

func (e expiringToken) Value() (driver.Value, error) {
	return e.Raw + "|" + e.Expiry.UTC().Format(time.RFC3339), nil
}

func TestValueDelegatesToInnerValuer(t *testing.T) {
	col := sqlcol.New(expiringToken{
		Raw:    "tok_9",
		Expiry: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	got, err := col.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if got != "tok_9|2026-01-02T03:04:05Z" {
		t.Errorf("Value() = %v, want the inner Valuer's encoding", got)
	}
}

func TestScanConversions(t *testing.T) {
	t.Run("string from string", func(t *testing.T) {
		var col sqlcol.Column[string]
		if err := col.Scan("tok_abc"); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		if got := col.Reveal(); got != "tok_abc" {
			t.Errorf("Reveal() = %q, want tok_abc", got)
		}
	})

	t.Run("string from bytes", func(t *testing.T) {
		var col sqlcol.Column[string]
		if err := col.Scan([]byte("tok_def")); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		if got := col.Reveal(); got != "tok_def" {
			t.Errorf("Reveal() = %q, want tok_def", got)
		}
	})

	t.Run("bytes are copied", func(t *testing.T) {
		src := []byte("key-material")
		var col sqlcol.Column[[]byte]
		if err := col.Scan(src); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		src[0] = 'X'
		if got := string(col.Reveal()); got != "key-material" {
			t.Errorf("Reveal() = %q, want an independent copy", got)
		}
	})

	t.Run("int from int64", func(t *testing.T) {
		var col sqlcol.Column[int]
		if err := col.Scan(int64(7)); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		if got := col.Reveal(); got != 7 {
			t.Errorf("Reveal() = %d, want 7", got)
		}
	})

	t.Run("bool from int64", func(t *testing.T) {
		var col sqlcol.Column[bool]
		if err := col.Scan(int64(1)); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		if !col.Reveal() {
			t.Error("Reveal() = false, want true")
		}
	})
}

func TestScanFailureContained(t *testing.T) {
	var col sqlcol.Column[int]
	err := col.Scan("MARKER-not-a-number")
	if err == nil {
		t.Fatal("Scan() should fail for a string into an int column")
	}
	if !errors.Is(err, confidential.ErrDecode) {
		t.Errorf("Scan() error = %v, want it to unwrap to ErrDecode", err)
	}
	if strings.Contains(err.Error(), "MARKER") {
		t.Errorf("error %q echoes the row data", err)
	}
}

func TestColumnStaysRedacted(t *testing.T) {
	col := sqlcol.New("topsecret")
	if got := fmt.Sprintf("%v %s", col, col); got != "... ..." {
		t.Errorf("formatted column = %q, want redacted", got)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE creds (id INTEGER PRIMARY KEY, name TEXT, token TEXT, pin INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	token := sqlcol.New("tok_live_4242")
	pin := sqlcol.New(int64(9876))
	if _, err := db.Exec(`INSERT INTO creds (id, name, token, pin) VALUES (?, ?, ?, ?)`,
		1, "alice", token, pin); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var (
		name   string
		gotTok sqlcol.Column[string]
		gotPin sqlcol.Column[int64]
	)
	row := db.QueryRow(`SELECT name, token, pin FROM creds WHERE id = ?`, 1)
	if err := row.Scan(&name, &gotTok, &gotPin); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if name != "alice" {
		t.Errorf("name = %q, want alice", name)
	}
	if got := gotTok.Reveal(); got != "tok_live_4242" {
		t.Errorf("token = %q, want tok_live_4242", got)
	}
	if got := gotPin.Reveal(); got != 9876 {
		t.Errorf("pin = %d, want 9876", got)
	}
}
