package journal

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one completed mutation: what was attempted and how it ended.
// Outcome is "ok" for a success, the classified error text otherwise.
// Superseded mutations are never journaled; their results are discarded
// before reaching the journal.
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	At         time.Time `json:"at" yaml:"at"`
	Operation  string    `json:"operation" yaml:"operation"`
	Zone       string    `json:"zone" yaml:"zone"`
	RecordType string    `json:"record_type" yaml:"record_type"`
	RecordName string    `json:"record_name" yaml:"record_name"`
	Outcome    string    `json:"outcome" yaml:"outcome"`
}

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// OutcomeOK marks a successful mutation.
const OutcomeOK = "ok"

// Journal is an append-only local record of mutations the operator ran.
// It is an audit trail, not a cache: nothing in the tree is ever populated
// from it. The database lives at <dir>/journal.db and is opened per call.
type Journal struct {
	dir string
}

func New(dir string) *Journal {
	return &Journal{dir: dir}
}

func (j *Journal) path() string {
	return filepath.Join(j.dir, "journal.db")
}

func (j *Journal) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", j.path())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage.
	// WAL enables one writer + many readers; busy_timeout helps avoid "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mutations (
			mutation_id TEXT PRIMARY KEY,
			at_unixms INTEGER NOT NULL,
			operation TEXT NOT NULL,
			zone TEXT NOT NULL,
			record_type TEXT NOT NULL,
			record_name TEXT NOT NULL,
			outcome TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_mutations_at ON mutations(at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Append records one completed mutation. Missing ID and timestamp are
// filled in.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	if strings.TrimSpace(e.Operation) == "" {
		return fmt.Errorf("journal: missing operation")
	}
	if e.ID == "" {
		id, err := newUUIDv4()
		if err != nil {
			return err
		}
		e.ID = id
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	if e.Outcome == "" {
		e.Outcome = OutcomeOK
	}

	db, err := j.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		INSERT INTO mutations(mutation_id, at_unixms, operation, zone, record_type, record_name, outcome)
		VALUES(?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.At.UnixMilli(), e.Operation, e.Zone, e.RecordType, e.RecordName, e.Outcome)
	return err
}

// Recent returns the newest entries, newest first. limit <= 0 means all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	db, err := j.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT mutation_id, at_unixms, operation, zone, record_type, record_name, outcome
	      FROM mutations
	      ORDER BY at_unixms DESC, mutation_id DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var tsMs int64
		if err := rows.Scan(&e.ID, &tsMs, &e.Operation, &e.Zone, &e.RecordType, &e.RecordName, &e.Outcome); err != nil {
			return nil, err
		}
		e.At = time.UnixMilli(tsMs).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Entry{}
	}
	return out, nil
}

func newUUIDv4() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	// RFC 4122 variant + v4
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uint32(b[0])<<24|uint32(b[1])<<16|uint32(b[2])<<8|uint32(b[3]),
		uint16(b[4])<<8|uint16(b[5]),
		uint16(b[6])<<8|uint16(b[7]),
		uint16(b[8])<<8|uint16(b[9]),
		uint64(b[10])<<40|uint64(b[11])<<32|uint64(b[12])<<24|uint64(b[13])<<16|uint64(b[14])<<8|uint64(b[15]),
	), nil
}
