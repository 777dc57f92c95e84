package journal

import (
	"context"
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	j := New(t.TempDir())
	ctx := context.Background()

	if err := j.Append(ctx, Entry{Operation: OpCreate, Zone: "example.com", RecordType: "A", RecordName: "www.example.com"}); err != nil {
		t.Fatalf("append 1: %v", err)
	}
	if err := j.Append(ctx, Entry{Operation: OpDelete, Zone: "example.com", RecordType: "TXT", RecordName: "example.com", Outcome: "Invalid record (status 400)"}); err != nil {
		t.Fatalf("append 2: %v", err)
	}

	entries, err := j.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Operation != OpDelete {
		t.Fatalf("first entry = %+v, want the delete", entries[0])
	}
	if entries[0].Outcome != "Invalid record (status 400)" {
		t.Fatalf("outcome = %q", entries[0].Outcome)
	}
	if entries[1].Operation != OpCreate || entries[1].Outcome != OutcomeOK {
		t.Fatalf("second entry = %+v", entries[1])
	}
	if entries[1].ID == "" || entries[1].At.IsZero() {
		t.Fatalf("id/timestamp not filled: %+v", entries[1])
	}
}

func TestRecent_Limit(t *testing.T) {
	j := New(t.TempDir())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := Entry{Operation: OpUpdate, Zone: "example.com", RecordType: "A", RecordName: "example.com", At: base.Add(time.Duration(i) * time.Minute)}
		if err := j.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].At.After(entries[1].At) {
		t.Fatalf("entries not newest-first: %v then %v", entries[0].At, entries[1].At)
	}
}

func TestAppend_RequiresOperation(t *testing.T) {
	j := New(t.TempDir())
	if err := j.Append(context.Background(), Entry{Zone: "example.com"}); err == nil {
		t.Fatalf("expected error for missing operation")
	}
}

func TestRecent_EmptyJournal(t *testing.T) {
	j := New(t.TempDir())
	entries, err := j.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}
