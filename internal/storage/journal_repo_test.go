package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestJournal(t *testing.T) *JournalRepo {
	t.Helper()
	ctx := context.Background()

	db, err := OpenJournal(ctx, filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewJournalRepo(db)
}

func TestJournalInsertAndList(t *testing.T) {
	repo := newTestJournal(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Insert(ctx, now, JournalEarn, "took_a_test", 200, 200); err != nil {
		t.Fatalf("Insert earn: %v", err)
	}
	if _, err := repo.Insert(ctx, now.Add(time.Minute), JournalSpend, "plant_rose", -300, 200); err != nil {
		t.Fatalf("Insert spend: %v", err)
	}
	if _, err := repo.Insert(ctx, now.Add(2*time.Minute), JournalSpend, "plant_baby_cactus", -100, 100); err != nil {
		t.Fatalf("Insert spend: %v", err)
	}

	entries, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries=%d, want 2", len(entries))
	}
	if entries[0].Ref != "plant_baby_cactus" {
		t.Fatalf("newest ref=%q, want plant_baby_cactus", entries[0].Ref)
	}
}

func TestJournalTotalEarnedSumsOnlyCredits(t *testing.T) {
	repo := newTestJournal(t)
	ctx := context.Background()
	now := time.Now().UTC()

	inserts := []struct {
		kind  string
		ref   string
		delta int
	}{
		{JournalEarn, "went_to_class", 5},
		{JournalEarn, "slept_8hours", 100},
		{JournalSpend, "pet_person", -250},
		{JournalUpgrade, "plant_shrub", -100},
	}
	balance := 0
	for _, in := range inserts {
		balance += in.delta
		if _, err := repo.Insert(ctx, now, in.kind, in.ref, in.delta, balance); err != nil {
			t.Fatalf("Insert %s: %v", in.ref, err)
		}
	}

	total, err := repo.TotalEarned(ctx)
	if err != nil {
		t.Fatalf("TotalEarned: %v", err)
	}
	if total != 105 {
		t.Fatalf("total=%d, want 105", total)
	}

	n, err := repo.CountSince(ctx, JournalEarn, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if n != 2 {
		t.Fatalf("earn count=%d, want 2", n)
	}
}
