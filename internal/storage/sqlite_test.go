package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, run Run) Run {
	t.Helper()
	if err := store.SaveRun(&run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return run
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRunFillsIdentity(t *testing.T) {
	store := openTestStore(t)

	run := mustSave(t, store, Run{
		Preset:       "normal",
		Seed:         42,
		Score:        350,
		HighestCombo: 4,
		Level:        1,
		Duration:     95 * time.Second,
	})

	if run.ID == 0 {
		t.Error("ID was not set")
	}
	if _, err := uuid.Parse(run.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", run.RunID, err)
	}
	if run.Player != "human" {
		t.Errorf("Player = %q, expected default human", run.Player)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() found nothing")
	}
	if got.Score != 350 || got.Seed != 42 || got.HighestCombo != 4 || got.Duration != 95*time.Second {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing run, got %+v", got)
	}
}

func TestStoreDuplicateRunIDRejected(t *testing.T) {
	store := openTestStore(t)
	run := mustSave(t, store, Run{Preset: "normal", Score: 10})

	dup := Run{RunID: run.RunID, Preset: "normal", Score: 20}
	if err := store.SaveRun(&dup); err == nil {
		t.Error("saving a duplicate RunID should fail")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []Run{
		{Preset: "normal", Score: 100},
		{Preset: "normal", Score: 50},
		{Preset: "hard", Score: 500},
		{Preset: "normal", Score: 200},
	} {
		mustSave(t, store, r)
	}

	tests := []struct {
		name   string
		preset string
		limit  int
		want   []int
	}{
		{"all presets", "", 10, []int{500, 200, 100, 50}},
		{"one preset", "normal", 10, []int{200, 100, 50}},
		{"limited", "", 2, []int{500, 200}},
		{"unknown preset", "easy", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.TopRuns(tt.preset, tt.limit)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("got %d runs, expected %d", len(runs), len(tt.want))
			}
			for i, r := range runs {
				if r.Score != tt.want[i] {
					t.Errorf("run %d: score %d, expected %d", i, r.Score, tt.want[i])
				}
			}
		})
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 5; i++ {
		mustSave(t, store, Run{Preset: "normal", Score: i * 10})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	want := []int{50, 40, 30}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, expected %d", len(runs), len(want))
	}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("run %d: score %d, expected %d", i, r.Score, want[i])
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("expected 0 for an empty store, got %d", score)
	}

	mustSave(t, store, Run{Preset: "easy", Score: 900})
	mustSave(t, store, Run{Preset: "hard", Score: 300})

	if score, _ := store.HighScore(""); score != 900 {
		t.Errorf("overall high score = %d, expected 900", score)
	}
	if score, _ := store.HighScore("hard"); score != 300 {
		t.Errorf("hard high score = %d, expected 300", score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{Preset: "normal", Score: 100, HighestCombo: 3, Level: 1, Duration: 30 * time.Second})
	mustSave(t, store, Run{Preset: "normal", Score: 300, HighestCombo: 7, Level: 2, Duration: 90 * time.Second})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{
		Runs:         2,
		BestScore:    300,
		AverageScore: 200,
		BestCombo:    7,
		MaxLevel:     2,
		TotalPlayed:  2 * time.Minute,
	}
	if st != want {
		t.Errorf("Stats() = %+v, expected %+v", st, want)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, Run{Preset: "normal", Score: 100})
	mustSave(t, store, Run{Preset: "hard", Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs after clear, got %d", len(runs))
	}
}
