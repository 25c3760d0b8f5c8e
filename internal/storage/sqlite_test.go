package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
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

func save(t *testing.T, store *Store, gameID, name string, score int) {
	t.Helper()
	runID := fmt.Sprintf("%s-%s-%d", gameID, name, score)
	if _, err := store.SaveScore(NewScore{GameID: gameID, RunID: runID, Name: name, Score: score, Level: 1}); err != nil {
		t.Fatalf("SaveScore(%s, %d) failed: %v", name, score, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "office", "ann", 100)
	save(t, store, "office", "bob", 50)
	save(t, store, "office", "cid", 200)
	save(t, store, "office_endless", "dee", 500)

	scores, err := store.TopScores("office", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Name != "CID" {
		t.Errorf("Name = %q, want normalized %q", scores[0].Name, "CID")
	}

	endless, err := store.TopScores("office_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreSaveIsIdempotentPerRun(t *testing.T) {
	store := openTestStore(t)
	ns := NewScore{GameID: "office", RunID: "run-1", Name: "ann", Score: 120, Level: 2}

	if _, err := store.SaveScore(ns); err != nil {
		t.Fatalf("first SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(ns); !errors.Is(err, ErrDuplicateRun) {
		t.Errorf("second SaveScore() err = %v, want ErrDuplicateRun", err)
	}

	all, _ := store.AllScores("office")
	if len(all) != 1 {
		t.Errorf("stored %d rows for one run", len(all))
	}

	if _, err := store.SaveScore(NewScore{GameID: "office", Score: 10}); err == nil {
		t.Error("a score without a run ID should be rejected")
	}
}

func TestStoreTableBackfill(t *testing.T) {
	store := openTestStore(t)

	table, err := store.Table("office")
	if err != nil {
		t.Fatalf("Table() failed: %v", err)
	}
	if len(table) != TableSize {
		t.Fatalf("empty table has %d entries, want %d", len(table), TableSize)
	}
	for i, e := range table {
		if !e.Default || e.Score != DefaultScores[i].Score {
			t.Errorf("entry %d = %+v, want default %+v", i, e, DefaultScores[i])
		}
	}

	save(t, store, "office", "ann", 350)
	save(t, store, "office", "bob", 100)

	table, err = store.Table("office")
	if err != nil {
		t.Fatalf("Table() failed: %v", err)
	}
	got := make([]int, len(table))
	for i, e := range table {
		got[i] = e.Score
	}
	want := []int{500, 400, 350, 300, 200}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("table scores = %v, want %v", got, want)
	}
	if table[2].Default || table[2].Name != "ANN" {
		t.Errorf("stored score not merged in place: %+v", table[2])
	}
}

func TestMergeTableStoredWinsTies(t *testing.T) {
	stored := []ScoreEntry{{ID: 1, Name: "ANN", Score: 100}}
	table := MergeTable("office", stored)

	last := table[len(table)-1]
	if last.Default {
		t.Errorf("tie with a default should keep the stored score, got %+v", last)
	}
	for _, e := range table {
		if e.GameID != "office" {
			t.Errorf("entry %+v has the wrong game ID", e)
		}
	}
}

func TestQualifies(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{100, false},
		{101, true},
		{10000, true},
	}

	for _, tt := range tests {
		got, err := store.Qualifies("office", tt.score)
		if err != nil {
			t.Fatalf("Qualifies() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Qualifies(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if !QualifiesFor(nil, 1) {
		t.Error("any positive score qualifies for a short table")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  ann ", "ANN"},
		{"", DefaultName},
		{"   ", DefaultName},
		{"abcdefghijklmnop", "ABCDEFGHIJKL"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("office")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "office", "ann", 100)
	save(t, store, "office", "bob", 300)
	save(t, store, "office_endless", "cid", 700)

	if high, _ = store.HighScore("office"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("office"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("office", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("office_endless", 10); len(scores) != 1 {
		t.Error("endless scores should not be affected by clearing office")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("office")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for i, score := range []int{100, 200, 300} {
		ns := NewScore{GameID: "office", RunID: fmt.Sprint("run-", i), Name: "ann", Score: score, Level: i + 1}
		if _, err := store.SaveScore(ns); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetGameStats("office")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.BestLevel != 3 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["office"].TotalScore != 600 {
		t.Errorf("all stats = %+v", all)
	}
}
