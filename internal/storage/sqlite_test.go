package storage

import (
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("cubes", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("cubes_wrap", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("cubes", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "cubes" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not set", i)
		}
	}

	wrap, err := store.TopScores("cubes_wrap", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(wrap) != 1 {
		t.Errorf("Expected 1 wrap score, got %d", len(wrap))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("cubes", (i+1)*100)
	}

	scores, err := store.TopScores("cubes", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("cubes")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("cubes", 100)
	store.SaveScore("cubes", 300)
	store.SaveScore("cubes", 200)

	high, err = store.HighScore("cubes")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "cubes", Score: 12, Ticks: 900, Spawned: 20, Despawned: 15, Diamonds: 1},
		{GameID: "cubes", Score: 30, Ticks: 1800, Spawned: 41, Despawned: 33, Diamonds: 2},
		{GameID: "cubes_wrap", Score: 7, Ticks: 420, Spawned: 9, Wrapped: 17},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("cubes", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}
	if got[0].Score != 30 || got[0].Ticks != 1800 || got[0].Spawned != 41 || got[0].Despawned != 33 || got[0].Diamonds != 2 {
		t.Errorf("newest run = %+v", got[0])
	}
	if got[1].Score != 12 {
		t.Errorf("runs should be newest first, got %+v", got)
	}

	wrap, _ := store.RecentRuns("cubes_wrap", 10)
	if len(wrap) != 1 || wrap[0].Wrapped != 17 {
		t.Errorf("wrap runs = %+v", wrap)
	}

	limited, _ := store.RecentRuns("cubes", 1)
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("cubes", 100)
	store.SaveScore("cubes", 200)
	store.SaveRun(RunRecord{GameID: "cubes", Score: 200})
	store.SaveScore("cubes_wrap", 300)

	if err := store.ClearScores("cubes"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("cubes", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("cubes", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, _ := store.TopScores("cubes_wrap", 10)
	if len(other) != 1 {
		t.Errorf("Other modes should not be affected by clearing cubes")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("cubes")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	// A run that scores nothing has no scores row but still counts.
	store.SaveScore("cubes", 10)
	store.SaveScore("cubes", 30)
	store.SaveScore("cubes", 20)
	store.SaveRun(RunRecord{GameID: "cubes", Score: 10, Ticks: 600, Diamonds: 1})
	store.SaveRun(RunRecord{GameID: "cubes", Score: 30, Ticks: 1200, Diamonds: 2})
	store.SaveRun(RunRecord{GameID: "cubes", Score: 0, Ticks: 300})
	store.SaveRun(RunRecord{GameID: "cubes", Score: 20, Ticks: 900, Diamonds: 1})

	stats, err := store.GetGameStats("cubes")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"GamesCount", stats.GamesCount, 4},
		{"HighScore", stats.HighScore, 30},
		{"AvgScore", stats.AvgScore, 15.0},
		{"TotalScore", stats.TotalScore, int64(60)},
		{"TotalTicks", stats.TotalTicks, int64(3000)},
		{"Diamonds", stats.Diamonds, int64(4)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.want)
		}
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
