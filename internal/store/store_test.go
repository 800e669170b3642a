package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "go-draughts-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	s, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStore(t)

	rec := &GameRecord{
		ID:       "game-1",
		Variant:  "international",
		StartFEN: "0:W:1,2,3:48,49,50",
		PDN:      "1. 32-28 19-23",
		Result:   "-",
	}
	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	loaded, err := s.LoadGame("game-1")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if loaded.PDN != rec.PDN || loaded.Variant != rec.Variant {
		t.Errorf("loaded record %+v does not match saved %+v", loaded, rec)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("expected SaveGame to stamp UpdatedAt")
	}
}

func TestLoadGameMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadGame("does-not-exist"); err == nil {
		t.Error("expected an error loading a missing game")
	}
}

func TestListGames(t *testing.T) {
	s := openTestStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveGame(&GameRecord{ID: id}); err != nil {
			t.Fatalf("SaveGame(%s): %v", id, err)
		}
	}
	games, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 3 {
		t.Errorf("expected 3 games, got %d", len(games))
	}
}

func TestEngineConfigRoundTrip(t *testing.T) {
	s := openTestStore(t)
	defaultCfg := EngineConfig{DepthLimit: 12, TimeLimit: 2 * time.Second, TableSizeMB: 32}

	loaded, err := s.LoadEngineConfig(defaultCfg)
	if err != nil {
		t.Fatalf("LoadEngineConfig (empty store): %v", err)
	}
	if loaded != defaultCfg {
		t.Errorf("expected the default config when nothing was saved, got %+v", loaded)
	}

	custom := EngineConfig{DepthLimit: 20, TimeLimit: 5 * time.Second, TableSizeMB: 64}
	if err := s.SaveEngineConfig(custom); err != nil {
		t.Fatalf("SaveEngineConfig: %v", err)
	}
	loaded, err = s.LoadEngineConfig(defaultCfg)
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if loaded != custom {
		t.Errorf("expected the persisted config %+v, got %+v", custom, loaded)
	}
}

func TestRecordResultAndStats(t *testing.T) {
	s := openTestStore(t)

	for _, res := range []string{"1-0", "1-0", "0-1", "1/2-1/2"} {
		if err := s.RecordResult(res); err != nil {
			t.Fatalf("RecordResult(%s): %v", res, err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 4 || stats.Wins != 2 || stats.Losses != 1 || stats.Draws != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
