package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/combat"
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

// playReferenceDuel runs the slime duel to completion.
func playReferenceDuel() *combat.Session {
	hero := combat.NewCharacter("Hero", combat.Stats{MaxHP: 30, Attack: 10, Defense: 2})
	slime := combat.NewCharacter("Slime", combat.Stats{MaxHP: 20, Attack: 6, Defense: 1})
	s := combat.Start(hero, slime)
	s.PlayerAttack()
	s.MonsterAttackTick(s.MonsterDelay())
	s.PlayerAttack()
	return s
}

func referenceRecord() BattleRecord {
	s := playReferenceDuel()
	return NewBattleRecord("duel", "slime", s.Summary(), s.RecentLog(10))
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNewBattleRecord(t *testing.T) {
	rec := referenceRecord()

	if !rec.Won() {
		t.Errorf("Winner = %q, expected player win", rec.Winner)
	}
	if rec.Turns != 3 || rec.DamageDealt != 28 || rec.DamageTaken != 9 {
		t.Errorf("totals = %d turns, %d dealt, %d taken; expected 3, 28, 9", rec.Turns, rec.DamageDealt, rec.DamageTaken)
	}
	if rec.MonsterHP != -8 {
		t.Errorf("MonsterHP = %d, expected -8", rec.MonsterHP)
	}
	if len(rec.Events) != 3 {
		t.Errorf("Expected 3 events, got %d", len(rec.Events))
	}
}

func TestNewBattleRecordAbandoned(t *testing.T) {
	hero := combat.NewCharacter("Hero", combat.Stats{MaxHP: 30, Attack: 10, Defense: 2})
	slime := combat.NewCharacter("Slime", combat.Stats{MaxHP: 20, Attack: 6, Defense: 1})
	s := combat.Start(hero, slime)
	s.PlayerAttack()

	rec := NewBattleRecord("duel", "slime", s.Summary(), s.RecentLog(10))
	if rec.Winner != "" || rec.Won() {
		t.Errorf("abandoned battle has winner %q", rec.Winner)
	}
}

func TestStoreSaveAndRetrieveBattle(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveBattle(referenceRecord())
	if err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("battle id %q is not a UUID", id)
	}

	got, err := store.BattleByID(id)
	if err != nil {
		t.Fatalf("BattleByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("BattleByID() returned nil")
	}
	if got.Encounter != "slime" || got.PlayerName != "Hero" || got.MonsterName != "Slime" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Winner != "Player" || got.MonsterHP != -8 || got.PlayerHP != 21 {
		t.Errorf("unexpected outcome: winner %q, hp %d/%d", got.Winner, got.PlayerHP, got.MonsterHP)
	}

	if len(got.Events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got.Events))
	}
	first := got.Events[0]
	if first.Attacker != "Hero" || first.Damage != 14 || first.DefenderHPAfter != 6 || first.Turn != 1 {
		t.Errorf("first event = %+v", first)
	}
	if got.Events[1].Attacker != "Slime" || got.Events[1].Damage != 9 {
		t.Errorf("second event = %+v", got.Events[1])
	}
}

func TestStoreBattleByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.BattleByID("missing")
	if err != nil {
		t.Fatalf("BattleByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing battle, got %+v", got)
	}
}

func TestStoreKeepsGivenBattleID(t *testing.T) {
	store := openTestStore(t)

	rec := referenceRecord()
	rec.BattleID = "fixed-id"
	id, err := store.SaveBattle(rec)
	if err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveBattle() = %q, expected fixed-id", id)
	}

	// Duplicate IDs are rejected and leave no partial rows behind
	if _, err := store.SaveBattle(rec); err == nil {
		t.Error("Expected error for duplicate battle id")
	}
	events, err := store.BattleEvents("fixed-id")
	if err != nil {
		t.Fatalf("BattleEvents() failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("Expected 3 events after failed duplicate, got %d", len(events))
	}
}

func TestStoreRecentBattles(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		rec := referenceRecord()
		rec.Turns = i
		if _, err := store.SaveBattle(rec); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}
	goblin := referenceRecord()
	goblin.Encounter = "goblin"
	if _, err := store.SaveBattle(goblin); err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}

	all, err := store.RecentBattles("", 10)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 battles, got %d", len(all))
	}

	slimes, err := store.RecentBattles("slime", 3)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(slimes) != 3 {
		t.Fatalf("Expected 3 battles (limited), got %d", len(slimes))
	}
	// Newest first
	if slimes[0].Turns != 4 {
		t.Errorf("Expected newest battle first, got turns=%d", slimes[0].Turns)
	}
}

func TestStoreEncounterStats(t *testing.T) {
	store := openTestStore(t)

	win := referenceRecord()
	loss := referenceRecord()
	loss.Winner = combat.Monster.String()
	loss.Turns = 5
	loss.DamageDealt = 40

	for _, rec := range []BattleRecord{win, win, loss} {
		if _, err := store.SaveBattle(rec); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	stats, err := store.GetEncounterStats("slime")
	if err != nil {
		t.Fatalf("GetEncounterStats() failed: %v", err)
	}
	if stats.Battles != 3 || stats.Wins != 2 {
		t.Errorf("Expected 3 battles with 2 wins, got %d/%d", stats.Battles, stats.Wins)
	}
	if stats.BestDamage != 40 {
		t.Errorf("BestDamage = %d, expected 40", stats.BestDamage)
	}
	wantAvg := float64(3+3+5) / 3
	if stats.AvgTurns < wantAvg-0.01 || stats.AvgTurns > wantAvg+0.01 {
		t.Errorf("AvgTurns = %f, expected %f", stats.AvgTurns, wantAvg)
	}

	empty, err := store.GetEncounterStats("dragon")
	if err != nil {
		t.Fatalf("GetEncounterStats() failed: %v", err)
	}
	if empty.Battles != 0 || empty.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreAllEncounterStats(t *testing.T) {
	store := openTestStore(t)

	slime := referenceRecord()
	goblin := referenceRecord()
	goblin.Encounter = "goblin"
	for _, rec := range []BattleRecord{slime, goblin, goblin} {
		if _, err := store.SaveBattle(rec); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	stats, err := store.GetAllEncounterStats()
	if err != nil {
		t.Fatalf("GetAllEncounterStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 encounters, got %d", len(stats))
	}
	if stats["goblin"].Battles != 2 {
		t.Errorf("goblin battles = %d, expected 2", stats["goblin"].Battles)
	}
	if stats["slime"].WinRate() != 1 {
		t.Errorf("slime win rate = %f, expected 1", stats["slime"].WinRate())
	}
}

func TestStoreClearBattles(t *testing.T) {
	store := openTestStore(t)

	slime := referenceRecord()
	goblin := referenceRecord()
	goblin.Encounter = "goblin"
	slimeID, err := store.SaveBattle(slime)
	if err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}
	if _, err := store.SaveBattle(goblin); err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}

	if err := store.ClearBattles("slime"); err != nil {
		t.Fatalf("ClearBattles() failed: %v", err)
	}

	battles, _ := store.RecentBattles("", 10)
	if len(battles) != 1 || battles[0].Encounter != "goblin" {
		t.Errorf("Expected only goblin battle left, got %+v", battles)
	}
	events, _ := store.BattleEvents(slimeID)
	if len(events) != 0 {
		t.Errorf("Expected slime events to be cleared, got %d", len(events))
	}

	if err := store.ClearBattles(""); err != nil {
		t.Fatalf("ClearBattles() failed: %v", err)
	}
	battles, _ = store.RecentBattles("", 10)
	if len(battles) != 0 {
		t.Errorf("Expected no battles, got %d", len(battles))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
