// Package storage persists finished duels in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-duel/internal/combat"
)

// Store manages the SQLite database connection for battle history.
type Store struct {
	db *sql.DB
}

// BattleRecord is one finished (or abandoned) duel.
type BattleRecord struct {
	ID          int64
	BattleID    string // UUID, assigned by SaveBattle when empty
	GameID      string
	Encounter   string
	PlayerName  string
	MonsterName string
	Winner      string // "Player", "Monster" or empty when abandoned
	Turns       int
	DamageDealt int
	DamageTaken int
	PlayerHP    int
	MonsterHP   int
	CreatedAt   time.Time

	Events []combat.Event
}

// Won reports whether the player won the battle.
func (r BattleRecord) Won() bool {
	return r.Winner == combat.Player.String()
}

// NewBattleRecord builds a record from a duel summary and its transcript.
func NewBattleRecord(gameID, encounter string, sum combat.Summary, events []combat.Event) BattleRecord {
	rec := BattleRecord{
		GameID:      gameID,
		Encounter:   encounter,
		PlayerName:  sum.PlayerName,
		MonsterName: sum.MonsterName,
		Turns:       sum.Turns,
		DamageDealt: sum.DamageDealt,
		DamageTaken: sum.DamageTaken,
		PlayerHP:    sum.PlayerHP,
		MonsterHP:   sum.MonsterHP,
		Events:      events,
	}
	if sum.State.IsOver() {
		rec.Winner = sum.State.Winner.String()
	}
	return rec
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS battles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			battle_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			encounter TEXT NOT NULL,
			player_name TEXT NOT NULL,
			monster_name TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			turns INTEGER NOT NULL DEFAULT 0,
			damage_dealt INTEGER NOT NULL DEFAULT 0,
			damage_taken INTEGER NOT NULL DEFAULT 0,
			player_hp INTEGER NOT NULL DEFAULT 0,
			monster_hp INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_battles_encounter ON battles(encounter);

		CREATE TABLE IF NOT EXISTS battle_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			battle_id TEXT NOT NULL REFERENCES battles(battle_id) ON DELETE CASCADE,
			turn INTEGER NOT NULL,
			attacker TEXT NOT NULL,
			defender TEXT NOT NULL,
			ability TEXT NOT NULL,
			damage INTEGER NOT NULL,
			defender_hp_after INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_battle_events_battle ON battle_events(battle_id, turn);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBattle records a battle and its events in one transaction.
// Returns the battle's UUID.
func (s *Store) SaveBattle(rec BattleRecord) (string, error) {
	if rec.BattleID == "" {
		rec.BattleID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		`INSERT INTO battles
		 (battle_id, game_id, encounter, player_name, monster_name, winner,
		  turns, damage_dealt, damage_taken, player_hp, monster_hp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.BattleID, rec.GameID, rec.Encounter, rec.PlayerName, rec.MonsterName, rec.Winner,
		rec.Turns, rec.DamageDealt, rec.DamageTaken, rec.PlayerHP, rec.MonsterHP,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save battle: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO battle_events
		 (battle_id, turn, attacker, defender, ability, damage, defender_hp_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range rec.Events {
		if _, err := stmt.Exec(rec.BattleID, ev.Turn, ev.Attacker, ev.Defender, ev.Ability, ev.Damage, ev.DefenderHPAfter); err != nil {
			return "", fmt.Errorf("storage: cannot save battle event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit battle: %w", err)
	}
	return rec.BattleID, nil
}

const battleColumns = `id, battle_id, game_id, encounter, player_name, monster_name, winner,
	turns, damage_dealt, damage_taken, player_hp, monster_hp, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBattle(row rowScanner) (BattleRecord, error) {
	var rec BattleRecord
	var createdAt any
	err := row.Scan(
		&rec.ID, &rec.BattleID, &rec.GameID, &rec.Encounter, &rec.PlayerName, &rec.MonsterName, &rec.Winner,
		&rec.Turns, &rec.DamageDealt, &rec.DamageTaken, &rec.PlayerHP, &rec.MonsterHP, &createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentBattles returns the most recent battles, newest first.
// An empty encounter matches every encounter.
func (s *Store) RecentBattles(encounter string, limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+battleColumns+`
		 FROM battles
		 WHERE ? = '' OR encounter = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		encounter, encounter, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	var battles []BattleRecord
	for rows.Next() {
		rec, err := scanBattle(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		battles = append(battles, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return battles, nil
}

// BattleByID retrieves a battle and its events by UUID.
// Returns nil without error when no such battle exists.
func (s *Store) BattleByID(battleID string) (*BattleRecord, error) {
	rec, err := scanBattle(s.db.QueryRow(
		`SELECT `+battleColumns+` FROM battles WHERE battle_id = ?`,
		battleID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battle: %w", err)
	}

	rec.Events, err = s.BattleEvents(battleID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// BattleEvents returns the events of a battle in turn order.
func (s *Store) BattleEvents(battleID string) ([]combat.Event, error) {
	rows, err := s.db.Query(
		`SELECT turn, attacker, defender, ability, damage, defender_hp_after
		 FROM battle_events
		 WHERE battle_id = ?
		 ORDER BY turn, id`,
		battleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battle events: %w", err)
	}
	defer rows.Close()

	var events []combat.Event
	for rows.Next() {
		var ev combat.Event
		if err := rows.Scan(&ev.Turn, &ev.Attacker, &ev.Defender, &ev.Ability, &ev.Damage, &ev.DefenderHPAfter); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event row: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// ClearBattles deletes all battles for the given encounter, or every battle
// when encounter is empty.
func (s *Store) ClearBattles(encounter string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		`DELETE FROM battle_events WHERE battle_id IN
		 (SELECT battle_id FROM battles WHERE ? = '' OR encounter = ?)`,
		encounter, encounter,
	); err != nil {
		return fmt.Errorf("storage: cannot clear battle events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM battles WHERE ? = '' OR encounter = ?", encounter, encounter); err != nil {
		return fmt.Errorf("storage: cannot clear battles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// EncounterStats contains aggregated results for one encounter.
type EncounterStats struct {
	Encounter  string
	Battles    int
	Wins       int
	AvgTurns   float64
	BestDamage int // Most damage dealt in a single battle
	LastPlayed time.Time
}

// WinRate returns wins as a fraction of battles.
func (st EncounterStats) WinRate() float64 {
	if st.Battles == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Battles)
}

const statsColumns = `encounter, COUNT(*),
	COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
	COALESCE(AVG(turns), 0), COALESCE(MAX(damage_dealt), 0), MAX(created_at)`

func scanStats(row rowScanner) (EncounterStats, error) {
	var st EncounterStats
	var lastPlayed any
	if err := row.Scan(&st.Encounter, &st.Battles, &st.Wins, &st.AvgTurns, &st.BestDamage, &lastPlayed); err != nil {
		return st, err
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// GetEncounterStats retrieves aggregated statistics for one encounter.
func (s *Store) GetEncounterStats(encounter string) (*EncounterStats, error) {
	st, err := scanStats(s.db.QueryRow(
		`SELECT `+statsColumns+` FROM battles WHERE encounter = ? GROUP BY encounter`,
		combat.Player.String(), encounter,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return &EncounterStats{Encounter: encounter}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get encounter stats: %w", err)
	}
	return &st, nil
}

// GetAllEncounterStats retrieves statistics for every encounter that has
// been fought.
func (s *Store) GetAllEncounterStats() (map[string]*EncounterStats, error) {
	rows, err := s.db.Query(
		`SELECT `+statsColumns+` FROM battles GROUP BY encounter`,
		combat.Player.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all encounter stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*EncounterStats)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.Encounter] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
