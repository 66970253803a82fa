package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-duel/internal/combat"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

func saveTestBattle(t *testing.T, store *storage.Store, encounter, winner string) {
	t.Helper()
	rec := storage.BattleRecord{
		GameID:      "duel",
		Encounter:   encounter,
		PlayerName:  "Hero",
		MonsterName: "Slime",
		Winner:      winner,
		Turns:       1,
		DamageDealt: 14,
		Events: []combat.Event{
			{Turn: 1, Attacker: "Hero", Defender: "Slime", Ability: "Basic Attack", Damage: 14, DefenderHPAfter: 6},
		},
	}
	if _, err := store.SaveBattle(rec); err != nil {
		t.Fatalf("SaveBattle() failed: %v", err)
	}
}

func sendHistory(m HistoryModel, msg tea.Msg) HistoryModel {
	next, _ := m.Update(msg)
	return next.(HistoryModel)
}

func TestHistoryFiltersByEncounter(t *testing.T) {
	store := openTestStore(t)
	saveTestBattle(t, store, "slime", "Player")
	saveTestBattle(t, store, "slime", "Monster")
	saveTestBattle(t, store, "goblin", "Player")

	m := NewHistoryModel(testItems, store, 100, 30)
	if len(m.battles) != 3 {
		t.Fatalf("all encounters: expected 3 battles, got %d", len(m.battles))
	}

	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.encounters[m.cursor].ID != "slime" {
		t.Fatalf("cursor on %q, expected slime", m.encounters[m.cursor].ID)
	}
	if len(m.battles) != 2 {
		t.Errorf("slime: expected 2 battles, got %d", len(m.battles))
	}
	if m.stats == nil || m.stats.Wins != 1 {
		t.Errorf("slime stats = %+v, expected 1 win", m.stats)
	}

	// Wraps around backwards
	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.encounters[m.cursor].ID != "goblin" {
		t.Errorf("cursor on %q, expected goblin", m.encounters[m.cursor].ID)
	}
}

func TestHistoryDetails(t *testing.T) {
	store := openTestStore(t)
	saveTestBattle(t, store, "slime", "Player")

	m := NewHistoryModel(testItems, store, 100, 30)
	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.details == nil {
		t.Fatal("Enter did not open battle details")
	}
	if !strings.Contains(m.View(), "Hero uses Basic Attack on Slime for 14 damage") {
		t.Error("details view missing event line")
	}

	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.details != nil || m.IsGoingBack() {
		t.Error("Esc should close details, not leave history")
	}

	m = sendHistory(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("Esc should leave history")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(testItems, nil, 60, 20)
	if !strings.Contains(m.View(), "No battles recorded yet") {
		t.Error("expected empty history message")
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		winner string
		want   string
	}{
		{"Player", "victory"},
		{"Monster", "defeat"},
		{"", "fled"},
	}
	for _, tt := range tests {
		if got := resultLabel(storage.BattleRecord{Winner: tt.winner}); got != tt.want {
			t.Errorf("resultLabel(%q) = %q, expected %q", tt.winner, got, tt.want)
		}
	}
}

func TestSidebarLabel(t *testing.T) {
	if got := sidebarLabel("Slime Pit"); got != "Slime Pit" {
		t.Errorf("short title changed: %q", got)
	}

	long := "Ледяная пещера древнего дракона"
	got := sidebarLabel(long)
	if !utf8.ValidString(got) {
		t.Fatalf("sidebarLabel(%q) = %q, not valid UTF-8", long, got)
	}
	if w := runewidth.StringWidth(got); w > sidebarWidth-6 {
		t.Errorf("label width = %d, expected at most %d", w, sidebarWidth-6)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated label %q should end with an ellipsis", got)
	}
}
