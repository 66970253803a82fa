package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/config"
)

func TestLookupEncounter(t *testing.T) {
	cfg := config.Default()

	enc, err := lookupEncounter(cfg, "slime")
	if err != nil || enc.ID != "slime" {
		t.Fatalf("lookupEncounter(slime) = %+v, %v", enc, err)
	}

	_, err = lookupEncounter(cfg, "lich")
	if !errors.Is(err, config.ErrUnknownEncounter) {
		t.Fatalf("lookupEncounter(lich) error = %v, expected ErrUnknownEncounter", err)
	}
	msg := err.Error()
	if n := strings.Count(msg, `"lich"`); n != 1 {
		t.Errorf("error %q names the encounter %d times, expected once", msg, n)
	}
	if !strings.Contains(msg, "duel list") {
		t.Errorf("error %q should point at 'duel list'", msg)
	}
}

func TestGameIDForMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"", "duel", false},
		{"classic", "duel", false},
		{"tactics", "duel_tactics", false},
		{"berserk", "", true},
	}

	for _, tt := range tests {
		got, err := gameIDForMode(tt.mode)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("gameIDForMode(%q) = %q, %v", tt.mode, got, err)
		}
	}
}
