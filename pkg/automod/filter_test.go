package automod

import "testing"

func TestMatchBannedWord(t *testing.T) {
	words := []string{"spam", "hack", "scam"}

	tests := []struct {
		name     string
		content  string
		want     string
		wantHit  bool
	}{
		{"exact word", "spam", "spam", true},
		{"substring match", "this is a spammer", "spam", true},
		{"case insensitive content", "SPAM everywhere", "spam", true},
		{"inside another word", "unhackable", "hack", true},
		{"clean message", "hola que tal", "", false},
		{"empty content", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := MatchBannedWord(tt.content, words)
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
			if got != tt.want {
				t.Errorf("word = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchBannedWordEmptyList(t *testing.T) {
	if _, hit := MatchBannedWord("spam spam spam", nil); hit {
		t.Error("empty list matched, want no match")
	}
	if _, hit := MatchBannedWord("spam", []string{}); hit {
		t.Error("empty list matched, want no match")
	}
}

func TestMatchBannedWordUppercaseEntry(t *testing.T) {
	// La lista también se normaliza al comparar
	got, hit := MatchBannedWord("mensaje con virus", []string{"VIRUS"})
	if !hit {
		t.Fatal("uppercase banned word did not match")
	}
	if got != "VIRUS" {
		t.Errorf("word = %q, want %q (the configured entry)", got, "VIRUS")
	}
}
