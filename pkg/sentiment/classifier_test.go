package sentiment

import (
	"strings"
	"testing"
)

func TestRelevantText(t *testing.T) {
	text := "Apple posted record revenue. Tesla deliveries slipped. Analysts expect Apple to raise guidance. Markets were mixed."

	got := RelevantText(text, "Apple")
	want := "Apple posted record revenue. Analysts expect Apple to raise guidance"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRelevantText_CaseInsensitive(t *testing.T) {
	text := "Shares of NVIDIA rose sharply. The broader market was flat."

	got := RelevantText(text, "nvidia")
	if got != "Shares of NVIDIA rose sharply" {
		t.Errorf("got %q", got)
	}
}

func TestRelevantText_NoMention(t *testing.T) {
	text := "Markets were broadly flat on Tuesday. Bond yields ticked higher."

	got := RelevantText(text, "Apple")
	if got != text {
		t.Errorf("expected full text fallback, got %q", got)
	}
}

func TestRelevantText_NoMentionLongText(t *testing.T) {
	text := strings.Repeat("Markets were broadly flat on Tuesday and volume was thin ", 40)

	got := RelevantText(text, "Apple")
	if len(got) != maxFallbackChars {
		t.Errorf("expected %d chars, got %d", maxFallbackChars, len(got))
	}
}

func TestRelevantText_CapsSentences(t *testing.T) {
	sentence := "Acme keeps growing"
	text := strings.Repeat(sentence+". ", 10)

	got := RelevantText(text, "Acme")
	if n := strings.Count(got, "Acme"); n != maxRelevantSentences {
		t.Errorf("expected %d sentences, got %d", maxRelevantSentences, n)
	}
}
