package feed

import (
	"testing"
)

func TestAdmitIsIdempotent(t *testing.T) {
	deduper := NewDeduper()

	item := Item{
		Title:       "Big win for the visitors",
		Description: "A dramatic late goal settles it.",
		Link:        "https://example.com/news/1",
	}

	if !deduper.Admit(item) {
		t.Fatal("First admission should succeed")
	}
	if deduper.Admit(item) {
		t.Error("Second admission of the same item should be rejected")
	}
	if deduper.Size() != 1 {
		t.Errorf("Expected 1 admitted item, got %d", deduper.Size())
	}
}

func TestAdmitRejectsQueryStringVariants(t *testing.T) {
	deduper := NewDeduper()

	first := Item{
		Title:       "Transfer saga ends",
		Description: "Club confirms the deal.",
		Link:        "https://example.com/news/2",
	}
	variant := Item{
		Title:       "A completely different headline",
		Description: "Different description too.",
		Link:        "https://example.com/news/2?utm_source=feed",
	}

	if !deduper.Admit(first) {
		t.Fatal("First admission should succeed")
	}
	if deduper.Admit(variant) {
		t.Error("Same canonical link should be rejected regardless of query string")
	}
}

func TestAdmitRejectsContentDuplicatesAcrossSources(t *testing.T) {
	deduper := NewDeduper()

	bbc := Item{
		Title:       "Champions League: holders knocked out!",
		Description: "The holders are out after a penalty shootout.",
		Link:        "https://bbc.example/news/3",
	}
	espn := Item{
		Title:       "Champions League  holders knocked OUT",
		Description: "The holders are out, after a penalty shootout...",
		Link:        "https://espn.example/story/3",
	}

	if !deduper.Admit(bbc) {
		t.Fatal("First admission should succeed")
	}
	if deduper.Admit(espn) {
		t.Error("Normalized content fingerprint should catch cross-source duplicates")
	}
}

func TestFingerprintNormalization(t *testing.T) {
	a := Fingerprint("Hello, World!", "Some   description.")
	b := Fingerprint("hello world", "some description")
	if a != b {
		t.Errorf("Fingerprints should match after normalization: %q vs %q", a, b)
	}
}

func TestFingerprintTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "abcdefghij "
	}
	fp := Fingerprint(long, long)
	if got := len([]rune(fp)); got > fingerprintLen {
		t.Errorf("Fingerprint exceeds prefix cap: %d runes", got)
	}
}
