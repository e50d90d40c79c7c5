package feed

import (
	"testing"
)

func TestFallbackImageTotality(t *testing.T) {
	for _, category := range AllCategories {
		url, source := FallbackImage(category)
		if url == "" {
			t.Errorf("Category %s has no fallback image", category)
		}
		if source == "" {
			t.Errorf("Category %s has no fallback attribution", category)
		}
	}
}

func TestFallbackImageUnknownCategory(t *testing.T) {
	url, source := FallbackImage(SportCategory("underwater-hockey"))
	if url == "" {
		t.Error("Unknown category should get the default fallback image")
	}
	if source != FallbackImageSource {
		t.Errorf("Expected %q attribution, got %q", FallbackImageSource, source)
	}
}
