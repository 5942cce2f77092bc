package style

import (
	"strings"
	"testing"

	"retrobooth/internal/domain"
)

func TestBuildEraPrompt(t *testing.T) {
	got := BuildEraPrompt(domain.Era1980s)

	checks := []string{
		"1980s",
		"neon",
		"Keep the same person",
		"single photorealistic image",
	}
	for _, expect := range checks {
		if !strings.Contains(got, expect) {
			t.Fatalf("prompt missing %q: %s", expect, got)
		}
	}
}

func TestBuildEraPromptCoversEveryEra(t *testing.T) {
	for _, era := range domain.Eras() {
		got := BuildEraPrompt(era)
		if !strings.Contains(got, era.String()) {
			t.Fatalf("prompt for %s does not mention the era: %s", era, got)
		}
	}
}

func TestBuildEraPromptDeterministic(t *testing.T) {
	if BuildEraPrompt(domain.Era1950s) != BuildEraPrompt(domain.Era1950s) {
		t.Fatal("prompt should be identical across calls")
	}
}
