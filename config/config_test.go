package config

import "testing"

func TestNormalizeRegistry(t *testing.T) {
	if got := NormalizeRegistry(""); got != "" {
		t.Fatalf("empty registry must stay empty, got %q", got)
	}
	if got := NormalizeRegistry("registry.example.com/fvp"); got != "registry.example.com/fvp/" {
		t.Fatalf("unexpected registry %q", got)
	}
	if got := NormalizeRegistry("registry.example.com/fvp//"); got != "registry.example.com/fvp/" {
		t.Fatalf("unexpected registry %q", got)
	}
}

func TestSkipRuleMatches(t *testing.T) {
	rule := SkipRule{Model: "foundationv8", UnlessEnvironment: PrimaryEnvironment}

	if !rule.Matches("foundationv8", "local") {
		t.Fatal("rule must match outside the primary environment")
	}
	if rule.Matches("foundationv8", PrimaryEnvironment) {
		t.Fatal("rule must not match inside the primary environment")
	}
	if rule.Matches("base-aemv8a", "local") {
		t.Fatal("rule must not match a different model")
	}
}

func TestSkipRuleUnconditional(t *testing.T) {
	rule := SkipRule{Model: "cortex-a32x4"}

	if !rule.Matches("cortex-a32x4", PrimaryEnvironment) {
		t.Fatal("rule without environment predicate must match everywhere")
	}
}
