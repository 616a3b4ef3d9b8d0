package config

import (
	"os"
	"testing"
)

func clearEnv() {
	os.Unsetenv("SLIDESHOW_OUTPUT_DIR")
	os.Unsetenv("SLIDESHOW_RANKING")
	os.Unsetenv("SLIDESHOW_SEQUENCING")
	os.Unsetenv("SLIDESHOW_CONCURRENCY")
	os.Unsetenv("SLIDESHOW_LISTEN_ADDR")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.Output.Dir != "." {
		t.Errorf("expected default output dir '.', got '%s'", cfg.Output.Dir)
	}

	if cfg.Engine.Ranking != "tag-score" {
		t.Errorf("expected default ranking 'tag-score', got '%s'", cfg.Engine.Ranking)
	}

	if cfg.Engine.Sequencing != "concat" {
		t.Errorf("expected default sequencing 'concat', got '%s'", cfg.Engine.Sequencing)
	}

	if cfg.Engine.Concurrency != 4 {
		t.Errorf("expected default concurrency 4, got %d", cfg.Engine.Concurrency)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr ':8080', got '%s'", cfg.Server.ListenAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SLIDESHOW_OUTPUT_DIR", "/tmp/out")
	t.Setenv("SLIDESHOW_RANKING", "tag-popularity")
	t.Setenv("SLIDESHOW_SEQUENCING", "greedy")
	t.Setenv("SLIDESHOW_CONCURRENCY", "8")
	t.Setenv("SLIDESHOW_LISTEN_ADDR", "127.0.0.1:9999")

	cfg := Load()

	if cfg.Output.Dir != "/tmp/out" {
		t.Errorf("expected output dir '/tmp/out', got '%s'", cfg.Output.Dir)
	}

	if cfg.Engine.Ranking != "tag-popularity" {
		t.Errorf("expected ranking 'tag-popularity', got '%s'", cfg.Engine.Ranking)
	}

	if cfg.Engine.Sequencing != "greedy" {
		t.Errorf("expected sequencing 'greedy', got '%s'", cfg.Engine.Sequencing)
	}

	if cfg.Engine.Concurrency != 8 {
		t.Errorf("expected concurrency 8, got %d", cfg.Engine.Concurrency)
	}

	if cfg.Server.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("expected listen addr '127.0.0.1:9999', got '%s'", cfg.Server.ListenAddr)
	}
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("SLIDESHOW_CONCURRENCY", "not-a-number")

	cfg := Load()

	if cfg.Engine.Concurrency != 4 {
		t.Errorf("expected fallback concurrency 4 for invalid input, got %d", cfg.Engine.Concurrency)
	}
}

func TestLoad_NegativeConcurrency(t *testing.T) {
	t.Setenv("SLIDESHOW_CONCURRENCY", "-2")

	cfg := Load()

	if cfg.Engine.Concurrency != 4 {
		t.Errorf("expected fallback concurrency 4 for negative input, got %d", cfg.Engine.Concurrency)
	}
}

func TestLoad_PoliciesEmbedded(t *testing.T) {
	cfg := Load()

	if len(cfg.Policies.Ranking.Policies) == 0 {
		t.Fatal("expected ranking policies to be loaded from embedded YAML")
	}

	if len(cfg.Policies.Sequencing.Policies) == 0 {
		t.Fatal("expected sequencing policies to be loaded from embedded YAML")
	}

	for _, name := range []string{"tag-score", "tag-popularity"} {
		if !cfg.Policies.Ranking.Known(name) {
			t.Errorf("expected ranking policy '%s' to be declared", name)
		}
	}

	for _, name := range []string{"concat", "interleave", "greedy"} {
		if !cfg.Policies.Sequencing.Known(name) {
			t.Errorf("expected sequencing policy '%s' to be declared", name)
		}
	}
}

func TestPolicyGroup_Known(t *testing.T) {
	group := PolicyGroup{
		Default:  "one",
		Policies: map[string]string{"one": "first", "two": "second"},
	}

	if !group.Known("two") {
		t.Error("expected 'two' to be known")
	}

	if group.Known("three") {
		t.Error("expected 'three' to be unknown")
	}
}

func TestLoad_DefaultsComeFromEmbeddedFile(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.Engine.Ranking != cfg.Policies.Ranking.Default {
		t.Errorf("expected engine ranking to follow embedded default '%s', got '%s'",
			cfg.Policies.Ranking.Default, cfg.Engine.Ranking)
	}

	if cfg.Engine.Sequencing != cfg.Policies.Sequencing.Default {
		t.Errorf("expected engine sequencing to follow embedded default '%s', got '%s'",
			cfg.Policies.Sequencing.Default, cfg.Engine.Sequencing)
	}
}
