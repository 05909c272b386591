package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesUCIDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HashMB != 64 {
		t.Errorf("HashMB = %d, want 64", cfg.HashMB)
	}
	if cfg.TargetElo != 2850 {
		t.Errorf("TargetElo = %d, want 2850", cfg.TargetElo)
	}
	if !cfg.Mobility {
		t.Error("Mobility should default to true")
	}
}

func TestLoadConfigOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corvus.toml")
	if err := os.WriteFile(path, []byte("hash_mb = 256\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HashMB != 256 {
		t.Errorf("HashMB = %d, want 256", cfg.HashMB)
	}
	if !cfg.Mobility {
		t.Error("Mobility should keep its default when absent from the file")
	}
}

func TestLoadConfigFallsBackToDefaultsOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corvus.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("expected a parse error for malformed TOML")
	}
	if cfg != DefaultConfig() {
		t.Error("a parse error should fall back to DefaultConfig")
	}
}

func TestApplySeedsSearcherOptionsAndEvalTerms(t *testing.T) {
	defer func() {
		EvalTerms.PieceLocation, EvalTerms.PassedPawns = true, true
		EvalTerms.Mobility, EvalTerms.KingSafety = true, true
	}()
	cfg := DefaultConfig()
	cfg.MultiPV = 4
	cfg.Mobility = false

	s := NewSearcher(NewCache(1))
	cfg.Apply(s)

	if s.Options.MultiPV != 4 {
		t.Errorf("MultiPV = %d, want 4", s.Options.MultiPV)
	}
	if EvalTerms.Mobility {
		t.Error("Apply should have disabled EvalTerms.Mobility")
	}
}
