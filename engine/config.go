// config.go loads process-wide defaults (ambient, SPEC_FULL.md §4.11) from
// an optional TOML file. setoption always overrides a value loaded here;
// Config only seeds a Searcher/Cache's starting state before "uci"/"isready".
package engine

import (
	"github.com/BurntSushi/toml"
)

// Config mirrors the subset of UCI options that make sense as process
// defaults: cache size and the strength/throughput knobs in Options.
type Config struct {
	HashMB         int  `toml:"hash_mb"`
	MultiPV        int  `toml:"multi_pv"`
	NPS            int64 `toml:"nps"`
	LimitStrength  bool `toml:"limit_strength"`
	TargetElo      int32 `toml:"target_elo"`
	PieceLocation  bool `toml:"piece_location"`
	PassedPawns    bool `toml:"passed_pawns"`
	Mobility       bool `toml:"mobility"`
	KingSafety     bool `toml:"king_safety"`
}

// DefaultConfig returns the built-in defaults, used when no corvus.toml is
// present or it fails to parse.
func DefaultConfig() Config {
	return Config{
		HashMB:        64,
		MultiPV:       1,
		TargetElo:     maxEloDefault,
		PieceLocation: true,
		PassedPawns:   true,
		Mobility:      true,
		KingSafety:    true,
	}
}

// maxEloDefault matches the UCI_Elo option's spin default of 2850; kept
// separate from the uci package's own constant since engine must not
// import uci.
const maxEloDefault = 2850

// LoadConfig decodes path as TOML over DefaultConfig, so a file that only
// sets one field leaves the rest at their built-in values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Apply seeds a fresh Searcher's Options and EvalTerms from cfg. It does
// not touch the Cache; callers size the cache from cfg.HashMB themselves
// since Cache construction happens before a Searcher exists.
func (cfg Config) Apply(s *Searcher) {
	s.Options.MultiPV = cfg.MultiPV
	s.Options.NPS = cfg.NPS
	s.Options.LimitStrength = cfg.LimitStrength
	s.Options.TargetElo = cfg.TargetElo
	EvalTerms.PieceLocation = cfg.PieceLocation
	EvalTerms.PassedPawns = cfg.PassedPawns
	EvalTerms.Mobility = cfg.Mobility
	EvalTerms.KingSafety = cfg.KingSafety
}
