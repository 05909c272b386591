// options.go implements "setoption", grounded on the teacher's own
// reOption regexp-based parser (zurichess/uci.go) generalized to the
// option roster spec.md §6 names.
package uci

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/corvus-chess/corvus/engine"
)

var reSetOption = regexp.MustCompile(`(?i)^setoption\s+name\s+(.+?)(\s+value\s+(.*))?$`)

// eloToMoveError (below) maps a UCI_Elo target down to a MoveError
// magnitude: the further below max strength, the larger the MoveError
// stored in the searcher's Options (the bound engine/strength.go's
// perturbedScore uses; the search does not call perturbedScore).
const (
	maxElo       = 2850
	minElo       = 1350
	maxMoveError = 400
)

func (s *Session) handleSetOption(line string) error {
	m := reSetOption.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("uci: malformed setoption: %q", line)
	}
	name, hasValue, value := m[1], m[2] != "", m[3]

	switch name {
	case "ClearHash":
		s.cache.Reset()
		return nil
	case "Ponder":
		return nil
	}

	if !hasValue {
		return fmt.Errorf("uci: option %q requires a value", name)
	}

	switch name {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: Hash: %w", err)
		}
		cache := engine.NewCache(mb)
		s.cache = cache
		s.search.Cache = cache
		return nil
	case "MultiPV":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: MultiPV: %w", err)
		}
		if n < 1 || n > maxMultiPV {
			return fmt.Errorf("uci: MultiPV must be between 1 and %d", maxMultiPV)
		}
		s.search.Options.MultiPV = n
		return nil
	case "UCI_AnalyseMode", "Analyze":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("uci: %s: %w", name, err)
		}
		s.search.Options.AnalyzeMode = b
		return nil
	case "PieceLocation":
		return setBool(&engine.EvalTerms.PieceLocation, value)
	case "PassedPawns":
		return setBool(&engine.EvalTerms.PassedPawns, value)
	case "Mobility":
		return setBool(&engine.EvalTerms.Mobility, value)
	case "KingSafety":
		return setBool(&engine.EvalTerms.KingSafety, value)
	case "NPS":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("uci: NPS: %w", err)
		}
		s.search.Options.NPS = n
		return nil
	case "MoveError":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: MoveError: %w", err)
		}
		s.search.Options.MoveError = int32(n)
		return nil
	case "BlunderError":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: BlunderError: %w", err)
		}
		s.search.Options.BlunderError = int32(n)
		return nil
	case "BlunderPercent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: BlunderPercent: %w", err)
		}
		s.search.Options.BlunderPercent = n
		return nil
	case "UCI_LimitStrength", "LimitStrength":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("uci: %s: %w", name, err)
		}
		s.search.Options.LimitStrength = b
		return nil
	case "UCI_Elo", "ELO":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("uci: %s: %w", name, err)
		}
		s.search.Options.TargetElo = int32(n)
		s.search.Options.MoveError = eloToMoveError(n)
		return nil
	default:
		return fmt.Errorf("uci: unhandled option %q", name)
	}
}

func setBool(dst *bool, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("uci: %w", err)
	}
	*dst = b
	return nil
}

// eloToMoveError scales a UCI_Elo target linearly onto [0, maxMoveError]:
// maxElo or above plays at full strength (no perturbation), minElo or
// below gets the largest perturbation.
func eloToMoveError(elo int) int32 {
	if elo >= maxElo {
		return 0
	}
	if elo <= minElo {
		return maxMoveError
	}
	return int32(maxMoveError * (maxElo - elo) / (maxElo - minElo))
}
