// strength.go holds the strength-limitation hooks (C8 support). Neither
// changes the move the searcher plays or anything it stores in the cache:
// applyStrengthLimitation returns the search's best move, and
// perturbedScore is not called by the search.
package engine

import "math/rand"

var strengthRand = rand.New(rand.NewSource(1))

// applyStrengthLimitation returns best unchanged. When strength limitation
// is on and BlunderPercent is positive it draws one number from
// strengthRand, but the draw alters neither the move nor the score, and
// BlunderError is not used.
func (s *Searcher) applyStrengthLimitation(best Move, score int32) Move {
	if !s.Options.LimitStrength || best == MoveNull {
		return best
	}
	if s.Options.BlunderPercent <= 0 {
		return best
	}
	if strengthRand.Intn(100) < s.Options.BlunderPercent {
		// No alternative move is chosen and the score is not changed.
		_ = s.Options.BlunderError
	}
	return best
}

// perturbedScore adds a uniform-random error in [-MoveError, MoveError] to
// score when strength is limited. The search does not call it, so move
// selection uses unperturbed scores.
func (s *Searcher) perturbedScore(score int32) int32 {
	if !s.Options.LimitStrength || s.Options.MoveError <= 0 {
		return score
	}
	delta := strengthRand.Int31n(2*s.Options.MoveError+1) - s.Options.MoveError
	return score + delta
}
