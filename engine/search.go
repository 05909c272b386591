// search.go implements the searcher (C8): iterative deepening over a
// principal-variation alpha-beta search with quiescence, null-move
// pruning, late-move reduction, time management and cooperative
// cancellation.
//
// Grounded on the teacher's engine.go control flow (aspiration-free
// iterative deepening calling into a single recursive node routine), with
// the explicit 8-step node contract and repetition/50-move handling this
// specification adds.
package engine

import (
	"sync/atomic"
)

// Options toggles search behavior exposed over UCI.
type Options struct {
	AnalyzeMode    bool
	NPS            int64
	MoveError      int32
	BlunderError   int32
	BlunderPercent int
	LimitStrength  bool
	TargetElo      int32
	MultiPV        int
}

// Stats reports search progress for one iterative-deepening iteration.
type Stats struct {
	CacheHit, CacheMiss int64
	Nodes               int64
	Depth               int
	SelDepth            int
}

// CacheHitRatio returns CacheHit / (CacheHit+CacheMiss), or 0.
func (s Stats) CacheHitRatio() float64 {
	if s.CacheHit+s.CacheMiss == 0 {
		return 0
	}
	return float64(s.CacheHit) / float64(s.CacheHit+s.CacheMiss)
}

// Logger is notified of search progress; the uci package implements it to
// write UCI "info" lines.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int32, pv []Move)
}

// NulLogger discards every event; the default when no UCI session is
// attached (e.g. perft, testpositions).
type NulLogger struct{}

func (NulLogger) BeginSearch()                             {}
func (NulLogger) EndSearch()                                {}
func (NulLogger) PrintPV(Stats, int32, []Move)              {}

const (
	nullMoveReduction  = 2
	lmrFullDepthMoves  = 4
	lmrMinHorizon      = 3
	checkEveryNodes    = 1000
)

// Searcher drives one engine "go" command: it owns the transposition
// cache, killer table and history table for its lifetime and recurses
// through positions passed by value, so it needs no explicit unmake.
type Searcher struct {
	Cache   *Cache
	Killers *KillerMoves
	History *MoveHistory
	Options Options
	Logger  Logger

	Continue atomic.Bool // cooperative cancellation flag; false stops the search

	nodes   int64
	seldepth int
	path    []uint64 // Zobrist keys of the game history plus the current search path
}

// NewSearcher returns a Searcher sharing the given cache; fresh killer and
// history tables are allocated for it.
func NewSearcher(cache *Cache) *Searcher {
	s := &Searcher{
		Cache:   cache,
		Killers: NewKillerMoves(),
		History: NewMoveHistory(),
		Logger:  NulLogger{},
		Options: Options{MultiPV: 1},
	}
	s.Continue.Store(true)
	return s
}

// SetGameHistory supplies the Zobrist keys of positions already played in
// the game, used for repetition detection: a search node scores as a draw
// as soon as its key occurs once earlier in these keys or on the current
// search path.
func (s *Searcher) SetGameHistory(keys []uint64) {
	s.path = append(s.path[:0], keys...)
}

// Search runs iterative deepening on pos until tc says to stop, returning
// the best move found, its score, and the principal variation.
func (s *Searcher) Search(pos *Position, tc *TimeControl) (Move, int32, []Move) {
	s.Cache.NextSearch()
	s.nodes = 0
	s.Continue.Store(true)
	s.Logger.BeginSearch()
	defer s.Logger.EndSearch()

	var bestMove Move
	var bestScore int32
	var bestPV []Move

	for depth := 1; tc.NextDepth(depth); depth++ {
		s.seldepth = depth
		score, pv := s.searchRoot(pos, depth, tc)
		if !s.Continue.Load() && depth > 1 {
			break
		}
		if len(pv) > 0 {
			bestMove, bestScore, bestPV = pv[0], score, pv
		}
		s.Logger.PrintPV(Stats{
			Nodes:    s.nodes,
			Depth:    depth,
			SelDepth: s.seldepth,
		}, bestScore, bestPV)

		if IsMateScore(score) {
			break
		}
	}

	bestMove = s.applyStrengthLimitation(bestMove, bestScore)
	return bestMove, bestScore, bestPV
}

func (s *Searcher) searchRoot(pos *Position, horizon int, tc *TimeControl) (int32, []Move) {
	alpha, beta := -int32(ScoreMax), int32(ScoreMax)

	cached := s.Cache.Get(pos.Key)
	best := cached.GetBestMove(pos)
	k0, k1 := s.Killers.Get(0)
	pos.SetSearchHints(best, k0, k1)

	var bestMove Move
	var pv []Move
	movesSearched := 0

	for {
		m, ok := pos.GetNextMove(s.History)
		if !ok {
			break
		}
		if !pos.IsLegal(m) {
			continue
		}
		if tc.Stopped() {
			s.Continue.Store(false)
			break
		}

		next := pos.MakeMove(m)
		s.pushKey(next.Key)
		childPV := make([]Move, 0, horizon)
		score := -s.negamax(&next, tc, 1, horizon-1, -beta, -alpha, true, &childPV)
		s.popKey()
		movesSearched++

		if !s.Continue.Load() {
			break
		}
		if score > alpha {
			alpha = score
			bestMove = m
			pv = append([]Move{m}, childPV...)
		}
	}

	if bestMove == MoveNull && movesSearched == 0 {
		if pos.KingInCheck {
			return -ScoreCheckmate, nil
		}
		return 0, nil
	}

	s.Cache.Set(CachedPosition{
		Key:  pos.Key,
		Data: packData(horizon, bestMove.From(), bestMove.To(), bestMove.Promoted(), alpha, PrecisionExact, s.Cache.Searches),
	})
	return alpha, pv
}

// negamax is the recursive node routine: see SPEC_FULL.md §4.8 for the
// 8-step contract this implements. tc is polled every checkEveryNodes
// nodes so a "stop" arriving deep inside one root move's subtree is
// noticed at the next node, not only between root moves.
func (s *Searcher) negamax(pos *Position, tc *TimeControl, ply, horizon int, alpha, beta int32, isPV bool, pv *[]Move) int32 {
	s.nodes++
	if s.nodes%checkEveryNodes == 0 && tc.Stopped() {
		s.Continue.Store(false)
	}
	if !s.Continue.Load() {
		return ScoreInterrupted
	}

	// Step 1: terminal draw checks.
	if pos.PlySinceCaptureOrPawnMove >= 100 {
		return 0
	}
	if s.isRepetition(pos.Key) {
		return 0
	}
	if horizon <= 0 {
		return s.quiescence(pos, tc, ply, alpha, beta)
	}

	// Step 2: cache probe.
	cached := s.Cache.Get(pos.Key)
	hintMove := MoveNull
	if cached.Key == pos.Key {
		hintMove = cached.GetBestMove(pos)
		if cached.ToHorizon() >= horizon {
			switch cached.Precision() {
			case PrecisionExact:
				return cached.Score()
			case PrecisionLowerBound:
				if cached.Score() >= beta {
					return cached.Score()
				}
			case PrecisionUpperBound:
				if cached.Score() <= alpha {
					return cached.Score()
				}
			}
		}
	}

	// Step 3: check extension.
	inCheck := pos.KingInCheck
	if inCheck {
		horizon++
	}

	// Step 4: null-move pruning.
	if !inCheck && !isPV && horizon >= nullMoveReduction+1 && pos.hasNonPawnMaterial() {
		null := pos.makeNullMove()
		s.pushKey(null.Key)
		score := -s.negamax(&null, tc, ply+1, horizon-1-nullMoveReduction, -beta, -beta+1, false, &[]Move{})
		s.popKey()
		if score >= beta && score != -ScoreInterrupted {
			return beta
		}
	}

	// Step 5: move loop.
	k0, k1 := s.Killers.Get(ply)
	pos.SetSearchHints(hintMove, k0, k1)

	bestScore := -int32(ScoreMax)
	var bestMove Move
	movesSearched := 0
	quietsSearched := make([]Move, 0, 16)

	for {
		m, ok := pos.GetNextMove(s.History)
		if !ok {
			break
		}
		if !pos.IsLegal(m) {
			continue
		}

		next := pos.MakeMove(m)
		s.pushKey(next.Key)

		reduction := 0
		if !inCheck && m.IsQuiet() && movesSearched >= lmrFullDepthMoves && horizon >= lmrMinHorizon {
			reduction = 1 + movesSearched/12
		}

		childPV := make([]Move, 0, horizon)
		var score int32
		if movesSearched == 0 {
			score = -s.negamax(&next, tc, ply+1, horizon-1, -beta, -alpha, isPV, &childPV)
		} else {
			score = -s.negamax(&next, tc, ply+1, horizon-1-reduction, -alpha-1, -alpha, false, &childPV)
			if score > alpha && (reduction > 0 || isPV) {
				childPV = childPV[:0]
				score = -s.negamax(&next, tc, ply+1, horizon-1, -beta, -alpha, isPV, &childPV)
			}
		}
		s.popKey()
		movesSearched++

		if !s.Continue.Load() {
			return ScoreInterrupted
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			*pv = append((*pv)[:0], m)
			*pv = append(*pv, childPV...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			// Step 6: cutoff handling.
			if m.IsQuiet() {
				pi := pos.Get(m.From())
				s.Killers.Update(ply, pi, m.To())
				s.History.Update(pi, m.To(), 1)
				for _, qm := range quietsSearched {
					qpi := pos.Get(qm.From())
					s.History.Update(qpi, qm.To(), -1)
				}
			}
			s.Cache.Set(CachedPosition{
				Key:  pos.Key,
				Data: packData(horizon, m.From(), m.To(), m.Promoted(), beta, PrecisionLowerBound, s.Cache.Searches),
			})
			return beta
		}
		if m.IsQuiet() {
			quietsSearched = append(quietsSearched, m)
		}
	}

	// Step 7: terminal state.
	if movesSearched == 0 {
		if inCheck {
			return -ScoreCheckmate + int32(ply)
		}
		return 0
	}

	// Step 8: cache store.
	precision := PrecisionUpperBound
	if bestMove != MoveNull {
		precision = PrecisionExact
	}
	s.Cache.Set(CachedPosition{
		Key:  pos.Key,
		Data: packData(horizon, bestMove.From(), bestMove.To(), bestMove.Promoted(), bestScore, precision, s.Cache.Searches),
	})
	return bestScore
}

// quiescence searches captures and promotions only, using the static
// evaluation as a stand-pat lower bound and the static exchange evaluator
// to skip clearly losing captures. When the side to move is in check,
// non-capturing evasions are not searched and stand-pat still applies. It
// polls tc the same way
// negamax does: quiescence recursion can run deep in sharp tactical
// positions and must not be the one place cancellation goes unnoticed.
func (s *Searcher) quiescence(pos *Position, tc *TimeControl, ply int, alpha, beta int32) int32 {
	s.nodes++
	if s.nodes%checkEveryNodes == 0 && tc.Stopped() {
		s.Continue.Store(false)
	}
	if !s.Continue.Load() {
		return ScoreInterrupted
	}
	if ply > s.seldepth {
		s.seldepth = ply
	}

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	pos.SetSearchHints(MoveNull, killerKey{}, killerKey{})
	for {
		m, ok := pos.GetNextMove(nil)
		if !ok {
			break
		}
		if !m.IsCapture() && m.Promoted() == NoPiece {
			continue
		}
		if !pos.IsLegal(m) {
			continue
		}
		if m.IsCapture() && !pos.SeeSign(m) {
			continue
		}

		next := pos.MakeMove(m)
		score := -s.quiescence(&next, tc, ply+1, -beta, -alpha)
		if !s.Continue.Load() {
			return ScoreInterrupted
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (pos *Position) hasNonPawnMaterial() bool {
	us := pos.sideToMove()
	return pos.ByColor[us]&^pos.ByPiece[ColorFigure(us, Pawn)]&^pos.ByPiece[ColorFigure(us, King)] != 0
}

// makeNullMove returns pos with the side to move passed, the en-passant
// square cleared, and nothing else changed: used only by null-move
// pruning's reduced-depth verification search.
func (pos Position) makeNullMove() Position {
	next := pos
	next.SetEnPassantSquare(Illegal)
	next.setWhiteMove(!pos.WhiteMove)
	next.PlayedMove = MoveNull
	next.KingInCheck = false
	next.MoveGenerationStage = StageBestMove
	next.MoveIndex, next.CurrentMoveIndex = 0, 0
	return next
}

func (s *Searcher) pushKey(key uint64) {
	s.path = append(s.path, key)
}

func (s *Searcher) popKey() {
	s.path = s.path[:len(s.path)-1]
}

func (s *Searcher) isRepetition(key uint64) bool {
	count := 0
	for _, k := range s.path {
		if k == key {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
