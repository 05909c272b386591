package tuning

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/corvus-chess/corvus/engine"
	"github.com/corvus-chess/corvus/game"
)

// Sample is one labeled training position: a board and the outcome of the
// game it was drawn from, from the side to move's perspective at the time
// the PGN was recorded (1 = win, 0.5 = draw, 0 = loss).
type Sample struct {
	Position *engine.Position
	Outcome  float64
}

// LoadPGNCorpus reads a multi-game PGN file (games separated by one or more
// blank lines before the next "[Event ...]" tag block) and returns one
// Sample per game: the game's final position, labeled with that game's
// result from the side to move's point of view.
// Games missing a recognized Result tag are skipped entirely, since they
// carry no usable training signal.
func LoadPGNCorpus(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []Sample
	for _, block := range splitGames(f) {
		g, err := game.LoadPGN(block)
		if err != nil {
			continue
		}
		outcome, ok := resultOutcome(g.Tags["Result"])
		if !ok {
			continue
		}
		pos := g.Position()
		if !pos.WhiteMove {
			outcome = 1 - outcome
		}
		samples = append(samples, Sample{Position: &pos, Outcome: outcome})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("tuning: %s: no usable positions", path)
	}
	return samples, nil
}

// splitGames breaks a PGN stream into per-game text blocks at blank lines
// preceding a new tag-pair section.
func splitGames(f *os.File) []string {
	var games []string
	var cur strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "[Event ") && cur.Len() > 0 {
			games = append(games, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	if cur.Len() > 0 {
		games = append(games, cur.String())
	}
	return games
}

// resultOutcome maps a PGN Result tag to a white-perspective score.
func resultOutcome(result string) (float64, bool) {
	switch result {
	case "1-0":
		return 1, true
	case "0-1":
		return 0, true
	case "1/2-1/2":
		return 0.5, true
	default:
		return 0, false
	}
}
