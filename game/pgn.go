// pgn.go reads and writes single-game PGN text: the seven-tag roster plus
// movetext, grounded on treepeck-chego's pgn.go tag layout. Movetext is
// resolved move by move against the live position through
// engine.ParseStandardAlgebraic, since SAN disambiguation only makes sense
// against the board it was written against.
package game

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvus-chess/corvus/engine"
)

// requiredTags is the seven-tag roster every exported PGN carries, in
// order, even when a tag's value is unknown ("?").
var requiredTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

var tagPairRe = regexp.MustCompile(`\[(\w+)\s+"([^"]*)"\]`)
var commentRe = regexp.MustCompile(`\{[^}]*\}`)
var nagRe = regexp.MustCompile(`\$\d+`)
var moveNumberRe = regexp.MustCompile(`^\d+\.(\.\.)?$`)

// LoadPGN parses a single-game PGN document: tag pairs followed by
// movetext. Every SAN token is resolved and played against the position in
// turn, so a movetext error names the ply it occurred at.
func LoadPGN(s string) (*Game, error) {
	tags, movetext := splitPGN(s)

	g := NewGame()
	for k, v := range tags {
		g.Tags[k] = v
	}
	if fen, ok := tags["FEN"]; ok {
		loaded, err := NewGameFromFEN(fen)
		if err != nil {
			return nil, fmt.Errorf("pgn: FEN tag: %w", err)
		}
		loaded.Tags = g.Tags
		g = loaded
	}

	for ply, tok := range movetextTokens(movetext) {
		if _, err := g.PlaySAN(tok); err != nil {
			return nil, fmt.Errorf("pgn: ply %d (%q): %w", ply+1, tok, err)
		}
	}
	return g, nil
}

// splitPGN separates the leading tag-pair block from the trailing
// movetext.
func splitPGN(s string) (map[string]string, string) {
	tags := map[string]string{}
	last := 0
	for _, m := range tagPairRe.FindAllStringSubmatchIndex(s, -1) {
		tags[s[m[2]:m[3]]] = s[m[4]:m[5]]
		if m[1] > last {
			last = m[1]
		}
	}
	return tags, s[last:]
}

// movetextTokens strips comments, NAGs, move numbers and the trailing game
// result, leaving only SAN move tokens in order.
func movetextTokens(movetext string) []string {
	movetext = commentRe.ReplaceAllString(movetext, " ")
	movetext = nagRe.ReplaceAllString(movetext, " ")
	fields := strings.Fields(movetext)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "1-0", "0-1", "1/2-1/2", "*":
			continue
		}
		if moveNumberRe.MatchString(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// PGN serializes g into single-game PGN text: the seven-tag roster (missing
// tags render as "?"), followed by movetext in algebraic notation.
func (g *Game) PGN() string {
	var b strings.Builder
	for _, tag := range requiredTags {
		v := g.Tags[tag]
		if v == "" {
			v = "?"
		}
		fmt.Fprintf(&b, "[%s %q]\n", tag, v)
	}
	b.WriteByte('\n')

	for i, rec := range g.history {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. ", i/2+1)
		}
		b.WriteString(engine.FormatSAN(&rec.pos, rec.move))
		b.WriteByte(' ')
	}
	if result, ok := g.Tags["Result"]; ok && result != "" {
		b.WriteString(result)
	} else {
		b.WriteString("*")
	}
	return b.String()
}
