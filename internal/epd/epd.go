// Package epd parses Extended Position Description lines: a FEN-like
// position prefix followed by semicolon-terminated opcodes such as
// `bm e2e4;` (best move) and `id "my test";`. Grounded on the teacher's
// engine/epd.go and epd_ast.go, which parse the same format through a
// generated yacc grammar; this package covers the bm/am/id opcode subset
// cmd/corvus's testpositions subcommand needs with plain field splitting
// instead of a full grammar.
package epd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/corvus-chess/corvus/engine"
)

// Record is one EPD line: the position plus the opcodes a test suite runner
// cares about.
type Record struct {
	Position   *engine.Position
	ID         string
	BestMoves  []string
	AvoidMoves []string
}

// ParseLine parses one EPD line. The first four whitespace-separated
// fields are the FEN board/side/castling/en-passant fields (EPD omits the
// halfmove and fullmove counters FEN carries); everything after is a
// sequence of "opcode operand...;" groups.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, fmt.Errorf("epd: %q has fewer than 4 position fields", line)
	}
	fen := strings.Join(fields[:4], " ") + " 0 1"
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return Record{}, fmt.Errorf("epd: %w", err)
	}
	rec := Record{Position: pos}

	rest := strings.Join(fields[4:], " ")
	for _, opcode := range strings.Split(rest, ";") {
		opcode = strings.TrimSpace(opcode)
		if opcode == "" {
			continue
		}
		parts := strings.SplitN(opcode, " ", 2)
		if len(parts) != 2 {
			continue
		}
		operator, operand := parts[0], strings.TrimSpace(parts[1])
		switch operator {
		case "bm":
			rec.BestMoves = strings.Fields(operand)
		case "am":
			rec.AvoidMoves = strings.Fields(operand)
		case "id":
			rec.ID = strings.Trim(operand, `"`)
		}
	}
	return rec, nil
}

// LoadFile reads one EPD record per non-blank, non-comment line.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}
