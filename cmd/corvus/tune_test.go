//go:build !coach

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvus-chess/corvus/internal/tuning"
)

func TestRunTuneFailsWithoutACoachBuild(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.pgn")
	require.NoError(t, os.WriteFile(path, []byte(
		"[Event \"e\"]\n[Site \"?\"]\n[Date \"?\"]\n[Round \"?\"]\n[White \"a\"]\n[Black \"b\"]\n[Result \"1-0\"]\n\n1. e4 e5 1-0\n"), 0o644))

	var out bytes.Buffer
	err := runTune(&out, []string{path})
	assert.ErrorIs(t, err, tuning.ErrNotCoachBuild)
}
