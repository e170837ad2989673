package main

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"
	"golang.org/x/exp/maps"

	mg "chess-movegen/goosemg"
)

// diff holds UCI moves present on only one side, sorted.
type diff struct {
	Missing []string // legal per notnil/chess, not generated
	Extra   []string // generated, not legal per notnil/chess
}

func (d diff) empty() bool { return len(d.Missing) == 0 && len(d.Extra) == 0 }

func verify(fen string, moves []mg.Move) (diff, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return diff{}, fmt.Errorf("notnil/chess: %w", err)
	}
	want := make(map[string]bool)
	for _, m := range chess.NewGame(opt).ValidMoves() {
		want[m.String()] = true
	}
	got := make(map[string]bool, len(moves))
	for _, m := range moves {
		got[m.String()] = true
	}

	var d diff
	for _, k := range maps.Keys(want) {
		if !got[k] {
			d.Missing = append(d.Missing, k)
		}
	}
	for _, k := range maps.Keys(got) {
		if !want[k] {
			d.Extra = append(d.Extra, k)
		}
	}
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)
	return d, nil
}
