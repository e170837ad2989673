package goosemg_test

import (
	"sort"
	"testing"

	"golang.org/x/exp/maps"

	mg "chess-movegen/goosemg"
)

// sqs builds a bitboard from algebraic square names.
func sqs(t testing.TB, names ...string) mg.BitBoard {
	t.Helper()
	var b mg.BitBoard
	for _, n := range names {
		b = b.With(sq(t, n))
	}
	return b
}

func sq(t testing.TB, name string) mg.Square {
	t.Helper()
	s, err := mg.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func parse(t testing.TB, fen string) *mg.Board {
	t.Helper()
	b, err := mg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// uciKey renders a move as UCI text so moves from different libraries can be
// compared as plain strings.
func uciKey(from, to mg.Square, promo mg.PieceKind) string {
	s := from.String() + to.String()
	switch promo {
	case mg.Queen:
		s += "q"
	case mg.Rook:
		s += "r"
	case mg.Bishop:
		s += "b"
	case mg.Knight:
		s += "n"
	}
	return s
}

func sortedKeys(set map[string]bool) []string {
	keys := maps.Keys(set)
	sort.Strings(keys)
	return keys
}

// generatedSet expands every record of EnumerateMoves into UCI strings, keeping
// only moves of the listed kinds.
func generatedSet(b *mg.Board, kinds map[mg.PieceKind]bool) map[string]bool {
	var ml mg.MoveList
	mg.EnumerateMoves(b, &ml)
	set := make(map[string]bool)
	for _, m := range ml.Expand(b, nil) {
		if !kinds[m.MovedPiece().Kind()] {
			continue
		}
		set[uciKey(m.From(), m.To(), m.PromotionPiece().Kind())] = true
	}
	return set
}

func allKinds() map[mg.PieceKind]bool {
	kinds := make(map[mg.PieceKind]bool)
	for _, k := range mg.Kinds {
		kinds[k] = true
	}
	return kinds
}
