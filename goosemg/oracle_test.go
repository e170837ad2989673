package goosemg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"

	mg "chess-movegen/goosemg"
)

// Positions where the generator's output must match a full legal-move
// generator. They avoid pins, en passant, and enemy pieces that the shared
// capture routine would reach through another piece's pattern. For the check
// position the king is left out, since king safety beyond the enemy king is
// the caller's job.
var oracleCases = []struct {
	name  string
	fen   string
	kinds []mg.PieceKind
}{
	{"startpos", mg.FENStartPos, nil},
	{"startpos black", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", nil},
	{"promotion", "8/1P6/8/8/8/4k3/8/4K3 w - - 0 1", nil},
	{"promotion black to move", "8/1P6/8/8/8/4k3/8/4K3 b - - 0 1", nil},
	{"castling white", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", nil},
	{"castling black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", nil},
	{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", nil},
	{"pawn capture black", "4k3/8/8/3p4/4P3/8/8/4K3 b - - 0 1", nil},
	{"knight", "4k3/8/8/8/8/8/3N4/4K3 w - - 0 1", nil},
	{"knight check evasion", "1R6/7k/8/8/8/1n6/8/K7 w - - 0 1",
		[]mg.PieceKind{mg.Pawn, mg.Knight, mg.Bishop, mg.Rook, mg.Queen}},
	{"rook check block", "k7/8/8/4r3/3P4/8/8/2N1K3 w - - 0 1",
		[]mg.PieceKind{mg.Pawn, mg.Knight, mg.Bishop, mg.Rook, mg.Queen}},
}

func kindSet(kinds []mg.PieceKind) map[mg.PieceKind]bool {
	if kinds == nil {
		return allKinds()
	}
	set := make(map[mg.PieceKind]bool)
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

func TestEnumerateMatchesDragontooth(t *testing.T) {
	for _, tc := range oracleCases {
		t.Run(tc.name, func(t *testing.T) {
			board := parse(t, tc.fen)
			kinds := kindSet(tc.kinds)

			oracle := dragontoothmg.ParseFen(tc.fen)
			want := make(map[string]bool)
			legal := oracle.GenerateLegalMoves()
			for i := range legal {
				m := &legal[i]
				from, to := mg.Square(m.From()), mg.Square(m.To())
				if !kinds[board.PieceAt(from).Kind()] {
					continue
				}
				want[uciKey(from, to, mg.PieceKind(m.Promote()))] = true
			}

			got := generatedSet(board, kinds)
			if diff := cmp.Diff(sortedKeys(want), sortedKeys(got)); diff != "" {
				t.Fatalf("%s: moves mismatch (-dragontooth +generated):\n%s", tc.fen, diff)
			}
		})
	}
}

func TestEnumerateMatchesNotnil(t *testing.T) {
	for _, tc := range oracleCases {
		t.Run(tc.name, func(t *testing.T) {
			board := parse(t, tc.fen)
			kinds := kindSet(tc.kinds)

			opt, err := chess.FEN(tc.fen)
			if err != nil {
				t.Fatalf("chess.FEN: %v", err)
			}
			game := chess.NewGame(opt)
			want := make(map[string]bool)
			for _, m := range game.ValidMoves() {
				from := mg.Square(m.S1())
				if !kinds[board.PieceAt(from).Kind()] {
					continue
				}
				want[m.String()] = true
			}

			got := generatedSet(board, kinds)
			if diff := cmp.Diff(sortedKeys(want), sortedKeys(got)); diff != "" {
				t.Fatalf("%s: moves mismatch (-notnil +generated):\n%s", tc.fen, diff)
			}
		})
	}
}

// The king filter only looks at the enemy king: squares covered by other
// enemy pieces stay in the record.
func TestKingFilterIgnoresOtherAttackers(t *testing.T) {
	board := parse(t, "8/8/4k3/8/4K3/r7/8/8 w - - 0 1")
	var ml mg.MoveList
	mg.Legals[mg.KingType, mg.NotInCheckType](&ml, board, ^board.ColorCombined(mg.White))
	if ml.Len() != 1 {
		t.Fatalf("expected one king record, got %d", ml.Len())
	}
	got := ml.Records()[0].BitBoard
	want := sqs(t, "d3", "e3", "f3", "d4", "f4")
	if got != want {
		t.Fatalf("king destinations: got %s want %s", got, want)
	}
	for _, name := range []string{"d3", "e3", "f3"} {
		if !board.IsSquareAttacked(sq(t, name), mg.Black) {
			t.Fatalf("%s should be covered by the rook", name)
		}
	}
}
