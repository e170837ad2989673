package bench

import (
	"testing"

	mg "chess-movegen/goosemg"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	evasion  = "k7/8/8/4r3/3P4/8/8/2N1K3 w - - 0 1"
)

func benchEnumerate(b *testing.B, fen string) {
	board, err := mg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	var ml mg.MoveList
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ml.Clear()
		mg.EnumerateMoves(board, &ml)
	}
}

func BenchmarkEnumerate_Initial(b *testing.B)  { benchEnumerate(b, mg.FENStartPos) }
func BenchmarkEnumerate_Kiwipete(b *testing.B) { benchEnumerate(b, kiwipete) }
func BenchmarkEnumerate_Pos6(b *testing.B)     { benchEnumerate(b, pos6) }
func BenchmarkEnumerate_InCheck(b *testing.B)  { benchEnumerate(b, evasion) }

func benchGenerateMoves(b *testing.B, fen string) {
	board, err := mg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]mg.Move, 0, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
		buf = buf[:0]
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B)  { benchGenerateMoves(b, mg.FENStartPos) }
func BenchmarkGenerateMoves_Kiwipete(b *testing.B) { benchGenerateMoves(b, kiwipete) }

// Single kind, to compare the specialized routines against each other.
func BenchmarkLegals_Pawns(b *testing.B) {
	board := mg.MustParseFEN(kiwipete)
	mask := ^board.ColorCombined(board.SideToMove())
	var ml mg.MoveList
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ml.Clear()
		mg.Legals[mg.PawnType, mg.NotInCheckType](&ml, board, mask)
	}
}

func BenchmarkLegals_King(b *testing.B) {
	board := mg.MustParseFEN(kiwipete)
	mask := ^board.ColorCombined(board.SideToMove())
	var ml mg.MoveList
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ml.Clear()
		mg.Legals[mg.KingType, mg.NotInCheckType](&ml, board, mask)
	}
}

func BenchmarkSliderAttacks(b *testing.B) {
	board := mg.MustParseFEN(pos6)
	occ := board.Combined()
	var sink mg.BitBoard
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sq := mg.Square(i & 63)
		sink ^= mg.RookMoves(sq, occ) | mg.BishopMoves(sq, occ)
	}
	_ = sink
}
