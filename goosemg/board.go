package goosemg

import "fmt"

// Board is an immutable-by-convention position snapshot. Generation only reads
// it; the mutators below exist to build synthetic positions and each one
// recomputes the derived check state before returning.
type Board struct {
	// Occupancy per piece kind (both colors, index by PieceKind) and per color.
	kinds  [7]BitBoard
	colors [2]BitBoard

	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	squares [64]Piece

	sideToMove     Color
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	halfmoveClock  int
	fullmoveNumber int

	// Derived from placement and side to move by refresh.
	checkers BitBoard
	inCheck  bool

	zobristKey uint64
}

// NewBoard returns an empty board, White to move, no castling rights.
func NewBoard() *Board {
	b := &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
	b.zobristKey = b.ComputeZobrist()
	return b
}

// Combined returns every occupied square.
func (b *Board) Combined() BitBoard { return b.colors[White] | b.colors[Black] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Pieces returns the squares holding a piece of the given kind, either color.
func (b *Board) Pieces(kind PieceKind) BitBoard { return b.kinds[kind] }

// ColorCombined returns the occupancy bitboard for the given color.
func (b *Board) ColorCombined(c Color) BitBoard { return b.colors[c] }

// Checkers is the set a non-king move must land on while the side to move is
// in check: the checking piece and, for a slider, the squares between it and
// the king. It is empty when not in check and under double check.
func (b *Board) Checkers() BitBoard { return b.checkers }

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool { return b.inCheck }

// KingSquare returns the color's king square, or NoSquare if it has none.
func (b *Board) KingSquare(c Color) Square {
	return (b.kinds[King] & b.colors[c]).First()
}

// CastleRights returns the rights the given color still holds.
func (b *Board) CastleRights(c Color) CastleRights { return b.castlingRights.For(c) }

// MyCastleRights returns the side to move's rights.
func (b *Board) MyCastleRights() CastleRights { return b.CastleRights(b.sideToMove) }

// CastlingRights returns the raw flags for both colors.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for testing/consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SetPiece puts p on sq, replacing whatever was there. NoPiece clears it.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
	b.refresh()
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) {
	b.removePiece(sq)
	b.refresh()
}

// SetSideToMove updates the side to play.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove == c {
		return
	}
	b.sideToMove = c
	b.zobristKey ^= zobristSide
	b.refresh()
}

// SetCastlingRights replaces the castling flags for both colors.
func (b *Board) SetCastlingRights(cr CastlingRights) {
	b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[cr]
	b.castlingRights = cr
}

// addPiece places a piece on an empty square and updates bitboards and zobrist.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.squares[sq] = p
	b.colors[p.Color()] |= FromSquare(sq)
	b.kinds[p.Kind()] |= FromSquare(sq)
	b.zobristKey ^= zobristPiece[p][sq]
}

// removePiece removes a piece from a square and updates bitboards and zobrist.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	b.squares[sq] = NoPiece
	b.colors[p.Color()] &^= FromSquare(sq)
	b.kinds[p.Kind()] &^= FromSquare(sq)
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// Attackers returns the pieces of color by that attack sq given occupancy occ.
func (b *Board) Attackers(sq Square, by Color, occ BitBoard) BitBoard {
	them := b.colors[by]
	diag := b.kinds[Bishop] | b.kinds[Queen]
	ortho := b.kinds[Rook] | b.kinds[Queen]
	// A pawn of by attacks sq from exactly the squares a pawn of the other
	// color would attack from sq.
	return them & (PawnAttacks(sq, by.Other(), b.kinds[Pawn]) |
		KnightMoves(sq)&b.kinds[Knight] |
		KingMoves(sq)&b.kinds[King] |
		BishopMoves(sq, occ)&diag |
		RookMoves(sq, occ)&ortho)
}

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.Attackers(sq, by, b.Combined()) != 0
}

// refresh recomputes the check state of the side to move.
func (b *Board) refresh() {
	b.checkers = Empty
	b.inCheck = false
	ksq := b.KingSquare(b.sideToMove)
	if ksq == NoSquare {
		return
	}
	attackers := b.Attackers(ksq, b.sideToMove.Other(), b.Combined())
	switch attackers.Count() {
	case 0:
	case 1:
		b.inCheck = true
		b.checkers = attackers | Between(ksq, attackers.First())
	default:
		// Only the king may move under double check.
		b.inCheck = true
	}
}

// Validate checks internal consistency between the placement array, the
// per-kind and per-color bitboards, and the zobrist key.
func (b *Board) Validate() bool {
	var kinds [7]BitBoard
	var colors [2]BitBoard
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if p.Kind() == NoKind || p.Kind() > King {
			return false
		}
		kinds[p.Kind()] |= FromSquare(sq)
		colors[p.Color()] |= FromSquare(sq)
	}
	if kinds != b.kinds || colors != b.colors {
		return false
	}
	if colors[White]&colors[Black] != 0 {
		return false
	}
	var union BitBoard
	for _, k := range Kinds {
		union |= kinds[k]
	}
	if union != b.Combined() {
		return false
	}
	if b.checkPieceCounts() != nil {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}

// checkPieceCounts enforces at most 16 pieces and 8 pawns per color, which
// keeps every generation within MaxRecords.
func (b *Board) checkPieceCounts() error {
	for _, c := range [2]Color{White, Black} {
		if n := b.colors[c].Count(); n > 16 {
			return fmt.Errorf("%s has %d pieces, at most 16 allowed", c, n)
		}
		if n := (b.colors[c] & b.kinds[Pawn]).Count(); n > 8 {
			return fmt.Errorf("%s has %d pawns, at most 8 allowed", c, n)
		}
	}
	return nil
}
