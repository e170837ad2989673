package goosemg

import "fmt"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece kind | 8) so that
	// - piece & 7 gives the kind in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceKind is a colorless piece. The numbering matches dragontoothmg.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

// Kinds lists the six piece kinds in generation order.
var Kinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Kind returns the colorless kind of the piece.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceOf combines a kind with a side to produce a concrete Piece.
func PieceOf(color Color, kind PieceKind) Piece {
	if kind == NoKind || kind > King {
		return NoPiece
	}
	if color == Black {
		return Piece(kind) | 8
	}
	return Piece(kind)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opponent of c.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

// Right is the square one file toward h. Callers ensure it stays on the board.
func (sq Square) Right() Square { return sq + 1 }

// Left is the square one file toward a.
func (sq Square) Left() Square { return sq - 1 }

// String returns the algebraic name of the square ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic name ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: want two characters", alg)
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", alg)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}
