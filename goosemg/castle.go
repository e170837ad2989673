package goosemg

// Castling rights bit flags for both sides, as stored on the board.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// For returns one side's view of the rights.
func (cr CastlingRights) For(color Color) CastleRights {
	if color == Black {
		return CastleRights(cr>>2) & BothSides
	}
	return CastleRights(cr) & BothSides
}

// CastleRights are the rights one color still holds.
type CastleRights uint8

const (
	NoRights  CastleRights = 0
	KingSide  CastleRights = 1
	QueenSide CastleRights = 2
	BothSides CastleRights = KingSide | QueenSide
)

func (c CastleRights) HasKingside() bool  { return c&KingSide != 0 }
func (c CastleRights) HasQueenside() bool { return c&QueenSide != 0 }

// KingsideSquares are the squares that must be empty to castle short: f and g
// on the color's back rank.
func (c CastleRights) KingsideSquares(color Color) BitBoard {
	return backRank(color) & (FileA<<5 | FileA<<6)
}

// QueensideSquares are the squares that must be empty to castle long: b, c
// and d on the color's back rank.
func (c CastleRights) QueensideSquares(color Color) BitBoard {
	return backRank(color) & (FileA<<1 | FileA<<2 | FileA<<3)
}

func backRank(color Color) BitBoard {
	if color == Black {
		return Rank8
	}
	return Rank1
}
