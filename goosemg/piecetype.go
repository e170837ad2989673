package goosemg

// PieceType is implemented by one zero-size type per piece kind. The legal-move
// routines take it as a type parameter so each kind gets its own loop.
type PieceType interface {
	// Is reports whether kind is this variant's kind.
	Is(kind PieceKind) bool
	// Kind returns the variant's kind.
	Kind() PieceKind
	// PseudoLegals returns the piece's movement pattern from src given the
	// board occupancy, restricted to mask.
	PseudoLegals(src Square, color Color, combined, mask BitBoard) BitBoard
}

type (
	PawnType   struct{}
	KnightType struct{}
	BishopType struct{}
	RookType   struct{}
	QueenType  struct{}
	KingType   struct{}
)

func (PawnType) Is(kind PieceKind) bool   { return kind == Pawn }
func (KnightType) Is(kind PieceKind) bool { return kind == Knight }
func (BishopType) Is(kind PieceKind) bool { return kind == Bishop }
func (RookType) Is(kind PieceKind) bool   { return kind == Rook }
func (QueenType) Is(kind PieceKind) bool  { return kind == Queen }
func (KingType) Is(kind PieceKind) bool   { return kind == King }

func (PawnType) Kind() PieceKind   { return Pawn }
func (KnightType) Kind() PieceKind { return Knight }
func (BishopType) Kind() PieceKind { return Bishop }
func (RookType) Kind() PieceKind   { return Rook }
func (QueenType) Kind() PieceKind  { return Queen }
func (KingType) Kind() PieceKind   { return King }

func (PawnType) PseudoLegals(src Square, color Color, combined, mask BitBoard) BitBoard {
	return PawnMoves(src, color, combined) & mask
}

func (KnightType) PseudoLegals(src Square, _ Color, _, mask BitBoard) BitBoard {
	return KnightMoves(src) & mask
}

func (BishopType) PseudoLegals(src Square, _ Color, combined, mask BitBoard) BitBoard {
	return BishopMoves(src, combined) & mask
}

func (RookType) PseudoLegals(src Square, _ Color, combined, mask BitBoard) BitBoard {
	return RookMoves(src, combined) & mask
}

func (QueenType) PseudoLegals(src Square, _ Color, combined, mask BitBoard) BitBoard {
	return (RookMoves(src, combined) ^ BishopMoves(src, combined)) & mask
}

func (KingType) PseudoLegals(src Square, _ Color, _, mask BitBoard) BitBoard {
	return KingMoves(src) & mask
}

// Captures returns the enemy pieces that could be taken from src by any of the
// diagonal, straight, pawn or knight patterns, each matched against enemy
// pieces that move that way. It is the same for every piece type and is not
// limited by the moving piece's own pattern.
func Captures(src Square, color Color, combined BitBoard, b *Board) BitBoard {
	return (BishopMoves(src, combined)&(b.Pieces(Bishop)|b.Pieces(Queen)) |
		RookMoves(src, combined)&(b.Pieces(Rook)|b.Pieces(Queen)) |
		PawnAttacks(src, color, b.Pieces(Pawn)) |
		KnightMoves(src)&b.Pieces(Knight)) &
		b.ColorCombined(color.Other())
}

// Legals appends the side to move's records for piece type P to ml. Only
// destinations in mask survive the movement pattern; when C is InCheckType
// every destination must also be in board.Checkers(). Pawns and the king
// use their own routines, the other kinds share defaultLegals.
func Legals[P PieceType, C CheckType](ml *MoveList, b *Board, mask BitBoard) {
	var p P
	switch any(p).(type) {
	case PawnType:
		pawnLegals[C](ml, b, mask)
	case KingType:
		kingLegals[C](ml, b, mask)
	default:
		defaultLegals[P, C](ml, b, mask)
	}
}

func defaultLegals[P PieceType, C CheckType](ml *MoveList, b *Board, mask BitBoard) {
	var p P
	var c C
	combined := b.Combined()
	color := b.SideToMove()
	pieces := b.Pieces(p.Kind()) & b.ColorCombined(color)

	if c.InCheck() {
		checkers := b.Checkers()
		for pieces != 0 {
			src := popLSB(&pieces)
			moves := (p.PseudoLegals(src, color, combined, mask) | Captures(src, color, combined, b)) & checkers
			if !moves.IsEmpty() {
				ml.push(src, moves, false)
			}
		}
		return
	}
	for pieces != 0 {
		src := popLSB(&pieces)
		moves := p.PseudoLegals(src, color, combined, mask) | Captures(src, color, combined, b)
		if !moves.IsEmpty() {
			ml.push(src, moves, false)
		}
	}
}
