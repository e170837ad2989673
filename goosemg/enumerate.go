package goosemg

// EnumerateMoves fills ml with the records of every piece kind for the side to
// move, using "not our own pieces" as the mask and picking the check variant
// from the board. Pinned pieces are not restricted.
func EnumerateMoves(b *Board, ml *MoveList) {
	mask := ^b.ColorCombined(b.SideToMove())
	if b.InCheck() {
		enumerate[InCheckType](b, ml, mask)
		return
	}
	enumerate[NotInCheckType](b, ml, mask)
}

func enumerate[C CheckType](b *Board, ml *MoveList, mask BitBoard) {
	Legals[PawnType, C](ml, b, mask)
	Legals[KnightType, C](ml, b, mask)
	Legals[BishopType, C](ml, b, mask)
	Legals[RookType, C](ml, b, mask)
	Legals[QueenType, C](ml, b, mask)
	Legals[KingType, C](ml, b, mask)
}

// GenerateMovesInto expands the side to move's records into dst (truncated
// first) and returns it. With enough capacity in dst it does not allocate.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	var ml MoveList
	EnumerateMoves(b, &ml)
	return ml.Expand(b, dst[:0])
}

// GenerateMoves allocates a new slice; prefer GenerateMovesInto in hot paths.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 128)) }
