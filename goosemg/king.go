package goosemg

// IsSquareSafeFromEnemyKing reports whether sq is out of reach of the
// opposing king. It looks at the enemy king only; attacks by other pieces
// have to be excluded through the mask.
func IsSquareSafeFromEnemyKing(b *Board, sq Square) bool {
	enemyKing := b.Pieces(King) & b.ColorCombined(b.SideToMove().Other())
	return KingMoves(sq)&enemyKing == Empty
}

// kingLegals emits the single king record: its pattern and captures minus
// squares next to the enemy king, plus castling when not in check.
func kingLegals[C CheckType](ml *MoveList, b *Board, mask BitBoard) {
	var k KingType
	var c C
	color := b.SideToMove()
	ksq := b.KingSquare(color)
	if ksq == NoSquare {
		return
	}
	combined := b.Combined()

	moves := k.PseudoLegals(ksq, color, combined, mask) | Captures(ksq, color, combined, b)
	for rest := moves; rest != 0; {
		dest := popLSB(&rest)
		if !IsSquareSafeFromEnemyKing(b, dest) {
			moves ^= FromSquare(dest)
		}
	}

	// Castling needs the rights, an empty path to the rook, and both the
	// square the king crosses and the one it lands on clear of the enemy king.
	// The file checks only matter for synthetic boards with a misplaced king.
	if !c.InCheck() {
		rights := b.MyCastleRights()
		if rights.HasKingside() && ksq.File() < 6 && combined&rights.KingsideSquares(color) == Empty {
			middle := ksq.Right()
			dest := middle.Right()
			if IsSquareSafeFromEnemyKing(b, middle) && IsSquareSafeFromEnemyKing(b, dest) {
				moves |= FromSquare(dest)
			}
		}
		if rights.HasQueenside() && ksq.File() > 1 && combined&rights.QueensideSquares(color) == Empty {
			middle := ksq.Left()
			dest := middle.Left()
			if IsSquareSafeFromEnemyKing(b, middle) && IsSquareSafeFromEnemyKing(b, dest) {
				moves |= FromSquare(dest)
			}
		}
	}

	if !moves.IsEmpty() {
		ml.push(ksq, moves, false)
	}
}
