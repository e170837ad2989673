package goosemg

// pawnLegals splits each pawn's destinations into a quiet record and a
// promotion record so the expander knows which ones need a promotion piece.
func pawnLegals[C CheckType](ml *MoveList, b *Board, mask BitBoard) {
	var p PawnType
	var c C
	combined := b.Combined()
	color := b.SideToMove()
	pieces := b.Pieces(Pawn) & b.ColorCombined(color)
	promotions := PromotionRank(color)

	if c.InCheck() {
		checkers := b.Checkers()
		for pieces != 0 {
			src := popLSB(&pieces)
			moves := (p.PseudoLegals(src, color, combined, mask) | Captures(src, color, combined, b)) & checkers
			pushPawnMoves(ml, src, moves, promotions)
		}
		return
	}
	for pieces != 0 {
		src := popLSB(&pieces)
		moves := p.PseudoLegals(src, color, combined, mask) | Captures(src, color, combined, b)
		pushPawnMoves(ml, src, moves, promotions)
	}
}

func pushPawnMoves(ml *MoveList, src Square, moves, promotions BitBoard) {
	if normal := moves &^ promotions; !normal.IsEmpty() {
		ml.push(src, normal, false)
	}
	if promo := moves & promotions; !promo.IsEmpty() {
		ml.push(src, promo, true)
	}
}
