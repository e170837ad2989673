package goosemg

import "math/bits"

// Attack-pattern provider. Every function here is a pure table lookup; the
// tables are filled once at package init.

// direction indexes into rays. The first four are rook lines, the last four
// bishop lines. Directions whose squares increase from the origin come first
// in each group half so the nearest blocker is the lowest set bit.
const (
	dirN = iota
	dirE
	dirS
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var dirDelta = [8][2]int{ // {file, rank}
	dirN:  {0, 1},
	dirE:  {1, 0},
	dirS:  {0, -1},
	dirW:  {-1, 0},
	dirNE: {1, 1},
	dirNW: {-1, 1},
	dirSE: {1, -1},
	dirSW: {-1, -1},
}

// rays[sq][d] is every square from sq in direction d, excluding sq.
var rays [64][8]BitBoard

var (
	knightMoves [64]BitBoard
	kingMoves   [64]BitBoard
	pawnAttacks [2][64]BitBoard // squares a pawn of color attacks from sq
	pawnPushes  [2][64]BitBoard // single step forward
	between     [64][64]BitBoard
)

// Slider lookup: relevant-occupancy masks and per-square attack tables
// indexed by a software pext of the occupancy.
var (
	rookMask       [64]BitBoard
	bishopMask     [64]BitBoard
	rookAttTable   [64][]BitBoard
	bishopAttTable [64][]BitBoard
)

func init() {
	initLeaperTables()
	initRays()
	initBetween()
	initSliderTables()
}

func offsetsFrom(sq int, offsets [][2]int) BitBoard {
	file, rank := sq%8, sq/8
	var mask BitBoard
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			mask |= FromSquare(NewSquare(f, r))
		}
	}
	return mask
}

// initLeaperTables precomputes knight, king and pawn patterns.
func initLeaperTables() {
	knightOffsets := [][2]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	}
	kingOffsets := [][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		knightMoves[sq] = offsetsFrom(sq, knightOffsets)
		kingMoves[sq] = offsetsFrom(sq, kingOffsets)

		rank := sq / 8
		// Pawns never stand on their own back rank, and a pawn on the last
		// rank has nowhere to go.
		if rank < 7 {
			pawnAttacks[White][sq] = offsetsFrom(sq, [][2]int{{-1, 1}, {1, 1}})
			pawnPushes[White][sq] = offsetsFrom(sq, [][2]int{{0, 1}})
		}
		if rank > 0 {
			pawnAttacks[Black][sq] = offsetsFrom(sq, [][2]int{{-1, -1}, {1, -1}})
			pawnPushes[Black][sq] = offsetsFrom(sq, [][2]int{{0, -1}})
		}
	}
}

// initRays precomputes the eight directional rays from every square.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		for d, delta := range dirDelta {
			var ray BitBoard
			f, r := sq%8+delta[0], sq/8+delta[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				ray |= FromSquare(NewSquare(f, r))
				f += delta[0]
				r += delta[1]
			}
			rays[sq][d] = ray
		}
	}
}

func initBetween() {
	for a := 0; a < 64; a++ {
		for d := 0; d < 8; d++ {
			for b := range rays[a][d].Squares() {
				between[a][b] = rays[a][d] &^ rays[b][d] &^ FromSquare(b)
			}
		}
	}
}

// slide returns the attacks along the given directions from sq, stopping at
// (and including) the first blocker in each direction.
func slide(sq int, occ BitBoard, dirs [4]int) BitBoard {
	var attacks BitBoard
	for _, d := range dirs {
		ray := rays[sq][d]
		blockers := ray & occ
		if blockers != 0 {
			var first int
			if isIncreasing(d) {
				first = bits.TrailingZeros64(uint64(blockers))
			} else {
				first = 63 - bits.LeadingZeros64(uint64(blockers))
			}
			ray &^= rays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

func isIncreasing(d int) bool {
	return d == dirN || d == dirE || d == dirNE || d == dirNW
}

var (
	rookDirs   = [4]int{dirN, dirE, dirS, dirW}
	bishopDirs = [4]int{dirNE, dirNW, dirSE, dirSW}
)

// initSliderTables builds per-square occupancy masks and attack tables.
func initSliderTables() {
	const notEdgeFiles = ^(FileA | FileH)
	const notEdgeRanks = ^(Rank1 | Rank8)
	for sq := 0; sq < 64; sq++ {
		// A blocker on the last square of a ray never changes the attack set,
		// so each ray's far edge is left out of the mask.
		rookMask[sq] = (rays[sq][dirN]|rays[sq][dirS])&notEdgeRanks |
			(rays[sq][dirE]|rays[sq][dirW])&notEdgeFiles
		bishopMask[sq] = (rays[sq][dirNE] | rays[sq][dirNW] | rays[sq][dirSE] | rays[sq][dirSW]) &
			notEdgeFiles & notEdgeRanks

		rookAttTable[sq] = buildSliderTable(sq, rookMask[sq], rookDirs)
		bishopAttTable[sq] = buildSliderTable(sq, bishopMask[sq], bishopDirs)
	}
}

func buildSliderTable(sq int, mask BitBoard, dirs [4]int) []BitBoard {
	n := 1 << mask.Count()
	table := make([]BitBoard, n)
	for idx := 0; idx < n; idx++ {
		table[idx] = slide(sq, pdep(uint64(idx), mask), dirs)
	}
	return table
}

// software pext: extract bits of x at positions where mask has 1s, packed into low bits
func pext(x, mask BitBoard) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; idx++ {
		if x.Has(popLSB(&m)) {
			res |= 1 << idx
		}
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x uint64, mask BitBoard) BitBoard {
	var res BitBoard
	var idx uint
	for m := mask; m != 0; idx++ {
		sq := popLSB(&m)
		if (x>>idx)&1 != 0 {
			res |= FromSquare(sq)
		}
	}
	return res
}

// RookMoves returns the rook pattern from sq; the first blocker on each line
// is included whatever its color.
func RookMoves(sq Square, occ BitBoard) BitBoard {
	return rookAttTable[sq][pext(occ, rookMask[sq])]
}

// BishopMoves returns the bishop pattern from sq.
func BishopMoves(sq Square, occ BitBoard) BitBoard {
	return bishopAttTable[sq][pext(occ, bishopMask[sq])]
}

func KnightMoves(sq Square) BitBoard { return knightMoves[sq] }

func KingMoves(sq Square) BitBoard { return kingMoves[sq] }

// PawnAttacks returns the diagonal attacks of a color pawn on sq, restricted
// to targets.
func PawnAttacks(sq Square, color Color, targets BitBoard) BitBoard {
	return pawnAttacks[color][sq] & targets
}

// PawnQuiets returns the forward pushes of a color pawn on sq: one step if
// that square is empty, plus two steps from the starting rank when both are.
func PawnQuiets(sq Square, color Color, combined BitBoard) BitBoard {
	one := pawnPushes[color][sq]
	if one&combined != 0 {
		return Empty
	}
	start := Rank2
	if color == Black {
		start = Rank7
	}
	if !start.Has(sq) {
		return one
	}
	two := pawnPushes[color][one.First()]
	return one | two&^combined
}

// PawnMoves is the pawn's whole pattern: pushes plus attacks on any occupied
// square. Callers mask out their own pieces.
func PawnMoves(sq Square, color Color, combined BitBoard) BitBoard {
	return PawnQuiets(sq, color, combined) | PawnAttacks(sq, color, combined)
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and Empty otherwise.
func Between(a, b Square) BitBoard { return between[a][b] }

// PromotionRank is the rank a color's pawns promote on.
func PromotionRank(color Color) BitBoard {
	if color == Black {
		return Rank1
	}
	return Rank8
}
