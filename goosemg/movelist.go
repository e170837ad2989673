package goosemg

// MaxRecords bounds a MoveList: one record per friendly piece plus a second
// record for each pawn whose moves split into quiet and promotion sets.
const MaxRecords = 16 + 8

// SquareAndBitBoard is one generator record: every destination of the piece
// on Square. When Promotion is set each destination is a promotion square.
type SquareAndBitBoard struct {
	Square    Square
	BitBoard  BitBoard
	Promotion bool
}

// MoveList is the fixed-capacity output of the legal-move routines. The zero
// value is empty and ready to use; it must not be shared between goroutines
// while being filled.
type MoveList struct {
	records [MaxRecords]SquareAndBitBoard
	n       int
}

// push appends a record. Running out of room means a board broke the
// piece-count invariant, which is a bug rather than an input error.
func (ml *MoveList) push(sq Square, moves BitBoard, promotion bool) {
	if ml.n == MaxRecords {
		panic("goosemg: MoveList capacity exceeded")
	}
	ml.records[ml.n] = SquareAndBitBoard{Square: sq, BitBoard: moves, Promotion: promotion}
	ml.n++
}

// Len returns the number of records.
func (ml *MoveList) Len() int { return ml.n }

// Records returns the filled records. The slice aliases the list.
func (ml *MoveList) Records() []SquareAndBitBoard { return ml.records[:ml.n] }

// Clear empties the list for reuse.
func (ml *MoveList) Clear() { ml.n = 0 }

// Count returns the number of concrete moves the records expand to.
func (ml *MoveList) Count() int {
	total := 0
	for _, r := range ml.Records() {
		if r.Promotion {
			total += 4 * r.BitBoard.Count()
		} else {
			total += r.BitBoard.Count()
		}
	}
	return total
}
