package goosemg

import (
	"iter"
	"math/bits"
	"strings"
)

// BitBoard is a set of squares, bit i standing for Square(i).
type BitBoard uint64

const (
	Empty BitBoard = 0
	Full  BitBoard = ^Empty

	FileA BitBoard = 0x0101010101010101
	FileH BitBoard = FileA << 7

	Rank1 BitBoard = 0xFF
	Rank2 BitBoard = Rank1 << (8 * 1)
	Rank7 BitBoard = Rank1 << (8 * 6)
	Rank8 BitBoard = Rank1 << (8 * 7)
)

// FromSquare returns a bitboard with only sq set.
func FromSquare(sq Square) BitBoard { return 1 << uint64(sq) }

// Has reports whether sq is in the set.
func (b BitBoard) Has(sq Square) bool { return b&FromSquare(sq) != 0 }

// With returns the set plus sq.
func (b BitBoard) With(sq Square) BitBoard { return b | FromSquare(sq) }

// Without returns the set minus sq.
func (b BitBoard) Without(sq Square) BitBoard { return b &^ FromSquare(sq) }

// IsEmpty reports whether the set has no squares.
func (b BitBoard) IsEmpty() bool { return b == Empty }

// Count returns the number of squares in the set.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

// First returns the lowest square in the set, or NoSquare when empty.
func (b BitBoard) First() Square {
	if b == Empty {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares yields the members in ascending order. The sequence works on a copy
// of b, so ranging over it again restarts from the lowest square.
func (b BitBoard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := b; rest != Empty; {
			if !yield(popLSB(&rest)) {
				return
			}
		}
	}
}

// String lists the members in ascending order, e.g. "{e1 f1 g1}".
func (b BitBoard) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for sq := range b.Squares() {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(sq.String())
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Draw renders the set as an 8x8 grid with rank 8 on top.
func (b BitBoard) Draw() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// popLSB removes and returns the least significant set square from the mask.
func popLSB(mask *BitBoard) Square {
	idx := bits.TrailingZeros64(uint64(*mask))
	*mask &= *mask - 1
	return Square(idx)
}
