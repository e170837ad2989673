package goosemg

import "testing"

func TestMoveListPanicsWhenFull(t *testing.T) {
	var ml MoveList
	for i := 0; i < MaxRecords; i++ {
		ml.push(Square(i), FromSquare(Square(i)), false)
	}
	if ml.Len() != MaxRecords {
		t.Fatalf("Len = %d", ml.Len())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("push past capacity did not panic")
		}
	}()
	ml.push(0, Full, false)
}

// Captures matches each pattern against enemy pieces that move that way, so
// a knight on the queen's diagonal is not in the set; the queen's own pattern
// supplies that capture.
func TestCapturesMatchesAttackerKind(t *testing.T) {
	b := MustParseFEN("4k3/8/8/8/8/2n5/3Q4/4K3 w - - 0 1")
	d2 := NewSquare(3, 1)
	c3 := NewSquare(2, 2)
	if got := Captures(d2, White, b.Combined(), b); got != Empty {
		t.Fatalf("Captures from d2 = %s", got)
	}
	var ml MoveList
	Legals[QueenType, NotInCheckType](&ml, b, ^b.ColorCombined(White))
	if ml.Len() != 1 || !ml.Records()[0].BitBoard.Has(c3) {
		t.Fatalf("queen records %v", ml.Records())
	}
}
