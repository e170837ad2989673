package goosemg_test

import (
	"slices"
	"testing"

	mg "chess-movegen/goosemg"
)

func TestSquaresAscendingAndRestartable(t *testing.T) {
	b := sqs(t, "h8", "a1", "e4", "d5")
	want := []mg.Square{sq(t, "a1"), sq(t, "e4"), sq(t, "d5"), sq(t, "h8")}

	first := slices.Collect(b.Squares())
	second := slices.Collect(b.Squares())
	if !slices.Equal(first, want) || !slices.Equal(second, want) {
		t.Fatalf("Squares: got %v then %v, want %v", first, second, want)
	}

	seq := b.Squares()
	var n int
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if again := slices.Collect(seq); !slices.Equal(again, want) {
		t.Fatalf("sequence did not restart after early break: %v", again)
	}
}

func TestBitBoardSetOps(t *testing.T) {
	b := mg.FromSquare(sq(t, "e4"))
	if !b.Has(sq(t, "e4")) || b.Has(sq(t, "e5")) {
		t.Fatal("membership wrong")
	}
	b = b.With(sq(t, "e5"))
	if b.Count() != 2 || b.First() != sq(t, "e4") {
		t.Fatalf("With: %s", b)
	}
	if b.Without(sq(t, "e4")) != mg.FromSquare(sq(t, "e5")) {
		t.Fatalf("Without: %s", b.Without(sq(t, "e4")))
	}
	if got := b.String(); got != "{e4 e5}" {
		t.Fatalf("String: %q", got)
	}
	if mg.Empty.First() != mg.NoSquare || !mg.Empty.IsEmpty() {
		t.Fatal("Empty set misbehaves")
	}
	if got := slices.Collect(mg.Empty.Squares()); len(got) != 0 {
		t.Fatalf("Empty yields %v", got)
	}
}

func TestDraw(t *testing.T) {
	want := "1.......\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		".......1\n"
	if got := sqs(t, "a8", "h1").Draw(); got != want {
		t.Fatalf("Draw:\n%s\nwant\n%s", got, want)
	}
}

func TestParseSquare(t *testing.T) {
	for name, want := range map[string]mg.Square{"a1": 0, "h1": 7, "a8": 56, "h8": 63, "e4": 28} {
		got, err := mg.ParseSquare(name)
		if err != nil || got != want {
			t.Fatalf("ParseSquare(%q) = %d, %v; want %d", name, got, err, want)
		}
		if got.String() != name {
			t.Fatalf("String round trip: %q != %q", got.String(), name)
		}
	}
	for _, bad := range []string{"", "e", "i1", "a9", "e44"} {
		if _, err := mg.ParseSquare(bad); err == nil {
			t.Fatalf("ParseSquare(%q) should fail", bad)
		}
	}
}
