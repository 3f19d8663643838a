package bitboard_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/square"
)

func TestSetUnset(t *testing.T) {
	var b bitboard.Set

	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Fatal("e4 should be set")
	}

	b.Unset(square.E4)
	if b.IsSet(square.E4) {
		t.Fatal("e4 should be unset")
	}
}

func TestPop(t *testing.T) {
	b := bitboard.Squares[square.A1] | bitboard.Squares[square.D4] | bitboard.Squares[square.H8]

	want := []square.Square{square.A1, square.D4, square.H8}
	for _, w := range want {
		if got := b.Pop(); got != w {
			t.Errorf("Pop() = %s, want %s", got, w)
		}
	}

	if b != bitboard.Empty {
		t.Errorf("expected empty set after popping every bit, got %v", b)
	}
}

func TestCount(t *testing.T) {
	if n := bitboard.Universe.Count(); n != 64 {
		t.Errorf("Universe.Count() = %d, want 64", n)
	}

	if n := bitboard.Empty.Count(); n != 0 {
		t.Errorf("Empty.Count() = %d, want 0", n)
	}
}

func TestShifts(t *testing.T) {
	b := bitboard.Squares[square.E4]

	if got := b.North(); got != bitboard.Squares[square.E5] {
		t.Errorf("e4.North() should be e5")
	}

	if got := b.South(); got != bitboard.Squares[square.E3] {
		t.Errorf("e4.South() should be e3")
	}

	if got := b.East(); got != bitboard.Squares[square.F4] {
		t.Errorf("e4.East() should be f4")
	}

	if got := b.West(); got != bitboard.Squares[square.D4] {
		t.Errorf("e4.West() should be d4")
	}

	// the h-file must not wrap around to the a-file.
	if got := bitboard.Squares[square.H4].East(); got != bitboard.Empty {
		t.Errorf("h4.East() should be empty, got %v", got)
	}
}

func TestHyperbolaRook(t *testing.T) {
	occ := bitboard.Squares[square.A1] | bitboard.Squares[square.A4] | bitboard.Squares[square.D1]

	attacks := bitboard.Hyperbola(square.A1, occ, bitboard.Files[square.FileA]) |
		bitboard.Hyperbola(square.A1, occ, bitboard.Ranks[square.Rank1])

	want := bitboard.Squares[square.A2] | bitboard.Squares[square.A3] | bitboard.Squares[square.A4] |
		bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1]

	if attacks != want {
		t.Errorf("rook on a1 with blockers a4,d1 -> %v, want %v", attacks, want)
	}
}
