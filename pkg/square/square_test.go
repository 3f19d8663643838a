package square_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/square"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		s    square.Square
		want string
	}{
		{square.A1, "a1"},
		{square.H1, "h1"},
		{square.A8, "a8"},
		{square.H8, "h8"},
		{square.E4, "e4"},
	}

	for _, test := range tests {
		if got := test.s.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.s, got, test.want)
		}

		if got := square.New(test.want); got != test.s {
			t.Errorf("New(%q) = %d, want %d", test.want, got, test.s)
		}
	}
}

func TestFileRank(t *testing.T) {
	for f := square.FileA; f <= square.FileH; f++ {
		for r := square.Rank1; r <= square.Rank8; r++ {
			s := square.From(f, r)
			if s.File() != f || s.Rank() != r {
				t.Errorf("From(%s, %s) -> file %s rank %s", f, r, s.File(), s.Rank())
			}
		}
	}
}

func TestNone(t *testing.T) {
	if square.New("-") != square.None {
		t.Errorf("New(\"-\") != None")
	}

	if square.None.String() != "-" {
		t.Errorf("None.String() != \"-\"")
	}
}

func TestDiagonals(t *testing.T) {
	if d := square.A1.Diagonal(); d != square.H8.Diagonal() {
		t.Errorf("a1 and h8 should share a diagonal, got %d and %d", d, square.H8.Diagonal())
	}

	if d := square.A8.AntiDiagonal(); d != square.H1.AntiDiagonal() {
		t.Errorf("a8 and h1 should share an anti-diagonal, got %d and %d", d, square.H1.AntiDiagonal())
	}
}
