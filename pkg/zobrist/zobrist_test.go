package zobrist_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
	"github.com/brackenchess/corechess/pkg/zobrist"
)

func TestKeysAreNonZeroAndDistinct(t *testing.T) {
	seen := map[zobrist.Key]string{}

	check := func(k zobrist.Key, name string) {
		if k == 0 {
			t.Errorf("%s key should not be zero", name)
		}

		if other, ok := seen[k]; ok {
			t.Errorf("%s collides with %s", name, other)
		}

		seen[k] = name
	}

	check(zobrist.SideToMove, "SideToMove")

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			check(zobrist.PieceSquare[p][s], "PieceSquare")
		}
	}

	for f := square.FileA; f < square.FileN; f++ {
		check(zobrist.EnPassant[f], "EnPassant")
	}

	for r := castling.None; r < castling.N; r++ {
		check(zobrist.Castling[r], "Castling")
	}
}
