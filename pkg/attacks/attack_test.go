package attacks_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/attacks"
	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

func TestKnightCorner(t *testing.T) {
	got := attacks.Knight(square.A1, bitboard.Empty)
	want := bitboard.Squares[square.B3] | bitboard.Squares[square.C2]

	if got != want {
		t.Errorf("Knight(a1) = %v, want %v", got, want)
	}
}

func TestKingMasksFriends(t *testing.T) {
	friends := bitboard.Squares[square.D1] | bitboard.Squares[square.D2]
	got := attacks.King(square.E1, friends)

	if got&friends != 0 {
		t.Errorf("King attacks should not include friendly squares")
	}

	if got.Count() != 3 {
		t.Errorf("King(e1) with 2 of its 5 squares masked should have 3 squares, got %d", got.Count())
	}
}

func TestIsAttackedBySlider(t *testing.T) {
	var pieces [piece.N]bitboard.Set
	pieces[piece.BlackRook] = bitboard.Squares[square.A8]

	occ := pieces[piece.BlackRook]

	if !attacks.IsAttacked(pieces, occ, square.A1, piece.Black) {
		t.Errorf("a1 should be attacked by a rook on a8 down the open a-file")
	}

	occ |= bitboard.Squares[square.A4]
	if attacks.IsAttacked(pieces, occ, square.A1, piece.Black) {
		t.Errorf("a piece on a4 should block the attack on a1")
	}
}

func TestPawnCapturesAndEnPassant(t *testing.T) {
	enemies := bitboard.Squares[square.D5]
	got := attacks.Pawn(square.E4, piece.White, enemies, square.F5)

	want := bitboard.Squares[square.D5] | bitboard.Squares[square.F5]
	if got != want {
		t.Errorf("Pawn(e4, white) = %v, want %v", got, want)
	}
}
