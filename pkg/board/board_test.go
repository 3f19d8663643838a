package board_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/board"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

func TestSetClear(t *testing.T) {
	b := board.New()

	b.Set(square.E4, piece.WhiteKnight)
	if got := b.PieceAt(square.E4); got != piece.WhiteKnight {
		t.Fatalf("PieceAt(e4) = %s, want %s", got, piece.WhiteKnight)
	}

	if !b.Pieces[piece.WhiteKnight].IsSet(square.E4) {
		t.Fatal("bitboard for WhiteKnight should have e4 set")
	}

	b.Clear(square.E4)
	if got := b.PieceAt(square.E4); got != piece.None {
		t.Fatalf("PieceAt(e4) = %s, want None", got)
	}

	if b.Pieces[piece.WhiteKnight].IsSet(square.E4) {
		t.Fatal("bitboard for WhiteKnight should no longer have e4 set")
	}
}

func TestClearVacantIsNoop(t *testing.T) {
	b := board.New()
	b.Clear(square.A1) // should not panic
}

func TestMovePiece(t *testing.T) {
	b := board.New()
	b.Set(square.E2, piece.WhitePawn)

	moved, captured := b.MovePiece(square.E2, square.E4)

	if moved != piece.WhitePawn {
		t.Errorf("moved = %s, want %s", moved, piece.WhitePawn)
	}

	if captured != piece.None {
		t.Errorf("captured = %s, want None", captured)
	}

	if got := b.PieceAt(square.E2); got != piece.None {
		t.Errorf("PieceAt(e2) = %s, want None", got)
	}

	if got := b.PieceAt(square.E4); got != piece.WhitePawn {
		t.Errorf("PieceAt(e4) = %s, want %s", got, piece.WhitePawn)
	}
}

func TestMovePieceCapture(t *testing.T) {
	b := board.New()
	b.Set(square.E4, piece.WhiteKnight)
	b.Set(square.D6, piece.BlackPawn)

	moved, captured := b.MovePiece(square.E4, square.D6)

	if moved != piece.WhiteKnight {
		t.Errorf("moved = %s, want %s", moved, piece.WhiteKnight)
	}

	if captured != piece.BlackPawn {
		t.Errorf("captured = %s, want %s", captured, piece.BlackPawn)
	}

	if got := b.PieceAt(square.D6); got != piece.WhiteKnight {
		t.Errorf("PieceAt(d6) = %s, want %s", got, piece.WhiteKnight)
	}

	if b.Pieces[piece.BlackPawn].IsSet(square.D6) {
		t.Error("captured pawn's bitboard should no longer have d6 set")
	}

	if b.Occupied().Count() != 1 {
		t.Errorf("Occupied().Count() = %d, want 1 (capture must not leave two pieces on one square)", b.Occupied().Count())
	}
}

func TestMovePieceFromVacantIsNoop(t *testing.T) {
	b := board.New()
	b.Set(square.E4, piece.BlackQueen)

	moved, captured := b.MovePiece(square.E2, square.E4)

	if moved != piece.None || captured != piece.None {
		t.Errorf("MovePiece from a vacant square = (%s, %s), want (None, None)", moved, captured)
	}

	if got := b.PieceAt(square.E4); got != piece.BlackQueen {
		t.Errorf("PieceAt(e4) = %s, want unchanged %s", got, piece.BlackQueen)
	}
}

func TestOccupiedAndColored(t *testing.T) {
	b := board.New()
	b.Set(square.E1, piece.WhiteKing)
	b.Set(square.E8, piece.BlackKing)

	occ := b.Occupied()
	if occ.Count() != 2 {
		t.Errorf("Occupied().Count() = %d, want 2", occ.Count())
	}

	if w := b.Colored(piece.White); w.Count() != 1 || !w.IsSet(square.E1) {
		t.Errorf("Colored(White) should contain only e1")
	}

	if bk := b.Colored(piece.Black); bk.Count() != 1 || !bk.IsSet(square.E8) {
		t.Errorf("Colored(Black) should contain only e8")
	}
}

func TestKingSquare(t *testing.T) {
	b := board.New()
	b.Set(square.G1, piece.WhiteKing)

	if got := b.KingSquare(piece.White); got != square.G1 {
		t.Errorf("KingSquare(White) = %s, want g1", got)
	}
}
