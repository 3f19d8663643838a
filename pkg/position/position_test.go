package position_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/position"
	"github.com/brackenchess/corechess/pkg/square"
)

func TestStartingPositionSetup(t *testing.T) {
	p := position.StartingPosition()

	if p.SideToMove != piece.White {
		t.Errorf("side to move = %s, want white", p.SideToMove)
	}

	if p.CastlingRights != castling.All {
		t.Errorf("castling rights = %s, want %s", p.CastlingRights, castling.All)
	}

	if p.EnPassantTarget != square.None {
		t.Errorf("en passant target = %s, want none", p.EnPassantTarget)
	}

	if p.FullmoveNumber != 1 {
		t.Errorf("fullmove number = %d, want 1", p.FullmoveNumber)
	}

	if got := p.PieceAt(square.E1); got != piece.WhiteKing {
		t.Errorf("mailbox[e1] = %s, want WhiteKing", got)
	}

	if got := p.PieceAt(square.E8); got != piece.BlackKing {
		t.Errorf("mailbox[e8] = %s, want BlackKing", got)
	}

	if got := p.Occupied().Count(); got != 32 {
		t.Errorf("occupied squares = %d, want 32", got)
	}
}

func TestPly(t *testing.T) {
	p := position.StartingPosition()
	if p.Ply() != 0 {
		t.Errorf("Ply() = %d, want 0", p.Ply())
	}
}
