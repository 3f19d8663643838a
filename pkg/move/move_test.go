package move_test

import (
	"testing"

	"github.com/brackenchess/corechess/pkg/move"
	"github.com/brackenchess/corechess/pkg/square"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		source, target square.Square
		kind           move.Kind
	}{
		{square.E2, square.E4, move.DoublePush},
		{square.E1, square.G1, move.KingCastle},
		{square.E1, square.C1, move.QueenCastle},
		{square.D7, square.D8, move.PromoteQueen},
		{square.E5, square.D6, move.EnPassant},
		{square.G1, square.F3, move.Quiet},
	}

	for _, test := range tests {
		m := move.New(test.source, test.target, test.kind)

		if got := m.Source(); got != test.source {
			t.Errorf("Source() = %s, want %s", got, test.source)
		}

		if got := m.Target(); got != test.target {
			t.Errorf("Target() = %s, want %s", got, test.target)
		}

		if got := m.Kind(); got != test.kind {
			t.Errorf("Kind() = %s, want %s", got, test.kind)
		}

		decoded, ok := move.Decode(uint16(m))
		if !ok || decoded != m {
			t.Errorf("Decode(%016b) = %v, %v; want %v, true", uint16(m), decoded, ok, m)
		}
	}
}

func TestDecodeInvalidKind(t *testing.T) {
	raw := uint16(square.E2) | uint16(square.E4)<<6 | uint16(move.KindN)<<12

	if _, ok := move.Decode(raw); ok {
		t.Errorf("Decode should reject a move word with an out-of-range kind")
	}
}

func TestNewPanicsOnInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New should panic on an invalid move kind")
		}
	}()

	move.New(square.A1, square.A2, move.KindN)
}

func TestIsPromotionIsCastle(t *testing.T) {
	for _, k := range move.Promotions {
		if !k.IsPromotion() {
			t.Errorf("%s should be a promotion kind", k)
		}

		if k.IsCastle() {
			t.Errorf("%s should not be a castle kind", k)
		}
	}

	for _, k := range []move.Kind{move.KingCastle, move.QueenCastle} {
		if !k.IsCastle() {
			t.Errorf("%s should be a castle kind", k)
		}

		if k.IsPromotion() {
			t.Errorf("%s should not be a promotion kind", k)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		m    move.Move
		want string
	}{
		{move.New(square.E2, square.E4, move.DoublePush), "e2e4"},
		{move.New(square.E1, square.G1, move.KingCastle), "e1g1"},
		{move.New(square.D7, square.D8, move.PromoteQueen), "d7d8q"},
		{move.New(square.A7, square.A8, move.PromoteKnight), "a7a8n"},
	}

	for _, test := range tests {
		if got := test.m.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
