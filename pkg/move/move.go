// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package move declares the packed move encoding used to describe chess
// moves, and the taxonomy of special move kinds (double pushes, en
// passant, promotions, and castling).
//
// Captures are not tagged in the move itself; the piece on the target
// square before a move is applied is recovered from the board mailbox.
package move

import "github.com/brackenchess/corechess/pkg/square"

// Move represents a chess move, packed into a 16-bit word.
//
// Format: MSB -> LSB
// [15 kind Kind 12][11 target square.Square 6][05 source square.Square 0]
type Move uint16

const (
	// bit width of each field
	sourceWidth = 6
	targetWidth = 6
	kindWidth   = 4

	// bit offsets of each field
	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	kindOffset   = targetOffset + targetWidth

	// bit masks of each field
	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	kindMask   = (1 << kindWidth) - 1
)

// Kind identifies the special semantics, if any, a Move carries beyond a
// plain relocation of a piece from its source to its target square.
type Kind uint16

// constants representing every kind of move.
const (
	Quiet Kind = iota
	DoublePush
	EnPassant
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	KingCastle
	QueenCastle

	KindN
)

// String converts a Kind into a short human readable identifier.
func (k Kind) String() string {
	kinds := [...]string{
		Quiet:         "quiet",
		DoublePush:    "double-push",
		EnPassant:     "en-passant",
		PromoteKnight: "promote-knight",
		PromoteBishop: "promote-bishop",
		PromoteRook:   "promote-rook",
		PromoteQueen:  "promote-queen",
		KingCastle:    "king-castle",
		QueenCastle:   "queen-castle",
	}

	if int(k) >= len(kinds) {
		panic("kind string: invalid move kind")
	}

	return kinds[k]
}

// IsPromotion reports whether the Kind is one of the four promotion kinds.
func (k Kind) IsPromotion() bool {
	return k >= PromoteKnight && k <= PromoteQueen
}

// IsCastle reports whether the Kind is one of the two castling kinds.
func (k Kind) IsCastle() bool {
	return k == KingCastle || k == QueenCastle
}

// Promotions maps each promotion Kind to the piece.Kind it promotes to,
// in the same order as piece.Promotions.
var Promotions = [...]Kind{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// New packs a source square, target square, and move Kind into a Move.
// New panics if kind is not one of the declared move kinds.
func New(source, target square.Square, kind Kind) Move {
	if kind >= KindN {
		panic("new move: invalid move kind")
	}

	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(kind) << kindOffset
	return m
}

// Decode unpacks a raw 16-bit word into a Move, reporting false if the
// word's kind field does not name a declared move kind.
func Decode(raw uint16) (Move, bool) {
	m := Move(raw)
	if m.Kind() >= KindN {
		return 0, false
	}

	return m, true
}

// Source returns the source square of the move.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the target square of the move.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Kind returns the Kind of the move.
func (m Move) Kind() Kind {
	return Kind((m >> kindOffset) & kindMask)
}

// String converts a move to its long algebraic notation form, e.g. "e2e4"
// or "e1g1" (castling) or "d7d8q" (promotion).
func (m Move) String() string {
	s := m.Source().String() + m.Target().String()

	promoLetters := [...]string{
		PromoteKnight: "n",
		PromoteBishop: "b",
		PromoteRook:   "r",
		PromoteQueen:  "q",
	}

	if k := m.Kind(); k.IsPromotion() {
		s += promoLetters[k]
	}

	return s
}
