// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package castling provides various types and definitions which are
// useful when dealing with castling moves in a board representation.
package castling

import (
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// Rights represents the current castling rights of a position.
// [Black Queen-side][Black King-side][White Queen-side][White King-side]
type Rights byte

// NewRights creates a new castling.Rights from the given string. It
// checks if the identifier for each possible castling is in the string
// in the proper order.
//
//	White King-side:  K
//	White Queen-side: Q
//	Black King-side:  k
//	Black Queen-side: q
//
// The string "-" represents castling.None.
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

// constants representing various castling rights.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	N = 1 << 4
)

// String converts the given Rights to a readable string.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// Mask is a lookup table, indexed by square, of the rights that need to
// be cleared when a piece moves from or to that square. If a piece moves
// from or to a1, either the white rook has moved or been captured, so
// white loses its queen-side right. Squares not occupied by a king or a
// rook in the starting position carry None and clear nothing.
var Mask = [square.N]Rights{
	square.A1: WhiteQueenside,
	square.E1: White,
	square.H1: WhiteKingside,

	square.A8: BlackQueenside,
	square.E8: Black,
	square.H8: BlackKingside,
}

// RookInfo describes the rook relocation that accompanies a king's
// castling move.
type RookInfo struct {
	From, To square.Square // source and target squares of the rook
	Rook     piece.Piece   // piece.Piece representation of the rook
}

// Rooks is a lookup table, indexed by the king's target square during
// castling, describing how the corresponding rook moves. Squares that
// are not a king's castling target square hold the zero RookInfo.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.BlackRook},
}
