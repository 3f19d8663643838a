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

// Package board implements the dual bitboard/mailbox representation of a
// chess position's piece placement, kept consistent by construction:
// every method that mutates one updates both.
package board

import (
	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// Board holds the piece placement of a chess position: one bitboard per
// colored piece, and a mailbox for O(1) lookup of the piece on a square.
type Board struct {
	Pieces  [piece.N]bitboard.Set
	mailbox [square.N]piece.Piece
}

// New returns an empty Board, with every square vacant.
func New() Board {
	var b Board
	for s := square.A1; s <= square.H8; s++ {
		b.mailbox[s] = piece.None
	}

	return b
}

// String converts a Board into a human readable board diagram, rank 8
// at the top and the a-file on the left.
func (b *Board) String() string {
	var str string
	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		for f := square.FileA; f < square.FileN; f++ {
			str += b.PieceAt(square.From(f, square.Rank(r))).String()
			if f != square.FileH {
				str += " "
			}
		}

		str += "\n"
	}

	return str
}

// PieceAt returns the piece occupying s, or piece.None if s is vacant.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.mailbox[s]
}

// Occupied returns the Set of every occupied square.
func (b *Board) Occupied() bitboard.Set {
	var occ bitboard.Set
	for p := 0; p < piece.N; p++ {
		occ |= b.Pieces[p]
	}

	return occ
}

// Colored returns the Set of every square occupied by a piece of the
// given color.
func (b *Board) Colored(c piece.Color) bitboard.Set {
	var occ bitboard.Set
	for k := piece.Pawn; k <= piece.King; k++ {
		occ |= b.Pieces[piece.New(k, c)]
	}

	return occ
}

// Set places p on square s, replacing whatever piece, if any, occupied it.
func (b *Board) Set(s square.Square, p piece.Piece) {
	b.Clear(s)
	b.Pieces[p].Set(s)
	b.mailbox[s] = p
}

// Clear removes whatever piece, if any, occupies square s.
func (b *Board) Clear(s square.Square) {
	p := b.mailbox[s]
	if p == piece.None {
		return
	}

	b.Pieces[p].Unset(s)
	b.mailbox[s] = piece.None
}

// MovePiece relocates the piece on from to to, returning the piece that
// moved and whatever piece, if any, occupied to before the move. If from
// is vacant, MovePiece is a no-op and returns (None, None).
func (b *Board) MovePiece(from, to square.Square) (moved, captured piece.Piece) {
	moved = b.mailbox[from]
	if moved == piece.None {
		return piece.None, piece.None
	}

	captured = b.mailbox[to]

	b.Pieces[moved].Unset(from)
	if captured != piece.None {
		b.Pieces[captured].Unset(to)
	}
	b.Pieces[moved].Set(to)

	b.mailbox[from] = piece.None
	b.mailbox[to] = moved

	return moved, captured
}

// KingSquare returns the square the given color's king occupies.
func (b *Board) KingSquare(c piece.Color) square.Square {
	return b.Pieces[piece.New(piece.King, c)].FirstOne()
}
