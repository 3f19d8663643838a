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

// Package position layers game state on top of a board.Board: whose turn
// it is, castling rights, the en passant target, the move clocks, and a
// Zobrist fingerprint, together with move generation, make/unmake, and
// perft.
package position

import (
	"fmt"

	"github.com/brackenchess/corechess/pkg/board"
	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/move"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
	"github.com/brackenchess/corechess/pkg/zobrist"
)

// Position represents a chess position: a Board together with the game
// state that isn't derivable from piece placement alone.
type Position struct {
	board.Board

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	HalfmoveClock  int
	FullmoveNumber int

	Hash zobrist.Key

	history []Undo
}

// Undo holds the state needed to reverse a single MakeMove call.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	HalfmoveClock   int
	Hash            zobrist.Key
	Captured        piece.Piece
}

// New returns an empty Position with White to move and no rights.
func New() *Position {
	return &Position{
		Board:           board.New(),
		SideToMove:      piece.White,
		EnPassantTarget: square.None,
		CastlingRights:  castling.None,
		FullmoveNumber:  1,
	}
}

// StartingPosition returns a Position set up for the start of a game.
// Since parsing FEN is out of scope for this package, the start position
// is built directly from board.Board.Set calls.
func StartingPosition() *Position {
	p := New()

	backRank := [8]piece.Kind{
		piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
		piece.King, piece.Bishop, piece.Knight, piece.Rook,
	}

	for f := square.FileA; f <= square.FileH; f++ {
		p.Board.Set(square.From(f, square.Rank1), piece.New(backRank[f], piece.White))
		p.Board.Set(square.From(f, square.Rank2), piece.New(piece.Pawn, piece.White))
		p.Board.Set(square.From(f, square.Rank7), piece.New(piece.Pawn, piece.Black))
		p.Board.Set(square.From(f, square.Rank8), piece.New(backRank[f], piece.Black))
	}

	p.CastlingRights = castling.All
	p.Hash = p.computeHash()

	return p
}

// computeHash derives the Zobrist hash of the Position from scratch. It
// is only used by StartingPosition; MakeMove/UnmakeMove maintain Hash
// incrementally afterwards.
func (p *Position) computeHash() zobrist.Key {
	var h zobrist.Key

	for s := square.A1; s <= square.H8; s++ {
		if pc := p.PieceAt(s); pc != piece.None {
			h ^= zobrist.PieceSquare[pc][s]
		}
	}

	if p.EnPassantTarget != square.None {
		h ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	h ^= zobrist.Castling[p.CastlingRights]

	if p.SideToMove == piece.Black {
		h ^= zobrist.SideToMove
	}

	return h
}

// Ply returns the number of moves played on this Position so far.
func (p *Position) Ply() int {
	return len(p.history)
}

// String converts a Position into a human readable board diagram plus a
// summary line.
func (p *Position) String() string {
	return fmt.Sprintf(
		"%s\nside to move: %s, castling: %s, en passant: %s, halfmove: %d, fullmove: %d, hash: %016x\n",
		p.Board.String(), p.SideToMove, p.CastlingRights, p.EnPassantTarget,
		p.HalfmoveClock, p.FullmoveNumber, uint64(p.Hash),
	)
}
