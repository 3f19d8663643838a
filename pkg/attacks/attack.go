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

// Package attacks implements attack-detection for every piece kind: it
// answers "which squares does a piece on s attack" and "is square s
// attacked by color c", given only bitboards. It knows nothing about
// castling rights, move legality, or check; those live above it.
package attacks

import (
	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces.
var (
	kingAttacks   [square.N]bitboard.Set
	knightAttacks [square.N]bitboard.Set
	pawnAttacks   [piece.NColor][square.N]bitboard.Set
)

// init initializes the attack bitboard lookup tables for non-sliding
// pieces by computing the bitboards for each square.
func init() {
	for s := square.A1; s <= square.H8; s++ {
		kingAttacks[s] = kingAttacksFrom(s)
		knightAttacks[s] = knightAttacksFrom(s)
		pawnAttacks[piece.White][s] = pawnAttacksFrom(s, piece.White)
		pawnAttacks[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}
}

// board is a helper used while precomputing the non-sliding attack
// tables above: it accumulates attacked squares relative to an origin,
// discarding any offset that would leave the board.
type board struct {
	origin square.Square
	board  bitboard.Set
}

// addAttack adds the square offset from the origin by the given file and
// rank deltas to the attack Set, but only if that square lies on the
// board.
func (b *board) addAttack(fileOffset, rankOffset int) {
	attackFile := int(b.origin.File()) + fileOffset
	attackRank := int(b.origin.Rank()) + rankOffset

	switch {
	case attackFile < int(square.FileA), attackFile > int(square.FileH),
		attackRank < int(square.Rank1), attackRank > int(square.Rank8):
		return
	}

	attackSquare := square.From(square.File(attackFile), square.Rank(attackRank))
	b.board.Set(attackSquare)
}

func kingAttacksFrom(from square.Square) bitboard.Set {
	b := board{origin: from}

	b.addAttack(1, 0)
	b.addAttack(1, 1)
	b.addAttack(0, 1)
	b.addAttack(-1, 0)
	b.addAttack(0, -1)
	b.addAttack(1, -1)
	b.addAttack(-1, 1)
	b.addAttack(-1, -1)

	return b.board
}

func knightAttacksFrom(from square.Square) bitboard.Set {
	b := board{origin: from}

	b.addAttack(2, 1)
	b.addAttack(1, 2)
	b.addAttack(1, -2)
	b.addAttack(2, -1)
	b.addAttack(-1, 2)
	b.addAttack(-2, 1)
	b.addAttack(-2, -1)
	b.addAttack(-1, -2)

	return b.board
}

// IsAttacked reports whether the given square is attacked by any piece
// of the given color, using the per-piece-kind occupancy bitboards. occ
// is the full board occupancy, needed to resolve sliding-piece rays.
func IsAttacked(pieces [piece.N]bitboard.Set, occ bitboard.Set, s square.Square, by piece.Color) bool {
	if pawnAttacks[by.Other()][s]&pieces[piece.New(piece.Pawn, by)] != 0 {
		return true
	}
	if knightAttacks[s]&pieces[piece.New(piece.Knight, by)] != 0 {
		return true
	}
	if kingAttacks[s]&pieces[piece.New(piece.King, by)] != 0 {
		return true
	}

	bishopsQueens := pieces[piece.New(piece.Bishop, by)] | pieces[piece.New(piece.Queen, by)]
	if Bishop(s, occ)&bishopsQueens != 0 {
		return true
	}

	rooksQueens := pieces[piece.New(piece.Rook, by)] | pieces[piece.New(piece.Queen, by)]
	if Rook(s, occ)&rooksQueens != 0 {
		return true
	}

	return false
}
