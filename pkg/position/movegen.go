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

package position

import (
	"github.com/brackenchess/corechess/pkg/attacks"
	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/move"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// PseudoLegalMoves generates every move the side to move could play
// ignoring whether it leaves its own king in check, except for castling,
// whose legality (king not in check, not moving through an attacked
// square) is intrinsic to what a castling move even is and so is
// resolved here rather than left to LegalMoves.
func (p *Position) PseudoLegalMoves() []move.Move {
	us := p.SideToMove
	them := us.Other()

	occ := p.Board.Occupied()
	friends := p.Board.Colored(us)
	enemies := p.Board.Colored(them)

	moves := make([]move.Move, 0, 32)

	for bb := p.Pieces[piece.New(piece.Pawn, us)]; bb != 0; {
		from := bb.Pop()
		p.appendPawnMoves(&moves, from, us, occ, enemies)
	}

	for bb := p.Pieces[piece.New(piece.Knight, us)]; bb != 0; {
		from := bb.Pop()
		appendTargets(&moves, from, attacks.Knight(from, friends))
	}

	for bb := p.Pieces[piece.New(piece.Bishop, us)]; bb != 0; {
		from := bb.Pop()
		appendTargets(&moves, from, attacks.Bishop(from, occ)&^friends)
	}

	for bb := p.Pieces[piece.New(piece.Rook, us)]; bb != 0; {
		from := bb.Pop()
		appendTargets(&moves, from, attacks.Rook(from, occ)&^friends)
	}

	for bb := p.Pieces[piece.New(piece.Queen, us)]; bb != 0; {
		from := bb.Pop()
		appendTargets(&moves, from, attacks.Queen(from, occ)&^friends)
	}

	kingSq := p.Board.KingSquare(us)
	appendTargets(&moves, kingSq, attacks.King(kingSq, friends))
	p.appendCastles(&moves, us, kingSq, occ)

	return moves
}

// appendTargets appends a quiet move.Move from from to every square set
// in targets.
func appendTargets(moves *[]move.Move, from square.Square, targets bitboard.Set) {
	for targets != 0 {
		to := targets.Pop()
		*moves = append(*moves, move.New(from, to, move.Quiet))
	}
}

// pawnStartRank and pawnPromoteRank report the rank a pawn of color c starts
// on and the rank it promotes on.
func pawnStartRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank2
	}

	return square.Rank7
}

func pawnPromoteRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank8
	}

	return square.Rank1
}

func (p *Position) appendPawnMoves(moves *[]move.Move, from square.Square, us piece.Color, occ, enemies bitboard.Set) {
	promoRank := pawnPromoteRank(us)

	var singlePush, doublePush square.Square
	if us == piece.White {
		singlePush = from + 8
		doublePush = from + 16
	} else {
		singlePush = from - 8
		doublePush = from - 16
	}

	if !occ.IsSet(singlePush) {
		appendPawnTarget(moves, from, singlePush, promoRank)

		if from.Rank() == pawnStartRank(us) && !occ.IsSet(doublePush) {
			*moves = append(*moves, move.New(from, doublePush, move.DoublePush))
		}
	}

	captures := attacks.Pawn(from, us, enemies, p.EnPassantTarget)
	for captures != 0 {
		to := captures.Pop()
		if to == p.EnPassantTarget {
			*moves = append(*moves, move.New(from, to, move.EnPassant))
			continue
		}

		appendPawnTarget(moves, from, to, promoRank)
	}
}

func appendPawnTarget(moves *[]move.Move, from, to square.Square, promoRank square.Rank) {
	if to.Rank() == promoRank {
		for _, k := range move.Promotions {
			*moves = append(*moves, move.New(from, to, k))
		}
		return
	}

	*moves = append(*moves, move.New(from, to, move.Quiet))
}

// castleTransit names the squares that must be empty (emptySquares) and
// the squares that must not be attacked (transitSquares: the king's own
// square, the square it passes, and its target) for a given castle.
type castleTransit struct {
	right         castling.Rights
	kingFrom      square.Square
	kingTo        square.Square
	emptySquares  bitboard.Set
	transitSquares [3]square.Square
}

var whiteKingside = castleTransit{
	right: castling.WhiteKingside, kingFrom: square.E1, kingTo: square.G1,
	emptySquares:   bitboard.Squares[square.F1] | bitboard.Squares[square.G1],
	transitSquares: [3]square.Square{square.E1, square.F1, square.G1},
}

var whiteQueenside = castleTransit{
	right: castling.WhiteQueenside, kingFrom: square.E1, kingTo: square.C1,
	emptySquares: bitboard.Squares[square.D1] | bitboard.Squares[square.C1] |
		bitboard.Squares[square.B1],
	transitSquares: [3]square.Square{square.E1, square.D1, square.C1},
}

var blackKingside = castleTransit{
	right: castling.BlackKingside, kingFrom: square.E8, kingTo: square.G8,
	emptySquares:   bitboard.Squares[square.F8] | bitboard.Squares[square.G8],
	transitSquares: [3]square.Square{square.E8, square.F8, square.G8},
}

var blackQueenside = castleTransit{
	right: castling.BlackQueenside, kingFrom: square.E8, kingTo: square.C8,
	emptySquares: bitboard.Squares[square.D8] | bitboard.Squares[square.C8] |
		bitboard.Squares[square.B8],
	transitSquares: [3]square.Square{square.E8, square.D8, square.C8},
}

func (p *Position) appendCastles(moves *[]move.Move, us piece.Color, kingSq square.Square, occ bitboard.Set) {
	them := us.Other()

	kingside, queenside := whiteKingside, whiteQueenside
	if us == piece.Black {
		kingside, queenside = blackKingside, blackQueenside
	}

	for _, c := range [2]castleTransit{kingside, queenside} {
		if p.CastlingRights&c.right == 0 {
			continue
		}

		if occ&c.emptySquares != 0 {
			continue
		}

		if p.anySquareAttacked(c.transitSquares, them) {
			continue
		}

		kind := move.KingCastle
		if c.right == castling.WhiteQueenside || c.right == castling.BlackQueenside {
			kind = move.QueenCastle
		}

		*moves = append(*moves, move.New(kingSq, c.kingTo, kind))
	}
}

func (p *Position) anySquareAttacked(squares [3]square.Square, by piece.Color) bool {
	occ := p.Board.Occupied()
	for _, s := range squares {
		if attacks.IsAttacked(p.Pieces, occ, s, by) {
			return true
		}
	}

	return false
}
