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
	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/move"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
	"github.com/brackenchess/corechess/pkg/zobrist"
)

// MakeMove plays m, which must be pseudo-legal for the side to move, on
// the Position. Every call must be paired with a later UnmakeMove to
// restore the prior state.
func (p *Position) MakeMove(m move.Move) {
	p.history = append(p.history, Undo{
		Move:            m,
		CastlingRights:  p.CastlingRights,
		EnPassantTarget: p.EnPassantTarget,
		HalfmoveClock:   p.HalfmoveClock,
		Hash:            p.Hash,
		Captured:        piece.None,
	})
	undo := &p.history[len(p.history)-1]

	p.HalfmoveClock++

	source := m.Source()
	target := m.Target()
	kind := m.Kind()

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	moving, captured := p.Board.MovePiece(source, target)
	if moving == piece.None {
		panic("make move: source square is vacant")
	}

	if kind == move.EnPassant {
		captureSq := enPassantCaptureSquare(target, p.SideToMove)
		captured = p.PieceAt(captureSq)
		p.Board.Clear(captureSq)
		p.Hash ^= zobrist.PieceSquare[captured][captureSq]
	} else if captured != piece.None {
		p.Hash ^= zobrist.PieceSquare[captured][target]
	}

	undo.Captured = captured

	if moving.Kind() == piece.Pawn || captured != piece.None {
		p.HalfmoveClock = 0
	}

	p.Hash ^= zobrist.PieceSquare[moving][source]

	result := moving
	if kind.IsPromotion() {
		result = piece.New(promotionKind(kind), p.SideToMove)
		p.Board.Clear(target)
		p.Board.Set(target, result)
	}

	p.Hash ^= zobrist.PieceSquare[result][target]

	if kind == move.DoublePush {
		p.EnPassantTarget = enPassantCaptureSquare(target, p.SideToMove)
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	if kind.IsCastle() {
		rookInfo := castling.Rooks[target]
		p.Hash ^= zobrist.PieceSquare[rookInfo.Rook][rookInfo.From]
		p.Board.Clear(rookInfo.From)
		p.Board.Set(rookInfo.To, rookInfo.Rook)
		p.Hash ^= zobrist.PieceSquare[rookInfo.Rook][rookInfo.To]
	}

	p.Hash ^= zobrist.Castling[p.CastlingRights]
	p.CastlingRights &^= castling.Mask[source]
	p.CastlingRights &^= castling.Mask[target]
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullmoveNumber++
	}
	p.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the most recent MakeMove call.
func (p *Position) UnmakeMove() {
	if len(p.history) == 0 {
		panic("unmake move: no move to unmake")
	}

	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.Black {
		p.FullmoveNumber--
	}

	undo := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	m := undo.Move
	source := m.Source()
	target := m.Target()
	kind := m.Kind()

	p.Board.MovePiece(target, source)

	if kind.IsPromotion() {
		// the piece MovePiece just carried back to source is the
		// promoted piece, not a pawn; replace it.
		p.Board.Clear(source)
		p.Board.Set(source, piece.New(piece.Pawn, p.SideToMove))
	}

	if kind.IsCastle() {
		rookInfo := castling.Rooks[target]
		p.Board.Clear(rookInfo.To)
		p.Board.Set(rookInfo.From, rookInfo.Rook)
	}

	if undo.Captured != piece.None {
		captureSq := target
		if kind == move.EnPassant {
			captureSq = enPassantCaptureSquare(target, p.SideToMove)
		}

		p.Board.Set(captureSq, undo.Captured)
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassantTarget = undo.EnPassantTarget
	p.HalfmoveClock = undo.HalfmoveClock
	p.Hash = undo.Hash
}

// enPassantCaptureSquare returns the square a pawn of the given color is
// captured on when moving to target via en passant, or the en passant
// target a double push by the given color creates.
func enPassantCaptureSquare(target square.Square, mover piece.Color) square.Square {
	if mover == piece.White {
		return target - 8
	}

	return target + 8
}

// promotionKind returns the piece kind a promotion move.Kind promotes to.
func promotionKind(k move.Kind) piece.Kind {
	switch k {
	case move.PromoteKnight:
		return piece.Knight
	case move.PromoteBishop:
		return piece.Bishop
	case move.PromoteRook:
		return piece.Rook
	case move.PromoteQueen:
		return piece.Queen
	default:
		panic("promotion kind: not a promotion move")
	}
}
