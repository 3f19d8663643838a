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
	"github.com/brackenchess/corechess/pkg/move"
	"github.com/brackenchess/corechess/pkg/piece"
)

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	us := p.SideToMove
	kingSq := p.Board.KingSquare(us)
	return attacks.IsAttacked(p.Pieces, p.Board.Occupied(), kingSq, us.Other())
}

// LegalMoves generates every legal move available to the side to move,
// by playing and unplaying each pseudo-legal move and discarding the
// ones that leave the mover's own king in check. Castling moves are
// pseudo-legal only if already safe to play, since PseudoLegalMoves
// resolves their king-safety requirements itself; the make/unmake check
// here still screens out a castle that, say, is pinned in some other
// way PseudoLegalMoves does not special-case.
func (p *Position) LegalMoves() []move.Move {
	pseudo := p.PseudoLegalMoves()
	legal := make([]move.Move, 0, len(pseudo))

	mover := p.SideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.kingAttacked(mover) {
			legal = append(legal, m)
		}
		p.UnmakeMove()
	}

	return legal
}

// kingAttacked reports whether c's king is attacked, regardless of whose
// turn it currently is to move. Used by LegalMoves, which must check the
// mover's king after MakeMove has already flipped SideToMove.
func (p *Position) kingAttacked(c piece.Color) bool {
	kingSq := p.Board.KingSquare(c)
	return attacks.IsAttacked(p.Pieces, p.Board.Occupied(), kingSq, c.Other())
}
