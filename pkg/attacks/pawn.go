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

package attacks

import (
	"github.com/brackenchess/corechess/pkg/bitboard"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// pawnAttacksFrom generates the diagonal capture squares of a pawn of
// the given color standing on s. Pawn pushes are not attacks and are
// generated by the move generator directly, not this package.
func pawnAttacksFrom(s square.Square, c piece.Color) bitboard.Set {
	b := board{origin: s}

	switch c {
	case piece.White:
		b.addAttack(1, 1)
		b.addAttack(-1, 1)
	case piece.Black:
		b.addAttack(1, -1)
		b.addAttack(-1, -1)
	default:
		panic("pawn attacks: invalid color")
	}

	return b.board
}

// Pawn returns the diagonal capture squares of a pawn of the given color
// standing on s, including en passant if ep names the current target
// square.
func Pawn(s square.Square, c piece.Color, enemies bitboard.Set, ep square.Square) bitboard.Set {
	enemies.Set(ep)
	return pawnAttacks[c][s] & enemies
}
