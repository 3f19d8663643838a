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
	"github.com/brackenchess/corechess/pkg/square"
)

// Bishop returns the attack bitboard of a bishop standing on s, given
// the full board occupancy, via hyperbola quintessence along both of
// its diagonals.
func Bishop(s square.Square, occ bitboard.Set) bitboard.Set {
	diagonalMask := bitboard.Diagonals[s.Diagonal()]
	diagonalAttack := bitboard.Hyperbola(s, occ, diagonalMask)

	antiDiagonalMask := bitboard.AntiDiagonals[s.AntiDiagonal()]
	antiDiagonalAttack := bitboard.Hyperbola(s, occ, antiDiagonalMask)

	return diagonalAttack | antiDiagonalAttack
}
