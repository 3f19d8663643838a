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

// Queen returns the attack bitboard of a queen standing on s, given the
// full board occupancy: the union of a rook's and a bishop's attacks.
func Queen(s square.Square, occ bitboard.Set) bitboard.Set {
	return Rook(s, occ) | Bishop(s, occ)
}
