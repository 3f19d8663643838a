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

package bitboard

import "github.com/brackenchess/corechess/pkg/square"

// useful bitboard definitions
const (
	Empty    Set = 0
	Universe Set = 0xffffffffffffffff
)

// file bitboards
const (
	FileA Set = 0x0101010101010101
	FileB Set = 0x0202020202020202
	FileC Set = 0x0404040404040404
	FileD Set = 0x0808080808080808
	FileE Set = 0x1010101010101010
	FileF Set = 0x2020202020202020
	FileG Set = 0x4040404040404040
	FileH Set = 0x8080808080808080
)

var Files = [...]Set{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// rank bitboards
const (
	Rank1 Set = 0x00000000000000ff
	Rank2 Set = 0x000000000000ff00
	Rank3 Set = 0x0000000000ff0000
	Rank4 Set = 0x00000000ff000000
	Rank5 Set = 0x000000ff00000000
	Rank6 Set = 0x0000ff0000000000
	Rank7 Set = 0x00ff000000000000
	Rank8 Set = 0xff00000000000000
)

var Ranks = [...]Set{
	square.Rank1: Rank1,
	square.Rank2: Rank2,
	square.Rank3: Rank3,
	square.Rank4: Rank4,
	square.Rank5: Rank5,
	square.Rank6: Rank6,
	square.Rank7: Rank7,
	square.Rank8: Rank8,
}

// Squares holds a singleton Set for every square, indexed by square.Square.
var Squares [square.N]Set

// Diagonals holds the full diagonal (a1-h8 oriented) a square of a given
// diagonal index lies on, indexed by square.Diagonal.
var Diagonals [square.DiagonalN]Set

// AntiDiagonals holds the full anti-diagonal (a8-h1 oriented) a square of
// a given anti-diagonal index lies on, indexed by square.AntiDiagonal.
var AntiDiagonals [square.AntiDiagonalN]Set

func init() {
	mask := Set(1)
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = mask
		mask <<= 1

		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
