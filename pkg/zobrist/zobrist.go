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

// Package zobrist provides the random numbers used to maintain a
// position's Zobrist hash incrementally across make/unmake. The core
// does not interpret the resulting Key; it is a fingerprint for callers
// that need one, e.g. for repetition detection.
package zobrist

import (
	"github.com/brackenchess/corechess/internal/util"
	"github.com/brackenchess/corechess/pkg/castling"
	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// Key is a Zobrist hash value.
type Key uint64

var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	// piece-square numbers
	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	// en passant file numbers
	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	// castling right numbers
	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	// black to move number
	SideToMove = Key(rng.Uint64())
}
