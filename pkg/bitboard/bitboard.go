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

// Package bitboard implements a 64-bit bitboard, one bit per square of a
// chessboard (bit 0 is a1, bit 63 is h8), and functions for manipulating
// and scanning them.
package bitboard

import (
	"math/bits"

	"github.com/brackenchess/corechess/pkg/piece"
	"github.com/brackenchess/corechess/pkg/square"
)

// Set is a 64-bit bitboard, with one bit per square.
type Set uint64

// String returns a human readable board diagram of the given Set, rank 8
// at the top and the a-file on the left.
func (b Set) String() string {
	var str string
	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		for f := square.FileA; f < square.FileN; f++ {
			s := square.From(f, square.Rank(r))
			if b.IsSet(s) {
				str += "1"
			} else {
				str += "0"
			}

			if f != square.FileH {
				str += " "
			}
		}

		str += "\n"
	}

	return str
}

// Singleton returns a Set with only the given Square set.
func Singleton(s square.Square) Set {
	if s == square.None {
		return Empty
	}

	return Squares[s]
}

// Union returns the bitwise union (OR) of the given Sets.
func Union(bs ...Set) Set {
	var u Set
	for _, b := range bs {
		u |= b
	}

	return u
}

// Intersection returns the bitwise intersection (AND) of the given Sets.
func Intersection(bs ...Set) Set {
	u := Universe
	for _, b := range bs {
		u &= b
	}

	return u
}

// Complement returns the bitwise complement (NOT) of the given Set.
func Complement(b Set) Set {
	return ^b
}

// Xor returns the bitwise exclusive-or of the two given Sets.
func Xor(a, b Set) Set {
	return a ^ b
}

// Up shifts the given Set one rank towards the eighth rank, relative to
// the given color.
func (b Set) Up(c piece.Color) Set {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("up: bad color")
	}
}

// Down shifts the given Set one rank towards the first rank, relative to
// the given color.
func (b Set) Down(c piece.Color) Set {
	switch c {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("down: bad color")
	}
}

// North shifts the given Set towards the eighth rank.
func (b Set) North() Set {
	return b << 8
}

// South shifts the given Set towards the first rank.
func (b Set) South() Set {
	return b >> 8
}

// East shifts the given Set towards the h-file.
func (b Set) East() Set {
	return (b &^ FileH) << 1
}

// West shifts the given Set towards the a-file.
func (b Set) West() Set {
	return (b &^ FileA) >> 1
}

// ShiftLeft shifts the given Set n bits towards the MSB (h8).
func ShiftLeft(b Set, n int) Set {
	return b << n
}

// ShiftRight shifts the given Set n bits towards the LSB (a1).
func ShiftRight(b Set, n int) Set {
	return b >> n
}

// Pop returns the least significant Square of the given Set and clears it.
func (b *Set) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in the given Set.
func (b Set) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set Square of the given Set.
func (b Set) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given Square is set in the Set.
func (b Set) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given Square in the Set.
func (b *Set) Set(s square.Square) {
	if s == square.None {
		return
	}

	*b |= Squares[s]
}

// Unset clears the given Square in the Set.
func (b *Set) Unset(s square.Square) {
	if s == square.None {
		return
	}

	*b &^= Squares[s]
}
