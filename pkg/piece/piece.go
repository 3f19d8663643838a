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

// Package piece implements representations of all the chess pieces and
// colors, and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white and
// lower case for black.
//
// The strings w, and b are used for representing the White and Black
// colors respectively.
package piece

// NewColor creates an instance of color from the given id.
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new color: invalid color id")
	}
}

// Color represents the color of a Piece.
type Color int

// various piece colors
const (
	White Color = iota
	Black

	NColor = 2
)

func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	switch c {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		panic("new color: invalid color id")
	}
}

// New packs a Kind and a Color into a dense Piece index, kind*2+color,
// so a Piece can be used directly as an array index in [N]T tables.
func New(k Kind, c Color) Piece {
	return Piece(k)*2 + Piece(c)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("new piece: invalid piece id")
	}
}

// Kind represents the kind of a Piece, independent of color.
type Kind int

// various chess piece kinds
const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King

	NKind = 6
)

func (k Kind) String() string {
	return Piece(k * 2).String()
}

// Piece represents a colored chess piece, densely packed as kind*2+color
// so it can be used directly as an index into [N]bitboard.Set tables.
type Piece int

// None represents the absence of a piece on a square.
const None Piece = -1

const (
	WhitePawn   Piece = Piece(Pawn)*2 + Piece(White)
	WhiteKnight Piece = Piece(Knight)*2 + Piece(White)
	WhiteBishop Piece = Piece(Bishop)*2 + Piece(White)
	WhiteRook   Piece = Piece(Rook)*2 + Piece(White)
	WhiteQueen  Piece = Piece(Queen)*2 + Piece(White)
	WhiteKing   Piece = Piece(King)*2 + Piece(White)

	BlackPawn   Piece = Piece(Pawn)*2 + Piece(Black)
	BlackKnight Piece = Piece(Knight)*2 + Piece(Black)
	BlackBishop Piece = Piece(Bishop)*2 + Piece(Black)
	BlackRook   Piece = Piece(Rook)*2 + Piece(Black)
	BlackQueen  Piece = Piece(Queen)*2 + Piece(Black)
	BlackKing   Piece = Piece(King)*2 + Piece(Black)

	N = 12
)

var Promotions = []Kind{
	Queen, Rook, Bishop, Knight,
}

// String converts a Piece into it's string representation.
func (p Piece) String() string {
	pieces := [...]string{
		WhitePawn:   "P",
		WhiteKnight: "N",
		WhiteBishop: "B",
		WhiteRook:   "R",
		WhiteQueen:  "Q",
		WhiteKing:   "K",
		BlackPawn:   "p",
		BlackKnight: "n",
		BlackBishop: "b",
		BlackRook:   "r",
		BlackQueen:  "q",
		BlackKing:   "k",
	}

	if p == None {
		return " "
	}

	return pieces[p]
}

// Kind returns the piece kind of the given Piece.
func (p Piece) Kind() Kind {
	if p == None {
		panic("kind of piece: can't find kind of None")
	}

	return Kind(p / 2)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	if p == None {
		panic("color of piece: can't find color of None")
	}

	return Color(p % 2)
}

// Is checks if the kind of the given Piece matches the given kind.
func (p Piece) Is(target Kind) bool {
	return p != None && p.Kind() == target
}

// IsColor checks if the color of the given Piece matches the given Color.
func (p Piece) IsColor(target Color) bool {
	return p != None && p.Color() == target
}
