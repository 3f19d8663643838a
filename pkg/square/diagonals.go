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

package square

// Diagonal identifies one of the 15 a1-h8 oriented diagonals a square can
// lie on. Diagonal 7 is the long diagonal through a1 and h8.
type Diagonal int

// AntiDiagonal identifies one of the 15 a8-h1 oriented diagonals a square
// can lie on. AntiDiagonal 7 is the long diagonal through a8 and h1.
type AntiDiagonal int

// DiagonalN and AntiDiagonalN are the number of diagonals of each
// orientation on a chessboard.
const (
	DiagonalN     = 15
	AntiDiagonalN = 15
)
