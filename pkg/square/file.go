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

// File represents a file, i.e. a column, on a chessboard.
type File int

// constants representing the various files on a chessboard.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	FileN
)

// String converts a File into its algebraic string representation.
func (f File) String() string {
	return string(rune('a') + rune(f))
}

// fileFrom creates a File from its algebraic string identifier.
func fileFrom(id string) File {
	if len(id) != 1 || id[0] < 'a' || id[0] > 'h' {
		panic("file from: invalid file id")
	}

	return File(id[0] - 'a')
}
