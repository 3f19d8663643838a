// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Command perft counts the leaf nodes of the starting position's move
// tree at a given depth, a standard way to exercise and sanity check a
// move generator.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/brackenchess/corechess/pkg/position"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	depth := 5
	if args := os.Args[1:]; len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("perft: invalid depth %q: %w", args[0], err)
		}

		depth = d
	}

	p := position.StartingPosition()

	for d := 1; d <= depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, p.Perft(d))
	}

	return nil
}
