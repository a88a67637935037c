// Command mailboxchess loads a chess position and prints the move its
// search subsystem selects. No arguments loads the standard starting
// position with White to move; one argument loads that 100-character
// layout; a trailing "-b" sets Black to move instead of White.
package main

import (
	"fmt"
	"os"

	"github.com/robtaussig/mailboxchess/internal/board"
	"github.com/robtaussig/mailboxchess/internal/search"
)

const startingLayout = "00000000000rnbqkbnr00pppppppp00--------00--------00--------00--------00PPPPPPPP00RNBQKBNR00000000000"

// searchDepth is the ply depth used by the CLI. Time management and
// iterative deepening are out of scope; the caller bounds runtime by
// this fixed depth.
const searchDepth = 4

func main() {
	layout := startingLayout
	side := board.White

	if len(os.Args) > 1 {
		layout = os.Args[1]
	}
	if len(os.Args) > 2 && os.Args[2] == "-b" {
		side = board.Black
	}

	pos, err := board.NewPosition(layout, side)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	searcher := search.NewSearcher()
	move, ok := searcher.BestMove(pos, searchDepth)
	if !ok {
		fmt.Fprintln(os.Stderr, "no legal moves")
		os.Exit(1)
	}

	fmt.Println(move.String())
}
