package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"reversi/internal/config"
	"reversi/internal/game"
)

func main() {
	cfg := config.Load()
	searcher := game.NewSearcher(cfg.SearchDepth, cfg.Weights, time.Now().UnixNano())

	board := game.NewBoard()
	toMove := game.Black
	reader := bufio.NewReader(os.Stdin)

	for {
		if !game.HasAnyMove(board, toMove) {
			if !game.HasAnyMove(board, toMove.Opponent()) {
				break
			}
			fmt.Printf("%s has no move, passing.\n", toMove)
			toMove = toMove.Opponent()
			continue
		}

		black, white, _ := board.Counts()
		fmt.Printf("\nBlack %d - White %d. %s to move.\n", black, white, toMove)
		printBoard(board)

		if toMove == game.White {
			mv, ok := searcher.BestMove(board, toMove)
			if !ok {
				continue
			}
			fmt.Printf("Engine plays %d %d\n", mv.Row+1, mv.Col+1)
			board = game.Apply(board, toMove, mv.Row, mv.Col)
		} else {
			fmt.Println("Enter a move: row col (example: 3 4)")
			for {
				fmt.Print("> ")
				line, _ := reader.ReadString('\n')
				parts := strings.Fields(line)
				if len(parts) != 2 {
					fmt.Println("Bad format. Try again.")
					continue
				}
				r, _ := strconv.Atoi(parts[0])
				c, _ := strconv.Atoi(parts[1])
				if !game.Legal(board, toMove, r-1, c-1) {
					fmt.Println("Illegal move. Try again.")
					continue
				}
				board = game.Apply(board, toMove, r-1, c-1)
				break
			}
		}
		toMove = toMove.Opponent()
	}

	black, white, _ := board.Counts()
	fmt.Printf("\nGame over! Black %d - White %d\n", black, white)
	switch {
	case black > white:
		fmt.Println("Black wins.")
	case white > black:
		fmt.Println("White wins.")
	default:
		fmt.Println("Draw.")
	}
}

func printBoard(b game.Board) {
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			switch b[r][c] {
			case game.Black:
				fmt.Print("x ")
			case game.White:
				fmt.Print("o ")
			default:
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
