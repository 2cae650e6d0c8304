package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gitrdm/gofdspace/pkg/fdspace"
)

// printSolution renders the array form original_source/example/src/main.rs
// prints ("[col0, col1, ...]"), plus a colorized board, since fdqueens
// is a small interactive CLI rather than a one-shot example binary.
func printSolution(n int, cols []int) {
	satColor := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("%s The first solution is:\n[", satColor(fmt.Sprintf("%d-queens problem is satisfiable.", n)))
	for i, c := range cols {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(c)
	}
	fmt.Println("]")
	fmt.Println()
	printBoard(n, cols)
}

func printBoard(n int, cols []int) {
	queen := color.New(color.FgMagenta, color.Bold).SprintFunc()
	border := color.New(color.Faint).SprintFunc()
	for row := 0; row < n; row++ {
		var line strings.Builder
		for col := 1; col <= n; col++ {
			if cols[row] == col {
				line.WriteString(queen("Q "))
			} else {
				line.WriteString(border(". "))
			}
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}
}

func printUnsatisfiable(n int) {
	color.New(color.FgRed, color.Bold).Printf("%d-queens problem is unsatisfiable.\n", n)
}

func printPruned(n, budget int) {
	color.New(color.FgYellow, color.Bold).Printf(
		"%d-queens search pruned after exhausting the node budget (%d).\n", n, budget)
}

// extractSolution reads every variable allocated by fdspace.NQueens
// out of the solved space, assuming IsSolved() already reported true.
func extractSolution(sp *fdspace.Space, queens []int) []int {
	cols := make([]int, len(queens))
	for i, id := range queens {
		cols[i] = sp.VStore.Read(id).Lo
	}
	return cols
}
