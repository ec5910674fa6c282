package main

import (
	"fmt"
	"os"

	"golox/internal"
)

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: ast /path/to/source.lox")
		os.Exit(64)
	}

	b, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(74)
	}

	tree, diagnostics := internal.ParseTree(string(b))
	if len(diagnostics) > 0 {
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		os.Exit(65)
	}

	fmt.Print(tree)
}
