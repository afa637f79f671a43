package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so slide ids and box drawing survive
	// terminals with a sparse locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
