package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ren-B-7/chess-backend/protocol"
)

func main() {
	fen := flag.String("fen", "", "Answer a single request for this FEN and exit (default: serve stdin)")
	reason := flag.String("reason", "status", "Request reason for -fen mode (start, move, validate, status)")
	move := flag.String("move", "", "Move in from-to notation for -reason move")
	flag.Parse()

	if *fen != "" {
		resp := protocol.Handle(protocol.Request{Reason: *reason, FEN: *fen, Moves: *move})
		fmt.Printf("message: %s\n", resp.Message)
		fmt.Printf("fen:     %s\n", resp.FEN)
		fmt.Printf("status:  %s\n", resp.Status)
		for _, m := range resp.PossibleMoves {
			fmt.Printf("  %s\n", m)
		}
		return
	}

	if err := protocol.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "protocol loop: %v\n", err)
		os.Exit(1)
	}
}
