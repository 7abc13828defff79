// Package protocol implements the line-oriented JSON request/response
// loop that drives the rules engine. Every request carries the full
// position as FEN, so the loop itself keeps no game state between
// lines.
package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Ren-B-7/chess-backend/rules"
)

// Request is one line of input. Reason selects the operation:
// ping, start, move, validate, status, exit.
type Request struct {
	Reason string `json:"reason"`
	FEN    string `json:"fen"`
	Moves  string `json:"moves"`
}

// Response is one line of output. PossibleMoves is sorted so identical
// requests produce byte-identical replies.
type Response struct {
	Message       string   `json:"message"`
	FEN           string   `json:"fen"`
	Status        string   `json:"status"`
	PossibleMoves []string `json:"possible_moves"`
}

// DrawStatus is reported when the halfmove clock reaches the draw
// threshold. The clock is tracked here, not inside the rules core, and
// takes precedence over re-classification for the ply.
const DrawStatus = "draw"

const drawThreshold = 100

// Run reads JSON requests line by line until EOF or an exit request,
// writing one JSON response per line. Malformed lines produce an error
// response and the loop keeps serving.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	enc := json.NewEncoder(w)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := enc.Encode(Response{Message: "invalid request: " + err.Error()}); err != nil {
				return err
			}
			continue
		}
		if req.Reason == "exit" {
			return nil
		}
		if err := enc.Encode(Handle(req)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Handle serves a single request. It is the whole protocol surface;
// Run just wraps it in a line loop.
func Handle(req Request) Response {
	switch req.Reason {
	case "ping":
		return Response{Message: "pong"}
	case "start":
		return handleStart(req)
	case "move":
		return handleMove(req)
	case "validate":
		return handleValidate(req)
	case "status":
		return handleStatus(req)
	default:
		return Response{Message: fmt.Sprintf("unknown reason %q", req.Reason)}
	}
}

func handleStart(req Request) Response {
	fen := req.FEN
	if fen == "" {
		fen = rules.FENStartPos
	}
	st, err := rules.ParseFEN(fen)
	if err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}
	return describe("valid", st)
}

func handleMove(req Request) Response {
	st, err := rules.ParseFEN(req.FEN)
	if err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}
	m, err := rules.ParseMove(req.Moves)
	if err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}

	legal := rules.LegalMoves(st)
	if !containsMove(legal, m) {
		// Illegal move: reject and leave the position untouched.
		resp := describe("illegal move", st)
		return resp
	}

	next := rules.Apply(st, m)
	return describe("valid", &next)
}

func handleValidate(req Request) Response {
	st, err := rules.ParseFEN(req.FEN)
	if err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}
	// Structural sanity gates move generation entirely.
	if err := rules.ValidateBoard(&st.Board); err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}
	return describe("valid", st)
}

func handleStatus(req Request) Response {
	st, err := rules.ParseFEN(req.FEN)
	if err != nil {
		return Response{Message: err.Error(), FEN: req.FEN}
	}
	return Response{Message: "valid", FEN: st.FEN(), Status: statusText(st)}
}

// describe builds the standard response body for a position: its FEN,
// classification and sorted legal moves.
func describe(message string, st *rules.GameState) Response {
	return Response{
		Message:       message,
		FEN:           st.FEN(),
		Status:        statusText(st),
		PossibleMoves: rules.MoveStrings(rules.LegalMoves(st)),
	}
}

func statusText(st *rules.GameState) string {
	if st.HalfmoveClock >= drawThreshold {
		return DrawStatus
	}
	return rules.GameStatus(st).String()
}

func containsMove(moves []rules.Move, m rules.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
