// Package server exposes the rules engine over HTTP, with games
// persisted in BadgerDB and rendered boards served as SVG.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Ren-B-7/chess-backend/protocol"
	"github.com/Ren-B-7/chess-backend/render"
	"github.com/Ren-B-7/chess-backend/rules"
)

const sessionTTL = 30 * time.Minute

// Server binds the game store and session table to HTTP handlers.
type Server struct {
	store    *GameStore
	sessions *Sessions
	mux      *http.ServeMux
}

func New(store *GameStore) *Server {
	s := &Server{
		store:    store,
		sessions: NewSessions(sessionTTL),
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /games", s.handleCreate)
	s.mux.HandleFunc("GET /games", s.handleList)
	s.mux.HandleFunc("GET /games/{id}", s.handleGet)
	s.mux.HandleFunc("DELETE /games/{id}", s.handleDelete)
	s.mux.HandleFunc("POST /games/{id}/moves", s.handleMove)
	s.mux.HandleFunc("GET /games/{id}/svg", s.handleSVG)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type createRequest struct {
	FEN string `json:"fen"`
}

type gameResponse struct {
	ID            string   `json:"id"`
	Token         string   `json:"token,omitempty"`
	FEN           string   `json:"fen"`
	Status        string   `json:"status"`
	Moves         []string `json:"moves"`
	PossibleMoves []string `json:"possible_moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func newGameID() string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.Body != nil {
		// An empty body starts from the initial position.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	fen := req.FEN
	if fen == "" {
		fen = rules.FENStartPos
	}
	st, err := rules.ParseFEN(fen)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := rules.ValidateBoard(&st.Board); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game := &Game{
		ID:        newGameID(),
		FEN:       st.FEN(),
		Status:    rules.GameStatus(st).String(),
		CreatedAt: time.Now(),
	}
	if err := s.store.Put(game); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := s.describe(game)
	resp.Token = s.sessions.New()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"games": ids})
}

func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) (*Game, bool) {
	game, err := s.store.Get(r.PathValue("id"))
	if errors.Is(err, ErrGameNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return game, true
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.describe(game))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Valid(r.Header.Get("X-Session-Token")) {
		writeError(w, http.StatusUnauthorized, "missing or expired session token")
		return
	}
	if err := s.store.Delete(r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Valid(r.Header.Get("X-Session-Token")) {
		writeError(w, http.StatusUnauthorized, "missing or expired session token")
		return
	}
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	resp := protocol.Handle(protocol.Request{Reason: "move", FEN: game.FEN, Moves: req.Move})
	if resp.Message != "valid" {
		writeError(w, http.StatusUnprocessableEntity, resp.Message)
		return
	}

	game.FEN = resp.FEN
	game.Status = resp.Status
	game.Moves = append(game.Moves, req.Move)
	if err := s.store.Put(game); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.describe(game))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	game, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	st, err := rules.ParseFEN(game.FEN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	render.WriteBoard(w, &st.Board)
}

func (s *Server) describe(game *Game) gameResponse {
	moves := game.Moves
	if moves == nil {
		moves = []string{}
	}
	possible := []string{}
	if st, err := rules.ParseFEN(game.FEN); err == nil {
		possible = rules.MoveStrings(rules.LegalMoves(st))
	}
	return gameResponse{
		ID:            game.ID,
		FEN:           game.FEN,
		Status:        game.Status,
		Moves:         moves,
		PossibleMoves: possible,
	}
}
