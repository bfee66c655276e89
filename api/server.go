// Package api serves read-only views of a running game over HTTP: a
// JSON status endpoint and a websocket event stream. It is a pure
// consumer of the game's broadcast stream and never touches game state
// directly.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/snakezio/snakez/config"
	"github.com/snakezio/snakez/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server exposes one game to spectators.
type Server struct {
	hs   *http.Server
	game *game.Game

	mu    sync.RWMutex
	last  *game.Update
	final *game.GameOver
}

// New creates a server for the given game, listening on addr.
func New(addr string, g *game.Game) *Server {
	s := &Server{game: g}

	router := httprouter.New()
	router.GET("/game", s.status)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(router),
	}
	return s
}

// WaitForExit consumes the game's event stream and serves until the
// listener fails.
func (s *Server) WaitForExit() {
	go s.consume()

	log.Infof("snakez api listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil {
		log.Errorf("Error while listening: %v", err)
	}
}

// consume tracks the latest update so /game answers without waiting
// for the next step.
func (s *Server) consume() {
	events, cancel := s.game.Subscribe()
	defer cancel()
	for ev := range events {
		s.mu.Lock()
		switch ev := ev.(type) {
		case game.Update:
			up := ev
			s.last = &up
		case game.GameOver:
			over := ev
			s.final = &over
		}
		s.mu.Unlock()
	}
}

// statusResponse is the wire shape of the /game endpoint.
type statusResponse struct {
	ID        string               `json:"id"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Turn      int64                `json:"turn"`
	Over      bool                 `json:"over"`
	Summaries []game.PlayerSummary `json:"summaries"`
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.mu.RLock()
	resp := statusResponse{
		ID:     s.game.ID,
		Width:  s.game.FieldSize().X,
		Height: s.game.FieldSize().Y,
	}
	if s.last != nil {
		resp.Turn = s.last.Turn
		resp.Summaries = s.last.Summaries
	}
	if s.final != nil {
		resp.Over = true
		resp.Summaries = s.final.Summaries
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Error("unable to write status response")
	}
}

// socketEvent is the wire shape of one frame on the websocket stream.
type socketEvent struct {
	Type      string               `json:"type"`
	Turn      int64                `json:"turn,omitempty"`
	Grid      json.RawMessage      `json:"grid,omitempty"`
	Summaries []game.PlayerSummary `json:"summaries"`
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := s.game.Subscribe()
	defer cancel()

	// Updates arriving faster than the frame limit are dropped rather
	// than queued; GameOver always goes through.
	limiter := rate.NewLimiter(config.SocketFrameRate, config.SocketFrameBurst)

	for ev := range events {
		var frame socketEvent
		switch ev := ev.(type) {
		case game.Update:
			if !limiter.Allow() {
				continue
			}
			grid, err := json.Marshal(ev.Grid)
			if err != nil {
				log.WithError(err).Error("unable to encode grid")
				return
			}
			frame = socketEvent{
				Type:      "update",
				Turn:      ev.Turn,
				Grid:      grid,
				Summaries: ev.Summaries,
			}
		case game.GameOver:
			frame = socketEvent{
				Type:      "game-over",
				Summaries: ev.Summaries,
			}
		}
		if err := conn.WriteJSON(frame); err != nil {
			// Client went away; stop relaying.
			return
		}
	}
}
