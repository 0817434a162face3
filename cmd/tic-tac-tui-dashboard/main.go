// Command tic-tac-tui-dashboard runs a self-play loop against itself and
// broadcasts the engine's own iterative-deepening progress snapshots to
// any number of connected browsers, over the teacher's chi + gorilla
// websocket stack. It never accepts a move from a remote client — it is
// a read-only window onto the search, not a network play surface.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	engineDepth := flag.Int("engine-depth", 6, "maxDepth for iterative deepening")
	multiPV := flag.Int("multi-pv", 3, "K for multi-PV reporting")
	evalName := flag.String("eval", "default", "evaluation plugin for both sides")
	flag.Parse()

	hub := NewHub()
	done := make(chan struct{})
	go hub.Run(done)

	registry := engine.NewRegistry()
	evalFn := registry.Lookup(*evalName)

	go runObservedSelfPlay(hub, evalFn, *evalName, *engineDepth, *multiPV, done)

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	router.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(hub.LastSnapshot())
	})
	router.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})

	server := &http.Server{Addr: *addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("dashboard listening on %s", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	close(done)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func serveWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 16)}
	hub.register(client)
	go client.writeLoop()
	client.readLoop()
}

// runObservedSelfPlay plays the engine against itself indefinitely,
// publishing every iterative-deepening snapshot to hub, restarting a new
// game whenever one reaches a terminal state.
func runObservedSelfPlay(hub *Hub, evalFn engine.EvalFunc, evalName string, engineDepth, multiPV int, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		s := engine.NewInitialState()
		history := engine.NewHistory()
		history.Record(engine.ComputeKey(s))

		for {
			select {
			case <-done:
				return
			default:
			}

			if engine.IsTerminal(s) {
				break
			}

			side := s.ToMove
			result := engine.IterativeDeepen(s, side, history.Set(), engineDepth, multiPV, evalFn, evalName, hub)
			if len(result.Evaluations) == 0 {
				break
			}
			next, err := engine.Apply(s, result.Evaluations[0].Action, side)
			if err != nil {
				log.Printf("self-play produced an illegal action: %v", err)
				break
			}
			s = next
			history.Record(engine.ComputeKey(s))
		}
		log.Printf("self-play game ended after %d recorded positions", history.Len())
	}
}
