package main

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

// Hub fans out progress-sink snapshots to every connected websocket
// viewer, grounded on the teacher's Hub/Client broadcast pattern but
// carrying a single payload type since this dashboard has one feed
// instead of the teacher's board/history/status/reset/settings channels.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}

	broadcast chan snapshotDTO

	lastMu sync.RWMutex
	last   snapshotDTO
}

// Client wraps one websocket connection with its own outbound queue so a
// slow reader never blocks the broadcast loop.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type snapshotDTO struct {
	Depth        int             `json:"depth"`
	MaxDepth     int             `json:"max_depth"`
	NodesVisited int             `json:"nodes_visited"`
	CacheHits    int             `json:"cache_hits"`
	Cutoffs      int             `json:"cutoffs"`
	EvalName     string          `json:"eval_name"`
	Evaluations  []evaluationDTO `json:"evaluations"`
	TT           ttStatsDTO      `json:"tt"`
}

type evaluationDTO struct {
	Score  int      `json:"score"`
	Action string   `json:"action"`
	PV     []string `json:"pv"`
}

// ttStatsDTO is the /api/status analogue of the teacher's cache-inspection
// endpoint payload, sourced from engine.TranspositionTable.Stats.
type ttStatsDTO struct {
	Count      int      `json:"count"`
	Capacity   int      `json:"capacity"`
	TopEntries []string `json:"top_entries"`
}

func toSnapshotDTO(snap engine.ProgressSnapshot) snapshotDTO {
	evals := make([]evaluationDTO, len(snap.Evaluations))
	for i, e := range snap.Evaluations {
		pv := make([]string, len(e.PV))
		for j, a := range e.PV {
			pv[j] = a.String()
		}
		evals[i] = evaluationDTO{Score: e.Score, Action: e.Action.String(), PV: pv}
	}
	top := make([]string, len(snap.TTStats.TopEntries))
	for i, entry := range snap.TTStats.TopEntries {
		top[i] = entry.BestAction.String()
	}
	return snapshotDTO{
		Depth:        snap.Depth,
		MaxDepth:     snap.MaxDepth,
		NodesVisited: snap.NodesVisited,
		CacheHits:    snap.CacheHits,
		Cutoffs:      snap.Cutoffs,
		EvalName:     snap.EvalName,
		Evaluations:  evals,
		TT: ttStatsDTO{
			Count:      snap.TTStats.Count,
			Capacity:   snap.TTStats.Capacity,
			TopEntries: top,
		},
	}
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan snapshotDTO, 16),
	}
}

// Run drains the broadcast channel and fans each snapshot out to every
// connected client until done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case snap := <-h.broadcast:
			h.lastMu.Lock()
			h.last = snap
			h.lastMu.Unlock()

			payload, _ := json.Marshal(snap)
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish adapts engine.ProgressSink to the hub's broadcast channel.
func (h *Hub) Publish(snap engine.ProgressSnapshot) {
	select {
	case h.broadcast <- toSnapshotDTO(snap):
	default:
	}
}

// LastSnapshot returns the most recently broadcast snapshot, for /api/status.
func (h *Hub) LastSnapshot() snapshotDTO {
	h.lastMu.RLock()
	defer h.lastMu.RUnlock()
	return h.last
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

const wsIdlePingInterval = 30 * time.Second

// writeLoop mirrors the teacher's writeWSWithHeartbeat: it forwards queued
// messages and pings an otherwise-idle connection so proxies don't kill it.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	defer c.conn.Close()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound traffic but must keep reading so gorilla
// processes control frames (close, pong) and the connection is torn down
// promptly on disconnect.
func (c *Client) readLoop() {
	defer c.hub.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
