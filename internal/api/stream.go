package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
)

// The stream endpoint pushes log records over a websocket as they are
// emitted. A subscriber first receives every record so far, then live
// updates; the connection closes when the battle ends.

const subBuffer = 512

// broadcast is the log sink. It runs inside Step while lb.mu is held, so
// it must not block; a subscriber that cannot keep up is dropped.
func (lb *liveBattle) broadcast(rec battle.Record) {
	for ch := range lb.subs {
		select {
		case ch <- rec:
		default:
			delete(lb.subs, ch)
			close(ch)
		}
	}
}

// subscribe registers a record channel and returns the backlog it missed.
func (lb *liveBattle) subscribe() ([]battle.Record, chan battle.Record, bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	backlog := append([]battle.Record(nil), lb.b.Log().Records()...)
	if lb.b.Phase() == battle.PhaseEnded {
		return backlog, nil, false
	}
	ch := make(chan battle.Record, subBuffer)
	lb.subs[ch] = struct{}{}
	return backlog, ch, true
}

func (lb *liveBattle) unsubscribe(ch chan battle.Record) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if _, ok := lb.subs[ch]; ok {
		delete(lb.subs, ch)
		close(ch)
	}
}

// closeSubsLocked ends every subscription. Callers hold lb.mu.
func (lb *liveBattle) closeSubsLocked() {
	for ch := range lb.subs {
		delete(lb.subs, ch)
		close(ch)
	}
}

func (lb *liveBattle) closeSubs() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.closeSubsLocked()
}

// GET /api/v1/battles/{id}/stream
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lb, err := s.live(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response.
		s.logger.Printf("stream upgrade failed for %s: %v", id, err)
		return
	}
	defer conn.Close()

	backlog, ch, live := lb.subscribe()
	if ch != nil {
		defer lb.unsubscribe(ch)
	}

	for i := range backlog {
		if err := conn.WriteJSON(&backlog[i]); err != nil {
			return
		}
	}
	if !live {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "battle ended"))
		return
	}

	// Read pump: we expect no client messages, but reading is how we
	// notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case rec, ok := <-ch:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "battle ended"))
				return
			}
			if err := conn.WriteJSON(&rec); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
