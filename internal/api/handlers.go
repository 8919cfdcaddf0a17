package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vgcsim/vgc-replay-go/internal/batch"
	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// CreateBattleRequest is the POST /battles body.
type CreateBattleRequest struct {
	Seed   uint32                `json:"seed"`
	Format battle.Format         `json:"format"`
	Teams  [][]battle.TeamMember `json:"teams"`
}

// BattleResponse is the battle summary returned by create, get, and step.
type BattleResponse struct {
	ID   string      `json:"id"`
	Seed uint32      `json:"seed"`
	View battle.View `json:"view"`
	Hash string      `json:"hash"`
}

// StepRequest is the POST /battles/{id}/step body. Actions fill active
// slots during normal turns and vacated slots during forced switches.
type StepRequest struct {
	Actions []battle.Action `json:"actions"`
}

// POST /api/v1/battles
func (s *Server) handleCreateBattle(w http.ResponseWriter, r *http.Request) {
	var req CreateBattleRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errs.Wrap(errs.CodeInvalidArgument, "invalid JSON", err))
		return
	}

	b, err := battle.New(battle.Config{
		Seed: req.Seed, Format: req.Format, Teams: req.Teams, Registry: s.reg,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	id, err := s.db.CreateBattle(r.Context(), req.Seed, b.Format(), req.Teams)
	if err != nil {
		s.writeError(w, err)
		return
	}

	lb := &liveBattle{id: id, b: b, subs: map[chan battle.Record]struct{}{}}
	b.Log().SetSink(lb.broadcast)

	// Lead switch-ins already produced records.
	recs := b.Log().Records()
	if err := s.db.AppendRecords(r.Context(), id, 0, recs); err != nil {
		s.writeError(w, err)
		return
	}
	lb.recSeq = int64(len(recs))

	s.mu.Lock()
	s.battles[id] = lb
	s.mu.Unlock()

	s.writeJSON(w, http.StatusCreated, BattleResponse{
		ID: id, Seed: b.Seed(), View: b.View(), Hash: b.Hash(),
	})
}

// GET /api/v1/battles
func (s *Server) handleListBattles(w http.ResponseWriter, r *http.Request) {
	limit := qInt(r, "limit", 100)
	offset := qInt(r, "offset", 0)
	rows, err := s.db.ListBattles(r.Context(), limit, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"battles": rows,
		"count":   len(rows),
	})
}

// GET /api/v1/battles/{id}
func (s *Server) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if lb, err := s.live(id); err == nil {
		lb.mu.Lock()
		resp := BattleResponse{ID: id, Seed: lb.b.Seed(), View: lb.b.View(), Hash: lb.b.Hash()}
		lb.mu.Unlock()
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	// Not live anymore; rebuild from the stored recipe.
	b, err := s.db.Replay(r.Context(), s.reg, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, BattleResponse{
		ID: id, Seed: b.Seed(), View: b.View(), Hash: b.Hash(),
	})
}

// DELETE /api/v1/battles/{id}
func (s *Server) handleDeleteBattle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.db.GetBattle(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.db.DeleteBattle(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	if lb, ok := s.battles[id]; ok {
		delete(s.battles, id)
		lb.closeSubs()
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/battles/{id}/step
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lb, err := s.live(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req StepRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errs.Wrap(errs.CodeInvalidArgument, "invalid JSON", err))
		return
	}

	lb.mu.Lock()
	defer lb.mu.Unlock()

	phaseBefore := lb.b.Phase()
	if phaseBefore == battle.PhaseAwaitingSwitches {
		_, err = lb.b.SubmitSwitches(req.Actions)
	} else {
		_, err = lb.b.Step(req.Actions)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Persist the recipe and the new records; the hash pins the replay.
	recs := lb.b.Log().Records()
	if err := s.db.AppendRecords(r.Context(), id, lb.recSeq, recs[lb.recSeq:]); err != nil {
		s.writeError(w, err)
		return
	}
	lb.recSeq = int64(len(recs))

	if err := s.db.AppendTurn(r.Context(), id, lb.seq, phaseBefore.String(), req.Actions, lb.b.Hash()); err != nil {
		s.writeError(w, err)
		return
	}
	lb.seq++

	o := lb.b.Outcome()
	if err := s.db.SetOutcome(r.Context(), id, lb.b.Phase().String(), o.Winner, o.Draw, lb.b.Turn()); err != nil {
		s.writeError(w, err)
		return
	}
	if lb.b.Phase() == battle.PhaseEnded {
		lb.closeSubsLocked()
	}

	s.writeJSON(w, http.StatusOK, BattleResponse{
		ID: id, Seed: lb.b.Seed(), View: lb.b.View(), Hash: lb.b.Hash(),
	})
}

// GET /api/v1/battles/{id}/legal-actions?side=
func (s *Server) handleLegalActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lb, err := s.live(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	side, err := strconv.ParseInt(r.URL.Query().Get("side"), 10, 32)
	if err != nil {
		s.writeError(w, errs.New(errs.CodeInvalidArgument, "side query parameter is required"))
		return
	}

	lb.mu.Lock()
	actions, aerr := lb.b.LegalActions(int32(side))
	lb.mu.Unlock()
	if aerr != nil {
		s.writeError(w, aerr)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"side":    side,
		"actions": actions,
	})
}

// GET /api/v1/battles/{id}/log — JSON lines, live battles straight from
// memory, finished ones from the store.
func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if lb, err := s.live(id); err == nil {
		lb.mu.Lock()
		data, merr := lb.b.Log().Marshal()
		lb.mu.Unlock()
		if merr != nil {
			s.writeError(w, errs.Wrap(errs.CodeInternal, "marshal log", merr))
			return
		}
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write(data)
		return
	}

	rows, err := s.db.ListRecords(r.Context(), id, -1, 10000)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(rows) == 0 {
		if _, err := s.db.GetBattle(r.Context(), id); err != nil {
			s.writeError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	enc := json.NewEncoder(w)
	for i := range rows {
		_ = enc.Encode(&rows[i].Record)
	}
}

// POST /api/v1/batch
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batch.Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errs.Wrap(errs.CodeInvalidArgument, "invalid JSON", err))
		return
	}

	result, err := s.runner.Run(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func qInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
