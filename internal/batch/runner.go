// Package batch plays many seeded battles in parallel and aggregates the
// results. Each game is fully self-contained, so the summary for a fixed
// request is identical regardless of worker count or scheduling.
package batch

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
	"github.com/vgcsim/vgc-replay-go/internal/rng"
	"github.com/vgcsim/vgc-replay-go/internal/scripting"
)

// Request describes one batch run. Game i plays with seed SeedStart+i.
type Request struct {
	Games     int                   `json:"games"`
	SeedStart uint32                `json:"seed_start"`
	Format    battle.Format         `json:"format"`
	Teams     [][]battle.TeamMember `json:"teams"`

	// Scripts holds one policy script source per side. An empty string
	// selects the seeded random policy.
	Scripts [2]string `json:"scripts,omitempty"`

	// MaxTurns cuts off games that never resolve. Default 200.
	MaxTurns int `json:"max_turns,omitempty"`

	TimeoutMs int `json:"timeout_ms,omitempty"`
}

// GameResult is the outcome of one battle in the batch.
type GameResult struct {
	Seed   uint32 `json:"seed"`
	Done   bool   `json:"done"`
	Winner int32  `json:"winner"`
	Draw   bool   `json:"draw"`
	Turns  int32  `json:"turns"`
	Hash   string `json:"hash"`
	Err    string `json:"error,omitempty"`
}

// Summary aggregates a batch. Rates are exact decimals rendered with four
// fractional digits.
type Summary struct {
	Games      int      `json:"games"`
	Completed  int      `json:"completed"`
	Draws      int      `json:"draws"`
	Unresolved int      `json:"unresolved"`
	Errored    int      `json:"errored"`
	Wins       [2]int   `json:"wins"`
	WinRates   [2]string `json:"win_rates"`
	DrawRate   string   `json:"draw_rate"`
	MeanTurns  string   `json:"mean_turns"`
	TimedOut   bool     `json:"timed_out,omitempty"`
}

// Result is the full batch output, games sorted by seed.
type Result struct {
	Results []GameResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// Runner is a reusable batch executor.
type Runner struct {
	workers       int
	scriptTimeout time.Duration
}

// NewRunner creates a runner. workers <= 0 selects one per CPU.
func NewRunner(workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{workers: workers}
}

// SetScriptTimeout overrides the per-call policy script timeout. Zero
// keeps the scripting package default.
func (r *Runner) SetScriptTimeout(d time.Duration) { r.scriptTimeout = d }

// Run plays the batch. The request is validated by playing game zero's
// config through battle.New; per-game errors after that are recorded in
// the results rather than aborting the batch.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Games < 1 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "games %d out of range", req.Games)
	}
	if req.Games > 100000 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "games %d exceeds the 100000 cap", req.Games)
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 200
	}
	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	// Fail fast on broken teams before spinning up workers.
	if _, err := battle.New(battle.Config{
		Seed: req.SeedStart, Format: req.Format, Teams: req.Teams,
	}); err != nil {
		return nil, err
	}

	jobs := make(chan uint32, r.workers*2)
	results := make(chan GameResult, r.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- r.playGame(seed, &req, maxTurns)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < req.Games; i++ {
			select {
			case jobs <- req.SeedStart + uint32(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []GameResult
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].Seed < collected[j].Seed })

	out := &Result{Results: collected}
	out.Summary = summarize(collected, req.Games, ctx.Err() != nil)
	return out, nil
}

// playGame runs one battle to completion, the turn cap, or a policy error.
func (r *Runner) playGame(seed uint32, req *Request, maxTurns int) GameResult {
	res := GameResult{Seed: seed}

	b, err := battle.New(battle.Config{Seed: seed, Format: req.Format, Teams: req.Teams})
	if err != nil {
		res.Err = err.Error()
		return res
	}

	policies, err := r.buildPolicies(seed, req)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	for int(b.Turn()) < maxTurns {
		if b.Phase() == battle.PhaseEnded {
			break
		}
		actions, err := chooseAll(b, policies)
		if err != nil {
			res.Err = err.Error()
			break
		}
		if b.Phase() == battle.PhaseAwaitingSwitches {
			_, err = b.SubmitSwitches(actions)
		} else {
			_, err = b.Step(actions)
		}
		if err != nil {
			res.Err = err.Error()
			break
		}
	}

	o := b.Outcome()
	res.Done = o.Done
	res.Winner = o.Winner
	res.Draw = o.Draw
	res.Turns = b.Turn()
	res.Hash = b.Hash()
	return res
}

// Policy picks one index into a slot's legal action list.
type Policy interface {
	Choose(view scripting.SlotView) (int, error)
}

// randomPolicy draws uniformly from the legal list with its own generator,
// independent of the battle's stream.
type randomPolicy struct {
	gen *rng.Generator
}

func (p *randomPolicy) Choose(view scripting.SlotView) (int, error) {
	return p.gen.Next(len(view.Legal)), nil
}

// buildPolicies creates one policy per side. Script agents are per game so
// any state a script keeps cannot leak across seeds.
func (r *Runner) buildPolicies(seed uint32, req *Request) ([2]Policy, error) {
	var out [2]Policy
	for side := 0; side < 2; side++ {
		if src := req.Scripts[side]; src != "" {
			agent, err := scripting.NewWithTimeout(src, r.scriptTimeout)
			if err != nil {
				return out, err
			}
			out[side] = agent
			continue
		}
		// Distinct streams per side; the constants just decorrelate them
		// from the battle seed.
		out[side] = &randomPolicy{gen: rng.New(seed ^ (0x5F356495 + uint32(side)*0x269EC3))}
	}
	return out, nil
}

// chooseAll collects one action per slot that owes a decision.
func chooseAll(b *battle.Battle, policies [2]Policy) ([]battle.Action, error) {
	view := b.View()
	phase := b.Phase().String()

	var out []battle.Action
	for side := int32(0); side < 2; side++ {
		legal, err := b.LegalActions(side)
		if err != nil {
			return nil, err
		}
		bySlot := map[int32][]battle.Action{}
		var order []int32
		for _, a := range legal {
			if _, seen := bySlot[a.Slot]; !seen {
				order = append(order, a.Slot)
			}
			bySlot[a.Slot] = append(bySlot[a.Slot], a)
		}
		for _, slot := range order {
			options := bySlot[slot]
			idx, err := policies[side].Choose(scripting.SlotView{
				Turn:   b.Turn(),
				Phase:  phase,
				Side:   side,
				Slot:   slot,
				Legal:  options,
				Battle: view,
			})
			if err != nil {
				return nil, err
			}
			out = append(out, options[idx])
		}
	}
	return out, nil
}

// summarize folds the per-game results into exact rates.
func summarize(results []GameResult, games int, timedOut bool) Summary {
	s := Summary{Games: games, TimedOut: timedOut}
	var turnSum int64
	for _, r := range results {
		switch {
		case r.Err != "":
			s.Errored++
		case r.Done && r.Draw:
			s.Completed++
			s.Draws++
		case r.Done:
			s.Completed++
			s.Wins[r.Winner]++
		default:
			s.Unresolved++
		}
		turnSum += int64(r.Turns)
	}

	played := decimal.NewFromInt(int64(len(results)))
	if played.IsZero() {
		s.WinRates = [2]string{"0.0000", "0.0000"}
		s.DrawRate = "0.0000"
		s.MeanTurns = "0.0000"
		return s
	}
	for i := 0; i < 2; i++ {
		s.WinRates[i] = decimal.NewFromInt(int64(s.Wins[i])).Div(played).StringFixed(4)
	}
	s.DrawRate = decimal.NewFromInt(int64(s.Draws)).Div(played).StringFixed(4)
	s.MeanTurns = decimal.NewFromInt(turnSum).Div(played).StringFixed(4)
	return s
}
