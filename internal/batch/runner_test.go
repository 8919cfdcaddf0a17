package batch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

func singlesRequest(games int) Request {
	team := func(ability string) []battle.TeamMember {
		return []battle.TeamMember{{
			Species: "Snorlax",
			Level:   50,
			Nature:  "Hardy",
			Ability: ability,
			Moves:   []string{"Body Slam", "Crunch", "Protect"},
			IVs:     [6]int32{31, 31, 31, 31, 31, 31},
		}}
	}
	return Request{
		Games:     games,
		SeedStart: 1000,
		Format:    battle.Format{Sides: 2, TeamSize: 1, ActiveSlots: 1},
		Teams:     [][]battle.TeamMember{team("Thick Fat"), team("Guts")},
		MaxTurns:  80,
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	req := singlesRequest(12)

	run := func(workers int) []byte {
		res, err := NewRunner(workers).Run(context.Background(), req)
		if err != nil {
			t.Fatalf("Run(workers=%d): %v", workers, err)
		}
		data, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	one := run(1)
	four := run(4)
	if string(one) != string(four) {
		t.Fatal("batch output depends on worker count")
	}
}

func TestRunSummaryAccounting(t *testing.T) {
	req := singlesRequest(10)
	res, err := NewRunner(2).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Results) != 10 {
		t.Fatalf("results = %d, want 10", len(res.Results))
	}
	for i, r := range res.Results {
		if r.Seed != req.SeedStart+uint32(i) {
			t.Fatalf("result %d has seed %d, results are not sorted", i, r.Seed)
		}
		if r.Err != "" {
			t.Fatalf("game %d errored: %s", r.Seed, r.Err)
		}
		if r.Hash == "" {
			t.Errorf("game %d has no final hash", r.Seed)
		}
	}

	s := res.Summary
	if s.Games != 10 {
		t.Errorf("summary games = %d", s.Games)
	}
	if s.Completed+s.Unresolved+s.Errored != 10 {
		t.Errorf("summary does not account for every game: %+v", s)
	}
	if s.Wins[0]+s.Wins[1]+s.Draws != s.Completed {
		t.Errorf("wins and draws do not sum to completed: %+v", s)
	}
	if s.WinRates[0] == "" || s.MeanTurns == "" {
		t.Errorf("rates missing: %+v", s)
	}
}

func TestRunWithPolicyScript(t *testing.T) {
	req := singlesRequest(4)
	// Always picks the first legal option for side 0; side 1 stays on the
	// seeded random policy.
	req.Scripts[0] = `function choose(view) { return 0; }`

	res, err := NewRunner(2).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range res.Results {
		if r.Err != "" {
			t.Fatalf("game %d errored: %s", r.Seed, r.Err)
		}
	}

	res2, err := NewRunner(3).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary != res2.Summary {
		t.Fatal("scripted batch is not deterministic")
	}
}

func TestRunBrokenScriptFailsGames(t *testing.T) {
	req := singlesRequest(2)
	req.Scripts[0] = `function choose(view) { return 9999; }`

	res, err := NewRunner(1).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary.Errored != 2 {
		t.Fatalf("errored = %d, want 2", res.Summary.Errored)
	}
}

func TestRunValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero games", func(r *Request) { r.Games = 0 }},
		{"missing team", func(r *Request) { r.Teams = r.Teams[:1] }},
		{"unknown species", func(r *Request) { r.Teams[0][0].Species = "MissingNo" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := singlesRequest(2)
			tc.mutate(&req)
			if _, err := NewRunner(1).Run(context.Background(), req); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestRunRejectsOversizedBatch(t *testing.T) {
	req := singlesRequest(2)
	req.Games = 1000001
	_, err := NewRunner(1).Run(context.Background(), req)
	if errs.CodeOf(err) != errs.CodeInvalidArgument {
		t.Fatalf("err = %v, want invalid_argument", err)
	}
}
