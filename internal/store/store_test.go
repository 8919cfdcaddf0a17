package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTeams() [][]battle.TeamMember {
	team := func(ability string) []battle.TeamMember {
		return []battle.TeamMember{{
			Species: "Snorlax",
			Level:   50,
			Nature:  "Hardy",
			Ability: ability,
			Moves:   []string{"Body Slam", "Crunch"},
			IVs:     [6]int32{31, 31, 31, 31, 31, 31},
		}}
	}
	return [][]battle.TeamMember{team("Thick Fat"), team("Guts")}
}

var testFormat = battle.Format{Sides: 2, TeamSize: 1, ActiveSlots: 1}

func TestBattleRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateBattle(ctx, 42, testFormat, testTeams())
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	if id == "" {
		t.Fatal("empty battle id")
	}

	row, err := s.GetBattle(ctx, id)
	if err != nil {
		t.Fatalf("GetBattle: %v", err)
	}
	if row.Seed != 42 || row.Format != testFormat {
		t.Errorf("row = %+v", row)
	}
	if row.Phase != "awaiting_actions" {
		t.Errorf("phase = %q", row.Phase)
	}

	teams, err := s.GetTeams(ctx, id)
	if err != nil {
		t.Fatalf("GetTeams: %v", err)
	}
	if len(teams) != 2 || teams[0][0].Species != "Snorlax" {
		t.Errorf("teams = %+v", teams)
	}

	list, err := s.ListBattles(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListBattles: %v", err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Errorf("list = %+v", list)
	}
}

func TestGetBattleNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetBattle(context.Background(), "nope")
	if errs.CodeOf(err) != errs.CodeNotFound {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestTurnsAndRecords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateBattle(ctx, 7, testFormat, testTeams())
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}

	actions := []battle.Action{
		{Side: 0, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 1}},
		{Side: 1, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 0}},
	}
	if err := s.AppendTurn(ctx, id, 0, "awaiting_actions", actions, "abc123"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if err := s.AppendTurn(ctx, id, 0, "awaiting_actions", actions, "abc123"); errs.CodeOf(err) != errs.CodeConflict {
		t.Fatalf("duplicate turn err = %v, want conflict", err)
	}

	turns, err := s.ListTurns(ctx, id)
	if err != nil {
		t.Fatalf("ListTurns: %v", err)
	}
	if len(turns) != 1 || len(turns[0].Actions) != 2 || turns[0].Hash != "abc123" {
		t.Errorf("turns = %+v", turns)
	}
	if turns[0].Actions[0].Target.Side != 1 {
		t.Errorf("action lost its target: %+v", turns[0].Actions[0])
	}

	recs := []battle.Record{
		{Kind: battle.RecTurnStart, Turn: 1},
		{Kind: battle.RecMove, Turn: 1, Move: "Body Slam", Side: 0},
	}
	if err := s.AppendRecords(ctx, id, 0, recs); err != nil {
		t.Fatalf("AppendRecords: %v", err)
	}

	rows, err := s.ListRecords(ctx, id, -1, 100)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("records = %d, want 2", len(rows))
	}
	if rows[1].Record.Move != "Body Slam" {
		t.Errorf("record payload lost: %+v", rows[1].Record)
	}

	tail, err := s.ListRecords(ctx, id, 0, 100)
	if err != nil {
		t.Fatalf("ListRecords tail: %v", err)
	}
	if len(tail) != 1 || tail[0].Seq != 1 {
		t.Errorf("tail = %+v", tail)
	}
}

func TestReplayReproducesLiveBattle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	teams := testTeams()
	b, err := battle.New(battle.Config{Seed: 42, Format: testFormat, Teams: teams})
	if err != nil {
		t.Fatalf("battle.New: %v", err)
	}
	id, err := s.CreateBattle(ctx, 42, testFormat, teams)
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}

	actions := []battle.Action{
		{Side: 0, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 1}},
		{Side: 1, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 0}},
	}
	for seq := int64(0); seq < 3; seq++ {
		phase := b.Phase().String()
		if _, err := b.Step(actions); err != nil {
			t.Fatalf("Step %d: %v", seq, err)
		}
		if err := s.AppendTurn(ctx, id, seq, phase, actions, b.Hash()); err != nil {
			t.Fatalf("AppendTurn %d: %v", seq, err)
		}
	}

	replayed, err := s.Replay(ctx, nil, id)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if replayed.Hash() != b.Hash() {
		t.Fatalf("replay hash %s != live hash %s", replayed.Hash(), b.Hash())
	}
	if replayed.Turn() != b.Turn() {
		t.Errorf("replay turn %d != live turn %d", replayed.Turn(), b.Turn())
	}
}

func TestReplayDetectsTamperedHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	teams := testTeams()
	b, err := battle.New(battle.Config{Seed: 9, Format: testFormat, Teams: teams})
	if err != nil {
		t.Fatalf("battle.New: %v", err)
	}
	id, err := s.CreateBattle(ctx, 9, testFormat, teams)
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	actions := []battle.Action{
		{Side: 0, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 1}},
		{Side: 1, Slot: 0, Type: battle.ActionMove, MoveSlot: 0, Target: battle.Ref{Side: 0}},
	}
	if _, err := b.Step(actions); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := s.AppendTurn(ctx, id, 0, "awaiting_actions", actions, "not-the-real-hash"); err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}

	if _, err := s.Replay(ctx, nil, id); err == nil {
		t.Fatal("tampered hash went unnoticed")
	}
}

func TestSetOutcomeAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateBattle(ctx, 1, testFormat, testTeams())
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	if err := s.SetOutcome(ctx, id, "ended", 1, false, 12); err != nil {
		t.Fatalf("SetOutcome: %v", err)
	}
	row, err := s.GetBattle(ctx, id)
	if err != nil {
		t.Fatalf("GetBattle: %v", err)
	}
	if row.Phase != "ended" || row.Winner != 1 || row.Turns != 12 {
		t.Errorf("row = %+v", row)
	}

	if err := s.SetOutcome(ctx, "missing", "ended", 0, false, 0); errs.CodeOf(err) != errs.CodeNotFound {
		t.Fatalf("SetOutcome missing err = %v", err)
	}

	if err := s.AppendRecords(ctx, id, 0, []battle.Record{{Kind: battle.RecWin, Turn: 12, Winner: 1}}); err != nil {
		t.Fatalf("AppendRecords: %v", err)
	}
	if err := s.DeleteBattle(ctx, id); err != nil {
		t.Fatalf("DeleteBattle: %v", err)
	}
	if _, err := s.GetBattle(ctx, id); errs.CodeOf(err) != errs.CodeNotFound {
		t.Fatalf("battle still present after delete: %v", err)
	}
	if rows, _ := s.ListRecords(ctx, id, -1, 10); len(rows) != 0 {
		t.Errorf("records survived delete: %+v", rows)
	}
}
