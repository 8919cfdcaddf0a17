package teams

import (
	"strings"
	"testing"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

const teamYAML = `
name: Rain Lax
members:
  - species: Snorlax
    level: 50
    nature: Adamant
    ability: Thick Fat
    item: Leftovers
    moves: [Body Slam, Crunch]
    ivs: [31, 31, 31, 31, 31, 31]
    evs: [252, 252, 0, 0, 4, 0]
  - species: Gyarados
    level: 50
    nature: Jolly
    ability: Intimidate
    moves: [Waterfall]
    ivs: [31, 31, 31, 31, 31, 31]
`

func TestParseTeam(t *testing.T) {
	team, err := ParseTeam([]byte(teamYAML))
	if err != nil {
		t.Fatalf("ParseTeam: %v", err)
	}
	if team.Name != "Rain Lax" {
		t.Errorf("name = %q", team.Name)
	}
	if len(team.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(team.Members))
	}
	m := team.Members[0]
	if m.Species != "Snorlax" || m.Item != "Leftovers" || m.EVs[1] != 252 {
		t.Errorf("first member decoded wrong: %+v", m)
	}
	if len(team.Members[1].Moves) != 1 || team.Members[1].Moves[0] != "Waterfall" {
		t.Errorf("second member moves: %v", team.Members[1].Moves)
	}
}

func TestParseTeamRejectsUnknownFields(t *testing.T) {
	bad := strings.Replace(teamYAML, "nature:", "natrue:", 1)
	if _, err := ParseTeam([]byte(bad)); err == nil {
		t.Fatal("misspelled field was accepted")
	}
}

func TestParseTeamStructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty team", "name: x\nmembers: []\n"},
		{"missing species", "name: x\nmembers:\n  - level: 50\n    moves: [Tackle]\n"},
		{"no moves", "name: x\nmembers:\n  - species: Snorlax\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTeam([]byte(tc.yaml))
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if errs.CodeOf(err) != errs.CodeInvalidArgument {
				t.Errorf("code = %v", errs.CodeOf(err))
			}
		})
	}
}

func TestParseMatch(t *testing.T) {
	doc := `
seed: 42
format:
  sides: 2
  team_size: 1
  active_slots: 1
teams:
  - name: A
    members:
      - species: Snorlax
        ability: Thick Fat
        moves: [Tackle]
  - name: B
    members:
      - species: Snorlax
        ability: Guts
        moves: [Tackle]
`
	m, err := ParseMatch([]byte(doc))
	if err != nil {
		t.Fatalf("ParseMatch: %v", err)
	}
	cfg := m.Config()
	if cfg.Seed != 42 || len(cfg.Teams) != 2 {
		t.Fatalf("config: seed=%d teams=%d", cfg.Seed, len(cfg.Teams))
	}

	cfg.Teams[0][0].Level = 50
	cfg.Teams[0][0].IVs = [6]int32{31, 31, 31, 31, 31, 31}
	cfg.Teams[1][0].Level = 50
	cfg.Teams[1][0].IVs = [6]int32{31, 31, 31, 31, 31, 31}
	if _, err := battle.New(cfg); err != nil {
		t.Fatalf("battle.New from match: %v", err)
	}
}

func TestParseMatchRequiresTwoTeams(t *testing.T) {
	doc := `
seed: 1
teams:
  - name: solo
    members:
      - species: Snorlax
        ability: Guts
        moves: [Tackle]
`
	if _, err := ParseMatch([]byte(doc)); err == nil {
		t.Fatal("single-team match was accepted")
	}
}

func TestLoadTeamMissingFile(t *testing.T) {
	_, err := LoadTeam("does-not-exist.yaml")
	if errs.CodeOf(err) != errs.CodeNotFound {
		t.Fatalf("code = %v, want not_found", errs.CodeOf(err))
	}
}
