// Package teams loads battle teams from YAML files. A team file holds one
// named team; match files pair two of them with a format and seed, which is
// everything needed to reproduce a battle.
package teams

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// Team is one named roster.
type Team struct {
	Name    string              `yaml:"name"`
	Members []battle.TeamMember `yaml:"members"`
}

// Match is a full battle recipe: two teams, a format, and a seed.
type Match struct {
	Seed   uint32        `yaml:"seed"`
	Format battle.Format `yaml:"format"`
	Teams  []Team        `yaml:"teams"`
}

// ParseTeam decodes one team document. Unknown fields are rejected so a
// typo in a stat name fails loudly instead of silently zeroing it.
func ParseTeam(data []byte) (*Team, error) {
	var t Team
	if err := strictUnmarshal(data, &t); err != nil {
		return nil, errs.Wrap(errs.CodeInvalidArgument, "parse team", err)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTeam reads and decodes a team file.
func LoadTeam(path string) (*Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.CodeNotFound, "read team file", err)
	}
	return ParseTeam(data)
}

// ParseMatch decodes a match document.
func ParseMatch(data []byte) (*Match, error) {
	var m Match
	if err := strictUnmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.CodeInvalidArgument, "parse match", err)
	}
	if len(m.Teams) != 2 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "match needs 2 teams, got %d", len(m.Teams))
	}
	for i := range m.Teams {
		if err := m.Teams[i].check(); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// LoadMatch reads and decodes a match file.
func LoadMatch(path string) (*Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.CodeNotFound, "read match file", err)
	}
	return ParseMatch(data)
}

// Config converts the match into a battle config. Deep legality checks
// (species, moves, EV totals) happen in battle.New against the dex.
func (m *Match) Config() battle.Config {
	cfg := battle.Config{Seed: m.Seed, Format: m.Format}
	for i := range m.Teams {
		cfg.Teams = append(cfg.Teams, m.Teams[i].Members)
	}
	return cfg
}

// check enforces the structural rules a file can get wrong before the dex
// ever sees it.
func (t *Team) check() error {
	if len(t.Members) == 0 {
		return errs.Newf(errs.CodeInvalidArgument, "team %q has no members", t.Name)
	}
	if len(t.Members) > 6 {
		return errs.Newf(errs.CodeInvalidArgument, "team %q has %d members, max 6", t.Name, len(t.Members))
	}
	for i := range t.Members {
		m := &t.Members[i]
		if m.Species == "" {
			return errs.Newf(errs.CodeInvalidArgument, "team %q member %d: missing species", t.Name, i)
		}
		if len(m.Moves) == 0 {
			return errs.Newf(errs.CodeInvalidArgument, "team %q member %d: no moves", t.Name, i)
		}
	}
	return nil
}

func strictUnmarshal(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}
