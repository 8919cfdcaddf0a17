package battle

import "github.com/vgcsim/vgc-replay-go/internal/dex"

// Read-only projections of the packed state for callers outside the
// engine: the HTTP layer and policy scripts. Views copy everything; they
// stay valid after the battle advances.

// MoveView is one move slot with its remaining PP.
type MoveView struct {
	Name string `json:"name"`
	PP   int32  `json:"pp"`
}

// MonView summarizes one team slot.
type MonView struct {
	Species string     `json:"species"`
	Level   int32      `json:"level"`
	HP      int32      `json:"hp"`
	MaxHP   int32      `json:"max_hp"`
	Status  string     `json:"status,omitempty"`
	Active  bool       `json:"active"`
	Moves   []MoveView `json:"moves"`
}

// SideView summarizes one side.
type SideView struct {
	Fainted int32     `json:"fainted"`
	Team    []MonView `json:"team"`
}

// View is a point-in-time summary of the whole battle.
type View struct {
	Turn    int32      `json:"turn"`
	Phase   string     `json:"phase"`
	Outcome Outcome    `json:"outcome"`
	Weather string     `json:"weather,omitempty"`
	Terrain string     `json:"terrain,omitempty"`
	Sides   []SideView `json:"sides"`
}

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingActions:
		return "awaiting_actions"
	case PhaseAwaitingSwitches:
		return "awaiting_switches"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// View builds the current summary.
func (b *Battle) View() View {
	s := b.state
	v := View{
		Turn:    s.turn,
		Phase:   b.phase.String(),
		Outcome: b.outcome,
		Weather: weatherNames[s.weather()],
		Terrain: terrainNames[s.terrain()],
	}
	for side := int32(0); side < s.format.Sides; side++ {
		sv := SideView{Fainted: s.fainted[side]}
		for team := int32(0); team < s.format.TeamSize; team++ {
			row := s.row(side, team)
			mv := MonView{
				Level: row[pLevel],
				HP:    s.currentHP(row),
				MaxHP: s.maxHP(row),
			}
			if sp := s.species(row); sp != nil {
				mv.Species = sp.Name
			}
			if st := dex.Status(row[pStatus]); st != dex.StatusNone {
				mv.Status = st.String()
			}
			for _, idx := range s.active[side] {
				if idx == team {
					mv.Active = true
				}
			}
			for ms := int32(0); ms < 4; ms++ {
				id := s.moveID(row, ms)
				if id == 0 {
					continue
				}
				mv.Moves = append(mv.Moves, MoveView{
					Name: s.reg.Move(id).Name,
					PP:   s.pp(row, ms),
				})
			}
			sv.Team = append(sv.Team, mv)
		}
		v.Sides = append(v.Sides, sv)
	}
	return v
}
