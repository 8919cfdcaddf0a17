package battle

import (
	"fmt"

	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// Phase is the battle state machine position.
type Phase int32

const (
	// PhaseAwaitingActions accepts one action per occupied slot.
	PhaseAwaitingActions Phase = iota
	// PhaseAwaitingSwitches accepts replacements for vacated slots.
	PhaseAwaitingSwitches
	// PhaseEnded accepts nothing.
	PhaseEnded
)

// Outcome reports whether and how the battle finished.
type Outcome struct {
	Done   bool  `json:"done"`
	Winner int32 `json:"winner"`
	Draw   bool  `json:"draw"`
}

// TeamMember is one Pokémon of a submitted team.
type TeamMember struct {
	Species  string   `json:"species" yaml:"species"`
	Level    int32    `json:"level" yaml:"level"`
	Nature   string   `json:"nature" yaml:"nature"`
	Ability  string   `json:"ability" yaml:"ability"`
	Item     string   `json:"item,omitempty" yaml:"item,omitempty"`
	TeraType string   `json:"tera_type,omitempty" yaml:"tera_type,omitempty"`
	Moves    []string `json:"moves" yaml:"moves"`
	IVs      [6]int32 `json:"ivs" yaml:"ivs,flow"`
	EVs      [6]int32 `json:"evs" yaml:"evs,flow"`
}

// Config describes one battle to create.
type Config struct {
	Seed     uint32
	Format   Format
	Teams    [][]TeamMember
	Registry *dex.Registry
}

// Battle is one deterministic battle. It is not safe for concurrent use.
type Battle struct {
	state   *State
	phase   Phase
	outcome Outcome
}

// SinglesFormat and DoublesFormat are the two supported shapes.
var (
	SinglesFormat = Format{Sides: 2, TeamSize: 6, ActiveSlots: 1}
	DoublesFormat = Format{Sides: 2, TeamSize: 4, ActiveSlots: 2}
)

// New validates the config, packs the teams, and sends in the leads.
func New(cfg Config) (*Battle, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = dex.Gen9()
	}
	f := cfg.Format
	if f.Sides == 0 {
		f = SinglesFormat
	}
	if f.Sides != 2 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "unsupported side count %d", f.Sides)
	}
	if f.ActiveSlots < 1 || f.ActiveSlots > 2 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "unsupported active slot count %d", f.ActiveSlots)
	}
	if f.TeamSize < f.ActiveSlots || f.TeamSize > 6 {
		return nil, errs.Newf(errs.CodeInvalidArgument, "team size %d out of range", f.TeamSize)
	}
	if int32(len(cfg.Teams)) != f.Sides {
		return nil, errs.Newf(errs.CodeInvalidArgument, "want %d teams, got %d", f.Sides, len(cfg.Teams))
	}

	s := newState(reg, f, cfg.Seed)
	b := &Battle{state: s}

	for side := int32(0); side < f.Sides; side++ {
		team := cfg.Teams[side]
		if int32(len(team)) != f.TeamSize {
			return nil, errs.Newf(errs.CodeInvalidArgument,
				"side %d: want %d team members, got %d", side, f.TeamSize, len(team))
		}
		for i := int32(0); i < f.TeamSize; i++ {
			if err := packMember(reg, s.row(side, i), &team[i]); err != nil {
				return nil, errs.Wrap(errs.CodeOf(err),
					fmt.Sprintf("side %d team member %d", side, i), err)
			}
		}
	}

	// Leads take the field, then switch-in effects fire fastest first.
	var leads []Ref
	for side := int32(0); side < f.Sides; side++ {
		for slot := int32(0); slot < f.ActiveSlots; slot++ {
			ref := Ref{Side: side, Slot: slot}
			s.active[side][slot] = slot
			row := s.activeRow(ref)
			name := ""
			if sp := s.species(row); sp != nil {
				name = sp.Name
			}
			s.log.add(Record{Kind: RecSwitch, Turn: 0,
				Side: side, Slot: slot, Species: name,
				HP: s.currentHP(row), MaxHP: s.maxHP(row)})
			s.disp.registerSlot(s, ref)
			leads = append(leads, ref)
		}
	}
	for i := 0; i < len(leads); i++ {
		best := i
		for j := i + 1; j < len(leads); j++ {
			if s.effectiveSpeed(leads[j]) > s.effectiveSpeed(leads[best]) {
				best = j
			}
		}
		leads[i], leads[best] = leads[best], leads[i]
	}
	for _, ref := range leads {
		s.disp.switchIn(s, ref)
	}

	return b, nil
}

// packMember validates one team member and fills its packed row.
func packMember(reg *dex.Registry, row []int32, m *TeamMember) error {
	spID, ok := reg.SpeciesID(m.Species)
	if !ok {
		return errs.Newf(errs.CodeNotFound, "unknown species %q", m.Species)
	}
	sp := reg.Species(spID)

	level := m.Level
	if level == 0 {
		level = 100
	}
	if level < 1 || level > 100 {
		return errs.Newf(errs.CodeInvalidArgument, "level %d out of range", m.Level)
	}

	nature := dex.Hardy
	if m.Nature != "" {
		n, ok := dex.NatureByName(m.Nature)
		if !ok {
			return errs.Newf(errs.CodeNotFound, "unknown nature %q", m.Nature)
		}
		nature = n
	}

	abilityID, ok := reg.AbilityID(m.Ability)
	if !ok {
		return errs.Newf(errs.CodeNotFound, "unknown ability %q", m.Ability)
	}
	abilityKey := reg.Ability(abilityID).Key
	legal := false
	for _, k := range sp.Abilities {
		if k == abilityKey {
			legal = true
		}
	}
	if !legal {
		return errs.Newf(errs.CodeInvalidArgument, "%s cannot have ability %q", sp.Name, m.Ability)
	}

	itemID := int32(0)
	if m.Item != "" {
		id, ok := reg.ItemID(m.Item)
		if !ok {
			return errs.Newf(errs.CodeNotFound, "unknown item %q", m.Item)
		}
		itemID = id
	}

	tera := int32(dex.TypeNone)
	if m.TeraType != "" {
		t, ok := dex.TypeByName(m.TeraType)
		if !ok {
			return errs.Newf(errs.CodeNotFound, "unknown tera type %q", m.TeraType)
		}
		tera = int32(t)
	}

	if len(m.Moves) < 1 || len(m.Moves) > 4 {
		return errs.Newf(errs.CodeInvalidArgument, "%d moves out of range", len(m.Moves))
	}

	var evTotal int32
	for i := 0; i < 6; i++ {
		if m.IVs[i] < 0 || m.IVs[i] > 31 {
			return errs.Newf(errs.CodeInvalidArgument, "IV %d out of range", m.IVs[i])
		}
		if m.EVs[i] < 0 || m.EVs[i] > 252 {
			return errs.Newf(errs.CodeInvalidArgument, "EV %d out of range", m.EVs[i])
		}
		evTotal += m.EVs[i]
	}
	if evTotal > 510 {
		return errs.Newf(errs.CodeInvalidArgument, "EV total %d exceeds 510", evTotal)
	}

	row[pSpecies] = spID
	row[pLevel] = level
	row[pNature] = int32(nature)
	row[pAbility] = abilityID
	row[pItem] = itemID
	row[pType1] = int32(sp.Type1)
	row[pType2] = int32(sp.Type2)
	row[pTeraType] = tera

	for st := dex.HP; st <= dex.Spe; st++ {
		row[pIVHP+int32(st)] = m.IVs[st]
		row[pEVHP+int32(st)] = m.EVs[st]
		row[pStatHP+int32(st)] = computeStat(st, sp.BaseStats[st], m.IVs[st], m.EVs[st], level, nature)
	}
	row[pCurrentHP] = row[pStatHP]
	row[pStatus] = int32(dex.StatusNone)

	for i, name := range m.Moves {
		id, ok := reg.MoveID(name)
		if !ok {
			return errs.Newf(errs.CodeNotFound, "unknown move %q", name)
		}
		row[pMove1+int32(i)] = id
		row[pPP1+int32(i)] = reg.Move(id).PP
	}
	return nil
}

// Phase returns the state machine position.
func (b *Battle) Phase() Phase { return b.phase }

// Outcome returns the result so far.
func (b *Battle) Outcome() Outcome { return b.outcome }

// Turn returns the completed turn count.
func (b *Battle) Turn() int32 { return b.state.Turn() }

// Log returns the battle log.
func (b *Battle) Log() *Log { return b.state.Log() }

// Format returns the battle format.
func (b *Battle) Format() Format { return b.state.Format() }

// Seed returns the seed the battle was created with.
func (b *Battle) Seed() uint32 { return b.state.rng.Seed() }

// Step runs one turn from a full action set: exactly one action per
// occupied active slot.
func (b *Battle) Step(actions []Action) (Outcome, error) {
	if b.phase != PhaseAwaitingActions {
		return b.outcome, errs.New(errs.CodeFailedPrecondition, "battle is not awaiting actions")
	}
	s := b.state

	seen := map[Ref]bool{}
	for i := range actions {
		if err := b.validateAction(&actions[i]); err != nil {
			return b.outcome, err
		}
		ref := Ref{Side: actions[i].Side, Slot: actions[i].Slot}
		if seen[ref] {
			return b.outcome, errs.Newf(errs.CodeInvalidArgument, "duplicate action for %v", ref)
		}
		seen[ref] = true
	}
	for side := int32(0); side < s.format.Sides; side++ {
		for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
			ref := Ref{Side: side, Slot: slot}
			if s.occupied(ref) && !seen[ref] {
				return b.outcome, errs.Newf(errs.CodeInvalidArgument, "missing action for %v", ref)
			}
		}
	}

	s.runTurn(actions)
	b.settle()
	return b.outcome, nil
}

// SubmitSwitches fills vacated slots after faints. Hazards may faint the
// replacements, keeping the battle in the switching phase.
func (b *Battle) SubmitSwitches(switches []Action) (Outcome, error) {
	if b.phase != PhaseAwaitingSwitches {
		return b.outcome, errs.New(errs.CodeFailedPrecondition, "battle is not awaiting switches")
	}
	s := b.state

	needed := map[Ref]bool{}
	for side := int32(0); side < s.format.Sides; side++ {
		for _, slot := range s.emptySlots(side) {
			needed[Ref{Side: side, Slot: slot}] = true
		}
	}
	for i := range switches {
		a := &switches[i]
		ref := Ref{Side: a.Side, Slot: a.Slot}
		if a.Type != ActionSwitch || !needed[ref] {
			return b.outcome, errs.Newf(errs.CodeInvalidArgument, "unexpected switch for %v", ref)
		}
		if err := b.validateSwitchTarget(a.Side, a.SwitchTo); err != nil {
			return b.outcome, err
		}
		delete(needed, ref)
	}
	if len(needed) > 0 {
		return b.outcome, errs.New(errs.CodeInvalidArgument, "not all vacated slots were filled")
	}

	for i := range switches {
		s.performSwitch(Ref{Side: switches[i].Side, Slot: switches[i].Slot}, switches[i].SwitchTo)
	}
	s.processFaints()
	b.settle()
	return b.outcome, nil
}

// settle checks for a winner and advances the phase.
func (b *Battle) settle() {
	s := b.state
	dead0, dead1 := s.sideDefeated(0), s.sideDefeated(1)
	switch {
	case dead0 && dead1:
		b.outcome = Outcome{Done: true, Draw: true}
		b.phase = PhaseEnded
		s.log.add(Record{Kind: RecTie, Turn: s.turn, Draw: true})
		return
	case dead0:
		b.outcome = Outcome{Done: true, Winner: 1}
		b.phase = PhaseEnded
		s.log.add(Record{Kind: RecWin, Turn: s.turn, Winner: 1})
		return
	case dead1:
		b.outcome = Outcome{Done: true, Winner: 0}
		b.phase = PhaseEnded
		s.log.add(Record{Kind: RecWin, Turn: s.turn, Winner: 0})
		return
	}
	for side := int32(0); side < s.format.Sides; side++ {
		if len(s.emptySlots(side)) > 0 {
			b.phase = PhaseAwaitingSwitches
			return
		}
	}
	b.phase = PhaseAwaitingActions
}

func (b *Battle) validateAction(a *Action) error {
	s := b.state
	if a.Side < 0 || a.Side >= s.format.Sides || a.Slot < 0 || a.Slot >= s.format.ActiveSlots {
		return errs.Newf(errs.CodeInvalidArgument, "action position %d:%d out of range", a.Side, a.Slot)
	}
	ref := Ref{Side: a.Side, Slot: a.Slot}
	if !s.occupied(ref) {
		return errs.Newf(errs.CodeInvalidArgument, "no active Pokémon at %v", ref)
	}
	switch a.Type {
	case ActionSwitch:
		return b.validateSwitchTarget(a.Side, a.SwitchTo)
	case ActionMove:
		if a.MoveSlot == -1 {
			return nil
		}
		if a.MoveSlot < 0 || a.MoveSlot > 3 {
			return errs.Newf(errs.CodeInvalidArgument, "move slot %d out of range", a.MoveSlot)
		}
		if !s.canChooseMove(ref, a.MoveSlot) {
			return errs.Newf(errs.CodeInvalidArgument, "move slot %d is not selectable", a.MoveSlot)
		}
		return nil
	}
	return errs.Newf(errs.CodeInvalidArgument, "unknown action type %d", a.Type)
}

func (b *Battle) validateSwitchTarget(side, team int32) error {
	s := b.state
	if team < 0 || team >= s.format.TeamSize {
		return errs.Newf(errs.CodeInvalidArgument, "switch target %d out of range", team)
	}
	if s.isFainted(s.row(side, team)) {
		return errs.Newf(errs.CodeInvalidArgument, "switch target %d has fainted", team)
	}
	for _, idx := range s.active[side] {
		if idx == team {
			return errs.Newf(errs.CodeInvalidArgument, "switch target %d is already active", team)
		}
	}
	return nil
}

// canChooseMove applies the selection restrictions: PP, Disable, Encore,
// Taunt, choice lock, and Assault Vest.
func (s *State) canChooseMove(ref Ref, slot int32) bool {
	row := s.activeRow(ref)
	if row == nil {
		return false
	}
	if s.moveID(row, slot) == 0 || s.pp(row, slot) <= 0 {
		return false
	}
	move := s.reg.Move(s.moveID(row, slot))
	if move == nil {
		return false
	}
	if row[pVolDisableSlot] == slot+1 {
		return false
	}
	if row[pVolEncore] > 0 && row[pVolEncoreMove] != slot+1 {
		return false
	}
	if row[pVolChoiceLock] != 0 && row[pVolChoiceLock] != slot+1 {
		// The lock only binds while the choice item is still held.
		if item := s.reg.Item(s.item(row)); item != nil && item.Category == dex.ItemChoice {
			return false
		}
	}
	if move.Category == dex.StatusMove {
		if row[pVolTaunt] > 0 {
			return false
		}
		if s.hasItem(row, "assaultvest") {
			return false
		}
	}
	return true
}

// LegalActions enumerates every action a side may submit for the current
// phase. Slots with no selectable move get the Struggle fallback.
func (b *Battle) LegalActions(side int32) ([]Action, error) {
	s := b.state
	if side < 0 || side >= s.format.Sides {
		return nil, errs.Newf(errs.CodeInvalidArgument, "side %d out of range", side)
	}
	var out []Action

	if b.phase == PhaseAwaitingSwitches {
		for _, slot := range s.emptySlots(side) {
			for team := int32(0); team < s.format.TeamSize; team++ {
				if b.validateSwitchTarget(side, team) == nil {
					out = append(out, Action{Side: side, Slot: slot, Type: ActionSwitch, SwitchTo: team})
				}
			}
		}
		return out, nil
	}
	if b.phase != PhaseAwaitingActions {
		return nil, errs.New(errs.CodeFailedPrecondition, "battle has ended")
	}

	for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
		ref := Ref{Side: side, Slot: slot}
		row := s.activeRow(ref)
		if row == nil || s.isFainted(row) {
			continue
		}
		anyMove := false
		for ms := int32(0); ms < 4; ms++ {
			if !s.canChooseMove(ref, ms) {
				continue
			}
			anyMove = true
			move := s.reg.Move(s.moveID(row, ms))
			if move.Target == dex.TargetNormal || move.Target == dex.TargetAdjacentFoe {
				for _, foe := range s.foesOf(ref) {
					if s.occupied(foe) {
						out = append(out, Action{Side: side, Slot: slot, Type: ActionMove, MoveSlot: ms, Target: foe})
					}
				}
			} else {
				out = append(out, Action{Side: side, Slot: slot, Type: ActionMove, MoveSlot: ms})
			}
		}
		if !anyMove {
			out = append(out, Action{Side: side, Slot: slot, Type: ActionMove, MoveSlot: -1})
		}
		for team := int32(0); team < s.format.TeamSize; team++ {
			if b.validateSwitchTarget(side, team) == nil {
				out = append(out, Action{Side: side, Slot: slot, Type: ActionSwitch, SwitchTo: team})
			}
		}
	}
	return out, nil
}
