package battle

import (
	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// Turn scheduler. A turn runs in fixed phases: voluntary switches, moves
// in priority order, the residual phase, faint processing, and finally
// end-of-turn bookkeeping. Forced replacements happen between turns.

// ActionType tags a submitted action.
type ActionType int32

const (
	ActionMove ActionType = iota
	ActionSwitch
)

// Action is one player decision for one active slot.
type Action struct {
	Side int32      `json:"side"`
	Slot int32      `json:"slot"`
	Type ActionType `json:"type"`

	// Move actions. MoveSlot -1 selects Struggle.
	MoveSlot int32 `json:"move_slot,omitempty"`
	Target   Ref   `json:"target,omitempty"`

	// Switch actions.
	SwitchTo int32 `json:"switch_to,omitempty"`
}

// scheduled is an action with its ordering keys snapshotted at turn
// start.
type scheduled struct {
	action   Action
	rank     int32 // orderSwitch or orderMove
	priority int32
	speed    int32
}

// orderActions sorts by rank ascending, priority descending, then speed
// descending (ascending under Trick Room). Exact ties are broken by a
// coin draw per unresolved comparison, so speed ties are fair and
// replayable.
func (s *State) orderActions(acts []scheduled) {
	invertSpeed := s.field[fTrickRoom] > 0
	less := func(a, b *scheduled) int {
		if a.rank != b.rank {
			if a.rank < b.rank {
				return -1
			}
			return 1
		}
		if a.priority != b.priority {
			if a.priority > b.priority {
				return -1
			}
			return 1
		}
		if a.speed != b.speed {
			faster := a.speed > b.speed
			if invertSpeed {
				faster = !faster
			}
			if faster {
				return -1
			}
			return 1
		}
		return 0
	}
	for i := 0; i < len(acts); i++ {
		best := i
		for j := i + 1; j < len(acts); j++ {
			switch less(&acts[j], &acts[best]) {
			case -1:
				best = j
			case 0:
				if s.rng.Next(2) == 0 {
					best = j
				}
			}
		}
		acts[i], acts[best] = acts[best], acts[i]
	}
}

// movePriority resolves a move's bracket, including terrain bonuses and
// the attacker's priority handlers.
func (s *State) movePriority(attacker Ref, move *dex.Move) int32 {
	prio := move.Priority
	if move.Key == "grassyglide" && s.terrain() == dex.TerrainGrassy &&
		s.grounded(s.activeRow(attacker)) {
		prio++
	}
	mc := &moveContext{attacker: attacker, move: move, moveType: move.Type}
	return s.disp.modifyPriority(s, attacker, mc, prio)
}

// runTurn executes one full turn from validated actions.
func (s *State) runTurn(actions []Action) {
	s.turn++
	s.log.add(Record{Kind: RecTurnStart, Turn: s.turn})

	for side := range s.chosen {
		for slot := range s.chosen[side] {
			s.chosen[side][slot] = 0
		}
	}

	acts := make([]scheduled, 0, len(actions))
	for _, a := range actions {
		sc := scheduled{action: a, speed: s.effectiveSpeed(Ref{Side: a.Side, Slot: a.Slot})}
		if a.Type == ActionSwitch {
			sc.rank = orderSwitch
		} else {
			sc.rank = orderMove
			var move *dex.Move
			if a.MoveSlot < 0 {
				move = s.reg.Move(s.reg.StruggleID())
			} else {
				row := s.activeRow(Ref{Side: a.Side, Slot: a.Slot})
				if row != nil {
					move = s.reg.Move(s.moveID(row, a.MoveSlot))
				}
			}
			if move != nil {
				sc.priority = s.movePriority(Ref{Side: a.Side, Slot: a.Slot}, move)
				s.chosen[a.Side][a.Slot] = move.ID
			}
		}
		acts = append(acts, sc)
	}
	s.orderActions(acts)

	for i := range acts {
		a := acts[i].action
		ref := Ref{Side: a.Side, Slot: a.Slot}
		switch a.Type {
		case ActionSwitch:
			s.performSwitch(ref, a.SwitchTo)
		case ActionMove:
			row := s.activeRow(ref)
			if row == nil || s.isFainted(row) {
				continue
			}
			hit := s.useMove(ref, a.MoveSlot, a.Target)
			if hit {
				s.maybePivot(ref, a.MoveSlot)
			}
		}
		s.processFaints()
	}

	s.residualPhase()
	s.processFaints()
	s.endOfTurn()
}

// maybePivot self-switches the attacker after a successful pivot move,
// picking the lowest-index healthy bench member.
func (s *State) maybePivot(ref Ref, slot int32) {
	row := s.activeRow(ref)
	if row == nil || s.isFainted(row) {
		return
	}
	var move *dex.Move
	if slot < 0 {
		return
	}
	move = s.reg.Move(s.moveID(row, slot))
	if move == nil || !move.Flags.Has(dex.FlagPivot) {
		return
	}
	if to := s.firstBenched(ref.Side); to >= 0 {
		s.performSwitch(ref, to)
	}
}

// firstBenched returns the lowest healthy benched team index, or -1.
func (s *State) firstBenched(side int32) int32 {
	for team := int32(0); team < s.format.TeamSize; team++ {
		row := s.row(side, team)
		if s.isFainted(row) {
			continue
		}
		onField := false
		for _, idx := range s.active[side] {
			if idx == team {
				onField = true
			}
		}
		if !onField {
			return team
		}
	}
	return -1
}

// performSwitch replaces the slot's occupant. Switch-out effects fire for
// the outgoing Pokémon, then hazards and switch-in effects for the
// incoming one.
func (s *State) performSwitch(ref Ref, team int32) {
	if out := s.activeRow(ref); out != nil && !s.isFainted(out) {
		s.disp.switchOut(s, ref)
		s.clearVolatiles(out)
		s.clearStages(out)
		// The toxic counter resets on switch; the status itself stays.
		if s.status(out) == dex.StatusToxic {
			out[pStatusCounter] = 0
		}
		s.disp.unregisterSlot(ref)
	}

	s.invariant(team >= 0 && team < s.format.TeamSize, "switch to invalid team index %d", team)
	in := s.row(ref.Side, team)
	s.invariant(!s.isFainted(in), "switch to fainted team index %d", team)
	s.active[ref.Side][ref.Slot] = team

	name := ""
	if sp := s.species(in); sp != nil {
		name = sp.Name
	}
	s.log.add(Record{Kind: RecSwitch, Turn: s.turn,
		Side: ref.Side, Slot: ref.Slot, Species: name,
		HP: s.currentHP(in), MaxHP: s.maxHP(in)})

	s.disp.registerSlot(s, ref)
	s.applyEntryHazards(ref)
	if s.isFainted(in) {
		return
	}
	s.disp.switchIn(s, ref)
}

// activeOrder lists the occupied slots fastest first, slowest first while
// Trick Room is up, side and slot breaking exact ties.
func (s *State) activeOrder() []Ref {
	var refs []Ref
	for side := int32(0); side < s.format.Sides; side++ {
		for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
			r := Ref{Side: side, Slot: slot}
			if s.occupied(r) {
				refs = append(refs, r)
			}
		}
	}
	invert := s.field[fTrickRoom] > 0
	for i := 0; i < len(refs); i++ {
		best := i
		for j := i + 1; j < len(refs); j++ {
			si, sj := s.effectiveSpeed(refs[best]), s.effectiveSpeed(refs[j])
			first := sj > si
			if invert {
				first = sj < si
			}
			if first {
				best = j
			}
		}
		refs[i], refs[best] = refs[best], refs[i]
	}
	return refs
}

// residualPhase runs end-of-turn effects: field, then side, then
// per-Pokémon, fastest first within each band.
func (s *State) residualPhase() {
	// Weather countdown and chip damage.
	if w := s.weather(); w != dex.WeatherNone {
		s.field[fWeatherTurns]--
		if s.field[fWeatherTurns] <= 0 {
			s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn, Condition: weatherNames[w]})
			s.field[fWeather] = dex.WeatherNone
		} else if w == dex.WeatherSand {
			for _, r := range s.activeOrder() {
				row := s.activeRow(r)
				if row == nil || s.isFainted(row) {
					continue
				}
				if s.hasType(row, dex.Rock) || s.hasType(row, dex.Ground) || s.hasType(row, dex.Steel) {
					continue
				}
				s.applyDamage(r, s.maxHP(row)/16, "Sandstorm")
			}
		}
	}

	// Terrain countdown and the Grassy Terrain heal.
	if t := s.terrain(); t != dex.TerrainNone {
		s.field[fTerrainTurns]--
		if s.field[fTerrainTurns] <= 0 {
			s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn, Condition: terrainNames[t]})
			s.field[fTerrain] = dex.TerrainNone
		} else if t == dex.TerrainGrassy {
			for _, r := range s.activeOrder() {
				row := s.activeRow(r)
				if row != nil && !s.isFainted(row) && s.grounded(row) {
					s.applyHeal(r, s.maxHP(row)/16, "Grassy Terrain")
				}
			}
		}
	}

	// Room countdowns.
	for _, col := range []int{fTrickRoom, fMagicRoom, fWonderRoom, fGravity} {
		if s.field[col] > 0 {
			s.field[col]--
			if s.field[col] == 0 {
				s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn, Condition: roomNames[col]})
			}
		}
	}

	// Side condition countdowns. Hazards persist.
	for side := int32(0); side < s.format.Sides; side++ {
		for col := 0; col < sideSize; col++ {
			if sideConditionIsHazard(col) || s.sides[side][col] == 0 {
				continue
			}
			s.sides[side][col]--
			if s.sides[side][col] == 0 {
				s.log.add(Record{Kind: RecSideEnd, Turn: s.turn, Side: side,
					Condition: sideConditionNames[col]})
			}
		}
	}

	// Registered residual handlers: item heals, Speed Boost.
	s.disp.residual(s)

	// Status damage.
	for _, r := range s.activeOrder() {
		row := s.activeRow(r)
		if row == nil || s.isFainted(row) {
			continue
		}
		switch s.status(row) {
		case dex.StatusBurn:
			s.applyDamage(r, s.maxHP(row)/16, "burn")
		case dex.StatusPoison:
			s.applyDamage(r, s.maxHP(row)/8, "psn")
		case dex.StatusToxic:
			if row[pStatusCounter] < 15 {
				row[pStatusCounter]++
			}
			s.applyDamage(r, s.maxHP(row)*row[pStatusCounter]/16, "tox")
		}
	}

	// Leech Seed drains toward the opposing position.
	for _, r := range s.activeOrder() {
		row := s.activeRow(r)
		if row == nil || s.isFainted(row) || row[pVolLeechSeed] == 0 {
			continue
		}
		drained := s.applyDamage(r, s.maxHP(row)/8, "Leech Seed")
		if drained == 0 {
			continue
		}
		for _, foe := range s.foesOf(r) {
			if s.occupied(foe) {
				s.applyHeal(foe, drained, "Leech Seed")
				break
			}
		}
	}
}

// endOfTurn clears per-turn volatiles and ticks per-Pokémon countdowns.
func (s *State) endOfTurn() {
	for side := int32(0); side < s.format.Sides; side++ {
		for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
			r := Ref{Side: side, Slot: slot}
			row := s.activeRow(r)
			if row == nil {
				continue
			}
			if row[pVolProtect] == 0 {
				row[pVolProtectUses] = 0
			}
			row[pVolProtect] = 0
			row[pVolFlinch] = 0
			row[pVolMovedThisTurn] = 0
			row[pVolTookHitThisTurn] = 0
			row[pVolActiveTurns]++

			if row[pVolEncore] > 0 {
				row[pVolEncore]--
				if row[pVolEncore] == 0 {
					row[pVolEncoreMove] = 0
					s.log.add(Record{Kind: RecVolatileEnd, Turn: s.turn,
						Side: side, Slot: slot, Condition: "Encore"})
				}
			}
			if row[pVolTaunt] > 0 {
				row[pVolTaunt]--
				if row[pVolTaunt] == 0 {
					s.log.add(Record{Kind: RecVolatileEnd, Turn: s.turn,
						Side: side, Slot: slot, Condition: "Taunt"})
				}
			}
			if row[pVolDisableTurns] > 0 {
				row[pVolDisableTurns]--
				if row[pVolDisableTurns] == 0 {
					row[pVolDisableSlot] = 0
					s.log.add(Record{Kind: RecVolatileEnd, Turn: s.turn,
						Side: side, Slot: slot, Condition: "Disable"})
				}
			}
		}
	}
}

// processFaints sweeps active slots for newly fainted Pokémon, logging
// the faint, bumping the side counter, and vacating the slot.
func (s *State) processFaints() {
	for side := int32(0); side < s.format.Sides; side++ {
		for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
			r := Ref{Side: side, Slot: slot}
			row := s.activeRow(r)
			if row == nil || !s.isFainted(row) {
				continue
			}
			name := ""
			if sp := s.species(row); sp != nil {
				name = sp.Name
			}
			s.disp.faint(s, r)
			s.disp.unregisterSlot(r)
			s.clearVolatiles(row)
			s.clearStages(row)
			s.fainted[side]++
			s.active[side][slot] = -1
			s.log.add(Record{Kind: RecFaint, Turn: s.turn,
				Side: side, Slot: slot, Species: name})
		}
	}
}

// sideDefeated reports whether every team member of a side has fainted.
func (s *State) sideDefeated(side int32) bool {
	for team := int32(0); team < s.format.TeamSize; team++ {
		if !s.isFainted(s.row(side, team)) {
			return false
		}
	}
	return true
}

// emptySlots lists the vacated positions a side must fill, given it still
// has bench.
func (s *State) emptySlots(side int32) []int32 {
	benched := int32(0)
	for team := int32(0); team < s.format.TeamSize; team++ {
		row := s.row(side, team)
		if s.isFainted(row) {
			continue
		}
		onField := false
		for _, idx := range s.active[side] {
			if idx == team {
				onField = true
			}
		}
		if !onField {
			benched++
		}
	}
	var out []int32
	for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
		if s.active[side][slot] < 0 && benched > 0 {
			out = append(out, slot)
			benched--
		}
	}
	return out
}
