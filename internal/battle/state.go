package battle

import (
	"fmt"

	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/rng"
)

// Format describes the battle shape.
type Format struct {
	Sides       int32 `json:"sides" yaml:"sides"`
	TeamSize    int32 `json:"team_size" yaml:"team_size"`
	ActiveSlots int32 `json:"active_slots" yaml:"active_slots"`
	// HalvedScreens selects the classic 1/2 screen factor in doubles
	// instead of the default 2732/4096.
	HalvedScreens bool `json:"halved_screens,omitempty" yaml:"halved_screens,omitempty"`
}

// State holds every mutable fact about one battle in dense int32 arrays.
// It is mutated only by the scheduler and the handlers it invokes, and is
// not safe for concurrent use.
type State struct {
	reg    *dex.Registry
	format Format

	mons    [][][]int32 // [side][team][pokemonSize]
	active  [][]int32   // [side][activeSlot] -> team index, -1 = empty
	sides   [][]int32   // [side][sideSize]
	field   []int32     // [fieldSize]
	fainted []int32     // total fainted per side

	// chosen holds the move ID each active slot selected this turn, or 0.
	// The pipeline reads it for moves that depend on the target's choice.
	chosen [][]int32

	turn int32
	rng  *rng.Generator
	log  *Log
	disp *dispatcher
}

func newState(reg *dex.Registry, format Format, seed uint32) *State {
	s := &State{
		reg:     reg,
		format:  format,
		mons:    make([][][]int32, format.Sides),
		active:  make([][]int32, format.Sides),
		sides:   make([][]int32, format.Sides),
		chosen:  make([][]int32, format.Sides),
		fainted: make([]int32, format.Sides),
		field:   make([]int32, fieldSize),
		rng:     rng.New(seed),
		log:     NewLog(),
	}
	for side := int32(0); side < format.Sides; side++ {
		s.mons[side] = make([][]int32, format.TeamSize)
		for i := int32(0); i < format.TeamSize; i++ {
			s.mons[side][i] = make([]int32, pokemonSize)
		}
		s.active[side] = make([]int32, format.ActiveSlots)
		for i := range s.active[side] {
			s.active[side][i] = -1
		}
		s.sides[side] = make([]int32, sideSize)
		s.chosen[side] = make([]int32, format.ActiveSlots)
	}
	s.disp = newDispatcher(reg)
	return s
}

// invariant panics with a state diagnostic. Invariant violations are
// programmer errors; the engine never recovers from them.
func (s *State) invariant(cond bool, format string, args ...any) {
	if !cond {
		last := Record{}
		if n := s.log.Len(); n > 0 {
			last = s.log.Records()[n-1]
		}
		panic(fmt.Sprintf("battle invariant violated: "+format+
			" (turn %d, last record %+v)", append(args, s.turn, last)...))
	}
}

// row returns the packed row of a team member.
func (s *State) row(side, team int32) []int32 { return s.mons[side][team] }

// activeRow returns the packed row behind an active slot, or nil when the
// slot is empty.
func (s *State) activeRow(ref Ref) []int32 {
	team := s.active[ref.Side][ref.Slot]
	if team < 0 {
		return nil
	}
	return s.mons[ref.Side][team]
}

// Turn returns the current turn number.
func (s *State) Turn() int32 { return s.turn }

// RNG exposes the battle generator. Handlers must draw from it and never
// from an ambient source.
func (s *State) RNG() *rng.Generator { return s.rng }

// Log returns the battle log.
func (s *State) Log() *Log { return s.log }

// Format returns the battle format.
func (s *State) Format() Format { return s.format }

// Registry returns the static data registry.
func (s *State) Registry() *dex.Registry { return s.reg }

// --- stat computation -------------------------------------------------

// computeStat derives a final stat from base/IV/EV/level/nature with the
// standard integer formulas. A base HP of 1 yields a 1 HP maximum.
func computeStat(stat dex.Stat, base, iv, ev, level int32, nature dex.Nature) int32 {
	if stat == dex.HP {
		if base == 1 {
			return 1
		}
		return (2*base+iv+ev/4)*level/100 + level + 10
	}
	v := (2*base+iv+ev/4)*level/100 + 5
	num, den := dex.NatureModifier(nature, stat)
	return v * int32(num) / int32(den)
}

// --- read accessors ---------------------------------------------------

func (s *State) species(row []int32) *dex.Species { return s.reg.Species(row[pSpecies]) }

func (s *State) maxHP(row []int32) int32     { return row[pStatHP] }
func (s *State) currentHP(row []int32) int32 { return row[pCurrentHP] }
func (s *State) isFainted(row []int32) bool  { return row[pCurrentHP] == 0 }

func (s *State) status(row []int32) dex.Status { return dex.Status(row[pStatus]) }

func (s *State) stage(row []int32, b dex.Boost) int32 { return row[pStageAtk+int32(b)] }

func (s *State) moveID(row []int32, slot int32) int32 { return row[pMove1+slot] }
func (s *State) pp(row []int32, slot int32) int32     { return row[pPP1+slot] }

func (s *State) ability(row []int32) int32 {
	if row[pVolSuppressed] != 0 {
		return 0
	}
	return row[pAbility]
}

func (s *State) item(row []int32) int32 {
	if s.field[fMagicRoom] > 0 {
		return 0
	}
	return row[pItem]
}

func (s *State) hasAbility(row []int32, key string) bool {
	id, ok := s.reg.AbilityID(key)
	return ok && s.ability(row) == id
}

func (s *State) hasItem(row []int32, key string) bool {
	id, ok := s.reg.ItemID(key)
	return ok && s.item(row) == id
}

// types returns the current defending types, honoring Tera.
func (s *State) types(row []int32) (dex.Type, dex.Type) {
	if t := row[pTeraType]; t >= 0 {
		return dex.Type(t), dex.TypeNone
	}
	return dex.Type(row[pType1]), dex.Type(row[pType2])
}

// hasType checks the current (possibly Tera-replaced) types.
func (s *State) hasType(row []int32, t dex.Type) bool {
	t1, t2 := s.types(row)
	return t1 == t || t2 == t
}

// baseHasType checks the original species types, ignoring Tera.
func (s *State) baseHasType(row []int32, t dex.Type) bool {
	return dex.Type(row[pType1]) == t || dex.Type(row[pType2]) == t
}

// grounded reports whether hazards and terrain reach this Pokémon.
func (s *State) grounded(row []int32) bool {
	if s.field[fGravity] > 0 {
		return true
	}
	if s.hasType(row, dex.Flying) {
		return false
	}
	if s.hasAbility(row, "levitate") {
		return false
	}
	return true
}

// weather returns the active weather ID.
func (s *State) weather() int32 { return s.field[fWeather] }

// terrain returns the active terrain ID.
func (s *State) terrain() int32 { return s.field[fTerrain] }

// effectiveSpeed computes the current Speed: stage multiplier, paralysis,
// Tailwind, Choice Scarf, and speed-relevant abilities. Recomputed on every
// read; nothing caches it.
func (s *State) effectiveSpeed(ref Ref) int32 {
	row := s.activeRow(ref)
	if row == nil {
		return 0
	}
	spe := row[pStatSpe]

	num, den := dex.StageMultiplier(int(s.stage(row, dex.BoostSpe)))
	spe = spe * int32(num) / int32(den)

	if s.hasItem(row, "choicescarf") {
		spe = spe * 3 / 2
	}
	if s.sides[ref.Side][scTailwind] > 0 {
		spe *= 2
	}
	if s.status(row) == dex.StatusParalysis {
		spe /= 2
	}
	if spe < 1 {
		spe = 1
	}
	return spe
}

// --- mutators ---------------------------------------------------------

// applyDamage subtracts HP, clamping at zero, and returns the damage
// actually dealt. Reaching zero marks the faint and logs it.
func (s *State) applyDamage(ref Ref, amount int32, source string) int32 {
	row := s.activeRow(ref)
	s.invariant(row != nil, "damage to empty slot %v", ref)
	if amount < 0 {
		amount = 0
	}
	if amount > row[pCurrentHP] {
		amount = row[pCurrentHP]
	}
	if amount == 0 {
		return 0
	}
	row[pCurrentHP] -= amount
	s.log.add(Record{
		Kind: RecDamage, Turn: s.turn, Side: ref.Side, Slot: ref.Slot,
		HP: row[pCurrentHP], MaxHP: row[pStatHP], Delta: -amount, Source: source,
	})
	return amount
}

// applyHeal restores HP up to the maximum and returns the amount healed.
func (s *State) applyHeal(ref Ref, amount int32, source string) int32 {
	row := s.activeRow(ref)
	s.invariant(row != nil, "heal to empty slot %v", ref)
	if s.isFainted(row) || amount <= 0 {
		return 0
	}
	if room := row[pStatHP] - row[pCurrentHP]; amount > room {
		amount = room
	}
	if amount == 0 {
		return 0
	}
	row[pCurrentHP] += amount
	s.log.add(Record{
		Kind: RecHeal, Turn: s.turn, Side: ref.Side, Slot: ref.Slot,
		HP: row[pCurrentHP], MaxHP: row[pStatHP], Delta: amount, Source: source,
	})
	return amount
}

// setStatus applies a primary status. It fails silently (returning false)
// when the target already has a status, is fainted, or is immune by type.
func (s *State) setStatus(ref Ref, status dex.Status, source string) bool {
	row := s.activeRow(ref)
	if row == nil || s.isFainted(row) || s.status(row) != dex.StatusNone {
		return false
	}
	if s.sides[ref.Side][scSafeguard] > 0 {
		return false
	}
	switch status {
	case dex.StatusBurn:
		if s.hasType(row, dex.Fire) {
			return false
		}
	case dex.StatusParalysis:
		if s.hasType(row, dex.Electric) {
			return false
		}
	case dex.StatusPoison, dex.StatusToxic:
		if s.hasType(row, dex.Poison) || s.hasType(row, dex.Steel) {
			return false
		}
	case dex.StatusFreeze:
		if s.hasType(row, dex.Ice) || s.weather() == dex.WeatherSun {
			return false
		}
	case dex.StatusSleep:
		if s.terrain() == dex.TerrainElectric && s.grounded(row) {
			return false
		}
	}
	if s.terrain() == dex.TerrainMisty && s.grounded(row) {
		return false
	}
	row[pStatus] = int32(status)
	switch status {
	case dex.StatusSleep:
		// 1-3 turns of sleep, drawn when the status lands.
		row[pStatusCounter] = int32(s.rng.Range(1, 3))
	case dex.StatusToxic:
		row[pStatusCounter] = 0
	default:
		row[pStatusCounter] = 0
	}
	s.log.add(Record{
		Kind: RecStatus, Turn: s.turn, Side: ref.Side, Slot: ref.Slot,
		Status: status.String(), Source: source,
	})
	return true
}

// cureStatus removes a primary status, logging the cure.
func (s *State) cureStatus(ref Ref, source string) {
	row := s.activeRow(ref)
	if row == nil || s.status(row) == dex.StatusNone {
		return
	}
	prev := s.status(row)
	row[pStatus] = int32(dex.StatusNone)
	row[pStatusCounter] = 0
	s.log.add(Record{
		Kind: RecCure, Turn: s.turn, Side: ref.Side, Slot: ref.Slot,
		Status: prev.String(), Source: source,
	})
}

// modifyStage shifts a stat stage, clamping to [-6, +6], and returns the
// actual delta applied. Mist blocks drops inflicted by opponents.
func (s *State) modifyStage(ref Ref, b dex.Boost, delta int32, fromOpponent bool, source string) int32 {
	row := s.activeRow(ref)
	if row == nil || s.isFainted(row) {
		return 0
	}
	if delta < 0 && fromOpponent {
		if s.sides[ref.Side][scMist] > 0 {
			return 0
		}
		if s.hasAbility(row, "clearbody") {
			return 0
		}
	}
	idx := pStageAtk + int32(b)
	old := row[idx]
	next := old + delta
	if next > 6 {
		next = 6
	}
	if next < -6 {
		next = -6
	}
	if next == old {
		return 0
	}
	row[idx] = next
	s.log.add(Record{
		Kind: RecBoost, Turn: s.turn, Side: ref.Side, Slot: ref.Slot,
		Stat: b.String(), Delta: next - old, Source: source,
	})
	return next - old
}

// spendPP decrements a move slot's PP, stopping at zero.
func (s *State) spendPP(ref Ref, slot int32) {
	row := s.activeRow(ref)
	if row == nil {
		return
	}
	if row[pPP1+slot] > 0 {
		row[pPP1+slot]--
	}
}

// clearVolatiles resets every volatile column; used on switch-out.
func (s *State) clearVolatiles(row []int32) {
	for i := pVolProtect; i < pokemonSize; i++ {
		row[i] = 0
	}
}

// clearStages zeroes all seven stage axes.
func (s *State) clearStages(row []int32) {
	for b := int32(0); b < dex.NumBoosts; b++ {
		row[pStageAtk+b] = 0
	}
}
