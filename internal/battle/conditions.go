package battle

import (
	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// Ordering keys for registered residual handlers. The scheduler runs the
// fixed phases itself (weather and terrain, side countdowns, status
// damage, Leech Seed); these only order the handlers firing between them.
const (
	residualItemHeal = iota
	residualSpeedBoost
)

// Side condition metadata, indexed by column.
var sideConditionNames = [sideSize]string{
	"Reflect", "Light Screen", "Aurora Veil", "Safeguard", "Mist",
	"Tailwind", "Spikes", "Toxic Spikes", "Stealth Rock", "Sticky Web",
}

// hazard columns hold layers, not turn counts.
func sideConditionIsHazard(col int) bool {
	return col == scSpikes || col == scToxicSpikes || col == scStealthRock || col == scStickyWeb
}

var hazardMaxLayers = map[int]int32{
	scSpikes:      3,
	scToxicSpikes: 2,
	scStealthRock: 1,
	scStickyWeb:   1,
}

var sideConditionColumns = map[dex.SideConditionKind]int{
	dex.SideReflect:     scReflect,
	dex.SideLightScreen: scLightScreen,
	dex.SideAuroraVeil:  scAuroraVeil,
	dex.SideSafeguard:   scSafeguard,
	dex.SideMist:        scMist,
	dex.SideTailwind:    scTailwind,
	dex.SideSpikes:      scSpikes,
	dex.SideToxicSpikes: scToxicSpikes,
	dex.SideStealthRock: scStealthRock,
	dex.SideStickyWeb:   scStickyWeb,
}

var sideConditionTurns = map[int]int32{
	scReflect:     screenTurns,
	scLightScreen: screenTurns,
	scAuroraVeil:  screenTurns,
	scSafeguard:   safeguardTurns,
	scMist:        mistTurns,
	scTailwind:    tailwindTurns,
}

// startSideCondition applies a side condition and returns false when it
// had no effect (already active, hazard at max layers, or Aurora Veil
// without snow).
func (s *State) startSideCondition(side int32, kind dex.SideConditionKind, source string) bool {
	col, ok := sideConditionColumns[kind]
	if !ok {
		return false
	}
	if kind == dex.SideAuroraVeil && s.weather() != dex.WeatherSnow {
		return false
	}
	if sideConditionIsHazard(col) {
		if s.sides[side][col] >= hazardMaxLayers[col] {
			return false
		}
		s.sides[side][col]++
		s.log.add(Record{Kind: RecSideStart, Turn: s.turn, Side: side,
			Condition: sideConditionNames[col], Remaining: s.sides[side][col], Source: source})
		return true
	}
	if s.sides[side][col] > 0 {
		return false
	}
	s.sides[side][col] = sideConditionTurns[col]
	s.log.add(Record{Kind: RecSideStart, Turn: s.turn, Side: side,
		Condition: sideConditionNames[col], Remaining: s.sides[side][col], Source: source})
	return true
}

// endSideCondition clears a column and logs the end.
func (s *State) endSideCondition(side int32, col int) {
	if s.sides[side][col] == 0 {
		return
	}
	s.sides[side][col] = 0
	s.log.add(Record{Kind: RecSideEnd, Turn: s.turn, Side: side,
		Condition: sideConditionNames[col]})
}

var weatherNames = map[int32]string{
	dex.WeatherSun:  "Sun",
	dex.WeatherRain: "Rain",
	dex.WeatherSand: "Sandstorm",
	dex.WeatherSnow: "Snow",
}

// startWeather sets the weather unless it is already active. Returns
// whether anything changed.
func (s *State) startWeather(weather int32, source string) bool {
	if s.field[fWeather] == weather {
		return false
	}
	if s.field[fWeather] != dex.WeatherNone {
		s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn,
			Condition: weatherNames[s.field[fWeather]]})
	}
	s.field[fWeather] = weather
	s.field[fWeatherTurns] = weatherTurns
	s.log.add(Record{Kind: RecFieldStart, Turn: s.turn,
		Condition: weatherNames[weather], Remaining: weatherTurns, Source: source})
	return true
}

var terrainNames = map[int32]string{
	dex.TerrainElectric: "Electric Terrain",
	dex.TerrainGrassy:   "Grassy Terrain",
	dex.TerrainMisty:    "Misty Terrain",
	dex.TerrainPsychic:  "Psychic Terrain",
}

// startTerrain sets the terrain unless it is already active.
func (s *State) startTerrain(terrain int32, source string) bool {
	if s.field[fTerrain] == terrain {
		return false
	}
	if s.field[fTerrain] != dex.TerrainNone {
		s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn,
			Condition: terrainNames[s.field[fTerrain]]})
	}
	s.field[fTerrain] = terrain
	s.field[fTerrainTurns] = terrainTurns
	s.log.add(Record{Kind: RecFieldStart, Turn: s.turn,
		Condition: terrainNames[terrain], Remaining: terrainTurns, Source: source})
	return true
}

var roomColumns = map[dex.FieldKind]int{
	dex.FieldTrickRoom:  fTrickRoom,
	dex.FieldMagicRoom:  fMagicRoom,
	dex.FieldWonderRoom: fWonderRoom,
	dex.FieldGravity:    fGravity,
}

var roomNames = map[int]string{
	fTrickRoom:  "Trick Room",
	fMagicRoom:  "Magic Room",
	fWonderRoom: "Wonder Room",
	fGravity:    "Gravity",
}

// startField applies a field-setting move. Rooms toggle: using the move
// while its room is active ends it early.
func (s *State) startField(kind dex.FieldKind, source string) bool {
	switch kind {
	case dex.FieldSun:
		return s.startWeather(dex.WeatherSun, source)
	case dex.FieldRain:
		return s.startWeather(dex.WeatherRain, source)
	case dex.FieldSand:
		return s.startWeather(dex.WeatherSand, source)
	case dex.FieldSnow:
		return s.startWeather(dex.WeatherSnow, source)
	case dex.FieldElectricTerrain:
		return s.startTerrain(dex.TerrainElectric, source)
	case dex.FieldGrassyTerrain:
		return s.startTerrain(dex.TerrainGrassy, source)
	case dex.FieldMistyTerrain:
		return s.startTerrain(dex.TerrainMisty, source)
	case dex.FieldPsychicTerrain:
		return s.startTerrain(dex.TerrainPsychic, source)
	}
	col, ok := roomColumns[kind]
	if !ok {
		return false
	}
	if s.field[col] > 0 {
		s.field[col] = 0
		s.log.add(Record{Kind: RecFieldEnd, Turn: s.turn, Condition: roomNames[col]})
		return true
	}
	s.field[col] = roomTurns
	s.log.add(Record{Kind: RecFieldStart, Turn: s.turn,
		Condition: roomNames[col], Remaining: roomTurns, Source: source})
	return true
}

// --- position helpers -------------------------------------------------

// foesOf lists the opposing active slots in side, slot order.
func (s *State) foesOf(ref Ref) []Ref {
	var out []Ref
	for side := int32(0); side < s.format.Sides; side++ {
		if side == ref.Side {
			continue
		}
		for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
			out = append(out, Ref{Side: side, Slot: slot})
		}
	}
	return out
}

// alliesOf lists the user's other active slots.
func (s *State) alliesOf(ref Ref) []Ref {
	var out []Ref
	for slot := int32(0); slot < s.format.ActiveSlots; slot++ {
		if slot != ref.Slot {
			out = append(out, Ref{Side: ref.Side, Slot: slot})
		}
	}
	return out
}

// occupied reports whether the slot holds a non-fainted Pokémon.
func (s *State) occupied(ref Ref) bool {
	row := s.activeRow(ref)
	return row != nil && !s.isFainted(row)
}

// consumeItem removes the holder's item permanently and logs it.
func (s *State) consumeItem(ref Ref, name string) {
	row := s.activeRow(ref)
	if row == nil || row[pItem] == 0 {
		return
	}
	row[pItem] = 0
	s.disp.unregisterItem(ref)
	s.log.add(Record{Kind: RecItemEnd, Turn: s.turn,
		Side: ref.Side, Slot: ref.Slot, Source: name})
}

// applyEntryHazards runs the entry-hazard sequence for a Pokémon that just
// switched in. Hazards draw no randomness. Heavy-Duty Boots skip all of
// them.
func (s *State) applyEntryHazards(ref Ref) {
	row := s.activeRow(ref)
	if row == nil || s.hasItem(row, "heavydutyboots") {
		return
	}
	side := s.sides[ref.Side]

	if side[scStealthRock] > 0 {
		t1, t2 := s.types(row)
		num, den := dex.CombinedEffectiveness(dex.Rock, t1, t2)
		dmg := s.maxHP(row) * int32(num) / (8 * int32(den))
		if dmg < 1 {
			dmg = 1
		}
		s.applyDamage(ref, dmg, "Stealth Rock")
		if s.isFainted(row) {
			return
		}
	}

	if !s.grounded(row) {
		return
	}

	if layers := side[scSpikes]; layers > 0 {
		var dmg int32
		switch layers {
		case 1:
			dmg = s.maxHP(row) / 8
		case 2:
			dmg = s.maxHP(row) / 6
		default:
			dmg = s.maxHP(row) / 4
		}
		if dmg < 1 {
			dmg = 1
		}
		s.applyDamage(ref, dmg, "Spikes")
		if s.isFainted(row) {
			return
		}
	}

	if layers := side[scToxicSpikes]; layers > 0 {
		if s.hasType(row, dex.Poison) && s.grounded(row) {
			// A grounded Poison-type absorbs the spikes.
			s.endSideCondition(ref.Side, scToxicSpikes)
		} else {
			status := dex.StatusPoison
			if layers >= 2 {
				status = dex.StatusToxic
			}
			s.setStatus(ref, status, "Toxic Spikes")
		}
	}

	if side[scStickyWeb] > 0 {
		s.modifyStage(ref, dex.BoostSpe, -1, true, "Sticky Web")
	}
}
