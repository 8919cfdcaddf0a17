package battle

import (
	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// Ability handlers. Each effect is registered under its canonical dex key;
// the dispatcher resolves keys to these handlers once per battle.

// Supreme Overlord base-power boost per fallen ally, in 1/4096 units.
// Index is the fallen count clamped to 5.
var overlordMultipliers = [6]int32{4096, 4506, 4915, 5325, 5734, 6144}

func init() {
	registerEffect(&effect{
		key: "intimidate",
		onSwitchIn: func(s *State, holder Ref) {
			s.log.add(Record{Kind: RecAbilityActivate, Turn: s.turn,
				Side: holder.Side, Slot: holder.Slot, Source: "Intimidate"})
			for _, foe := range s.foesOf(holder) {
				row := s.activeRow(foe)
				if row == nil || s.isFainted(row) {
					continue
				}
				if s.hasAbility(row, "innerfocus") {
					continue
				}
				s.modifyStage(foe, dex.BoostAtk, -1, true, "Intimidate")
			}
		},
	})

	registerEffect(&effect{
		key: "levitate",
		onTryHit: func(s *State, holder Ref, mc *moveContext) tryHitResult {
			if mc.moveType == dex.Ground && mc.move.Category != dex.StatusMove {
				s.log.add(Record{Kind: RecImmune, Turn: s.turn,
					Side: holder.Side, Slot: holder.Slot, Reason: "Levitate"})
				return tryHitImmune
			}
			return tryHitPass
		},
	})

	registerEffect(&effect{
		key: "wonderguard",
		onTryHit: func(s *State, holder Ref, mc *moveContext) tryHitResult {
			if mc.move.Category == dex.StatusMove {
				return tryHitPass
			}
			row := s.activeRow(holder)
			t1, t2 := s.types(row)
			num, den := dex.CombinedEffectiveness(mc.moveType, t1, t2)
			if num > den {
				return tryHitPass
			}
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: holder.Side, Slot: holder.Slot, Reason: "Wonder Guard"})
			return tryHitImmune
		},
	})

	registerEffect(&effect{
		key: "flashfire",
		onTryHit: func(s *State, holder Ref, mc *moveContext) tryHitResult {
			if mc.moveType != dex.Fire {
				return tryHitPass
			}
			row := s.activeRow(holder)
			row[pVolFlashFire] = 1
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: holder.Side, Slot: holder.Slot, Reason: "Flash Fire"})
			return tryHitImmune
		},
		onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
			row := s.activeRow(holder)
			if mc.moveType == dex.Fire && row[pVolFlashFire] != 0 {
				return bp * 3 / 2
			}
			return bp
		},
	})

	registerEffect(&effect{
		key: "voltabsorb",
		onTryHit: func(s *State, holder Ref, mc *moveContext) tryHitResult {
			if mc.moveType != dex.Electric || mc.move.Category == dex.StatusMove {
				return tryHitPass
			}
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: holder.Side, Slot: holder.Slot, Reason: "Volt Absorb"})
			s.applyHeal(holder, s.maxHP(s.activeRow(holder))/4, "Volt Absorb")
			return tryHitImmune
		},
	})

	registerEffect(&effect{
		key: "waterabsorb",
		onTryHit: func(s *State, holder Ref, mc *moveContext) tryHitResult {
			if mc.moveType != dex.Water || mc.move.Category == dex.StatusMove {
				return tryHitPass
			}
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: holder.Side, Slot: holder.Slot, Reason: "Water Absorb"})
			s.applyHeal(holder, s.maxHP(s.activeRow(holder))/4, "Water Absorb")
			return tryHitImmune
		},
	})

	registerEffect(&effect{
		key: "technician",
		onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
			if bp <= 60 {
				return bp * 3 / 2
			}
			return bp
		},
	})

	registerEffect(&effect{
		key: "supremeoverlord",
		onSwitchIn: func(s *State, holder Ref) {
			row := s.activeRow(holder)
			row[pVolFallen] = s.fainted[holder.Side]
			if row[pVolFallen] > 0 {
				s.log.add(Record{Kind: RecAbilityActivate, Turn: s.turn,
					Side: holder.Side, Slot: holder.Slot, Source: "Supreme Overlord"})
			}
		},
		onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
			fallen := s.activeRow(holder)[pVolFallen]
			if fallen > 5 {
				fallen = 5
			}
			return bp * overlordMultipliers[fallen] / 4096
		},
	})

	registerEffect(&effect{
		key: "adaptability",
		onModifySTAB: func(s *State, holder Ref, mc *moveContext, num, den int32) (int32, int32) {
			if num > den { // only upgrades an existing STAB
				return 2, 1
			}
			return num, den
		},
	})

	registerEffect(&effect{
		key: "guts",
		onModifyStat: func(s *State, holder Ref, stat dex.Stat, val int32) int32 {
			row := s.activeRow(holder)
			if stat == dex.Atk && s.status(row) != dex.StatusNone {
				return val * 3 / 2
			}
			return val
		},
	})

	registerEffect(&effect{
		key: "thickfat",
		onModifyDamage: func(s *State, holder Ref, mc *moveContext, dmg int32) int32 {
			// Halves incoming Fire and Ice damage.
			if holder == mc.target && (mc.moveType == dex.Fire || mc.moveType == dex.Ice) {
				return dmg / 2
			}
			return dmg
		},
	})

	registerEffect(&effect{
		key: "sheerforce",
		onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
			// The secondary suppression lives in the pipeline.
			if len(mc.move.Secondaries) > 0 {
				return bp * 5325 / 4096
			}
			return bp
		},
	})

	registerEffect(&effect{
		key: "roughskin",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			if !mc.move.Flags.Has(dex.FlagContact) {
				return
			}
			att := s.activeRow(mc.attacker)
			if att == nil || s.isFainted(att) {
				return
			}
			s.applyDamage(mc.attacker, s.maxHP(att)/8, "Rough Skin")
		},
	})

	registerEffect(&effect{
		key: "ironbarbs",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			if !mc.move.Flags.Has(dex.FlagContact) {
				return
			}
			att := s.activeRow(mc.attacker)
			if att == nil || s.isFainted(att) {
				return
			}
			s.applyDamage(mc.attacker, s.maxHP(att)/8, "Iron Barbs")
		},
	})

	registerEffect(&effect{
		key: "static",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			if !mc.move.Flags.Has(dex.FlagContact) {
				return
			}
			// The chance draw always fires so the RNG stream stays
			// aligned regardless of the outcome.
			hit := s.rng.Chance(30, 100)
			att := s.activeRow(mc.attacker)
			if hit && att != nil && !s.isFainted(att) {
				s.setStatus(mc.attacker, dex.StatusParalysis, "Static")
			}
		},
	})

	registerEffect(&effect{
		key: "flamebody",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			if !mc.move.Flags.Has(dex.FlagContact) {
				return
			}
			hit := s.rng.Chance(30, 100)
			att := s.activeRow(mc.attacker)
			if hit && att != nil && !s.isFainted(att) {
				s.setStatus(mc.attacker, dex.StatusBurn, "Flame Body")
			}
		},
	})

	registerEffect(&effect{
		key: "speedboost",
		onResidual: func(s *State, holder Ref) {
			row := s.activeRow(holder)
			// No boost on the turn the holder switched in.
			if row[pVolActiveTurns] > 0 {
				s.modifyStage(holder, dex.BoostSpe, 1, false, "Speed Boost")
			}
		},
		residualOrder: residualSpeedBoost,
	})

	registerEffect(&effect{
		key: "regenerator",
		onSwitchOut: func(s *State, holder Ref) {
			row := s.activeRow(holder)
			if row == nil || s.isFainted(row) {
				return
			}
			heal := s.maxHP(row) / 3
			if room := s.maxHP(row) - s.currentHP(row); heal > room {
				heal = room
			}
			// Healed silently on the way out; the log shows the switch.
			row[pCurrentHP] += heal
		},
	})

	registerEffect(&effect{
		key: "drizzle",
		onSwitchIn: func(s *State, holder Ref) {
			s.startWeather(dex.WeatherRain, "Drizzle")
		},
	})

	registerEffect(&effect{
		key: "drought",
		onSwitchIn: func(s *State, holder Ref) {
			s.startWeather(dex.WeatherSun, "Drought")
		},
	})

	registerEffect(&effect{
		key: "sandstream",
		onSwitchIn: func(s *State, holder Ref) {
			s.startWeather(dex.WeatherSand, "Sand Stream")
		},
	})

	registerEffect(&effect{
		key: "grassysurge",
		onSwitchIn: func(s *State, holder Ref) {
			s.startTerrain(dex.TerrainGrassy, "Grassy Surge")
		},
	})

	for _, pinch := range []struct {
		key string
		typ dex.Type
	}{
		{"blaze", dex.Fire},
		{"torrent", dex.Water},
		{"overgrow", dex.Grass},
	} {
		typ := pinch.typ
		registerEffect(&effect{
			key: pinch.key,
			onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
				row := s.activeRow(holder)
				if mc.moveType == typ && s.currentHP(row)*3 <= s.maxHP(row) {
					return bp * 3 / 2
				}
				return bp
			},
		})
	}

	// Clear Body blocks opposing stat drops inside modifyStage; Inner
	// Focus blocks flinches in the pre-move gate and Intimidate above.
	// Both still need registry entries so binding succeeds.
	registerEffect(&effect{key: "clearbody"})
	registerEffect(&effect{key: "innerfocus"})
	// Sturdy, Infiltrator, and Shield Dust are interpreted by the
	// damage pipeline at their exact specified steps.
	registerEffect(&effect{key: "sturdy"})
	registerEffect(&effect{key: "infiltrator"})
	registerEffect(&effect{key: "shielddust"})
}
