package battle

import (
	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// Move execution pipeline. Every random decision draws from the battle
// generator in a fixed order, so a seed plus an action sequence replays to
// an identical log.

// hitCounts is the 2-5 multi-hit distribution: 7/20 each for 2 and 3
// hits, 3/20 each for 4 and 5.
var hitCounts = [20]int32{
	2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3,
	4, 4, 4,
	5, 5, 5,
}

// critChances maps the effective crit stage to a hit probability.
var critChances = [4]dex.Fraction{
	{Num: 1, Den: 24},
	{Num: 1, Den: 8},
	{Num: 1, Den: 2},
	{Num: 1, Den: 1},
}

// --- pre-move gates ---------------------------------------------------

// preMoveGates runs the checks that can stop a Pokémon from moving at
// all: flinch, sleep, freeze, full paralysis, and confusion. Returns
// false when the move is cancelled. Gate draws happen in this fixed
// order.
func (s *State) preMoveGates(attacker Ref) bool {
	row := s.activeRow(attacker)

	if row[pVolFlinch] != 0 {
		s.log.add(Record{Kind: RecFail, Turn: s.turn,
			Side: attacker.Side, Slot: attacker.Slot, Reason: "flinch"})
		return false
	}

	switch s.status(row) {
	case dex.StatusSleep:
		if row[pStatusCounter] <= 0 {
			s.cureStatus(attacker, "woke up")
		} else {
			row[pStatusCounter]--
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Reason: "asleep"})
			return false
		}
	case dex.StatusFreeze:
		if s.rng.Chance(1, 5) {
			s.cureStatus(attacker, "thawed")
		} else {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Reason: "frozen"})
			return false
		}
	case dex.StatusParalysis:
		if s.rng.Chance(1, 4) {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Reason: "paralyzed"})
			return false
		}
	}

	if row[pVolConfusion] > 0 {
		row[pVolConfusion]--
		if row[pVolConfusion] == 0 {
			s.log.add(Record{Kind: RecVolatileEnd, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Condition: "Confusion"})
		} else if s.rng.Chance(33, 100) {
			s.confusionSelfHit(attacker)
			return false
		}
	}

	return true
}

// confusionSelfHit deals the 40 base-power typeless physical self-hit.
// No STAB, no crit, no type effectiveness; the random roll still applies.
func (s *State) confusionSelfHit(ref Ref) {
	row := s.activeRow(ref)
	level := row[pLevel]
	atk := s.stagedStat(row, dex.Atk, false)
	def := s.stagedStat(row, dex.Def, false)
	dmg := ((2*level/5+2)*40*atk/def)/50 + 2
	dmg = dmg * int32(s.rng.Range(85, 100)) / 100
	if dmg < 1 {
		dmg = 1
	}
	s.applyDamage(ref, dmg, "confusion")
}

// --- stat and power computation ----------------------------------------

// stagedStat reads a combat stat with its stage multiplier applied.
// Crits ignore stages that would weaken the hit: negative attacker
// stages and positive defender stages. Wonder Room swaps the raw Def and
// SpD columns, not the stages.
func (s *State) stagedStat(row []int32, stat dex.Stat, critIgnoreNeg bool) int32 {
	col := pStatHP + int32(stat)
	if s.field[fWonderRoom] > 0 {
		switch stat {
		case dex.Def:
			col = pStatHP + int32(dex.SpD)
		case dex.SpD:
			col = pStatHP + int32(dex.Def)
		}
	}
	val := row[col]
	stage := row[pStageAtk+int32(stat)-1] // stage axes skip HP
	if stat == dex.HP {
		return val
	}
	if critIgnoreNeg && stage < 0 {
		stage = 0
	}
	num, den := dex.StageMultiplier(int(stage))
	return val * int32(num) / int32(den)
}

func (s *State) defenderStat(row []int32, stat dex.Stat, critIgnorePos bool) int32 {
	col := pStatHP + int32(stat)
	if s.field[fWonderRoom] > 0 {
		switch stat {
		case dex.Def:
			col = pStatHP + int32(dex.SpD)
		case dex.SpD:
			col = pStatHP + int32(dex.Def)
		}
	}
	val := row[col]
	stage := row[pStageAtk+int32(stat)-1]
	if critIgnorePos && stage > 0 {
		stage = 0
	}
	num, den := dex.StageMultiplier(int(stage))
	return val * int32(num) / int32(den)
}

// weightPower maps a target weight in hectograms to the classic kick
// tiers, or a relative-weight tier for slam moves.
func weightPower(move *dex.Move, userHg, targetHg int32) int32 {
	if move.Key == "heavyslam" {
		if targetHg < 1 {
			targetHg = 1
		}
		switch ratio := userHg / targetHg; {
		case ratio >= 5:
			return 120
		case ratio == 4:
			return 100
		case ratio == 3:
			return 80
		case ratio == 2:
			return 60
		default:
			return 40
		}
	}
	switch {
	case targetHg >= 2000:
		return 120
	case targetHg >= 1000:
		return 100
	case targetHg >= 500:
		return 80
	case targetHg >= 250:
		return 60
	case targetHg >= 100:
		return 40
	default:
		return 20
	}
}

// effectiveBasePower resolves variable base power, then folds the
// attacker's base-power handlers.
func (s *State) effectiveBasePower(mc *moveContext) int32 {
	att := s.activeRow(mc.attacker)
	def := s.activeRow(mc.target)
	bp := mc.move.BasePower

	switch mc.move.PowerFrom {
	case dex.PowerWeight:
		userHg, targetHg := int32(0), int32(0)
		if sp := s.species(att); sp != nil {
			userHg = sp.WeightHg
		}
		if sp := s.species(def); sp != nil {
			targetHg = sp.WeightHg
		}
		bp = weightPower(mc.move, userHg, targetHg)
	case dex.PowerHPRatio:
		bp = bp * s.currentHP(att) / s.maxHP(att)
		if bp < 1 {
			bp = 1
		}
	case dex.PowerFallen:
		bp = 50 * (1 + s.fainted[mc.attacker.Side])
	case dex.PowerFacade:
		if s.status(att) != dex.StatusNone {
			bp *= 2
		}
	case dex.PowerHex:
		if s.status(def) != dex.StatusNone {
			bp *= 2
		}
	case dex.PowerAcrobatics:
		if s.item(att) == 0 {
			bp *= 2
		}
	}

	return s.disp.basePower(s, mc, bp)
}

// computeDamage runs the full formula and modifier chain for one hit
// against one target, consuming exactly one random roll. The caller has
// already resolved crit and type effectiveness into mc.
func (s *State) computeDamage(mc *moveContext) int32 {
	att := s.activeRow(mc.attacker)
	def := s.activeRow(mc.target)
	level := att[pLevel]

	bp := s.effectiveBasePower(mc)

	var aStat, dStat dex.Stat
	if mc.move.Category == dex.Physical {
		aStat, dStat = dex.Atk, dex.Def
	} else {
		aStat, dStat = dex.SpA, dex.SpD
	}
	atk := s.stagedStat(att, aStat, mc.crit)
	atk = s.disp.modifyStat(s, mc.attacker, aStat, atk)
	defense := s.defenderStat(def, dStat, mc.crit)
	defense = s.disp.modifyStat(s, mc.target, dStat, defense)
	// Sandstorm grants Rock types half again their Special Defense.
	if dStat == dex.SpD && s.weather() == dex.WeatherSand && s.hasType(def, dex.Rock) {
		defense = defense * 3 / 2
	}
	if defense < 1 {
		defense = 1
	}

	dmg := ((2*level/5+2)*bp*atk/defense)/50 + 2

	if mc.spread {
		dmg = dmg * 3 / 4
	}

	switch s.weather() {
	case dex.WeatherSun:
		if mc.moveType == dex.Fire {
			dmg = dmg * 3 / 2
		} else if mc.moveType == dex.Water {
			dmg /= 2
		}
	case dex.WeatherRain:
		if mc.moveType == dex.Water {
			dmg = dmg * 3 / 2
		} else if mc.moveType == dex.Fire {
			dmg /= 2
		}
	}

	if mc.crit {
		dmg = dmg * 3 / 2
	}

	dmg = dmg * int32(s.rng.Range(85, 100)) / 100

	if num, den := s.stabModifier(att, mc); num != den {
		dmg = dmg * num / den
	}

	dmg = dmg * mc.effNum / mc.effDen

	// Burn halves physical damage unless Guts powers through it or the
	// move is Facade.
	if mc.move.Category == dex.Physical && s.status(att) == dex.StatusBurn &&
		!s.hasAbility(att, "guts") && mc.move.PowerFrom != dex.PowerFacade {
		dmg /= 2
	}

	if num, den := s.screenModifier(mc); num != den {
		dmg = dmg * num / den
	}

	dmg = s.disp.modifyDamage(s, mc, dmg)

	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// stabModifier folds the same-type bonus, the Tera upgrade, and the
// attacker's STAB handlers into one rational.
func (s *State) stabModifier(att []int32, mc *moveContext) (int32, int32) {
	if mc.move.Typeless {
		return 1, 1
	}
	num, den := int32(1), int32(1)
	tera := att[pTeraType]
	switch {
	case tera >= 0 && dex.Type(tera) == mc.moveType:
		if s.baseHasType(att, mc.moveType) {
			num, den = 2, 1
		} else {
			num, den = 3, 2
		}
	case s.baseHasType(att, mc.moveType):
		num, den = 3, 2
	}
	return s.disp.modifySTAB(s, mc, num, den)
}

// screenModifier returns the defending side's screen factor. Crits and
// Infiltrator bypass screens.
func (s *State) screenModifier(mc *moveContext) (int32, int32) {
	if mc.crit || s.hasAbility(s.activeRow(mc.attacker), "infiltrator") {
		return 1, 1
	}
	side := s.sides[mc.target.Side]
	active := side[scAuroraVeil] > 0
	if !active {
		if mc.move.Category == dex.Physical {
			active = side[scReflect] > 0
		} else {
			active = side[scLightScreen] > 0
		}
	}
	if !active {
		return 1, 1
	}
	if s.format.ActiveSlots == 1 || s.format.HalvedScreens {
		return 1, 2
	}
	return 2732, 4096
}

// --- move execution ---------------------------------------------------

// useMove executes one chosen move. slot is the attacker's move slot, or
// -1 for Struggle. Returns whether at least one target was hit, which
// drives pivot switches.
func (s *State) useMove(attacker Ref, slot int32, explicitTarget Ref) bool {
	row := s.activeRow(attacker)
	if row == nil || s.isFainted(row) {
		return false
	}

	if !s.preMoveGates(attacker) {
		return false
	}

	var move *dex.Move
	if slot < 0 {
		move = s.reg.Move(s.reg.StruggleID())
	} else {
		move = s.reg.Move(s.moveID(row, slot))
	}
	s.invariant(move != nil, "unknown move in slot %d for %v", slot, attacker)

	if slot >= 0 {
		s.spendPP(attacker, slot)
	}
	row[pVolLastMove] = move.ID
	row[pVolMovedThisTurn] = 1

	targets := s.resolveTargets(attacker, move, explicitTarget)
	s.log.add(Record{Kind: RecMove, Turn: s.turn,
		Side: attacker.Side, Slot: attacker.Slot, Move: move.Name, Targets: targets})

	// Choice items lock the first move used while holding one.
	if slot >= 0 && row[pVolChoiceLock] == 0 {
		if item := s.reg.Item(s.item(row)); item != nil && item.Category == dex.ItemChoice {
			row[pVolChoiceLock] = slot + 1
		}
	}

	if !s.moveUsable(attacker, move, targets) {
		return false
	}

	if move.Category == dex.StatusMove {
		return s.runStatusMove(attacker, move, targets)
	}
	return s.runDamagingMove(attacker, move, targets)
}

// moveUsable applies the choice-dependent failure conditions that fire
// after the move is announced and PP is spent.
func (s *State) moveUsable(attacker Ref, move *dex.Move, targets []Ref) bool {
	row := s.activeRow(attacker)

	switch move.Key {
	case "fakeout":
		if row[pVolActiveTurns] > 0 {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Move: move.Name, Reason: "not first turn out"})
			return false
		}
	case "suckerpunch":
		ok := false
		for _, t := range targets {
			trow := s.activeRow(t)
			if trow == nil || trow[pVolMovedThisTurn] != 0 {
				continue
			}
			if chosen := s.reg.Move(s.chosen[t.Side][t.Slot]); chosen != nil && chosen.Category != dex.StatusMove {
				ok = true
			}
		}
		if !ok {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Move: move.Name, Reason: "target not attacking"})
			return false
		}
	}
	return true
}

// runStatusMove executes a non-damaging move.
func (s *State) runStatusMove(attacker Ref, move *dex.Move, targets []Ref) bool {
	row := s.activeRow(attacker)

	if move.IsProtect {
		uses := row[pVolProtectUses]
		if uses > 0 {
			den := int32(1)
			for i := int32(0); i < uses && den < 729; i++ {
				den *= 3
			}
			if !s.rng.Chance(1, int(den)) {
				row[pVolProtectUses] = 0
				s.log.add(Record{Kind: RecFail, Turn: s.turn,
					Side: attacker.Side, Slot: attacker.Slot, Move: move.Name})
				return false
			}
		}
		row[pVolProtect] = 1
		row[pVolProtectUses] = uses + 1
		s.log.add(Record{Kind: RecVolatile, Turn: s.turn,
			Side: attacker.Side, Slot: attacker.Slot, Condition: "Protect"})
		return true
	}

	if move.FieldCondition != dex.FieldNone {
		if !s.startField(move.FieldCondition, move.Name) {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Move: move.Name})
			return false
		}
		return true
	}

	if move.SideCondition != dex.SideNone {
		side := attacker.Side
		if move.Target == dex.TargetFoeSide {
			side = 1 - attacker.Side
		}
		if !s.startSideCondition(side, move.SideCondition, move.Name) {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: attacker.Side, Slot: attacker.Slot, Move: move.Name})
			return false
		}
		return true
	}

	if move.Target == dex.TargetSelf {
		return s.runSelfStatus(attacker, move)
	}

	// Targeted status moves go through accuracy, Protect, and immunity
	// like an attack.
	hitAny := false
	for _, target := range targets {
		trow := s.activeRow(target)
		if trow == nil || s.isFainted(trow) {
			continue
		}
		if move.Flags.Has(dex.FlagProtect) && trow[pVolProtect] != 0 {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: target.Side, Slot: target.Slot, Move: move.Name, Condition: "Protect"})
			continue
		}
		mc := &moveContext{attacker: attacker, target: target, move: move, moveType: move.Type}
		if !s.accuracyCheck(mc) {
			continue
		}
		// Powder moves never affect Grass types; a type immune to the
		// move's own type blocks it (Thunder Wave on Ground).
		if move.Flags.Has(dex.FlagPowder) && s.hasType(trow, dex.Grass) {
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: target.Side, Slot: target.Slot, Reason: move.Name})
			continue
		}
		if move.InflictStatus != dex.StatusNone {
			t1, t2 := s.types(trow)
			if num, _ := dex.CombinedEffectiveness(move.Type, t1, t2); num == 0 {
				s.log.add(Record{Kind: RecImmune, Turn: s.turn,
					Side: target.Side, Slot: target.Slot, Reason: move.Name})
				continue
			}
		}
		if s.disp.tryHit(s, target, mc) != tryHitPass {
			continue
		}

		applied := false
		if move.InflictStatus != dex.StatusNone {
			applied = s.setStatus(target, move.InflictStatus, move.Name)
		}
		if move.InflictVolatile != dex.VolatileNone {
			applied = s.applyMoveVolatile(target, move.InflictVolatile, move.Name) || applied
		}
		for b := int32(0); b < dex.NumBoosts; b++ {
			if d := int32(move.Boosts[b]); d != 0 {
				if s.modifyStage(target, dex.Boost(b), d, target.Side != attacker.Side, move.Name) != 0 {
					applied = true
				}
			}
		}
		if !applied {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: target.Side, Slot: target.Slot, Move: move.Name})
			continue
		}
		hitAny = true
	}
	return hitAny
}

// runSelfStatus handles heals, self boosts, and self-inflicted volatiles.
func (s *State) runSelfStatus(attacker Ref, move *dex.Move) bool {
	row := s.activeRow(attacker)
	applied := false

	if !move.HealFraction.IsZero() {
		amount := s.maxHP(row) * move.HealFraction.Num / move.HealFraction.Den
		if s.applyHeal(attacker, amount, move.Name) > 0 {
			applied = true
		}
	}
	for b := int32(0); b < dex.NumBoosts; b++ {
		if d := int32(move.SelfBoosts[b]); d != 0 {
			if s.modifyStage(attacker, dex.Boost(b), d, false, move.Name) != 0 {
				applied = true
			}
		}
	}
	if move.InflictVolatile != dex.VolatileNone {
		applied = s.applyMoveVolatile(attacker, move.InflictVolatile, move.Name) || applied
	}
	if !applied {
		s.log.add(Record{Kind: RecFail, Turn: s.turn,
			Side: attacker.Side, Slot: attacker.Slot, Move: move.Name})
	}
	return applied
}

// applyMoveVolatile sets a volatile condition, returning whether it took
// effect.
func (s *State) applyMoveVolatile(target Ref, kind dex.VolatileKind, source string) bool {
	row := s.activeRow(target)
	if row == nil || s.isFainted(row) {
		return false
	}
	ok := false
	var name string
	switch kind {
	case dex.VolatileConfusion:
		if row[pVolConfusion] > 0 || s.sides[target.Side][scSafeguard] > 0 {
			break
		}
		if s.terrain() == dex.TerrainMisty && s.grounded(row) {
			break
		}
		row[pVolConfusion] = int32(s.rng.Range(2, 5))
		ok, name = true, "Confusion"
	case dex.VolatileLeechSeed:
		if row[pVolLeechSeed] != 0 || s.hasType(row, dex.Grass) {
			break
		}
		row[pVolLeechSeed] = 1
		ok, name = true, "Leech Seed"
	case dex.VolatileSubstitute:
		cost := s.maxHP(row) / 4
		if row[pVolSubstituteHP] > 0 || s.currentHP(row) <= cost {
			break
		}
		s.applyDamage(target, cost, source)
		row[pVolSubstituteHP] = cost
		ok, name = true, "Substitute"
	case dex.VolatileEncore:
		last := row[pVolLastMove]
		if row[pVolEncore] > 0 || last == 0 {
			break
		}
		for slot := int32(0); slot < 4; slot++ {
			if s.moveID(row, slot) == last {
				row[pVolEncore] = encoreTurns
				row[pVolEncoreMove] = slot + 1
				ok, name = true, "Encore"
				break
			}
		}
	case dex.VolatileTaunt:
		if row[pVolTaunt] > 0 {
			break
		}
		row[pVolTaunt] = tauntTurns
		ok, name = true, "Taunt"
	case dex.VolatileDisable:
		last := row[pVolLastMove]
		if row[pVolDisableSlot] != 0 || last == 0 {
			break
		}
		for slot := int32(0); slot < 4; slot++ {
			if s.moveID(row, slot) == last {
				row[pVolDisableSlot] = slot + 1
				row[pVolDisableTurns] = disableTurns
				ok, name = true, "Disable"
				break
			}
		}
	case dex.VolatileFocusEnergy:
		if row[pVolFocusEnergy] != 0 {
			break
		}
		row[pVolFocusEnergy] = 1
		ok, name = true, "Focus Energy"
	}
	if ok {
		s.log.add(Record{Kind: RecVolatile, Turn: s.turn,
			Side: target.Side, Slot: target.Slot, Condition: name, Source: source})
	}
	return ok
}

// accuracyCheck rolls the to-hit draw. Accuracy and evasion stages
// combine additively before the stage multiplier applies.
func (s *State) accuracyCheck(mc *moveContext) bool {
	if mc.move.Accuracy == dex.AccuracyAlways {
		return true
	}
	att := s.activeRow(mc.attacker)
	def := s.activeRow(mc.target)
	stage := att[pStageAcc] - def[pStageEva]
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}
	num, den := dex.AccuracyStageMultiplier(int(stage))
	acc := mc.move.Accuracy * int32(num) / int32(den)
	acc = s.disp.modifyAccuracy(s, mc, acc)
	if acc > 100 {
		acc = 100
	}
	if s.rng.Chance(int(acc), 100) {
		return true
	}
	s.log.add(Record{Kind: RecMiss, Turn: s.turn,
		Side: mc.attacker.Side, Slot: mc.attacker.Slot, Move: mc.move.Name,
		Targets: []Ref{mc.target}})
	return false
}

// runDamagingMove executes an attack against every resolved target.
func (s *State) runDamagingMove(attacker Ref, move *dex.Move, targets []Ref) bool {
	row := s.activeRow(attacker)
	hitAny := false
	var totalDealt int32

	spread := move.Target.Spread() && len(targets) > 1

	for _, target := range targets {
		trow := s.activeRow(target)
		if trow == nil || s.isFainted(trow) {
			continue
		}
		if move.Flags.Has(dex.FlagProtect) && trow[pVolProtect] != 0 {
			s.log.add(Record{Kind: RecFail, Turn: s.turn,
				Side: target.Side, Slot: target.Slot, Move: move.Name, Condition: "Protect"})
			continue
		}

		mc := &moveContext{
			attacker: attacker, target: target,
			move: move, moveType: move.Type, spread: spread,
		}
		mc.moveType = s.disp.modifyType(s, attacker, mc, mc.moveType)

		if !s.accuracyCheck(mc) {
			continue
		}
		if s.disp.tryHit(s, target, mc) != tryHitPass {
			continue
		}

		if move.Typeless {
			mc.effNum, mc.effDen = 1, 1
		} else {
			t1, t2 := s.types(trow)
			n, d := dex.CombinedEffectiveness(mc.moveType, t1, t2)
			mc.effNum, mc.effDen = int32(n), int32(d)
		}
		if mc.effNum == 0 {
			s.log.add(Record{Kind: RecImmune, Turn: s.turn,
				Side: target.Side, Slot: target.Slot, Reason: move.Name})
			continue
		}
		if mc.effNum != mc.effDen {
			s.log.add(Record{Kind: RecEffectiveness, Turn: s.turn,
				Side: target.Side, Slot: target.Slot,
				MultNum: mc.effNum, MultDen: mc.effDen})
		}

		hits := int32(1)
		if move.MultiHit() {
			if move.HitsMin == 2 && move.HitsMax == 5 {
				hits = hitCounts[s.rng.Next(len(hitCounts))]
			} else {
				hits = int32(s.rng.Range(int(move.HitsMin), int(move.HitsMax)))
			}
		}

		var dealtToTarget int32
		for h := int32(0); h < hits; h++ {
			if s.isFainted(trow) || s.isFainted(row) {
				break
			}
			mc.crit = s.rollCrit(row, move)
			if mc.crit {
				s.log.add(Record{Kind: RecCrit, Turn: s.turn,
					Side: target.Side, Slot: target.Slot})
			}

			var dmg int32
			switch {
			case move.FixedDamage > 0:
				dmg = move.FixedDamage
			case move.LevelDamage:
				dmg = row[pLevel]
			default:
				dmg = s.computeDamage(mc)
			}

			dealt, subHit := s.dealMoveDamage(mc, dmg)
			mc.damage = dealt
			dealtToTarget += dealt

			if !subHit {
				trow[pVolTookHitThisTurn] = 1
				if !move.Drain.IsZero() && dealt > 0 {
					heal := dealt * move.Drain.Num / move.Drain.Den
					if heal < 1 {
						heal = 1
					}
					s.applyHeal(attacker, heal, move.Name)
				}
				s.applySecondaries(mc)
				s.disp.damagingHit(s, target, mc)
			}
			hitAny = true
		}
		totalDealt += dealtToTarget

		// Knock Off removes the target's item after damage.
		if move.Key == "knockoff" && dealtToTarget > 0 && !s.isFainted(trow) && trow[pItem] != 0 {
			s.consumeItem(target, move.Name)
		}
	}

	if hitAny {
		for b := int32(0); b < dex.NumBoosts; b++ {
			if d := int32(move.SelfBoosts[b]); d != 0 {
				s.modifyStage(attacker, dex.Boost(b), d, false, move.Name)
			}
		}
		if !move.Recoil.IsZero() && totalDealt > 0 && !s.isFainted(row) {
			recoil := totalDealt * move.Recoil.Num / move.Recoil.Den
			if recoil < 1 {
				recoil = 1
			}
			s.applyDamage(attacker, recoil, "recoil")
		}
		if !move.StruggleRecoil.IsZero() && !s.isFainted(row) {
			s.applyDamage(attacker, s.maxHP(row)*move.StruggleRecoil.Num/move.StruggleRecoil.Den, "struggle recoil")
		}
	}

	mc := &moveContext{attacker: attacker, move: move, moveType: move.Type, damage: totalDealt}
	s.disp.afterMove(s, attacker, mc, hitAny)

	return hitAny
}

// rollCrit draws the critical-hit check for one hit.
func (s *State) rollCrit(att []int32, move *dex.Move) bool {
	stage := int32(0)
	if move.CritRatio > 1 {
		stage += move.CritRatio - 1
	}
	if att[pVolFocusEnergy] != 0 {
		stage += 2
	}
	if stage > 3 {
		stage = 3
	}
	c := critChances[stage]
	return s.rng.Chance(int(c.Num), int(c.Den))
}

// dealMoveDamage routes one hit's damage to the substitute or the
// Pokémon, honoring Sturdy and Focus Sash on direct hits.
func (s *State) dealMoveDamage(mc *moveContext, dmg int32) (int32, bool) {
	trow := s.activeRow(mc.target)
	att := s.activeRow(mc.attacker)

	if trow[pVolSubstituteHP] > 0 &&
		!mc.move.Flags.Has(dex.FlagSound) && !mc.move.Flags.Has(dex.FlagBypassSub) &&
		!s.hasAbility(att, "infiltrator") {
		if dmg >= trow[pVolSubstituteHP] {
			trow[pVolSubstituteHP] = 0
			s.log.add(Record{Kind: RecVolatileEnd, Turn: s.turn,
				Side: mc.target.Side, Slot: mc.target.Slot, Condition: "Substitute"})
		} else {
			trow[pVolSubstituteHP] -= dmg
		}
		return 0, true
	}

	// Full-HP survival: Sturdy first, then Focus Sash (consumed).
	if dmg >= s.currentHP(trow) && s.currentHP(trow) == s.maxHP(trow) {
		if s.hasAbility(trow, "sturdy") {
			dmg = s.currentHP(trow) - 1
			s.log.add(Record{Kind: RecAbilityActivate, Turn: s.turn,
				Side: mc.target.Side, Slot: mc.target.Slot, Source: "Sturdy"})
		} else if s.hasItem(trow, "focussash") {
			dmg = s.currentHP(trow) - 1
			s.consumeItem(mc.target, "Focus Sash")
		}
	}

	return s.applyDamage(mc.target, dmg, mc.move.Name), false
}

// applySecondaries rolls each declared secondary once. Sheer Force
// suppresses them entirely; Shield Dust and Covert Cloak block effects
// on the target after the draw, keeping the stream aligned.
func (s *State) applySecondaries(mc *moveContext) {
	att := s.activeRow(mc.attacker)
	if s.hasAbility(att, "sheerforce") {
		return
	}
	trow := s.activeRow(mc.target)

	for i := range mc.move.Secondaries {
		sec := &mc.move.Secondaries[i]
		if !s.rng.Chance(int(sec.Chance), 100) {
			continue
		}

		targetBlocked := s.hasAbility(trow, "shielddust") || s.hasItem(trow, "covertcloak")

		if !targetBlocked && !s.isFainted(trow) {
			if sec.Status != dex.StatusNone {
				s.setStatus(mc.target, sec.Status, mc.move.Name)
			}
			if sec.Volatile != dex.VolatileNone {
				s.applyMoveVolatile(mc.target, sec.Volatile, mc.move.Name)
			}
			if sec.Flinch && trow[pVolMovedThisTurn] == 0 && !s.hasAbility(trow, "innerfocus") {
				trow[pVolFlinch] = 1
			}
			for b := int32(0); b < dex.NumBoosts; b++ {
				if d := int32(sec.Boosts[b]); d != 0 {
					s.modifyStage(mc.target, dex.Boost(b), d, true, mc.move.Name)
				}
			}
		}
		for b := int32(0); b < dex.NumBoosts; b++ {
			if d := int32(sec.SelfBoosts[b]); d != 0 {
				s.modifyStage(mc.attacker, dex.Boost(b), d, false, mc.move.Name)
			}
		}
	}
}

// resolveTargets expands a targeting mode into concrete positions,
// retargeting single-target moves whose chosen target is gone.
func (s *State) resolveTargets(attacker Ref, move *dex.Move, explicit Ref) []Ref {
	switch move.Target {
	case dex.TargetSelf:
		return []Ref{attacker}
	case dex.TargetAllySide, dex.TargetFoeSide, dex.TargetAll:
		return nil
	case dex.TargetAllAdjacent:
		var out []Ref
		for _, r := range s.foesOf(attacker) {
			if s.occupied(r) {
				out = append(out, r)
			}
		}
		for _, r := range s.alliesOf(attacker) {
			if s.occupied(r) {
				out = append(out, r)
			}
		}
		return out
	case dex.TargetAllAdjacentFoes:
		var out []Ref
		for _, r := range s.foesOf(attacker) {
			if s.occupied(r) {
				out = append(out, r)
			}
		}
		return out
	case dex.TargetRandomFoe:
		var live []Ref
		for _, r := range s.foesOf(attacker) {
			if s.occupied(r) {
				live = append(live, r)
			}
		}
		if len(live) == 0 {
			return nil
		}
		if len(live) == 1 {
			return live[:1]
		}
		return []Ref{live[s.rng.Next(len(live))]}
	case dex.TargetAdjacentAlly:
		if s.occupied(explicit) && explicit.Side == attacker.Side {
			return []Ref{explicit}
		}
		return nil
	}

	// Single adjacent target: keep the chosen position while it is
	// occupied, otherwise redirect to the first live foe.
	if s.occupied(explicit) && explicit != attacker {
		return []Ref{explicit}
	}
	for _, r := range s.foesOf(attacker) {
		if s.occupied(r) {
			return []Ref{r}
		}
	}
	return nil
}
