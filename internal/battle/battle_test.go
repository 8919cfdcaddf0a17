package battle

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
	"github.com/vgcsim/vgc-replay-go/internal/rng"
)

func member(species, ability string, moves ...string) TeamMember {
	return TeamMember{
		Species: species,
		Level:   50,
		Nature:  "Hardy",
		Ability: ability,
		Moves:   moves,
		IVs:     [6]int32{31, 31, 31, 31, 31, 31},
	}
}

func newSingles(t *testing.T, seed uint32, team0, team1 []TeamMember) *Battle {
	t.Helper()
	b, err := New(Config{
		Seed:   seed,
		Format: Format{Sides: 2, TeamSize: int32(len(team0)), ActiveSlots: 1},
		Teams:  [][]TeamMember{team0, team1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func attack(side int32) Action {
	return Action{Side: side, Slot: 0, Type: ActionMove, MoveSlot: 0, Target: Ref{Side: 1 - side, Slot: 0}}
}

// firstLegalPerSlot picks the first legal action for every slot that owes
// a decision, in both the action and forced-switch phases.
func firstLegalPerSlot(t *testing.T, b *Battle) []Action {
	t.Helper()
	var acts []Action
	for side := int32(0); side < 2; side++ {
		legal, err := b.LegalActions(side)
		if err != nil {
			t.Fatalf("LegalActions(%d): %v", side, err)
		}
		seen := map[int32]bool{}
		for _, a := range legal {
			if !seen[a.Slot] {
				seen[a.Slot] = true
				acts = append(acts, a)
			}
		}
	}
	return acts
}

func recordsOfKind(b *Battle, kind RecordKind) []Record {
	var out []Record
	for _, r := range b.Log().Records() {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestReplayDeterminism(t *testing.T) {
	// Twenty turns over teams that paralyze, chip with sandstorm, and
	// faint into forced switches, so the replay law covers the status,
	// residual, and faint paths too.
	run := func() *Battle {
		b := newSingles(t, 42,
			[]TeamMember{member("Snorlax", "Thick Fat", "Body Slam", "Crunch"), member("Machamp", "Guts", "Close Combat")},
			[]TeamMember{member("Gyarados", "Intimidate", "Waterfall"), member("Tyranitar", "Sand Stream", "Crunch")})
		for i := 0; i < 20 && b.Phase() != PhaseEnded; i++ {
			acts := firstLegalPerSlot(t, b)
			var err error
			if b.Phase() == PhaseAwaitingSwitches {
				_, err = b.SubmitSwitches(acts)
			} else {
				_, err = b.Step(acts)
			}
			if err != nil {
				t.Fatalf("submit %d: %v", i, err)
			}
		}
		return b
	}
	b1, b2 := run(), run()

	log1, err := b1.Log().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	log2, _ := b2.Log().Marshal()
	if !bytes.Equal(log1, log2) {
		t.Fatalf("logs diverged:\n%s\n---\n%s", log1, log2)
	}
	if b1.Hash() != b2.Hash() {
		t.Fatalf("hashes diverged: %s vs %s", b1.Hash(), b2.Hash())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	run := func(seed uint32) string {
		b := newSingles(t, seed,
			[]TeamMember{member("Gyarados", "Intimidate", "Waterfall")},
			[]TeamMember{member("Tyranitar", "Sand Stream", "Crunch")})
		if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
			t.Fatalf("Step: %v", err)
		}
		return b.Hash()
	}
	if run(1) == run(99) {
		t.Fatal("distinct seeds produced identical states after a damage roll")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := newSingles(t, 7,
		[]TeamMember{member("Snorlax", "Thick Fat", "Tackle")},
		[]TeamMember{member("Snorlax", "Guts", "Tackle")})
	if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	restored, err := RestoreSnapshot(nil, b.Snapshot())
	if err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}
	if restored.Hash() != b.Hash() {
		t.Fatalf("restored hash %s != original %s", restored.Hash(), b.Hash())
	}

	// Both must evolve identically from the restored point.
	if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step original: %v", err)
	}
	if _, err := restored.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step restored: %v", err)
	}
	if restored.Hash() != b.Hash() {
		t.Fatal("original and restored battles diverged after one turn")
	}
}

func TestRestoreSnapshotRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, {1, 2, 3}, bytes.Repeat([]byte{0xFF}, 64)} {
		if _, err := RestoreSnapshot(nil, data); errs.CodeOf(err) != errs.CodeInvalidArgument {
			t.Errorf("RestoreSnapshot(%d bytes): got %v, want invalid argument", len(data), err)
		}
	}
}

func TestIntimidateFiresInSpeedOrder(t *testing.T) {
	b, err := New(Config{
		Seed:   3,
		Format: Format{Sides: 2, TeamSize: 2, ActiveSlots: 2},
		Teams: [][]TeamMember{
			{member("Gyarados", "Intimidate", "Waterfall"), member("Snorlax", "Thick Fat", "Tackle")},
			{member("Incineroar", "Intimidate", "Crunch"), member("Snorlax", "Guts", "Tackle")},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	acts := recordsOfKind(b, RecAbilityActivate)
	if len(acts) != 2 {
		t.Fatalf("want 2 Intimidate activations, got %d", len(acts))
	}
	// Gyarados outspeeds Incineroar, so side 0 announces first.
	if acts[0].Side != 0 || acts[1].Side != 1 {
		t.Fatalf("activation order %v, want side 0 then side 1", acts)
	}

	drops := 0
	for _, r := range recordsOfKind(b, RecBoost) {
		if r.Stat == "Atk" && r.Delta == -1 && r.Source == "Intimidate" {
			drops++
		}
	}
	if drops != 4 {
		t.Fatalf("want 4 Attack drops across both sides, got %d", drops)
	}
}

func TestProtectBlocksPivotMove(t *testing.T) {
	b := newSingles(t, 11,
		[]TeamMember{member("Snorlax", "Thick Fat", "Protect"), member("Machamp", "Guts", "Close Combat")},
		[]TeamMember{member("Gyarados", "Intimidate", "U-turn"), member("Tyranitar", "Sand Stream", "Crunch")})

	if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	blocked := false
	for _, r := range recordsOfKind(b, RecFail) {
		if r.Condition == "Protect" {
			blocked = true
		}
	}
	if !blocked {
		t.Fatal("U-turn was not blocked by Protect")
	}
	for _, r := range recordsOfKind(b, RecSwitch) {
		if r.Turn == 1 {
			t.Fatalf("blocked pivot still switched: %+v", r)
		}
	}
	if b.state.active[1][0] != 0 {
		t.Fatalf("side 1 active index = %d, want 0", b.state.active[1][0])
	}
}

func TestTrickRoomInvertsMoveOrder(t *testing.T) {
	b := newSingles(t, 5,
		[]TeamMember{member("Dragapult", "Clear Body", "Dragon Claw")},
		[]TeamMember{member("Snorlax", "Thick Fat", "Trick Room", "Tackle")})

	if _, err := b.Step([]Action{attack(0), {Side: 1, Slot: 0, Type: ActionMove, MoveSlot: 0}}); err != nil {
		t.Fatalf("Step turn 1: %v", err)
	}
	if _, err := b.Step([]Action{attack(0), {Side: 1, Slot: 0, Type: ActionMove, MoveSlot: 1, Target: Ref{Side: 0, Slot: 0}}}); err != nil {
		t.Fatalf("Step turn 2: %v", err)
	}

	var turn1, turn2 []Record
	for _, r := range recordsOfKind(b, RecMove) {
		switch r.Turn {
		case 1:
			turn1 = append(turn1, r)
		case 2:
			turn2 = append(turn2, r)
		}
	}
	if len(turn1) != 2 || len(turn2) != 2 {
		t.Fatalf("want 2 moves per turn, got %d and %d", len(turn1), len(turn2))
	}
	if turn1[0].Side != 0 {
		t.Fatal("Dragapult should move first without Trick Room")
	}
	if turn2[0].Side != 1 {
		t.Fatal("Snorlax should move first under Trick Room")
	}
}

func TestTrickRoomInvertsResidualOrder(t *testing.T) {
	b := newSingles(t, 9,
		[]TeamMember{member("Snorlax", "Thick Fat", "Trick Room", "Sandstorm")},
		[]TeamMember{member("Dragapult", "Clear Body", "Dragon Claw")})

	// Turn 1 sets the room, turn 2 the sandstorm, so the first chip
	// damage lands while the room is still up.
	if _, err := b.Step([]Action{{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: 0}, attack(1)}); err != nil {
		t.Fatalf("Step turn 1: %v", err)
	}
	if _, err := b.Step([]Action{{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: 1}, attack(1)}); err != nil {
		t.Fatalf("Step turn 2: %v", err)
	}

	var chips []Record
	for _, r := range recordsOfKind(b, RecDamage) {
		if r.Turn == 2 && r.Source == "Sandstorm" {
			chips = append(chips, r)
		}
	}
	if len(chips) != 2 {
		t.Fatalf("want 2 sandstorm chip records on turn 2, got %d", len(chips))
	}
	// Snorlax (speed 30) is chipped before Dragapult (speed 142) while
	// the room inverts residual order.
	if chips[0].Side != 0 || chips[1].Side != 1 {
		t.Fatalf("sandstorm chip order %v, want side 0 then side 1", chips)
	}
}

func TestRandomPlayoutsKeepStateSane(t *testing.T) {
	team0 := []TeamMember{
		member("Snorlax", "Thick Fat", "Body Slam", "Protect", "Crunch"),
		member("Machamp", "Guts", "Close Combat", "Tackle"),
		member("Kingambit", "Supreme Overlord", "Sucker Punch", "Crunch"),
	}
	team1 := []TeamMember{
		member("Gyarados", "Intimidate", "Waterfall", "Tackle"),
		member("Tyranitar", "Sand Stream", "Crunch", "Sandstorm"),
		member("Dragapult", "Clear Body", "Dragon Claw", "Trick Room"),
	}

	for _, seed := range []uint32{3, 17, 404, 90210} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			b := newSingles(t, seed, team0, team1)
			pick := rng.New(seed ^ 0xA5A5A5A5)

			for i := 0; i < 60 && b.Phase() != PhaseEnded; i++ {
				var acts []Action
				for side := int32(0); side < 2; side++ {
					legal, err := b.LegalActions(side)
					if err != nil {
						t.Fatalf("LegalActions(%d): %v", side, err)
					}
					bySlot := map[int32][]Action{}
					var order []int32
					for _, a := range legal {
						if _, seen := bySlot[a.Slot]; !seen {
							order = append(order, a.Slot)
						}
						bySlot[a.Slot] = append(bySlot[a.Slot], a)
					}
					for _, slot := range order {
						options := bySlot[slot]
						acts = append(acts, options[pick.Next(len(options))])
					}
				}
				var err error
				if b.Phase() == PhaseAwaitingSwitches {
					_, err = b.SubmitSwitches(acts)
				} else {
					_, err = b.Step(acts)
				}
				if err != nil {
					t.Fatalf("submit %d: %v", i, err)
				}
				checkStateSane(t, b)
			}
		})
	}
}

// checkStateSane asserts the universal row invariants: HP within
// [0, max], stages within [-6, 6], PP non-negative, and active slots
// either vacant or pointing at a healthy team member.
func checkStateSane(t *testing.T, b *Battle) {
	t.Helper()
	s := b.state
	for side := int32(0); side < s.format.Sides; side++ {
		for team := int32(0); team < s.format.TeamSize; team++ {
			row := s.row(side, team)
			if hp := s.currentHP(row); hp < 0 || hp > s.maxHP(row) {
				t.Fatalf("side %d team %d: HP %d outside [0,%d]", side, team, hp, s.maxHP(row))
			}
			for col := pStageAtk; col <= pStageEva; col++ {
				if row[col] < -6 || row[col] > 6 {
					t.Fatalf("side %d team %d: stage col %d = %d", side, team, col, row[col])
				}
			}
			for ms := int32(0); ms < 4; ms++ {
				if s.pp(row, ms) < 0 {
					t.Fatalf("side %d team %d: move %d PP %d", side, team, ms, s.pp(row, ms))
				}
			}
		}
		for slot, idx := range s.active[side] {
			if idx < 0 {
				continue
			}
			if idx >= s.format.TeamSize {
				t.Fatalf("side %d slot %d: active index %d out of range", side, slot, idx)
			}
			if s.isFainted(s.row(side, idx)) {
				t.Fatalf("side %d slot %d: fainted Pokémon left on the field", side, slot)
			}
		}
	}
}

func TestSupremeOverlordMultipliers(t *testing.T) {
	want := [6]int32{4096, 4506, 4915, 5325, 5734, 6144}
	if overlordMultipliers != want {
		t.Fatalf("overlordMultipliers = %v, want %v", overlordMultipliers, want)
	}
	if got := 100 * overlordMultipliers[3] / 4096; got != 129 {
		t.Fatalf("base power 100 with 3 fallen = %d, want 129", got)
	}
	if got := 100 * overlordMultipliers[5] / 4096; got != 150 {
		t.Fatalf("base power 100 with 5 fallen = %d, want 150", got)
	}
}

func TestSuckerPunchFailsAgainstStatusMove(t *testing.T) {
	b := newSingles(t, 21,
		[]TeamMember{member("Kingambit", "Supreme Overlord", "Sucker Punch")},
		[]TeamMember{member("Blastoise", "Torrent", "Recover")})

	if _, err := b.Step([]Action{attack(0), {Side: 1, Slot: 0, Type: ActionMove, MoveSlot: 0}}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	failed := false
	for _, r := range recordsOfKind(b, RecFail) {
		if r.Move == "Sucker Punch" {
			failed = true
		}
	}
	if !failed {
		t.Fatal("Sucker Punch should fail against a status move")
	}
	// The failed attempt still spends PP.
	row := b.state.activeRow(Ref{Side: 0, Slot: 0})
	if got := b.state.pp(row, 0); got != 4 {
		t.Fatalf("Sucker Punch PP = %d, want 4", got)
	}
	// Blastoise took no damage.
	trow := b.state.activeRow(Ref{Side: 1, Slot: 0})
	if b.state.currentHP(trow) != b.state.maxHP(trow) {
		t.Fatal("Blastoise should be untouched")
	}
}

func TestStealthRockDamageOnSwitch(t *testing.T) {
	b := newSingles(t, 13,
		[]TeamMember{member("Skarmory", "Sturdy", "Stealth Rock"), member("Snorlax", "Thick Fat", "Tackle")},
		[]TeamMember{member("Snorlax", "Guts", "Tackle"), member("Charizard", "Blaze", "Flamethrower")})

	if _, err := b.Step([]Action{
		{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: 0},
		attack(1),
	}); err != nil {
		t.Fatalf("Step turn 1: %v", err)
	}
	if _, err := b.Step([]Action{
		{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: 0}, // fails, already set
		{Side: 1, Slot: 0, Type: ActionSwitch, SwitchTo: 1},
	}); err != nil {
		t.Fatalf("Step turn 2: %v", err)
	}

	// Charizard is 4x weak to Rock: maxHP * 4/8.
	row := b.state.activeRow(Ref{Side: 1, Slot: 0})
	maxHP := b.state.maxHP(row)
	wantDmg := maxHP * 4 / 8
	found := false
	for _, r := range recordsOfKind(b, RecDamage) {
		if r.Source == "Stealth Rock" {
			found = true
			if r.Delta != -wantDmg {
				t.Fatalf("Stealth Rock delta = %d, want %d", r.Delta, -wantDmg)
			}
		}
	}
	if !found {
		t.Fatal("no Stealth Rock damage on switch-in")
	}
}

func TestQuadWeaknessLogsEffectiveness(t *testing.T) {
	b := newSingles(t, 8,
		[]TeamMember{member("Jolteon", "Volt Absorb", "Thunderbolt")},
		[]TeamMember{member("Gyarados", "Intimidate", "Waterfall")})

	if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	for _, r := range recordsOfKind(b, RecEffectiveness) {
		if r.Side == 1 && r.MultNum == 4 && r.MultDen == 1 {
			return
		}
	}
	t.Fatal("Thunderbolt against Gyarados should log 4x effectiveness")
}

func TestWonderGuardBlocksNeutralHits(t *testing.T) {
	b := newSingles(t, 30,
		[]TeamMember{member("Gyarados", "Intimidate", "Waterfall")},
		[]TeamMember{member("Shedinja", "Wonder Guard", "Shadow Sneak")})

	row := b.state.activeRow(Ref{Side: 1, Slot: 0})
	if b.state.maxHP(row) != 1 {
		t.Fatalf("Shedinja max HP = %d, want 1", b.state.maxHP(row))
	}

	if _, err := b.Step([]Action{attack(0), attack(1)}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// Waterfall is neutral into Bug/Ghost, so Wonder Guard shrugs it off
	// and the 1 HP Pokémon survives the turn.
	blocked := false
	for _, r := range recordsOfKind(b, RecImmune) {
		if r.Reason == "Wonder Guard" && r.Side == 1 {
			blocked = true
		}
	}
	if !blocked {
		t.Fatal("Waterfall should be blocked by Wonder Guard")
	}
	if b.state.currentHP(row) != 1 {
		t.Fatalf("Shedinja HP = %d, want 1", b.state.currentHP(row))
	}
	if b.Outcome().Done {
		t.Fatal("battle should continue")
	}
}

func TestTeraChangesSTAB(t *testing.T) {
	m := member("Dragapult", "Infiltrator", "Shadow Ball", "Dragon Claw")
	m.TeraType = "Ghost"
	b := newSingles(t, 2,
		[]TeamMember{m},
		[]TeamMember{member("Snorlax", "Thick Fat", "Tackle")})

	s := b.state
	att := s.activeRow(Ref{Side: 0, Slot: 0})

	ghost := &moveContext{attacker: Ref{Side: 0, Slot: 0}, moveType: dex.Ghost,
		move: s.reg.Move(s.moveID(att, 0))}
	if num, den := s.stabModifier(att, ghost); num != 2 || den != 1 {
		t.Fatalf("Tera Ghost on a Ghost type: STAB %d/%d, want 2/1", num, den)
	}

	// The Tera type replaces the defensive typing, but the original types
	// keep their ordinary STAB.
	dragon := &moveContext{attacker: Ref{Side: 0, Slot: 0}, moveType: dex.Dragon,
		move: s.reg.Move(s.moveID(att, 1))}
	if num, den := s.stabModifier(att, dragon); num != 3 || den != 2 {
		t.Fatalf("base-type STAB after Tera: %d/%d, want 3/2", num, den)
	}

	if got, _ := s.types(att); got != dex.Ghost {
		t.Fatalf("Tera defensive type = %v, want Ghost", got)
	}
}

func TestStruggleFallbackWhenNoMoveSelectable(t *testing.T) {
	b := newSingles(t, 17,
		[]TeamMember{member("Snorlax", "Thick Fat", "Tackle")},
		[]TeamMember{member("Snorlax", "Guts", "Tackle")})

	row := b.state.activeRow(Ref{Side: 0, Slot: 0})
	row[pPP1] = 0

	acts, err := b.LegalActions(0)
	if err != nil {
		t.Fatalf("LegalActions: %v", err)
	}
	struggle := 0
	for _, a := range acts {
		if a.Type == ActionMove {
			if a.MoveSlot != -1 {
				t.Fatalf("unexpected selectable move slot %d", a.MoveSlot)
			}
			struggle++
		}
	}
	if struggle != 1 {
		t.Fatalf("want exactly one Struggle action, got %d", struggle)
	}

	if _, err := b.Step([]Action{
		{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: -1, Target: Ref{Side: 1, Slot: 0}},
		attack(1),
	}); err != nil {
		t.Fatalf("Step with Struggle: %v", err)
	}
	// Struggle recoil is a quarter of the user's max HP.
	found := false
	for _, r := range recordsOfKind(b, RecDamage) {
		if r.Source == "struggle recoil" && r.Side == 0 {
			found = true
			if want := -b.state.maxHP(row) / 4; r.Delta != want {
				t.Fatalf("struggle recoil delta = %d, want %d", r.Delta, want)
			}
		}
	}
	if !found {
		t.Fatal("Struggle dealt no recoil")
	}
}

func TestEffectiveSpeedModifiers(t *testing.T) {
	b := newSingles(t, 1,
		[]TeamMember{member("Snorlax", "Thick Fat", "Tackle")},
		[]TeamMember{member("Snorlax", "Guts", "Tackle")})
	s := b.state
	ref := Ref{Side: 0, Slot: 0}
	row := s.activeRow(ref)
	base := s.effectiveSpeed(ref)

	row[pStatus] = int32(dex.StatusParalysis)
	if got := s.effectiveSpeed(ref); got != base/2 {
		t.Fatalf("paralyzed speed = %d, want %d", got, base/2)
	}
	row[pStatus] = int32(dex.StatusNone)

	s.sides[0][scTailwind] = 3
	if got := s.effectiveSpeed(ref); got != base*2 {
		t.Fatalf("tailwind speed = %d, want %d", got, base*2)
	}
	s.sides[0][scTailwind] = 0

	row[pStageSpe] = 2
	if got := s.effectiveSpeed(ref); got != base*2 {
		t.Fatalf("+2 speed = %d, want %d", got, base*2)
	}
}

func TestStatusTypeImmunities(t *testing.T) {
	b := newSingles(t, 1,
		[]TeamMember{member("Jolteon", "Volt Absorb", "Thunderbolt")},
		[]TeamMember{member("Heatran", "Flash Fire", "Flamethrower")})
	s := b.state

	if s.setStatus(Ref{Side: 0, Slot: 0}, dex.StatusParalysis, "test") {
		t.Fatal("Electric types cannot be paralyzed")
	}
	if s.setStatus(Ref{Side: 1, Slot: 0}, dex.StatusBurn, "test") {
		t.Fatal("Fire types cannot be burned")
	}
	if s.setStatus(Ref{Side: 1, Slot: 0}, dex.StatusPoison, "test") {
		t.Fatal("Steel types cannot be poisoned")
	}
	if !s.setStatus(Ref{Side: 1, Slot: 0}, dex.StatusParalysis, "test") {
		t.Fatal("Heatran should be paralyzable")
	}
	if s.setStatus(Ref{Side: 1, Slot: 0}, dex.StatusSleep, "test") {
		t.Fatal("an existing status must block a second one")
	}
}

func TestStepValidation(t *testing.T) {
	b := newSingles(t, 1,
		[]TeamMember{member("Snorlax", "Thick Fat", "Tackle")},
		[]TeamMember{member("Snorlax", "Guts", "Tackle")})

	cases := []struct {
		name    string
		actions []Action
	}{
		{"missing action", []Action{attack(0)}},
		{"duplicate action", []Action{attack(0), attack(0), attack(1)}},
		{"bad move slot", []Action{{Side: 0, Slot: 0, Type: ActionMove, MoveSlot: 3}, attack(1)}},
		{"bad position", []Action{{Side: 5, Slot: 0, Type: ActionMove}, attack(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.Step(tc.actions); errs.CodeOf(err) != errs.CodeInvalidArgument {
				t.Fatalf("got %v, want invalid argument", err)
			}
		})
	}
	if b.Turn() != 0 {
		t.Fatalf("rejected actions advanced the turn to %d", b.Turn())
	}
}

func TestNewRejectsIllegalTeams(t *testing.T) {
	mk := func(mut func(*TeamMember)) [][]TeamMember {
		m := member("Snorlax", "Thick Fat", "Tackle")
		mut(&m)
		return [][]TeamMember{{m}, {member("Snorlax", "Guts", "Tackle")}}
	}
	cases := []struct {
		name string
		mut  func(*TeamMember)
		code errs.Code
	}{
		{"unknown species", func(m *TeamMember) { m.Species = "Missingno" }, errs.CodeNotFound},
		{"unknown move", func(m *TeamMember) { m.Moves = []string{"Splash"} }, errs.CodeNotFound},
		{"illegal ability", func(m *TeamMember) { m.Ability = "Levitate" }, errs.CodeInvalidArgument},
		{"level too high", func(m *TeamMember) { m.Level = 101 }, errs.CodeInvalidArgument},
		{"ev overflow", func(m *TeamMember) { m.EVs = [6]int32{252, 252, 252, 0, 0, 0} }, errs.CodeInvalidArgument},
		{"iv out of range", func(m *TeamMember) { m.IVs[0] = 32 }, errs.CodeInvalidArgument},
		{"no moves", func(m *TeamMember) { m.Moves = nil }, errs.CodeInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Config{
				Seed:   1,
				Format: Format{Sides: 2, TeamSize: 1, ActiveSlots: 1},
				Teams:  mk(tc.mut),
			})
			if errs.CodeOf(err) != tc.code {
				t.Fatalf("got %v, want %v", err, tc.code)
			}
		})
	}
}

func TestComputeStat(t *testing.T) {
	cases := []struct {
		name   string
		stat   dex.Stat
		base   int32
		iv, ev int32
		level  int32
		nature dex.Nature
		want   int32
	}{
		{"classic HP example", dex.HP, 108, 24, 74, 78, dex.Serious, 289},
		{"shedinja HP", dex.HP, 1, 31, 252, 50, dex.Hardy, 1},
		{"level 50 neutral", dex.Spe, 81, 31, 0, 50, dex.Hardy, 101},
		{"boosting nature", dex.Atk, 130, 31, 252, 50, dex.Adamant, 200},
		{"hindering nature", dex.Atk, 130, 31, 252, 50, dex.Modest, 163},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeStat(tc.stat, tc.base, tc.iv, tc.ev, tc.level, tc.nature)
			if got != tc.want {
				t.Fatalf("computeStat = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWeightPower(t *testing.T) {
	reg := dex.Gen9()
	lowKickID, _ := reg.MoveID("Low Kick")
	lowKick := reg.Move(lowKickID)
	cases := []struct {
		targetHg int32
		want     int32
	}{
		{5, 20}, {99, 20}, {100, 40}, {250, 60}, {500, 80}, {1000, 100}, {2000, 120}, {4600, 120},
	}
	for _, tc := range cases {
		if got := weightPower(lowKick, 540, tc.targetHg); got != tc.want {
			t.Errorf("weightPower(%d hg) = %d, want %d", tc.targetHg, got, tc.want)
		}
	}

	heavySlamID, _ := reg.MoveID("Heavy Slam")
	heavySlam := reg.Move(heavySlamID)
	if got := weightPower(heavySlam, 4600, 60); got != 120 {
		t.Errorf("Heavy Slam at 76x weight = %d, want 120", got)
	}
	if got := weightPower(heavySlam, 1000, 900); got != 40 {
		t.Errorf("Heavy Slam at near-equal weight = %d, want 40", got)
	}
}

func TestFaintForcesSwitchPhase(t *testing.T) {
	b2, err := New(Config{
		Seed:   4,
		Format: Format{Sides: 2, TeamSize: 2, ActiveSlots: 1},
		Teams: [][]TeamMember{
			{member("Kingambit", "Supreme Overlord", "Kowtow Cleave"), member("Snorlax", "Thick Fat", "Tackle")},
			{member("Shedinja", "Wonder Guard", "Shadow Sneak"), member("Snorlax", "Guts", "Tackle")},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Kowtow Cleave is a Dark move, super effective into Bug/Ghost, so
	// Wonder Guard lets it through and Shedinja's 1 HP ends the turn in
	// the forced-switch phase.
	out, err := b2.Step([]Action{attack(0), attack(1)})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if out.Done {
		t.Fatal("battle should continue, side 1 has bench")
	}
	if b2.Phase() != PhaseAwaitingSwitches {
		t.Fatalf("phase = %v, want awaiting switches", b2.Phase())
	}
	if len(recordsOfKind(b2, RecFaint)) != 1 {
		t.Fatal("want exactly one faint record")
	}

	if _, err := b2.SubmitSwitches([]Action{{Side: 1, Slot: 0, Type: ActionSwitch, SwitchTo: 1}}); err != nil {
		t.Fatalf("SubmitSwitches: %v", err)
	}
	if b2.Phase() != PhaseAwaitingActions {
		t.Fatalf("phase after replacement = %v, want awaiting actions", b2.Phase())
	}
	if b2.state.fainted[1] != 1 {
		t.Fatalf("fainted counter = %d, want 1", b2.state.fainted[1])
	}
}

func TestWinDetection(t *testing.T) {
	b := newSingles(t, 9,
		[]TeamMember{member("Kingambit", "Supreme Overlord", "Kowtow Cleave")},
		[]TeamMember{member("Shedinja", "Wonder Guard", "Shadow Sneak")})

	out, err := b.Step([]Action{attack(0), attack(1)})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !out.Done || out.Winner != 0 || out.Draw {
		t.Fatalf("outcome = %+v, want side 0 win", out)
	}
	if b.Phase() != PhaseEnded {
		t.Fatalf("phase = %v, want ended", b.Phase())
	}
	wins := recordsOfKind(b, RecWin)
	if len(wins) != 1 || wins[0].Winner != 0 {
		t.Fatalf("win records = %+v", wins)
	}
	if _, err := b.Step([]Action{attack(0), attack(1)}); errs.CodeOf(err) != errs.CodeFailedPrecondition {
		t.Fatalf("stepping an ended battle: got %v, want failed precondition", err)
	}
}
