package dex

import (
	"errors"
	"testing"

	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"U-turn", "uturn"},
		{"Will-O-Wisp", "willowisp"},
		{"Heavy-Duty Boots", "heavydutyboots"},
		{"Farfetch'd", "farfetchd"},
		{"Porygon2", "porygon2"},
		{"  Tackle  ", "tackle"},
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.in); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadAssignsSortedIDs(t *testing.T) {
	// Declaration order must not matter: IDs come from sorted keys.
	a := Tables{Moves: []Move{
		{Name: "Tackle", Type: Normal, Category: Physical, BasePower: 40, Accuracy: 100, PP: 35},
		{Name: "Aqua Jet", Type: Water, Category: Physical, BasePower: 40, Accuracy: 100, PP: 20},
		{Name: "Surf", Type: Water, Category: Special, BasePower: 90, Accuracy: 100, PP: 15},
	}}
	b := Tables{Moves: []Move{a.Moves[2], a.Moves[0], a.Moves[1]}}

	ra, err := Load(a)
	if err != nil {
		t.Fatalf("Load(a): %v", err)
	}
	rb, err := Load(b)
	if err != nil {
		t.Fatalf("Load(b): %v", err)
	}

	for _, name := range []string{"Tackle", "Aqua Jet", "Surf"} {
		ia, _ := ra.MoveID(name)
		ib, _ := rb.MoveID(name)
		if ia != ib {
			t.Errorf("%s: ID %d vs %d across load orders", name, ia, ib)
		}
	}

	// aquajet < surf < tackle; ID 0 is reserved.
	if id, _ := ra.MoveID("Aqua Jet"); id != 1 {
		t.Errorf("Aqua Jet ID = %d, want 1", id)
	}
	if id, _ := ra.MoveID("Tackle"); id != 3 {
		t.Errorf("Tackle ID = %d, want 3", id)
	}
}

func TestLoadRejectsDuplicateKeys(t *testing.T) {
	_, err := Load(Tables{Moves: []Move{
		{Name: "Fake Out", Type: Normal, Category: Physical, BasePower: 40, Accuracy: 100, PP: 10},
		{Name: "fakeout", Type: Normal, Category: Physical, BasePower: 50, Accuracy: 100, PP: 10},
	}})
	if err == nil {
		t.Fatal("Load accepted duplicate move keys")
	}
	if !errors.Is(err, errs.New(errs.CodeConflict, "")) {
		t.Errorf("duplicate key error code = %v, want conflict", errs.CodeOf(err))
	}
}

func TestLoadRejectsUnknownAbilityRef(t *testing.T) {
	_, err := Load(Tables{Species: []Species{
		{Name: "Gyarados", BaseStats: [6]int32{95, 125, 79, 60, 100, 81},
			Type1: Water, Type2: Flying, Abilities: []string{"intimidate"}},
	}})
	if err == nil {
		t.Fatal("Load accepted a species referencing an unregistered ability")
	}
}

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		name     string
		atk      Type
		def1     Type
		def2     Type
		wantNum  int
		wantDen  int
	}{
		{"neutral", Normal, Water, TypeNone, 1, 1},
		{"super effective", Water, Fire, TypeNone, 2, 1},
		{"double super", Rock, Fire, Flying, 4, 1},
		{"resisted", Fire, Water, TypeNone, 1, 2},
		{"double resist", Fighting, Bug, Flying, 1, 4},
		{"immune", Normal, Ghost, TypeNone, 0, 1},
		{"immune overrides", Ground, Electric, Flying, 0, 1},
		{"mixed 2x * 0.5x", Fire, Grass, Water, 2, 2},
		{"same type twice counts once", Water, Fire, Fire, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, den := CombinedEffectiveness(tt.atk, tt.def1, tt.def2)
			if num != tt.wantNum || den != tt.wantDen {
				t.Errorf("CombinedEffectiveness(%v, %v, %v) = %d/%d, want %d/%d",
					tt.atk, tt.def1, tt.def2, num, den, tt.wantNum, tt.wantDen)
			}
		})
	}
}

func TestStageMultipliers(t *testing.T) {
	if n, d := StageMultiplier(0); n != 2 || d != 2 {
		t.Errorf("stage 0 = %d/%d, want 2/2", n, d)
	}
	if n, d := StageMultiplier(6); n != 8 || d != 2 {
		t.Errorf("stage +6 = %d/%d, want 8/2", n, d)
	}
	if n, d := StageMultiplier(-6); n != 2 || d != 8 {
		t.Errorf("stage -6 = %d/%d, want 2/8", n, d)
	}
	// Out-of-range stages clamp.
	if n, d := StageMultiplier(9); n != 8 || d != 2 {
		t.Errorf("stage 9 = %d/%d, want clamped 8/2", n, d)
	}
	if n, d := AccuracyStageMultiplier(-1); n != 3 || d != 4 {
		t.Errorf("accuracy stage -1 = %d/%d, want 3/4", n, d)
	}
	if n, d := AccuracyStageMultiplier(6); n != 9 || d != 3 {
		t.Errorf("accuracy stage +6 = %d/%d, want 9/3", n, d)
	}
}

func TestNatureModifier(t *testing.T) {
	if n, d := NatureModifier(Adamant, Atk); n != 11 || d != 10 {
		t.Errorf("Adamant Atk = %d/%d, want 11/10", n, d)
	}
	if n, d := NatureModifier(Adamant, SpA); n != 9 || d != 10 {
		t.Errorf("Adamant SpA = %d/%d, want 9/10", n, d)
	}
	if n, d := NatureModifier(Hardy, Atk); n != 1 || d != 1 {
		t.Errorf("Hardy Atk = %d/%d, want 1/1", n, d)
	}
	if n, d := NatureModifier(Timid, HP); n != 1 || d != 1 {
		t.Errorf("nature modified HP: %d/%d", n, d)
	}
	if nat, ok := NatureByName("jolly"); !ok || nat != Jolly {
		t.Errorf("NatureByName(jolly) = %v, %v", nat, ok)
	}
}

func TestGen9Registry(t *testing.T) {
	r := Gen9()

	if r.StruggleID() == 0 {
		t.Fatal("Struggle missing from built-in table")
	}
	st := r.Move(r.StruggleID())
	if !st.Typeless || st.StruggleRecoil.IsZero() {
		t.Errorf("Struggle record malformed: %+v", st)
	}

	id, ok := r.SpeciesID("Kingambit")
	if !ok {
		t.Fatal("Kingambit missing")
	}
	sp := r.Species(id)
	if sp.BaseStats[Atk] != 135 || sp.Type1 != Dark || sp.Type2 != Steel {
		t.Errorf("Kingambit record wrong: %+v", sp)
	}

	if _, ok := r.MoveID("U-turn"); !ok {
		t.Error("U-turn missing")
	}
	if _, ok := r.AbilityID("Supreme Overlord"); !ok {
		t.Error("Supreme Overlord missing")
	}
	if _, ok := r.ItemID("Choice Scarf"); !ok {
		t.Error("Choice Scarf missing")
	}

	// ID 0 is the "none" sentinel everywhere.
	if r.Move(0) != nil || r.Ability(0) != nil || r.Item(0) != nil {
		t.Error("ID 0 resolved to a record")
	}

	// Calling twice returns the same registry.
	if Gen9() != r {
		t.Error("Gen9 rebuilt the registry")
	}
}
