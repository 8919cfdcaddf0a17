package dex

// Nature is one of the 25 fixed natures. Nature IDs are part of the packed
// state, so the numbering here is load-order independent and fixed.
type Nature int32

const (
	Hardy Nature = iota
	Docile
	Serious
	Bashful
	Quirky
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Relaxed
	Impish
	Lax
	Modest
	Mild
	Quiet
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Timid
	Hasty
	Jolly
	Naive

	NumNatures = 25
)

type natureData struct {
	name string
	up   Stat
	down Stat
}

// Neutral natures encode up == down.
var natures = [NumNatures]natureData{
	{"Hardy", Atk, Atk},
	{"Docile", Def, Def},
	{"Serious", Spe, Spe},
	{"Bashful", SpA, SpA},
	{"Quirky", SpD, SpD},
	{"Lonely", Atk, Def},
	{"Brave", Atk, Spe},
	{"Adamant", Atk, SpA},
	{"Naughty", Atk, SpD},
	{"Bold", Def, Atk},
	{"Relaxed", Def, Spe},
	{"Impish", Def, SpA},
	{"Lax", Def, SpD},
	{"Modest", SpA, Atk},
	{"Mild", SpA, Def},
	{"Quiet", SpA, Spe},
	{"Rash", SpA, SpD},
	{"Calm", SpD, Atk},
	{"Gentle", SpD, Def},
	{"Sassy", SpD, Spe},
	{"Careful", SpD, SpA},
	{"Timid", Spe, Atk},
	{"Hasty", Spe, Def},
	{"Jolly", Spe, SpA},
	{"Naive", Spe, SpD},
}

func (n Nature) String() string {
	if n < 0 || n >= NumNatures {
		return "???"
	}
	return natures[n].name
}

// NatureModifier returns the exact nature multiplier for a stat as a
// rational pair: 11/10 boosted, 9/10 hindered, 1/1 otherwise. HP is never
// modified.
func NatureModifier(n Nature, stat Stat) (num, den int) {
	if n < 0 || n >= NumNatures || stat == HP {
		return 1, 1
	}
	d := natures[n]
	if d.up == d.down {
		return 1, 1
	}
	switch stat {
	case d.up:
		return 11, 10
	case d.down:
		return 9, 10
	}
	return 1, 1
}

// NatureByName resolves a nature from its canonical key. The boolean is
// false for unknown names.
func NatureByName(name string) (Nature, bool) {
	key := CanonicalKey(name)
	for i := range natures {
		if CanonicalKey(natures[i].name) == key {
			return Nature(i), true
		}
	}
	return 0, false
}
