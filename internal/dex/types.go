package dex

// Type is an elemental type ID. The numbering is fixed and shared with the
// packed battle state; Stellar exists only as a Tera type.
type Type int32

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy
	Stellar

	NumTypes = 19
)

// TypeNone is the sentinel for an absent secondary or Tera type.
const TypeNone Type = -1

var typeNames = [NumTypes]string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice", "Fighting",
	"Poison", "Ground", "Flying", "Psychic", "Bug", "Rock", "Ghost",
	"Dragon", "Dark", "Steel", "Fairy", "Stellar",
}

func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return "???"
	}
	return typeNames[t]
}

// TypeByName resolves a type from its display name or canonical key. The
// boolean is false for unknown names.
func TypeByName(name string) (Type, bool) {
	key := CanonicalKey(name)
	for i, n := range typeNames {
		if CanonicalKey(n) == key {
			return Type(i), true
		}
	}
	return TypeNone, false
}

// Effectiveness codes in the chart.
const (
	effNeutral = 0
	effSuper   = 1
	effResist  = 2
	effImmune  = 3
)

// typeChart[attacker][defender] holds an effectiveness code.
var typeChart = [NumTypes][NumTypes]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 3, 0, 0, 2, 0, 0}, // Normal
	{0, 2, 2, 0, 1, 1, 0, 0, 0, 0, 0, 1, 2, 0, 2, 0, 1, 0, 0}, // Fire
	{0, 1, 2, 0, 2, 0, 0, 0, 1, 0, 0, 0, 1, 0, 2, 0, 0, 0, 0}, // Water
	{0, 0, 1, 2, 2, 0, 0, 0, 3, 1, 0, 0, 0, 0, 2, 0, 0, 0, 0}, // Electric
	{0, 2, 1, 0, 2, 0, 0, 2, 1, 2, 0, 2, 1, 0, 2, 0, 2, 0, 0}, // Grass
	{0, 2, 2, 0, 1, 2, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 2, 0, 0}, // Ice
	{1, 0, 0, 0, 0, 1, 0, 2, 0, 2, 2, 2, 1, 3, 0, 1, 1, 2, 0}, // Fighting
	{0, 0, 0, 0, 1, 0, 0, 2, 2, 0, 0, 0, 2, 2, 0, 0, 3, 1, 0}, // Poison
	{0, 1, 0, 1, 2, 0, 0, 1, 0, 3, 0, 2, 1, 0, 0, 0, 1, 0, 0}, // Ground
	{0, 0, 0, 2, 1, 0, 1, 0, 0, 0, 0, 1, 2, 0, 0, 0, 2, 0, 0}, // Flying
	{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 2, 0, 0, 0, 0, 3, 2, 0, 0}, // Psychic
	{0, 2, 0, 0, 1, 0, 2, 2, 0, 2, 1, 0, 0, 2, 0, 1, 2, 2, 0}, // Bug
	{0, 1, 0, 0, 0, 1, 2, 0, 2, 1, 0, 1, 0, 0, 0, 0, 2, 0, 0}, // Rock
	{3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 2, 0, 0, 0}, // Ghost
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 2, 3, 0}, // Dragon
	{0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 1, 0, 2, 0, 2, 0}, // Dark
	{0, 2, 2, 2, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 1, 0}, // Steel
	{0, 2, 0, 0, 0, 0, 1, 2, 0, 0, 0, 0, 0, 0, 1, 1, 2, 0, 0}, // Fairy
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, // Stellar
}

// Effectiveness returns the exact multiplier of an attacking type against a
// single defending type as a rational pair. Immunity is (0, 1).
func Effectiveness(atk, def Type) (num, den int) {
	switch typeChart[atk][def] {
	case effSuper:
		return 2, 1
	case effResist:
		return 1, 2
	case effImmune:
		return 0, 1
	default:
		return 1, 1
	}
}

// CombinedEffectiveness folds the per-type factors for up to two defending
// types (def2 may be TypeNone). A zero numerator means immune.
func CombinedEffectiveness(atk, def1, def2 Type) (num, den int) {
	num, den = Effectiveness(atk, def1)
	if def2 != TypeNone && def2 != def1 {
		n2, d2 := Effectiveness(atk, def2)
		num *= n2
		den *= d2
	}
	return num, den
}

// Stat indexes the six computed stats.
type Stat int32

const (
	HP Stat = iota
	Atk
	Def
	SpA
	SpD
	Spe
)

var statNames = [6]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

func (s Stat) String() string {
	if s < 0 || s > Spe {
		return "???"
	}
	return statNames[s]
}

// Boost indexes the seven stat-stage axes.
type Boost int32

const (
	BoostAtk Boost = iota
	BoostDef
	BoostSpA
	BoostSpD
	BoostSpe
	BoostAcc
	BoostEva

	NumBoosts = 7
)

var boostNames = [NumBoosts]string{"Atk", "Def", "SpA", "SpD", "Spe", "Acc", "Eva"}

func (b Boost) String() string {
	if b < 0 || b >= NumBoosts {
		return "???"
	}
	return boostNames[b]
}

// Status is a primary (non-volatile) status kind.
type Status int32

const (
	StatusNone Status = iota
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusPoison
	StatusToxic
	StatusSleep
)

var statusNames = map[Status]string{
	StatusNone:      "none",
	StatusBurn:      "brn",
	StatusFreeze:    "frz",
	StatusParalysis: "par",
	StatusPoison:    "psn",
	StatusToxic:     "tox",
	StatusSleep:     "slp",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "???"
}

// StageMultiplier returns the exact multiplier for an Atk/Def/SpA/SpD/Spe
// stage in [-6, +6] as a rational pair.
func StageMultiplier(stage int) (num, den int) {
	stage = clampStage(stage)
	m := stageMultipliers[stage+6]
	return m[0], m[1]
}

// AccuracyStageMultiplier returns the accuracy/evasion multiplier for a
// stage in [-6, +6]; the table differs from the stat table.
func AccuracyStageMultiplier(stage int) (num, den int) {
	stage = clampStage(stage)
	m := accStageMultipliers[stage+6]
	return m[0], m[1]
}

func clampStage(stage int) int {
	if stage < -6 {
		return -6
	}
	if stage > 6 {
		return 6
	}
	return stage
}

var stageMultipliers = [13][2]int{
	{2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3},
	{2, 2},
	{3, 2}, {4, 2}, {5, 2}, {6, 2}, {7, 2}, {8, 2},
}

var accStageMultipliers = [13][2]int{
	{3, 9}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4},
	{3, 3},
	{4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}, {9, 3},
}

// Weather IDs stored in the field array.
const (
	WeatherNone int32 = iota
	WeatherSun
	WeatherRain
	WeatherSand
	WeatherSnow
)

// Terrain IDs stored in the field array.
const (
	TerrainNone int32 = iota
	TerrainElectric
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
)
