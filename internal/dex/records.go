package dex

// Fraction is an exact rational multiplier. A zero Den means "unset".
type Fraction struct {
	Num int32
	Den int32
}

// IsZero reports whether the fraction is unset.
func (f Fraction) IsZero() bool { return f.Den == 0 }

// Category splits moves into physical, special, and status.
type Category int32

const (
	Physical Category = iota
	Special
	StatusMove
)

func (c Category) String() string {
	switch c {
	case Physical:
		return "Physical"
	case Special:
		return "Special"
	default:
		return "Status"
	}
}

// Target is a move's targeting mode.
type Target int32

const (
	TargetNormal          Target = iota // one adjacent Pokémon
	TargetSelf                          // the user
	TargetAdjacentAlly                  // one adjacent ally
	TargetAdjacentFoe                   // one adjacent foe
	TargetAllAdjacent                   // every adjacent Pokémon, allies included
	TargetAllAdjacentFoes               // every adjacent foe
	TargetAll                           // the whole field
	TargetAllySide                      // the user's side
	TargetFoeSide                       // the opposing side
	TargetRandomFoe                     // one adjacent foe chosen by the engine
)

// Spread reports whether the mode can hit more than one Pokémon.
func (t Target) Spread() bool {
	return t == TargetAllAdjacent || t == TargetAllAdjacentFoes || t == TargetAll
}

// Flag is a bit set of move properties.
type Flag uint32

const (
	FlagContact Flag = 1 << iota
	FlagProtect      // blocked by Protect
	FlagMirror
	FlagSound
	FlagBullet
	FlagBite
	FlagPunch
	FlagPowder
	FlagHeal
	FlagDefrost
	FlagBypassSub
	FlagReflectable
	FlagSlicing
	FlagWind
	FlagPivot // user switches out after a successful hit
)

// Has reports whether all bits of q are set.
func (f Flag) Has(q Flag) bool { return f&q == q }

// PowerKind selects a variable-base-power computation. Moves with
// PowerNone use their static BasePower.
type PowerKind int32

const (
	PowerNone PowerKind = iota
	PowerWeight
	PowerHPRatio   // Eruption / Water Spout: 150 * curHP / maxHP
	PowerFallen    // Last Respects: 50 * (1 + fainted allies)
	PowerFacade    // doubles when the user is statused
	PowerHex       // doubles when the target is statused
	PowerAcrobatics // doubles when the user holds no item
)

// Secondary is an effect that may trigger after a damaging hit. Chance is
// in percent; exactly one RNG draw is consumed per declared secondary.
type Secondary struct {
	Chance     int32
	Status     Status
	Volatile   VolatileKind
	Flinch     bool
	Boosts     [NumBoosts]int8 // applied to the target
	SelfBoosts [NumBoosts]int8 // applied to the user
}

// VolatileKind names a volatile condition a move or secondary can set.
type VolatileKind int32

const (
	VolatileNone VolatileKind = iota
	VolatileConfusion
	VolatileLeechSeed
	VolatileSubstitute
	VolatileProtect
	VolatileEncore
	VolatileTaunt
	VolatileDisable
	VolatileFocusEnergy
)

// SideConditionKind names a side condition a move can start.
type SideConditionKind int32

const (
	SideNone SideConditionKind = iota
	SideReflect
	SideLightScreen
	SideAuroraVeil
	SideSafeguard
	SideMist
	SideTailwind
	SideSpikes
	SideToxicSpikes
	SideStealthRock
	SideStickyWeb
)

// FieldKind names a field condition a move can start.
type FieldKind int32

const (
	FieldNone FieldKind = iota
	FieldSun
	FieldRain
	FieldSand
	FieldSnow
	FieldElectricTerrain
	FieldGrassyTerrain
	FieldMistyTerrain
	FieldPsychicTerrain
	FieldTrickRoom
	FieldMagicRoom
	FieldWonderRoom
	FieldGravity
)

// Move is the immutable static record for one move. Behavior that deviates
// from the plain damage formula is expressed through the computation fields
// below, interpreted by the pipeline.
type Move struct {
	ID       int32
	Key      string
	Name     string
	Type     Type
	Category Category

	BasePower int32
	Accuracy  int32 // percent; AccuracyAlways never misses
	PP        int32
	Priority  int32
	Target    Target
	Flags     Flag

	CritRatio int32 // 1 = normal, 2 = high-crit
	Drain     Fraction
	Recoil    Fraction
	// StruggleRecoil is the max-HP fraction lost regardless of damage dealt.
	StruggleRecoil Fraction

	HitsMin int32 // 0 = single hit
	HitsMax int32

	PowerFrom   PowerKind
	FixedDamage int32 // exact HP, 0 = none
	LevelDamage bool  // damage equals the user's level
	Typeless    bool  // no STAB, neutral against everything (Struggle)

	Secondaries []Secondary

	// Status-move payloads.
	InflictStatus   Status
	InflictVolatile VolatileKind
	Boosts          [NumBoosts]int8 // applied to the target
	SelfBoosts      [NumBoosts]int8 // applied to the user after a hit
	HealFraction    Fraction        // of the user's max HP
	SideCondition   SideConditionKind
	FieldCondition  FieldKind
	IsProtect       bool
}

// AccuracyAlways marks moves that bypass the accuracy check.
const AccuracyAlways int32 = 0

// MultiHit reports whether the move strikes more than once.
func (m *Move) MultiHit() bool { return m.HitsMax > 1 }

// Species is the immutable static record for one species.
type Species struct {
	ID        int32
	Key       string
	Name      string
	BaseStats [6]int32 // indexed by Stat
	Type1     Type
	Type2     Type // TypeNone if single-typed
	WeightHg  int32
	HeightDm  int32
	Abilities []string // canonical ability keys
}

// Ability is the immutable static record for one ability. Hook bindings
// live in the battle package's handler registry, keyed by the canonical key
// and resolved to ID-indexed tables when a registry is bound.
type Ability struct {
	ID     int32
	Key    string
	Name   string
	Rating int32
}

// ItemCategory groups items for legality checks and the magic-room gate.
type ItemCategory int32

const (
	ItemHeld ItemCategory = iota
	ItemBerry
	ItemChoice
)

// Item is the immutable static record for one held item.
type Item struct {
	ID       int32
	Key      string
	Name     string
	Category ItemCategory
}
