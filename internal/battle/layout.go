package battle

// Packed Pokémon row layout. Every mutable fact about one Pokémon lives in
// a fixed-width int32 row; this file is the single source of truth for the
// indices, and no other component may touch rows except through the State
// accessors.
//
// Row layout:
//
//	0-7    identity (species, level, nature, ability, item, types, tera)
//	8-13   computed stats (HP, Atk, Def, SpA, SpD, Spe)
//	14-16  battle state (current HP, status, status counter)
//	17-23  stat stages (Atk, Def, SpA, SpD, Spe, Acc, Eva)
//	24-27  move IDs
//	28-31  move PP
//	32-37  IVs
//	38-43  EVs
//	44+    volatile conditions
const (
	pSpecies = iota
	pLevel
	pNature
	pAbility
	pItem
	pType1
	pType2
	pTeraType

	pStatHP
	pStatAtk
	pStatDef
	pStatSpA
	pStatSpD
	pStatSpe

	pCurrentHP
	pStatus
	pStatusCounter

	pStageAtk
	pStageDef
	pStageSpA
	pStageSpD
	pStageSpe
	pStageAcc
	pStageEva

	pMove1
	pMove2
	pMove3
	pMove4

	pPP1
	pPP2
	pPP3
	pPP4

	pIVHP
	pIVAtk
	pIVDef
	pIVSpA
	pIVSpD
	pIVSpe

	pEVHP
	pEVAtk
	pEVDef
	pEVSpA
	pEVSpD
	pEVSpe

	// Volatile conditions (44+).
	pVolProtect        // Protect active this turn
	pVolProtectUses    // consecutive Protect uses
	pVolSubstituteHP   // Substitute remaining HP, 0 = none
	pVolEncore         // Encore turns remaining
	pVolEncoreMove     // move slot Encore locks
	pVolTaunt          // Taunt turns remaining
	pVolDisableSlot    // disabled move slot + 1, 0 = none
	pVolDisableTurns   // Disable turns remaining
	pVolConfusion      // confusion turns remaining
	pVolFlinch         // flinched this turn
	pVolFocusEnergy    // +2 crit stage
	pVolLeechSeed      // leech-seeded
	pVolChoiceLock     // choice-locked move slot + 1, 0 = none
	pVolLastMove       // last move ID used
	pVolFlashFire      // Flash Fire boost active
	pVolSuppressed     // ability suppressed
	pVolActiveTurns    // turns this Pokémon has been active
	pVolMovedThisTurn  // has already acted this turn
	pVolTookHitThisTurn // was hit by a damaging move this turn
	pVolFallen          // fainted allies counted at switch-in

	pokemonSize
)

// Side condition columns. Screens and the like hold turns remaining;
// hazards hold layer counts.
const (
	scReflect = iota
	scLightScreen
	scAuroraVeil
	scSafeguard
	scMist
	scTailwind
	scSpikes      // 0-3 layers
	scToxicSpikes // 0-2 layers
	scStealthRock // 0/1
	scStickyWeb   // 0/1

	sideSize
)

// Field columns.
const (
	fWeather = iota
	fWeatherTurns
	fTerrain
	fTerrainTurns
	fTrickRoom
	fMagicRoom
	fWonderRoom
	fGravity

	fieldSize
)

// statIndex maps a dex.Stat to its computed-stat column (pStatHP + stat).
// stageIndex maps a dex.Boost to its stage column (pStageAtk + boost).
// Both rely on the contiguous layout above.

// Default condition durations in turns.
const (
	screenTurns   = 5
	tailwindTurns = 4
	weatherTurns  = 5
	terrainTurns  = 5
	roomTurns     = 5
	safeguardTurns = 5
	mistTurns     = 5
	encoreTurns   = 3
	tauntTurns    = 3
	disableTurns  = 4
)

// Action ordering ranks: lower ranks act earlier within a turn. The gap
// leaves room for pursuit-style interleavings.
const (
	orderSwitch = 103
	orderMove   = 200
)
