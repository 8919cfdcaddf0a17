package dex

// Built-in move table. Boost arrays are positional:
// [Atk, Def, SpA, SpD, Spe, Acc, Eva].
var gen9Moves = []Move{
	// --- physical ---
	{Name: "Tackle", Type: Normal, Category: Physical, BasePower: 40, Accuracy: 100, PP: 35,
		Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Body Slam", Type: Normal, Category: Physical, BasePower: 85, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Status: StatusParalysis}}},
	{Name: "Double-Edge", Type: Normal, Category: Physical, BasePower: 120, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror, Recoil: Fraction{1, 3}},
	{Name: "Extreme Speed", Type: Normal, Category: Physical, BasePower: 80, Accuracy: 100, PP: 5,
		Priority: 2, Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Fake Out", Type: Normal, Category: Physical, BasePower: 40, Accuracy: 100, PP: 10,
		Priority: 3, Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 100, Flinch: true}}},
	{Name: "Facade", Type: Normal, Category: Physical, BasePower: 70, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror, PowerFrom: PowerFacade},
	{Name: "Close Combat", Type: Fighting, Category: Physical, BasePower: 120, Accuracy: 100, PP: 5,
		Flags: FlagContact | FlagProtect | FlagMirror, SelfBoosts: [NumBoosts]int8{0, -1, 0, -1}},
	{Name: "Drain Punch", Type: Fighting, Category: Physical, BasePower: 75, Accuracy: 100, PP: 10,
		Flags: FlagContact | FlagProtect | FlagMirror | FlagPunch | FlagHeal, Drain: Fraction{1, 2}},
	{Name: "Mach Punch", Type: Fighting, Category: Physical, BasePower: 40, Accuracy: 100, PP: 30,
		Priority: 1, Flags: FlagContact | FlagProtect | FlagMirror | FlagPunch},
	{Name: "Low Kick", Type: Fighting, Category: Physical, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror, PowerFrom: PowerWeight},
	{Name: "Bullet Punch", Type: Steel, Category: Physical, BasePower: 40, Accuracy: 100, PP: 30,
		Priority: 1, Flags: FlagContact | FlagProtect | FlagMirror | FlagPunch},
	{Name: "Iron Head", Type: Steel, Category: Physical, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Flinch: true}}},
	{Name: "Heavy Slam", Type: Steel, Category: Physical, Accuracy: 100, PP: 10,
		Flags: FlagContact | FlagProtect | FlagMirror, PowerFrom: PowerWeight},
	{Name: "Earthquake", Type: Ground, Category: Physical, BasePower: 100, Accuracy: 100, PP: 10,
		Target: TargetAllAdjacent, Flags: FlagProtect | FlagMirror},
	{Name: "Rock Slide", Type: Rock, Category: Physical, BasePower: 75, Accuracy: 90, PP: 10,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Flinch: true}}},
	{Name: "Stone Edge", Type: Rock, Category: Physical, BasePower: 100, Accuracy: 80, PP: 5,
		Flags: FlagProtect | FlagMirror, CritRatio: 2},
	{Name: "Rock Blast", Type: Rock, Category: Physical, BasePower: 25, Accuracy: 90, PP: 10,
		Flags: FlagProtect | FlagMirror | FlagBullet, HitsMin: 2, HitsMax: 5},
	{Name: "Bullet Seed", Type: Grass, Category: Physical, BasePower: 25, Accuracy: 100, PP: 30,
		Flags: FlagProtect | FlagMirror | FlagBullet, HitsMin: 2, HitsMax: 5},
	{Name: "Wood Hammer", Type: Grass, Category: Physical, BasePower: 120, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror, Recoil: Fraction{1, 3}},
	{Name: "Grassy Glide", Type: Grass, Category: Physical, BasePower: 55, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Flare Blitz", Type: Fire, Category: Physical, BasePower: 120, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror | FlagDefrost, Recoil: Fraction{1, 3},
		Secondaries: []Secondary{{Chance: 10, Status: StatusBurn}}},
	{Name: "Aqua Jet", Type: Water, Category: Physical, BasePower: 40, Accuracy: 100, PP: 20,
		Priority: 1, Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Waterfall", Type: Water, Category: Physical, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 20, Flinch: true}}},
	{Name: "Liquidation", Type: Water, Category: Physical, BasePower: 85, Accuracy: 100, PP: 10,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 20, Boosts: [NumBoosts]int8{0, -1}}}},
	{Name: "Ice Shard", Type: Ice, Category: Physical, BasePower: 40, Accuracy: 100, PP: 30,
		Priority: 1, Flags: FlagProtect | FlagMirror},
	{Name: "Icicle Crash", Type: Ice, Category: Physical, BasePower: 85, Accuracy: 90, PP: 10,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Flinch: true}}},
	{Name: "Crunch", Type: Dark, Category: Physical, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror | FlagBite,
		Secondaries: []Secondary{{Chance: 20, Boosts: [NumBoosts]int8{0, -1}}}},
	{Name: "Sucker Punch", Type: Dark, Category: Physical, BasePower: 70, Accuracy: 100, PP: 5,
		Priority: 1, Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Knock Off", Type: Dark, Category: Physical, BasePower: 65, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Kowtow Cleave", Type: Dark, Category: Physical, BasePower: 85, Accuracy: AccuracyAlways, PP: 10,
		Flags: FlagContact | FlagProtect | FlagMirror | FlagSlicing},
	{Name: "Last Respects", Type: Ghost, Category: Physical, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror, PowerFrom: PowerFallen},
	{Name: "Shadow Sneak", Type: Ghost, Category: Physical, BasePower: 40, Accuracy: 100, PP: 30,
		Priority: 1, Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "Dragon Claw", Type: Dragon, Category: Physical, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror},
	{Name: "U-turn", Type: Bug, Category: Physical, BasePower: 70, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror | FlagPivot},
	{Name: "Wild Charge", Type: Electric, Category: Physical, BasePower: 90, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror, Recoil: Fraction{1, 4}},
	{Name: "Play Rough", Type: Fairy, Category: Physical, BasePower: 90, Accuracy: 90, PP: 10,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Boosts: [NumBoosts]int8{-1}}}},
	{Name: "Acrobatics", Type: Flying, Category: Physical, BasePower: 55, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror, PowerFrom: PowerAcrobatics},
	{Name: "Brave Bird", Type: Flying, Category: Physical, BasePower: 120, Accuracy: 100, PP: 15,
		Flags: FlagContact | FlagProtect | FlagMirror, Recoil: Fraction{1, 3}},
	{Name: "Poison Jab", Type: Poison, Category: Physical, BasePower: 80, Accuracy: 100, PP: 20,
		Flags: FlagContact | FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Status: StatusPoison}}},
	{Name: "Gunk Shot", Type: Poison, Category: Physical, BasePower: 120, Accuracy: 80, PP: 5,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Status: StatusPoison}}},
	{Name: "Struggle", Type: Normal, Category: Physical, BasePower: 50, Accuracy: AccuracyAlways, PP: 1,
		Flags: FlagContact, Typeless: true, StruggleRecoil: Fraction{1, 4}},

	// --- special ---
	{Name: "Flamethrower", Type: Fire, Category: Special, BasePower: 90, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Status: StatusBurn}}},
	{Name: "Fire Blast", Type: Fire, Category: Special, BasePower: 110, Accuracy: 85, PP: 5,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Status: StatusBurn}}},
	{Name: "Heat Wave", Type: Fire, Category: Special, BasePower: 95, Accuracy: 90, PP: 10,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror | FlagWind,
		Secondaries: []Secondary{{Chance: 10, Status: StatusBurn}}},
	{Name: "Eruption", Type: Fire, Category: Special, BasePower: 150, Accuracy: 100, PP: 5,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror, PowerFrom: PowerHPRatio},
	{Name: "Water Spout", Type: Water, Category: Special, BasePower: 150, Accuracy: 100, PP: 5,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror, PowerFrom: PowerHPRatio},
	{Name: "Hydro Pump", Type: Water, Category: Special, BasePower: 110, Accuracy: 80, PP: 5,
		Flags: FlagProtect | FlagMirror},
	{Name: "Surf", Type: Water, Category: Special, BasePower: 90, Accuracy: 100, PP: 15,
		Target: TargetAllAdjacent, Flags: FlagProtect | FlagMirror},
	{Name: "Giga Drain", Type: Grass, Category: Special, BasePower: 75, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror | FlagHeal, Drain: Fraction{1, 2}},
	{Name: "Energy Ball", Type: Grass, Category: Special, BasePower: 90, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror | FlagBullet,
		Secondaries: []Secondary{{Chance: 10, Boosts: [NumBoosts]int8{0, 0, 0, -1}}}},
	{Name: "Thunderbolt", Type: Electric, Category: Special, BasePower: 90, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Status: StatusParalysis}}},
	{Name: "Thunder", Type: Electric, Category: Special, BasePower: 110, Accuracy: 70, PP: 10,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Status: StatusParalysis}}},
	{Name: "Volt Switch", Type: Electric, Category: Special, BasePower: 70, Accuracy: 100, PP: 20,
		Flags: FlagProtect | FlagMirror | FlagPivot},
	{Name: "Vacuum Wave", Type: Fighting, Category: Special, BasePower: 40, Accuracy: 100, PP: 30,
		Priority: 1, Flags: FlagProtect | FlagMirror},
	{Name: "Ice Beam", Type: Ice, Category: Special, BasePower: 90, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Status: StatusFreeze}}},
	{Name: "Blizzard", Type: Ice, Category: Special, BasePower: 110, Accuracy: 70, PP: 5,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror | FlagWind,
		Secondaries: []Secondary{{Chance: 10, Status: StatusFreeze}}},
	{Name: "Icy Wind", Type: Ice, Category: Special, BasePower: 55, Accuracy: 95, PP: 15,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror | FlagWind,
		Secondaries: []Secondary{{Chance: 100, Boosts: [NumBoosts]int8{0, 0, 0, 0, -1}}}},
	{Name: "Psychic", Type: Psychic, Category: Special, BasePower: 90, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Boosts: [NumBoosts]int8{0, 0, 0, -1}}}},
	{Name: "Shadow Ball", Type: Ghost, Category: Special, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagMirror | FlagBullet,
		Secondaries: []Secondary{{Chance: 20, Boosts: [NumBoosts]int8{0, 0, 0, -1}}}},
	{Name: "Hex", Type: Ghost, Category: Special, BasePower: 65, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror, PowerFrom: PowerHex},
	{Name: "Dark Pulse", Type: Dark, Category: Special, BasePower: 80, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 20, Flinch: true}}},
	{Name: "Moonblast", Type: Fairy, Category: Special, BasePower: 95, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 30, Boosts: [NumBoosts]int8{0, 0, -1}}}},
	{Name: "Dazzling Gleam", Type: Fairy, Category: Special, BasePower: 80, Accuracy: 100, PP: 10,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagMirror},
	{Name: "Dragon Pulse", Type: Dragon, Category: Special, BasePower: 85, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror},
	{Name: "Draco Meteor", Type: Dragon, Category: Special, BasePower: 130, Accuracy: 90, PP: 5,
		Flags: FlagProtect | FlagMirror, SelfBoosts: [NumBoosts]int8{0, 0, -2}},
	{Name: "Flash Cannon", Type: Steel, Category: Special, BasePower: 80, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror,
		Secondaries: []Secondary{{Chance: 10, Boosts: [NumBoosts]int8{0, 0, 0, -1}}}},
	{Name: "Sludge Bomb", Type: Poison, Category: Special, BasePower: 90, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagMirror | FlagBullet,
		Secondaries: []Secondary{{Chance: 30, Status: StatusPoison}}},
	{Name: "Air Slash", Type: Flying, Category: Special, BasePower: 75, Accuracy: 95, PP: 15,
		Flags: FlagProtect | FlagMirror | FlagSlicing,
		Secondaries: []Secondary{{Chance: 30, Flinch: true}}},
	{Name: "Hurricane", Type: Flying, Category: Special, BasePower: 110, Accuracy: 70, PP: 10,
		Flags: FlagProtect | FlagMirror | FlagWind,
		Secondaries: []Secondary{{Chance: 30, Volatile: VolatileConfusion}}},

	// --- status: self ---
	{Name: "Protect", Type: Normal, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Priority: 4, Target: TargetSelf, IsProtect: true},
	{Name: "Recover", Type: Normal, Category: StatusMove, Accuracy: AccuracyAlways, PP: 5,
		Target: TargetSelf, Flags: FlagHeal, HealFraction: Fraction{1, 2}},
	{Name: "Swords Dance", Type: Normal, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{2}},
	{Name: "Nasty Plot", Type: Dark, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{0, 0, 2}},
	{Name: "Dragon Dance", Type: Dragon, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{1, 0, 0, 0, 1}},
	{Name: "Calm Mind", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{0, 0, 1, 1}},
	{Name: "Iron Defense", Type: Steel, Category: StatusMove, Accuracy: AccuracyAlways, PP: 15,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{0, 2}},
	{Name: "Agility", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 30,
		Target: TargetSelf, SelfBoosts: [NumBoosts]int8{0, 0, 0, 0, 2}},
	{Name: "Substitute", Type: Normal, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetSelf, InflictVolatile: VolatileSubstitute},

	// --- status: target ---
	{Name: "Will-O-Wisp", Type: Fire, Category: StatusMove, Accuracy: 85, PP: 15,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictStatus: StatusBurn},
	{Name: "Thunder Wave", Type: Electric, Category: StatusMove, Accuracy: 90, PP: 20,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictStatus: StatusParalysis},
	{Name: "Toxic", Type: Poison, Category: StatusMove, Accuracy: 90, PP: 10,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictStatus: StatusToxic},
	{Name: "Spore", Type: Grass, Category: StatusMove, Accuracy: 100, PP: 15,
		Flags: FlagProtect | FlagReflectable | FlagMirror | FlagPowder, InflictStatus: StatusSleep},
	{Name: "Sleep Powder", Type: Grass, Category: StatusMove, Accuracy: 75, PP: 15,
		Flags: FlagProtect | FlagReflectable | FlagMirror | FlagPowder, InflictStatus: StatusSleep},
	{Name: "Confuse Ray", Type: Ghost, Category: StatusMove, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictVolatile: VolatileConfusion},
	{Name: "Leech Seed", Type: Grass, Category: StatusMove, Accuracy: 90, PP: 10,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictVolatile: VolatileLeechSeed},
	{Name: "Encore", Type: Normal, Category: StatusMove, Accuracy: 100, PP: 5,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictVolatile: VolatileEncore},
	{Name: "Taunt", Type: Dark, Category: StatusMove, Accuracy: 100, PP: 20,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictVolatile: VolatileTaunt},
	{Name: "Disable", Type: Normal, Category: StatusMove, Accuracy: 100, PP: 20,
		Flags: FlagProtect | FlagReflectable | FlagMirror, InflictVolatile: VolatileDisable},
	{Name: "Growl", Type: Normal, Category: StatusMove, Accuracy: 100, PP: 40,
		Target: TargetAllAdjacentFoes, Flags: FlagProtect | FlagReflectable | FlagMirror | FlagSound,
		Boosts: [NumBoosts]int8{-1}},
	{Name: "Charm", Type: Fairy, Category: StatusMove, Accuracy: 100, PP: 20,
		Flags: FlagProtect | FlagReflectable | FlagMirror, Boosts: [NumBoosts]int8{-2}},
	{Name: "Scary Face", Type: Normal, Category: StatusMove, Accuracy: 100, PP: 10,
		Flags: FlagProtect | FlagReflectable | FlagMirror, Boosts: [NumBoosts]int8{0, 0, 0, 0, -2}},

	// --- status: sides ---
	{Name: "Stealth Rock", Type: Rock, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetFoeSide, Flags: FlagReflectable, SideCondition: SideStealthRock},
	{Name: "Spikes", Type: Ground, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetFoeSide, Flags: FlagReflectable, SideCondition: SideSpikes},
	{Name: "Toxic Spikes", Type: Poison, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetFoeSide, Flags: FlagReflectable, SideCondition: SideToxicSpikes},
	{Name: "Sticky Web", Type: Bug, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetFoeSide, Flags: FlagReflectable, SideCondition: SideStickyWeb},
	{Name: "Reflect", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetAllySide, SideCondition: SideReflect},
	{Name: "Light Screen", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 30,
		Target: TargetAllySide, SideCondition: SideLightScreen},
	{Name: "Aurora Veil", Type: Ice, Category: StatusMove, Accuracy: AccuracyAlways, PP: 20,
		Target: TargetAllySide, SideCondition: SideAuroraVeil},
	{Name: "Safeguard", Type: Normal, Category: StatusMove, Accuracy: AccuracyAlways, PP: 25,
		Target: TargetAllySide, SideCondition: SideSafeguard},
	{Name: "Mist", Type: Ice, Category: StatusMove, Accuracy: AccuracyAlways, PP: 30,
		Target: TargetAllySide, SideCondition: SideMist},
	{Name: "Tailwind", Type: Flying, Category: StatusMove, Accuracy: AccuracyAlways, PP: 15,
		Target: TargetAllySide, Flags: FlagWind, SideCondition: SideTailwind},

	// --- status: field ---
	{Name: "Trick Room", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 5,
		Priority: -7, Target: TargetAll, FieldCondition: FieldTrickRoom},
	{Name: "Magic Room", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldMagicRoom},
	{Name: "Wonder Room", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldWonderRoom},
	{Name: "Rain Dance", Type: Water, Category: StatusMove, Accuracy: AccuracyAlways, PP: 5,
		Target: TargetAll, FieldCondition: FieldRain},
	{Name: "Sunny Day", Type: Fire, Category: StatusMove, Accuracy: AccuracyAlways, PP: 5,
		Target: TargetAll, FieldCondition: FieldSun},
	{Name: "Sandstorm", Type: Rock, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldSand},
	{Name: "Snowscape", Type: Ice, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldSnow},
	{Name: "Electric Terrain", Type: Electric, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldElectricTerrain},
	{Name: "Grassy Terrain", Type: Grass, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldGrassyTerrain},
	{Name: "Misty Terrain", Type: Fairy, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldMistyTerrain},
	{Name: "Psychic Terrain", Type: Psychic, Category: StatusMove, Accuracy: AccuracyAlways, PP: 10,
		Target: TargetAll, FieldCondition: FieldPsychicTerrain},
}
