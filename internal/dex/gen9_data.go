package dex

// Built-in species table. Base stats are [HP, Atk, Def, SpA, SpD, Spe];
// weights in hectograms, heights in decimeters.
var gen9Species = []Species{
	{Name: "Pikachu", BaseStats: [6]int32{35, 55, 40, 50, 50, 90},
		Type1: Electric, Type2: TypeNone, WeightHg: 60, HeightDm: 4,
		Abilities: []string{"static"}},
	{Name: "Charizard", BaseStats: [6]int32{78, 84, 78, 109, 85, 100},
		Type1: Fire, Type2: Flying, WeightHg: 905, HeightDm: 17,
		Abilities: []string{"blaze"}},
	{Name: "Venusaur", BaseStats: [6]int32{80, 82, 83, 100, 100, 80},
		Type1: Grass, Type2: Poison, WeightHg: 1000, HeightDm: 20,
		Abilities: []string{"overgrow"}},
	{Name: "Blastoise", BaseStats: [6]int32{79, 83, 100, 85, 105, 78},
		Type1: Water, Type2: TypeNone, WeightHg: 855, HeightDm: 16,
		Abilities: []string{"torrent"}},
	{Name: "Garchomp", BaseStats: [6]int32{108, 130, 95, 80, 85, 102},
		Type1: Dragon, Type2: Ground, WeightHg: 950, HeightDm: 19,
		Abilities: []string{"roughskin"}},
	{Name: "Gyarados", BaseStats: [6]int32{95, 125, 79, 60, 100, 81},
		Type1: Water, Type2: Flying, WeightHg: 2350, HeightDm: 65,
		Abilities: []string{"intimidate"}},
	{Name: "Incineroar", BaseStats: [6]int32{95, 115, 90, 80, 90, 60},
		Type1: Fire, Type2: Dark, WeightHg: 830, HeightDm: 18,
		Abilities: []string{"intimidate", "blaze"}},
	{Name: "Kingambit", BaseStats: [6]int32{100, 135, 120, 60, 85, 50},
		Type1: Dark, Type2: Steel, WeightHg: 1200, HeightDm: 20,
		Abilities: []string{"supremeoverlord"}},
	{Name: "Dragapult", BaseStats: [6]int32{88, 120, 75, 100, 75, 142},
		Type1: Dragon, Type2: Ghost, WeightHg: 500, HeightDm: 30,
		Abilities: []string{"clearbody", "infiltrator"}},
	{Name: "Scizor", BaseStats: [6]int32{70, 130, 100, 55, 80, 65},
		Type1: Bug, Type2: Steel, WeightHg: 1180, HeightDm: 18,
		Abilities: []string{"technician"}},
	{Name: "Breloom", BaseStats: [6]int32{60, 130, 80, 60, 60, 70},
		Type1: Grass, Type2: Fighting, WeightHg: 392, HeightDm: 12,
		Abilities: []string{"technician"}},
	{Name: "Crawdaunt", BaseStats: [6]int32{63, 120, 85, 90, 55, 55},
		Type1: Water, Type2: Dark, WeightHg: 328, HeightDm: 11,
		Abilities: []string{"adaptability"}},
	{Name: "Azumarill", BaseStats: [6]int32{100, 50, 80, 60, 80, 50},
		Type1: Water, Type2: Fairy, WeightHg: 285, HeightDm: 8,
		Abilities: []string{"thickfat"}},
	{Name: "Talonflame", BaseStats: [6]int32{78, 81, 71, 74, 69, 126},
		Type1: Fire, Type2: Flying, WeightHg: 245, HeightDm: 12,
		Abilities: []string{"flamebody"}},
	{Name: "Pelipper", BaseStats: [6]int32{60, 50, 100, 95, 70, 65},
		Type1: Water, Type2: Flying, WeightHg: 280, HeightDm: 12,
		Abilities: []string{"drizzle"}},
	{Name: "Torkoal", BaseStats: [6]int32{70, 85, 140, 85, 70, 20},
		Type1: Fire, Type2: TypeNone, WeightHg: 804, HeightDm: 5,
		Abilities: []string{"drought"}},
	{Name: "Tyranitar", BaseStats: [6]int32{100, 134, 110, 95, 100, 61},
		Type1: Rock, Type2: Dark, WeightHg: 2020, HeightDm: 20,
		Abilities: []string{"sandstream"}},
	{Name: "Rillaboom", BaseStats: [6]int32{100, 125, 90, 60, 70, 85},
		Type1: Grass, Type2: TypeNone, WeightHg: 900, HeightDm: 21,
		Abilities: []string{"grassysurge", "overgrow"}},
	{Name: "Amoonguss", BaseStats: [6]int32{114, 85, 70, 85, 80, 30},
		Type1: Grass, Type2: Poison, WeightHg: 105, HeightDm: 6,
		Abilities: []string{"regenerator"}},
	{Name: "Skarmory", BaseStats: [6]int32{65, 80, 140, 40, 70, 70},
		Type1: Steel, Type2: Flying, WeightHg: 505, HeightDm: 17,
		Abilities: []string{"sturdy"}},
	{Name: "Heatran", BaseStats: [6]int32{91, 90, 106, 130, 106, 77},
		Type1: Fire, Type2: Steel, WeightHg: 4300, HeightDm: 17,
		Abilities: []string{"flashfire"}},
	{Name: "Jolteon", BaseStats: [6]int32{65, 65, 60, 110, 95, 130},
		Type1: Electric, Type2: TypeNone, WeightHg: 245, HeightDm: 8,
		Abilities: []string{"voltabsorb"}},
	{Name: "Vaporeon", BaseStats: [6]int32{130, 65, 60, 110, 95, 65},
		Type1: Water, Type2: TypeNone, WeightHg: 290, HeightDm: 10,
		Abilities: []string{"waterabsorb"}},
	{Name: "Ferrothorn", BaseStats: [6]int32{74, 94, 131, 54, 116, 20},
		Type1: Grass, Type2: Steel, WeightHg: 1100, HeightDm: 10,
		Abilities: []string{"ironbarbs"}},
	{Name: "Weezing", BaseStats: [6]int32{65, 90, 120, 85, 70, 60},
		Type1: Poison, Type2: TypeNone, WeightHg: 95, HeightDm: 12,
		Abilities: []string{"levitate"}},
	{Name: "Machamp", BaseStats: [6]int32{90, 130, 80, 65, 85, 55},
		Type1: Fighting, Type2: TypeNone, WeightHg: 1300, HeightDm: 16,
		Abilities: []string{"guts"}},
	{Name: "Sharpedo", BaseStats: [6]int32{70, 120, 40, 95, 40, 95},
		Type1: Water, Type2: Dark, WeightHg: 888, HeightDm: 18,
		Abilities: []string{"speedboost"}},
	{Name: "Snorlax", BaseStats: [6]int32{160, 110, 65, 65, 110, 30},
		Type1: Normal, Type2: TypeNone, WeightHg: 4600, HeightDm: 21,
		Abilities: []string{"thickfat", "guts"}},
	{Name: "Nidoking", BaseStats: [6]int32{81, 102, 77, 85, 75, 85},
		Type1: Poison, Type2: Ground, WeightHg: 620, HeightDm: 14,
		Abilities: []string{"sheerforce"}},
	{Name: "Lucario", BaseStats: [6]int32{70, 110, 70, 115, 70, 90},
		Type1: Fighting, Type2: Steel, WeightHg: 540, HeightDm: 12,
		Abilities: []string{"innerfocus"}},
	{Name: "Ribombee", BaseStats: [6]int32{60, 55, 60, 95, 70, 124},
		Type1: Bug, Type2: Fairy, WeightHg: 5, HeightDm: 2,
		Abilities: []string{"shielddust"}},
	{Name: "Shedinja", BaseStats: [6]int32{1, 90, 45, 30, 30, 40},
		Type1: Bug, Type2: Ghost, WeightHg: 12, HeightDm: 8,
		Abilities: []string{"wonderguard"}},
}

var gen9Abilities = []Ability{
	{Name: "Intimidate", Rating: 4},
	{Name: "Levitate", Rating: 3},
	{Name: "Technician", Rating: 4},
	{Name: "Adaptability", Rating: 4},
	{Name: "Guts", Rating: 3},
	{Name: "Supreme Overlord", Rating: 4},
	{Name: "Flash Fire", Rating: 3},
	{Name: "Volt Absorb", Rating: 3},
	{Name: "Water Absorb", Rating: 3},
	{Name: "Rough Skin", Rating: 3},
	{Name: "Iron Barbs", Rating: 3},
	{Name: "Static", Rating: 2},
	{Name: "Flame Body", Rating: 2},
	{Name: "Sturdy", Rating: 3},
	{Name: "Clear Body", Rating: 2},
	{Name: "Inner Focus", Rating: 2},
	{Name: "Infiltrator", Rating: 3},
	{Name: "Sheer Force", Rating: 4},
	{Name: "Shield Dust", Rating: 2},
	{Name: "Drizzle", Rating: 4},
	{Name: "Drought", Rating: 4},
	{Name: "Sand Stream", Rating: 4},
	{Name: "Grassy Surge", Rating: 4},
	{Name: "Speed Boost", Rating: 4},
	{Name: "Blaze", Rating: 2},
	{Name: "Torrent", Rating: 2},
	{Name: "Overgrow", Rating: 2},
	{Name: "Thick Fat", Rating: 3},
	{Name: "Regenerator", Rating: 4},
	{Name: "Wonder Guard", Rating: 5},
}

var gen9Items = []Item{
	{Name: "Leftovers", Category: ItemHeld},
	{Name: "Black Sludge", Category: ItemHeld},
	{Name: "Life Orb", Category: ItemHeld},
	{Name: "Choice Band", Category: ItemChoice},
	{Name: "Choice Specs", Category: ItemChoice},
	{Name: "Choice Scarf", Category: ItemChoice},
	{Name: "Focus Sash", Category: ItemHeld},
	{Name: "Covert Cloak", Category: ItemHeld},
	{Name: "Rocky Helmet", Category: ItemHeld},
	{Name: "Heavy-Duty Boots", Category: ItemHeld},
	{Name: "Sitrus Berry", Category: ItemBerry},
	{Name: "Charcoal", Category: ItemHeld},
	{Name: "Mystic Water", Category: ItemHeld},
	{Name: "Magnet", Category: ItemHeld},
	{Name: "Expert Belt", Category: ItemHeld},
	{Name: "Assault Vest", Category: ItemHeld},
}
