// Package dex holds the static data registry: species, moves, abilities,
// items, natures, and the type chart. A registry is built once from named
// tables, assigns dense integer IDs by sorting canonical keys, and is
// immutable afterwards; concurrent reads are safe.
package dex

import (
	"sort"
	"strings"
	"sync"

	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// CanonicalKey normalizes a display name to the canonical lookup key:
// lowercase with everything outside [a-z0-9] removed. ID assignment sorts
// these keys, so independently built registries agree on the ID map.
func CanonicalKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tables is the input to Load: unordered record lists with display names.
// IDs on the input records are ignored and reassigned.
type Tables struct {
	Species   []Species
	Moves     []Move
	Abilities []Ability
	Items     []Item
}

// Registry is the loaded, immutable data set. Move, ability, and item ID 0
// is reserved for "none"; species IDs start at 0.
type Registry struct {
	species   []Species
	moves     []Move // index 0 unused
	abilities []Ability
	items     []Item

	speciesByKey map[string]int32
	movesByKey   map[string]int32
	abilityByKey map[string]int32
	itemByKey    map[string]int32

	struggleID int32
}

// Load builds a registry from tables. Duplicate canonical keys within one
// entity kind are rejected with a conflict error rather than letting the
// later record win.
func Load(t Tables) (*Registry, error) {
	r := &Registry{
		speciesByKey: make(map[string]int32, len(t.Species)),
		movesByKey:   make(map[string]int32, len(t.Moves)),
		abilityByKey: make(map[string]int32, len(t.Abilities)),
		itemByKey:    make(map[string]int32, len(t.Items)),
	}

	species := append([]Species(nil), t.Species...)
	if err := normalizeKeys(len(species), func(i int) *string { return &species[i].Key }, func(i int) string { return species[i].Name }, "species"); err != nil {
		return nil, err
	}
	sort.Slice(species, func(i, j int) bool { return species[i].Key < species[j].Key })
	r.species = species
	for i := range r.species {
		r.species[i].ID = int32(i)
		r.speciesByKey[r.species[i].Key] = int32(i)
	}

	moves := append([]Move(nil), t.Moves...)
	if err := normalizeKeys(len(moves), func(i int) *string { return &moves[i].Key }, func(i int) string { return moves[i].Name }, "move"); err != nil {
		return nil, err
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Key < moves[j].Key })
	r.moves = make([]Move, 1, len(moves)+1) // index 0 = none
	r.moves = append(r.moves, moves...)
	for i := 1; i < len(r.moves); i++ {
		r.moves[i].ID = int32(i)
		r.movesByKey[r.moves[i].Key] = int32(i)
	}

	abilities := append([]Ability(nil), t.Abilities...)
	if err := normalizeKeys(len(abilities), func(i int) *string { return &abilities[i].Key }, func(i int) string { return abilities[i].Name }, "ability"); err != nil {
		return nil, err
	}
	sort.Slice(abilities, func(i, j int) bool { return abilities[i].Key < abilities[j].Key })
	r.abilities = make([]Ability, 1, len(abilities)+1)
	r.abilities = append(r.abilities, abilities...)
	for i := 1; i < len(r.abilities); i++ {
		r.abilities[i].ID = int32(i)
		r.abilityByKey[r.abilities[i].Key] = int32(i)
	}

	items := append([]Item(nil), t.Items...)
	if err := normalizeKeys(len(items), func(i int) *string { return &items[i].Key }, func(i int) string { return items[i].Name }, "item"); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	r.items = make([]Item, 1, len(items)+1)
	r.items = append(r.items, items...)
	for i := 1; i < len(r.items); i++ {
		r.items[i].ID = int32(i)
		r.itemByKey[r.items[i].Key] = int32(i)
	}

	if id, ok := r.movesByKey["struggle"]; ok {
		r.struggleID = id
	}

	// Species ability keys must resolve.
	for i := range r.species {
		for _, key := range r.species[i].Abilities {
			if _, ok := r.abilityByKey[key]; !ok {
				return nil, errs.Newf(errs.CodeInvalidArgument,
					"species %q references unknown ability %q", r.species[i].Name, key)
			}
		}
	}

	return r, nil
}

// normalizeKeys fills empty Keys from Names and rejects duplicates. The keyAt
// accessor returns a pointer so the fill writes through.
func normalizeKeys(n int, keyAt func(int) *string, nameAt func(int) string, kind string) error {
	seen := make(map[string]string, n)
	for i := 0; i < n; i++ {
		k := keyAt(i)
		if *k == "" {
			*k = CanonicalKey(nameAt(i))
		}
		if prev, dup := seen[*k]; dup {
			return errs.Newf(errs.CodeConflict,
				"duplicate %s key %q (%q and %q)", kind, *k, prev, nameAt(i)).
				WithMeta("key", *k)
		}
		seen[*k] = nameAt(i)
	}
	return nil
}

// SpeciesCount returns the number of loaded species.
func (r *Registry) SpeciesCount() int { return len(r.species) }

// Species returns the record for a species ID. Lookup is O(1); an unknown
// ID returns nil.
func (r *Registry) Species(id int32) *Species {
	if id < 0 || int(id) >= len(r.species) {
		return nil
	}
	return &r.species[id]
}

// Move returns the record for a move ID, or nil for 0 and unknown IDs.
func (r *Registry) Move(id int32) *Move {
	if id <= 0 || int(id) >= len(r.moves) {
		return nil
	}
	return &r.moves[id]
}

// Ability returns the record for an ability ID, or nil for 0 and unknown IDs.
func (r *Registry) Ability(id int32) *Ability {
	if id <= 0 || int(id) >= len(r.abilities) {
		return nil
	}
	return &r.abilities[id]
}

// Item returns the record for an item ID, or nil for 0 and unknown IDs.
func (r *Registry) Item(id int32) *Item {
	if id <= 0 || int(id) >= len(r.items) {
		return nil
	}
	return &r.items[id]
}

// AbilityCount returns the number of ability IDs including the reserved 0.
func (r *Registry) AbilityCount() int { return len(r.abilities) }

// ItemCount returns the number of item IDs including the reserved 0.
func (r *Registry) ItemCount() int { return len(r.items) }

// MoveCount returns the number of move IDs including the reserved 0.
func (r *Registry) MoveCount() int { return len(r.moves) }

// SpeciesID resolves a display name or canonical key to a species ID.
func (r *Registry) SpeciesID(name string) (int32, bool) {
	id, ok := r.speciesByKey[CanonicalKey(name)]
	return id, ok
}

// MoveID resolves a display name or canonical key to a move ID.
func (r *Registry) MoveID(name string) (int32, bool) {
	id, ok := r.movesByKey[CanonicalKey(name)]
	return id, ok
}

// AbilityID resolves a display name or canonical key to an ability ID.
func (r *Registry) AbilityID(name string) (int32, bool) {
	id, ok := r.abilityByKey[CanonicalKey(name)]
	return id, ok
}

// ItemID resolves a display name or canonical key to an item ID.
func (r *Registry) ItemID(name string) (int32, bool) {
	id, ok := r.itemByKey[CanonicalKey(name)]
	return id, ok
}

// StruggleID returns the move ID of Struggle, the fallback when a slot has
// no selectable move.
func (r *Registry) StruggleID() int32 { return r.struggleID }

var (
	gen9Once sync.Once
	gen9Reg  *Registry
)

// Gen9 returns the built-in generation 9 data subset. The tables are
// compiled into the binary so the engine runs without external files.
func Gen9() *Registry {
	gen9Once.Do(func() {
		reg, err := Load(Tables{
			Species:   gen9Species,
			Moves:     gen9Moves,
			Abilities: gen9Abilities,
			Items:     gen9Items,
		})
		if err != nil {
			// The embedded tables are fixed at compile time; a load
			// failure is a programmer error.
			panic(err)
		}
		gen9Reg = reg
	})
	return gen9Reg
}
