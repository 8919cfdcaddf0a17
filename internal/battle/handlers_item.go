package battle

import (
	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// Item handlers. Items are unregistered when consumed or removed; Magic
// Room suppresses them without unregistering (the accessors return item 0).

func init() {
	registerEffect(&effect{
		key: "leftovers",
		onResidual: func(s *State, holder Ref) {
			if s.field[fMagicRoom] > 0 {
				return
			}
			row := s.activeRow(holder)
			s.applyHeal(holder, s.maxHP(row)/16, "Leftovers")
		},
		residualOrder: residualItemHeal,
	})

	registerEffect(&effect{
		key: "blacksludge",
		onResidual: func(s *State, holder Ref) {
			if s.field[fMagicRoom] > 0 {
				return
			}
			row := s.activeRow(holder)
			if s.hasType(row, dex.Poison) {
				s.applyHeal(holder, s.maxHP(row)/16, "Black Sludge")
			} else {
				s.applyDamage(holder, s.maxHP(row)/8, "Black Sludge")
			}
		},
		residualOrder: residualItemHeal,
	})

	registerEffect(&effect{
		key: "lifeorb",
		onModifyDamage: func(s *State, holder Ref, mc *moveContext, dmg int32) int32 {
			if holder != mc.attacker || s.item(s.activeRow(holder)) == 0 {
				return dmg
			}
			return dmg * 5324 / 4096
		},
		onAfterMove: func(s *State, holder Ref, mc *moveContext, hit bool) {
			row := s.activeRow(holder)
			if !hit || row == nil || s.isFainted(row) || s.item(row) == 0 {
				return
			}
			if mc.move.Category == dex.StatusMove {
				return
			}
			s.applyDamage(holder, s.maxHP(row)/10, "Life Orb")
		},
	})

	registerEffect(&effect{
		key: "choiceband",
		onModifyStat: func(s *State, holder Ref, stat dex.Stat, val int32) int32 {
			if stat == dex.Atk && s.item(s.activeRow(holder)) != 0 {
				return val * 3 / 2
			}
			return val
		},
	})

	registerEffect(&effect{
		key: "choicespecs",
		onModifyStat: func(s *State, holder Ref, stat dex.Stat, val int32) int32 {
			if stat == dex.SpA && s.item(s.activeRow(holder)) != 0 {
				return val * 3 / 2
			}
			return val
		},
	})

	registerEffect(&effect{
		key: "assaultvest",
		onModifyStat: func(s *State, holder Ref, stat dex.Stat, val int32) int32 {
			if stat == dex.SpD && s.item(s.activeRow(holder)) != 0 {
				return val * 3 / 2
			}
			return val
		},
	})

	registerEffect(&effect{
		key: "rockyhelmet",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			if !mc.move.Flags.Has(dex.FlagContact) || s.item(s.activeRow(holder)) == 0 {
				return
			}
			att := s.activeRow(mc.attacker)
			if att == nil || s.isFainted(att) {
				return
			}
			s.applyDamage(mc.attacker, s.maxHP(att)/6, "Rocky Helmet")
		},
	})

	registerEffect(&effect{
		key: "sitrusberry",
		onDamagingHit: func(s *State, holder Ref, mc *moveContext) {
			row := s.activeRow(holder)
			if row == nil || s.isFainted(row) || s.item(row) == 0 {
				return
			}
			if s.currentHP(row)*2 > s.maxHP(row) {
				return
			}
			s.consumeItem(holder, "Sitrus Berry")
			s.applyHeal(holder, s.maxHP(row)/4, "Sitrus Berry")
		},
	})

	registerEffect(&effect{
		key: "expertbelt",
		onModifyDamage: func(s *State, holder Ref, mc *moveContext, dmg int32) int32 {
			if holder != mc.attacker || s.item(s.activeRow(holder)) == 0 {
				return dmg
			}
			if mc.effNum > mc.effDen {
				return dmg * 4915 / 4096
			}
			return dmg
		},
	})

	for _, boost := range []struct {
		key string
		typ dex.Type
	}{
		{"charcoal", dex.Fire},
		{"mysticwater", dex.Water},
		{"magnet", dex.Electric},
	} {
		typ := boost.typ
		registerEffect(&effect{
			key: boost.key,
			onBasePower: func(s *State, holder Ref, mc *moveContext, bp int32) int32 {
				if mc.moveType == typ && s.item(s.activeRow(holder)) != 0 {
					return bp * 6 / 5
				}
				return bp
			},
		})
	}

	// Choice Scarf speed lives in the state's derived-speed computation;
	// Focus Sash, Covert Cloak, and Heavy-Duty Boots are interpreted by
	// the pipeline and the hazard phase at their exact specified steps.
	registerEffect(&effect{key: "choicescarf"})
	registerEffect(&effect{key: "focussash"})
	registerEffect(&effect{key: "covertcloak"})
	registerEffect(&effect{key: "heavydutyboots"})
}
