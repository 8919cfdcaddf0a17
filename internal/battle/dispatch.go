package battle

import (
	"sort"

	"github.com/vgcsim/vgc-replay-go/internal/dex"
)

// The dispatcher routes named hook points through the handlers of every
// registered effect. Effects are identified by canonical key and bound to
// concrete handler functions in a static registry (populated by init in
// handlers_*.go); the per-battle table stores only (effect, scope, holder)
// tuples, never closures over battle state.

// sourceKind ranks handler sources within a hook. Abilities outrank items;
// the ordering is fixed and deterministic.
type sourceKind int32

const (
	kindAbility sourceKind = iota
	kindItem
)

// tryHitResult is returned by onTryHit handlers.
type tryHitResult int32

const (
	tryHitPass   tryHitResult = iota
	tryHitImmune              // move has no effect on the holder
)

// moveContext carries the event data of one move execution through the
// hook chain. Handlers read it; only the pipeline writes it.
type moveContext struct {
	attacker Ref
	target   Ref
	move     *dex.Move
	moveType dex.Type
	crit     bool
	spread   bool
	effNum   int32 // folded type effectiveness
	effDen   int32
	damage   int32 // damage dealt to the current target
}

// effect bundles the handler functions of one ability or item. Nil fields
// mean the effect does not bind that hook.
type effect struct {
	key string

	onSwitchIn  func(s *State, holder Ref)
	onSwitchOut func(s *State, holder Ref)

	onTryHit         func(s *State, holder Ref, mc *moveContext) tryHitResult
	onModifyType     func(s *State, holder Ref, mc *moveContext, t dex.Type) dex.Type
	onModifyPriority func(s *State, holder Ref, mc *moveContext, prio int32) int32
	onModifyStat     func(s *State, holder Ref, stat dex.Stat, val int32) int32
	onModifyAccuracy func(s *State, holder Ref, mc *moveContext, acc int32) int32
	onBasePower      func(s *State, holder Ref, mc *moveContext, bp int32) int32
	onModifyDamage   func(s *State, holder Ref, mc *moveContext, dmg int32) int32
	onModifySTAB     func(s *State, holder Ref, mc *moveContext, num, den int32) (int32, int32)
	onDamagingHit    func(s *State, holder Ref, mc *moveContext)
	onAfterMove      func(s *State, holder Ref, mc *moveContext, hit bool)

	onResidual    func(s *State, holder Ref)
	residualOrder int32

	onFaint func(s *State, holder Ref)
}

// effectRegistry is the static key -> handler table. It is written only
// from init functions and read-only afterwards.
var effectRegistry = map[string]*effect{}

func registerEffect(e *effect) {
	if _, dup := effectRegistry[e.key]; dup {
		panic("duplicate effect registration: " + e.key)
	}
	effectRegistry[e.key] = e
}

// handlerEntry is one active registration: an effect bound to a holder.
type handlerEntry struct {
	kind   sourceKind
	eff    *effect
	holder Ref
}

// dispatcher owns the active handler table for one battle.
type dispatcher struct {
	// abilityEffects and itemEffects are indexed by dex ID; nil entries
	// mean the effect has no handlers in this build.
	abilityEffects []*effect
	itemEffects    []*effect

	handlers []handlerEntry
}

// newDispatcher resolves effect keys against a registry once, so hook
// dispatch never compares strings.
func newDispatcher(reg *dex.Registry) *dispatcher {
	d := &dispatcher{
		abilityEffects: make([]*effect, reg.AbilityCount()),
		itemEffects:    make([]*effect, reg.ItemCount()),
	}
	for id := int32(1); int(id) < reg.AbilityCount(); id++ {
		d.abilityEffects[id] = effectRegistry[reg.Ability(id).Key]
	}
	for id := int32(1); int(id) < reg.ItemCount(); id++ {
		d.itemEffects[id] = effectRegistry[reg.Item(id).Key]
	}
	return d
}

// registerSlot adds the holder's ability and item handlers. Called on
// switch-in and when a suppression ends.
func (d *dispatcher) registerSlot(s *State, holder Ref) {
	row := s.activeRow(holder)
	if row == nil {
		return
	}
	if id := s.ability(row); id > 0 {
		if eff := d.abilityEffects[id]; eff != nil {
			d.handlers = append(d.handlers, handlerEntry{kindAbility, eff, holder})
		}
	}
	if id := row[pItem]; id > 0 {
		if eff := d.itemEffects[id]; eff != nil {
			d.handlers = append(d.handlers, handlerEntry{kindItem, eff, holder})
		}
	}
}

// unregisterSlot removes every handler owned by the holder. Called on
// switch-out and faint.
func (d *dispatcher) unregisterSlot(holder Ref) {
	out := d.handlers[:0]
	for _, h := range d.handlers {
		if h.holder != holder {
			out = append(out, h)
		}
	}
	d.handlers = out
}

// unregisterItem removes only the holder's item handlers, for consumed
// berries and removed items.
func (d *dispatcher) unregisterItem(holder Ref) {
	out := d.handlers[:0]
	for _, h := range d.handlers {
		if h.holder != holder || h.kind != kindItem {
			out = append(out, h)
		}
	}
	d.handlers = out
}

// ordered returns the active entries for which keep returns true, sorted
// by the fixed hook order: source kind (ability before item), holder
// effective speed descending (ascending under Trick Room), then side and
// slot ascending. The slice is freshly allocated; handlers may mutate
// state while iterating it.
func (d *dispatcher) ordered(s *State, keep func(*effect) bool) []handlerEntry {
	var out []handlerEntry
	for _, h := range d.handlers {
		if keep(h.eff) {
			out = append(out, h)
		}
	}
	invert := s.field[fTrickRoom] > 0
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		sa, sb := s.effectiveSpeed(a.holder), s.effectiveSpeed(b.holder)
		if sa != sb {
			if invert {
				return sa < sb
			}
			return sa > sb
		}
		if a.holder.Side != b.holder.Side {
			return a.holder.Side < b.holder.Side
		}
		return a.holder.Slot < b.holder.Slot
	})
	return out
}

// holderOnly filters ordered entries to a single holder.
func (d *dispatcher) holderOnly(s *State, holder Ref, keep func(*effect) bool) []handlerEntry {
	var out []handlerEntry
	for _, h := range d.handlers {
		if h.holder == holder && keep(h.eff) {
			out = append(out, h)
		}
	}
	// Ability before item; at most two entries per holder.
	sort.SliceStable(out, func(i, j int) bool { return out[i].kind < out[j].kind })
	return out
}

// --- hook dispatch ----------------------------------------------------

func (d *dispatcher) switchIn(s *State, holder Ref) {
	for _, h := range d.holderOnly(s, holder, func(e *effect) bool { return e.onSwitchIn != nil }) {
		h.eff.onSwitchIn(s, h.holder)
	}
}

func (d *dispatcher) switchOut(s *State, holder Ref) {
	for _, h := range d.holderOnly(s, holder, func(e *effect) bool { return e.onSwitchOut != nil }) {
		h.eff.onSwitchOut(s, h.holder)
	}
}

// tryHit asks the target's handlers whether the move connects.
func (d *dispatcher) tryHit(s *State, target Ref, mc *moveContext) tryHitResult {
	for _, h := range d.holderOnly(s, target, func(e *effect) bool { return e.onTryHit != nil }) {
		if res := h.eff.onTryHit(s, h.holder, mc); res != tryHitPass {
			return res
		}
	}
	return tryHitPass
}

func (d *dispatcher) modifyType(s *State, attacker Ref, mc *moveContext, t dex.Type) dex.Type {
	for _, h := range d.holderOnly(s, attacker, func(e *effect) bool { return e.onModifyType != nil }) {
		t = h.eff.onModifyType(s, h.holder, mc, t)
	}
	return t
}

func (d *dispatcher) modifyPriority(s *State, attacker Ref, mc *moveContext, prio int32) int32 {
	for _, h := range d.holderOnly(s, attacker, func(e *effect) bool { return e.onModifyPriority != nil }) {
		prio = h.eff.onModifyPriority(s, h.holder, mc, prio)
	}
	return prio
}

// modifyStat folds the holder's stat modifiers into val.
func (d *dispatcher) modifyStat(s *State, holder Ref, stat dex.Stat, val int32) int32 {
	for _, h := range d.holderOnly(s, holder, func(e *effect) bool { return e.onModifyStat != nil }) {
		val = h.eff.onModifyStat(s, h.holder, stat, val)
	}
	return val
}

// modifyAccuracy folds attacker-side and target-side accuracy handlers.
func (d *dispatcher) modifyAccuracy(s *State, mc *moveContext, acc int32) int32 {
	for _, h := range d.holderOnly(s, mc.attacker, func(e *effect) bool { return e.onModifyAccuracy != nil }) {
		acc = h.eff.onModifyAccuracy(s, h.holder, mc, acc)
	}
	for _, h := range d.holderOnly(s, mc.target, func(e *effect) bool { return e.onModifyAccuracy != nil }) {
		acc = h.eff.onModifyAccuracy(s, h.holder, mc, acc)
	}
	return acc
}

// basePower folds the attacker's base-power handlers.
func (d *dispatcher) basePower(s *State, mc *moveContext, bp int32) int32 {
	for _, h := range d.holderOnly(s, mc.attacker, func(e *effect) bool { return e.onBasePower != nil }) {
		bp = h.eff.onBasePower(s, h.holder, mc, bp)
	}
	return bp
}

// modifyDamage folds attacker handlers first, then target handlers.
func (d *dispatcher) modifyDamage(s *State, mc *moveContext, dmg int32) int32 {
	for _, h := range d.holderOnly(s, mc.attacker, func(e *effect) bool { return e.onModifyDamage != nil }) {
		dmg = h.eff.onModifyDamage(s, h.holder, mc, dmg)
	}
	for _, h := range d.holderOnly(s, mc.target, func(e *effect) bool { return e.onModifyDamage != nil }) {
		dmg = h.eff.onModifyDamage(s, h.holder, mc, dmg)
	}
	return dmg
}

func (d *dispatcher) modifySTAB(s *State, mc *moveContext, num, den int32) (int32, int32) {
	for _, h := range d.holderOnly(s, mc.attacker, func(e *effect) bool { return e.onModifySTAB != nil }) {
		num, den = h.eff.onModifySTAB(s, h.holder, mc, num, den)
	}
	return num, den
}

// damagingHit fires the target's post-hit handlers.
func (d *dispatcher) damagingHit(s *State, target Ref, mc *moveContext) {
	for _, h := range d.holderOnly(s, target, func(e *effect) bool { return e.onDamagingHit != nil }) {
		h.eff.onDamagingHit(s, h.holder, mc)
	}
}

func (d *dispatcher) afterMove(s *State, attacker Ref, mc *moveContext, hit bool) {
	for _, h := range d.holderOnly(s, attacker, func(e *effect) bool { return e.onAfterMove != nil }) {
		h.eff.onAfterMove(s, h.holder, mc, hit)
	}
}

// residual fires every active residual handler, ordered by residual order
// then the fixed hook order.
func (d *dispatcher) residual(s *State) {
	entries := d.ordered(s, func(e *effect) bool { return e.onResidual != nil })
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].eff.residualOrder < entries[j].eff.residualOrder
	})
	for _, h := range entries {
		// Holders may faint mid-phase; skip the rest of their handlers.
		if row := s.activeRow(h.holder); row == nil || s.isFainted(row) {
			continue
		}
		h.eff.onResidual(s, h.holder)
	}
}

func (d *dispatcher) faint(s *State, holder Ref) {
	for _, h := range d.holderOnly(s, holder, func(e *effect) bool { return e.onFaint != nil }) {
		h.eff.onFaint(s, h.holder)
	}
}
