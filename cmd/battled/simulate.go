package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/rng"
	"github.com/vgcsim/vgc-replay-go/internal/teams"
)

// simulate plays one match file to completion with random policies and
// writes the record stream to out, one JSON object per line.
func simulate(path string, out io.Writer) error {
	match, err := teams.LoadMatch(path)
	if err != nil {
		return err
	}

	b, err := battle.New(match.Config())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	b.Log().SetSink(func(rec battle.Record) {
		_ = enc.Encode(rec)
	})
	for _, rec := range b.Log().Records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	gens := [2]*rng.Generator{
		rng.New(match.Seed ^ 0x5F356495),
		rng.New(match.Seed ^ (0x5F356495 + 0x269EC3)),
	}
	const maxTurns = 1000
	for int(b.Turn()) < maxTurns && b.Phase() != battle.PhaseEnded {
		var actions []battle.Action
		for side := int32(0); side < 2; side++ {
			legal, err := b.LegalActions(side)
			if err != nil {
				return err
			}
			bySlot := map[int32][]battle.Action{}
			var order []int32
			for _, a := range legal {
				if _, seen := bySlot[a.Slot]; !seen {
					order = append(order, a.Slot)
				}
				bySlot[a.Slot] = append(bySlot[a.Slot], a)
			}
			for _, slot := range order {
				options := bySlot[slot]
				actions = append(actions, options[gens[side].Next(len(options))])
			}
		}
		if b.Phase() == battle.PhaseAwaitingSwitches {
			_, err = b.SubmitSwitches(actions)
		} else {
			_, err = b.Step(actions)
		}
		if err != nil {
			return err
		}
	}

	o := b.Outcome()
	switch {
	case o.Done && o.Draw:
		fmt.Fprintf(out, "draw after %d turns (hash %s)\n", b.Turn(), b.Hash())
	case o.Done:
		fmt.Fprintf(out, "side %d wins after %d turns (hash %s)\n", o.Winner, b.Turn(), b.Hash())
	default:
		fmt.Fprintf(out, "unresolved after %d turns (hash %s)\n", b.Turn(), b.Hash())
	}
	return nil
}
