package battle

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
	"github.com/vgcsim/vgc-replay-go/internal/rng"
)

// Snapshots are a canonical little-endian dump of the packed arrays plus
// the generator registers. Two battles with equal snapshots replay
// identically from that point.

const (
	snapshotMagic   = 0x42434756 // "VGCB" little-endian
	snapshotVersion = 1
)

// words flattens the battle into the canonical int32 sequence.
func (b *Battle) words() []int32 {
	s := b.state
	f := s.format
	halved := int32(0)
	if f.HalvedScreens {
		halved = 1
	}
	draw := int32(0)
	if b.outcome.Draw {
		draw = 1
	}
	done := int32(0)
	if b.outcome.Done {
		done = 1
	}

	out := []int32{
		snapshotMagic, snapshotVersion,
		f.Sides, f.TeamSize, f.ActiveSlots, halved,
		s.turn, int32(b.phase), done, b.outcome.Winner, draw,
		int32(s.rng.Seed()), int32(s.rng.State()),
	}
	out = append(out, s.field...)
	for side := int32(0); side < f.Sides; side++ {
		out = append(out, s.fainted[side])
		out = append(out, s.sides[side]...)
		out = append(out, s.active[side]...)
		out = append(out, s.chosen[side]...)
		for team := int32(0); team < f.TeamSize; team++ {
			out = append(out, s.mons[side][team]...)
		}
	}
	return out
}

// Snapshot serializes the battle.
func (b *Battle) Snapshot() []byte {
	words := b.words()
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(w))
	}
	return out
}

// Hash returns the hex SHA-256 of the snapshot, used to assert replay
// equivalence without retaining full dumps.
func (b *Battle) Hash() string {
	sum := sha256.Sum256(b.Snapshot())
	return hex.EncodeToString(sum[:])
}

// snapshotReader pulls int32 words off a byte dump.
type snapshotReader struct {
	data []byte
	off  int
	err  error
}

func (r *snapshotReader) next() int32 {
	if r.err != nil {
		return 0
	}
	if r.off+4 > len(r.data) {
		r.err = errs.New(errs.CodeInvalidArgument, "snapshot truncated")
		return 0
	}
	w := int32(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return w
}

func (r *snapshotReader) fill(dst []int32) {
	for i := range dst {
		dst[i] = r.next()
	}
}

// RestoreSnapshot rebuilds a battle from a snapshot against the given
// registry. The registry must be the one the snapshot was taken with;
// packed IDs are not portable across data sets.
func RestoreSnapshot(reg *dex.Registry, data []byte) (*Battle, error) {
	if reg == nil {
		reg = dex.Gen9()
	}
	r := &snapshotReader{data: data}

	if r.next() != snapshotMagic {
		return nil, errs.New(errs.CodeInvalidArgument, "not a battle snapshot")
	}
	if v := r.next(); v != snapshotVersion {
		return nil, errs.Newf(errs.CodeInvalidArgument, "unsupported snapshot version %d", v)
	}

	f := Format{
		Sides:       r.next(),
		TeamSize:    r.next(),
		ActiveSlots: r.next(),
	}
	f.HalvedScreens = r.next() != 0
	if r.err != nil {
		return nil, r.err
	}
	if f.Sides != 2 || f.TeamSize < 1 || f.TeamSize > 6 || f.ActiveSlots < 1 || f.ActiveSlots > 2 {
		return nil, errs.New(errs.CodeInvalidArgument, "snapshot format out of range")
	}

	turn := r.next()
	phase := Phase(r.next())
	done := r.next() != 0
	winner := r.next()
	draw := r.next() != 0
	seed := uint32(r.next())
	state := uint32(r.next())

	s := newState(reg, f, seed)
	s.turn = turn
	s.rng = rng.Restore(seed, state)
	r.fill(s.field)
	for side := int32(0); side < f.Sides; side++ {
		s.fainted[side] = r.next()
		r.fill(s.sides[side])
		r.fill(s.active[side])
		r.fill(s.chosen[side])
		for team := int32(0); team < f.TeamSize; team++ {
			r.fill(s.mons[side][team])
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(data) {
		return nil, errs.New(errs.CodeInvalidArgument, "snapshot has trailing bytes")
	}

	// The handler table is derived state; rebind it from the restored
	// rows.
	for side := int32(0); side < f.Sides; side++ {
		for slot := int32(0); slot < f.ActiveSlots; slot++ {
			ref := Ref{Side: side, Slot: slot}
			if row := s.activeRow(ref); row != nil && !s.isFainted(row) {
				s.disp.registerSlot(s, ref)
			}
		}
	}

	return &Battle{
		state:   s,
		phase:   phase,
		outcome: Outcome{Done: done, Winner: winner, Draw: draw},
	}, nil
}
