package battle

import (
	"encoding/json"
	"fmt"
)

// RecordKind tags a log record.
type RecordKind string

const (
	RecTurnStart       RecordKind = "turn_start"
	RecSwitch          RecordKind = "switch"
	RecMove            RecordKind = "move"
	RecDamage          RecordKind = "damage"
	RecHeal            RecordKind = "heal"
	RecStatus          RecordKind = "status"
	RecCure            RecordKind = "cure"
	RecBoost           RecordKind = "boost"
	RecFaint           RecordKind = "faint"
	RecSideStart       RecordKind = "side_start"
	RecSideEnd         RecordKind = "side_end"
	RecFieldStart      RecordKind = "field_start"
	RecFieldEnd        RecordKind = "field_end"
	RecAbilityActivate RecordKind = "ability"
	RecItemEnd         RecordKind = "item_end"
	RecVolatile        RecordKind = "volatile"
	RecVolatileEnd     RecordKind = "volatile_end"
	RecImmune          RecordKind = "immune"
	RecMiss            RecordKind = "miss"
	RecFail            RecordKind = "fail"
	RecCrit            RecordKind = "crit"
	RecEffectiveness   RecordKind = "effectiveness"
	RecWin             RecordKind = "win"
	RecTie             RecordKind = "tie"
)

// Record is one entry of the ordered battle log. Field presence depends on
// the kind; the JSON form is stable, so a fixed seed and action sequence
// reproduces the log byte for byte.
type Record struct {
	Kind RecordKind `json:"kind"`
	Turn int32      `json:"turn"`

	Side int32 `json:"side,omitempty"`
	Slot int32 `json:"slot,omitempty"`

	Species   string  `json:"species,omitempty"`
	Move      string  `json:"move,omitempty"`
	Targets   []Ref   `json:"targets,omitempty"`
	HP        int32   `json:"hp,omitempty"`
	MaxHP     int32   `json:"max_hp,omitempty"`
	Delta     int32   `json:"delta,omitempty"`
	Stat      string  `json:"stat,omitempty"`
	Status    string  `json:"status,omitempty"`
	Condition string  `json:"condition,omitempty"`
	Remaining int32   `json:"remaining,omitempty"`
	MultNum   int32   `json:"mult_num,omitempty"`
	MultDen   int32   `json:"mult_den,omitempty"`
	Source    string  `json:"source,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Winner    int32   `json:"winner,omitempty"`
	Draw      bool    `json:"draw,omitempty"`
}

// Ref addresses an active battle position.
type Ref struct {
	Side int32 `json:"side"`
	Slot int32 `json:"slot"`
}

func (r Ref) String() string { return fmt.Sprintf("%d:%d", r.Side, r.Slot) }

// Log is the ordered record stream for one battle. A sink, when set,
// observes records as they are appended; the live stream endpoint uses it.
type Log struct {
	records []Record
	sink    func(Record)
}

// NewLog creates an empty log.
func NewLog() *Log { return &Log{} }

// SetSink installs an observer for appended records. Pass nil to remove.
func (l *Log) SetSink(fn func(Record)) { l.sink = fn }

func (l *Log) add(r Record) {
	l.records = append(l.records, r)
	if l.sink != nil {
		l.sink(r)
	}
}

// Records returns the full stream. The returned slice is shared; callers
// must not mutate it.
func (l *Log) Records() []Record { return l.records }

// Len returns the number of records.
func (l *Log) Len() int { return len(l.records) }

// Marshal renders the stream as JSON lines. Two identical battles produce
// identical bytes.
func (l *Log) Marshal() ([]byte, error) {
	var out []byte
	for i := range l.records {
		b, err := json.Marshal(&l.records[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		out = append(out, '\n')
	}
	return out, nil
}
