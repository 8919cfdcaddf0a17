// Package store persists battle replays in SQLite. A replay is the recipe
// only: seed, format, teams, and the per-turn action sets, plus the emitted
// log records. Live battle state is never stored; the engine rebuilds it
// deterministically from the recipe.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
)

// BattleRow is the stored metadata of one battle.
type BattleRow struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Seed      uint32        `json:"seed"`
	Format    battle.Format `json:"format"`
	Phase     string        `json:"phase"`
	Winner    int32         `json:"winner"`
	Draw      bool          `json:"draw"`
	Turns     int32         `json:"turns"`
}

// TurnRow is one stored action set.
type TurnRow struct {
	BattleID string          `json:"battle_id"`
	Seq      int64           `json:"seq"`
	Phase    string          `json:"phase"`
	Actions  []battle.Action `json:"actions"`
	Hash     string          `json:"hash"`
}

// RecordRow is one stored log record.
type RecordRow struct {
	Seq    int64         `json:"seq"`
	Record battle.Record `json:"record"`
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens or creates the replay database and runs migrations.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "open replay database", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errs.Wrap(errs.CodeInternal, "enable WAL mode", err)
	}
	db.SetMaxOpenConns(1) // SQLite is not concurrent for writes
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS battles (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			seed INTEGER NOT NULL,
			sides INTEGER NOT NULL,
			team_size INTEGER NOT NULL,
			active_slots INTEGER NOT NULL,
			halved_screens INTEGER NOT NULL DEFAULT 0,
			teams TEXT NOT NULL,
			phase TEXT NOT NULL DEFAULT 'awaiting_actions',
			winner INTEGER NOT NULL DEFAULT 0,
			draw INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_battles_created ON battles(created_at DESC);`,

		`CREATE TABLE IF NOT EXISTS turns (
			battle_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			phase TEXT NOT NULL,
			actions TEXT NOT NULL,
			hash TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (battle_id, seq),
			FOREIGN KEY (battle_id) REFERENCES battles(id) ON DELETE CASCADE
		);`,

		`CREATE TABLE IF NOT EXISTS records (
			battle_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			turn INTEGER NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			PRIMARY KEY (battle_id, seq),
			FOREIGN KEY (battle_id) REFERENCES battles(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_battle_turn ON records(battle_id, turn);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "begin migration", err)
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return errs.Wrap(errs.CodeInternal, "migration failed", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return errs.Wrap(errs.CodeInternal, "commit migration", err)
	}
	return nil
}

// CreateBattle stores a new battle recipe and returns its ID.
func (s *Store) CreateBattle(ctx context.Context, seed uint32, format battle.Format, teams [][]battle.TeamMember) (string, error) {
	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return "", errs.Wrap(errs.CodeInternal, "marshal teams", err)
	}
	id := uuid.New().String()
	halved := 0
	if format.HalvedScreens {
		halved = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO battles (id, created_at, seed, sides, team_size, active_slots, halved_screens, teams)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), int64(seed),
		format.Sides, format.TeamSize, format.ActiveSlots, halved, string(teamsJSON))
	if err != nil {
		return "", errs.Wrap(errs.CodeInternal, "insert battle", err)
	}
	return id, nil
}

// GetBattle returns a battle's stored metadata.
func (s *Store) GetBattle(ctx context.Context, id string) (BattleRow, error) {
	var (
		row    BattleRow
		seed   int64
		halved int
		draw   int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, seed, sides, team_size, active_slots, halved_screens, phase, winner, draw, turns
		FROM battles WHERE id = ?`, id).Scan(
		&row.ID, &row.CreatedAt, &seed,
		&row.Format.Sides, &row.Format.TeamSize, &row.Format.ActiveSlots, &halved,
		&row.Phase, &row.Winner, &draw, &row.Turns)
	if errors.Is(err, sql.ErrNoRows) {
		return BattleRow{}, errs.Newf(errs.CodeNotFound, "battle %s not found", id)
	}
	if err != nil {
		return BattleRow{}, errs.Wrap(errs.CodeInternal, "fetch battle", err)
	}
	row.Seed = uint32(seed)
	row.Format.HalvedScreens = halved != 0
	row.Draw = draw != 0
	return row, nil
}

// GetTeams returns the stored team recipe for a battle.
func (s *Store) GetTeams(ctx context.Context, id string) ([][]battle.TeamMember, error) {
	var teamsJSON string
	err := s.db.QueryRowContext(ctx, `SELECT teams FROM battles WHERE id = ?`, id).Scan(&teamsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.Newf(errs.CodeNotFound, "battle %s not found", id)
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "fetch teams", err)
	}
	var teams [][]battle.TeamMember
	if err := json.Unmarshal([]byte(teamsJSON), &teams); err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "unmarshal teams", err)
	}
	return teams, nil
}

// ListBattles returns battles newest first.
func (s *Store) ListBattles(ctx context.Context, limit, offset int) ([]BattleRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, seed, sides, team_size, active_slots, halved_screens, phase, winner, draw, turns
		FROM battles ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list battles", err)
	}
	defer rows.Close()

	var out []BattleRow
	for rows.Next() {
		var (
			row    BattleRow
			seed   int64
			halved int
			draw   int
		)
		if err := rows.Scan(&row.ID, &row.CreatedAt, &seed,
			&row.Format.Sides, &row.Format.TeamSize, &row.Format.ActiveSlots, &halved,
			&row.Phase, &row.Winner, &draw, &row.Turns); err != nil {
			return nil, errs.Wrap(errs.CodeInternal, "scan battle", err)
		}
		row.Seed = uint32(seed)
		row.Format.HalvedScreens = halved != 0
		row.Draw = draw != 0
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list battles", err)
	}
	return out, nil
}

// AppendTurn stores one submitted action set. seq is the submission index,
// not the battle turn: forced-switch sets get their own entries.
func (s *Store) AppendTurn(ctx context.Context, id string, seq int64, phase string, actions []battle.Action, hash string) error {
	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "marshal actions", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO turns (battle_id, seq, phase, actions, hash) VALUES (?, ?, ?, ?, ?)`,
		id, seq, phase, string(actionsJSON), hash)
	if err != nil {
		if isConstraintErr(err) {
			return errs.Newf(errs.CodeConflict, "turn %d already stored for battle %s", seq, id)
		}
		return errs.Wrap(errs.CodeInternal, "insert turn", err)
	}
	return nil
}

// ListTurns returns a battle's stored action sets in submission order.
func (s *Store) ListTurns(ctx context.Context, id string) ([]TurnRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT battle_id, seq, phase, actions, hash FROM turns
		WHERE battle_id = ? ORDER BY seq ASC`, id)
	if err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list turns", err)
	}
	defer rows.Close()

	var out []TurnRow
	for rows.Next() {
		var (
			t           TurnRow
			actionsJSON string
		)
		if err := rows.Scan(&t.BattleID, &t.Seq, &t.Phase, &actionsJSON, &t.Hash); err != nil {
			return nil, errs.Wrap(errs.CodeInternal, "scan turn", err)
		}
		if err := json.Unmarshal([]byte(actionsJSON), &t.Actions); err != nil {
			return nil, errs.Wrap(errs.CodeInternal, "unmarshal actions", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list turns", err)
	}
	return out, nil
}

// AppendRecords stores log records starting at startSeq.
func (s *Store) AppendRecords(ctx context.Context, id string, startSeq int64, recs []battle.Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "begin record insert", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (battle_id, seq, turn, kind, payload) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "prepare record insert", err)
	}
	defer stmt.Close()

	for i := range recs {
		payload, err := json.Marshal(&recs[i])
		if err != nil {
			return errs.Wrap(errs.CodeInternal, "marshal record", err)
		}
		if _, err := stmt.ExecContext(ctx, id, startSeq+int64(i), recs[i].Turn, string(recs[i].Kind), string(payload)); err != nil {
			if isConstraintErr(err) {
				return errs.Newf(errs.CodeConflict, "record %d already stored for battle %s", startSeq+int64(i), id)
			}
			return errs.Wrap(errs.CodeInternal, "insert record", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return errs.Wrap(errs.CodeInternal, "commit records", err)
	}
	return nil
}

// ListRecords returns log records with seq > sinceSeq, oldest first.
func (s *Store) ListRecords(ctx context.Context, id string, sinceSeq int64, limit int) ([]RecordRow, error) {
	if limit <= 0 || limit > 10000 {
		limit = 2000
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, payload FROM records
		WHERE battle_id = ? AND seq > ? ORDER BY seq ASC LIMIT ?`, id, sinceSeq, limit)
	if err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list records", err)
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var (
			r       RecordRow
			payload string
		)
		if err := rows.Scan(&r.Seq, &payload); err != nil {
			return nil, errs.Wrap(errs.CodeInternal, "scan record", err)
		}
		if err := json.Unmarshal([]byte(payload), &r.Record); err != nil {
			return nil, errs.Wrap(errs.CodeInternal, "unmarshal record", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(errs.CodeInternal, "list records", err)
	}
	return out, nil
}

// SetOutcome updates the stored battle metadata after a step.
func (s *Store) SetOutcome(ctx context.Context, id, phase string, winner int32, draw bool, turns int32) error {
	d := 0
	if draw {
		d = 1
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE battles SET phase = ?, winner = ?, draw = ?, turns = ? WHERE id = ?`,
		phase, winner, d, turns, id)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "update battle", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.Newf(errs.CodeNotFound, "battle %s not found", id)
	}
	return nil
}

// DeleteBattle removes a battle and its turns and records.
func (s *Store) DeleteBattle(ctx context.Context, id string) error {
	// The schema declares cascading deletes but SQLite only honors them
	// with foreign keys enabled, so delete the children explicitly.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(errs.CodeInternal, "begin delete", err)
	}
	defer tx.Rollback()
	for _, q := range []string{
		`DELETE FROM records WHERE battle_id = ?`,
		`DELETE FROM turns WHERE battle_id = ?`,
		`DELETE FROM battles WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return errs.Wrap(errs.CodeInternal, "delete battle", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return errs.Wrap(errs.CodeInternal, "commit delete", err)
	}
	return nil
}

// Replay rebuilds a battle from its stored recipe by replaying every
// action set through a fresh engine instance. The result is bit-identical
// to the live battle at the same point.
func (s *Store) Replay(ctx context.Context, reg *dex.Registry, id string) (*battle.Battle, error) {
	meta, err := s.GetBattle(ctx, id)
	if err != nil {
		return nil, err
	}
	teams, err := s.GetTeams(ctx, id)
	if err != nil {
		return nil, err
	}
	turns, err := s.ListTurns(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := battle.New(battle.Config{
		Seed: meta.Seed, Format: meta.Format, Teams: teams, Registry: reg,
	})
	if err != nil {
		return nil, err
	}
	for _, t := range turns {
		if t.Phase == battle.PhaseAwaitingSwitches.String() {
			_, err = b.SubmitSwitches(t.Actions)
		} else {
			_, err = b.Step(t.Actions)
		}
		if err != nil {
			return nil, errs.Wrap(errs.CodeInternal,
				fmt.Sprintf("replay diverged at seq %d", t.Seq), err)
		}
		if t.Hash != "" && b.Hash() != t.Hash {
			return nil, errs.Newf(errs.CodeInternal,
				"replay hash mismatch at seq %d", t.Seq)
		}
	}
	return b, nil
}

func isConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint failed") || strings.Contains(msg, "unique constraint")
}
