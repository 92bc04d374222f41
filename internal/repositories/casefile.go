package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/sqlite"
	"github.com/google/uuid"
)

// CaseFileRepository archives the cases closed during a session.
type CaseFileRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewCaseFileRepository(db *sqlite.Database, logger *slog.Logger) *CaseFileRepository {
	return &CaseFileRepository{
		db:     db,
		logger: logger.With(slog.String("source", "CaseFileRepository")),
	}
}

// NewCaseFile builds the archive record of a finished game.
func NewCaseFile(
	id uuid.UUID,
	detective string,
	outcome models.Outcome,
	log []models.LogEntry,
	closedAt time.Time,
) models.CaseFile {
	accused := ""
	if outcome.Result != models.ResultTimedOut {
		accused = fmt.Sprintf("%s, %s, %s", outcome.Guess.Suspect, outcome.Guess.Weapon, outcome.Guess.Room)
	}
	return models.CaseFile{
		ID:        id,
		Detective: detective,
		Result:    outcome.Result,
		Suspect:   outcome.Answer.Suspect.String(),
		Weapon:    outcome.Answer.Weapon.String(),
		Room:      outcome.Answer.Room.String(),
		Accused:   accused,
		ClosedAt:  closedAt.UTC(),
		Stats:     outcome.Stats,
		Log:       log,
	}
}

// Save stores cf together with its log.
func (r *CaseFileRepository) Save(ctx context.Context, cf models.CaseFile) (err error) {
	tx, err := r.db.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to rollback", errors.SlogError(rbErr))
			}
		}
	}()

	stmt := `INSERT INTO case_files (id, detective, result, suspect, weapon, room, accused, closed_at, turns,
                        actionable_turns, searches, samples_collected, samples_analyzed, uv_scans,
                        camera_requests, donuts_spent)
VALUES (:id, :detective, :result, :suspect, :weapon, :room, :accused, :closed_at, :turns, :actionable_turns,
        :searches, :samples_collected, :samples_analyzed, :uv_scans, :camera_requests, :donuts_spent)`
	if _, err = tx.NamedExecContext(ctx, stmt, cf); err != nil {
		return errors.Wrap(err, "insert case file", slog.String("id", cf.ID.String()))
	}

	for i, entry := range cf.Log {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO log_entries (case_file_id, seq, turn, text) VALUES (?, ?, ?, ?)`,
			cf.ID, i, entry.Turn, entry.Text); err != nil {
			return errors.Wrap(err, "insert log entry", slog.Int("seq", i))
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "case archived",
		slog.String("id", cf.ID.String()), slog.String("result", string(cf.Result)))
	return nil
}

// List returns the archived cases without their logs, oldest first.
func (r *CaseFileRepository) List(ctx context.Context) ([]models.CaseFile, error) {
	var cases []models.CaseFile
	stmt := `SELECT id, detective, result, suspect, weapon, room, accused, closed_at, turns, actionable_turns,
       searches, samples_collected, samples_analyzed, uv_scans, camera_requests, donuts_spent
FROM case_files
ORDER BY closed_at, rowid`
	if err := r.db.ReadOnly.SelectContext(ctx, &cases, stmt); err != nil {
		return nil, errors.Wrap(err, "select case files")
	}
	return cases, nil
}

// Get returns the case with id including its log.
func (r *CaseFileRepository) Get(ctx context.Context, id uuid.UUID) (models.CaseFile, error) {
	var cf models.CaseFile
	stmt := `SELECT id, detective, result, suspect, weapon, room, accused, closed_at, turns, actionable_turns,
       searches, samples_collected, samples_analyzed, uv_scans, camera_requests, donuts_spent
FROM case_files
WHERE id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &cf, stmt, id); err != nil {
		return cf, errors.Wrap(err, "get case file", slog.String("id", id.String()))
	}
	if err := r.db.ReadOnly.SelectContext(ctx, &cf.Log,
		`SELECT turn, text FROM log_entries WHERE case_file_id = ? ORDER BY seq`, id); err != nil {
		return cf, errors.Wrap(err, "select log entries", slog.String("id", id.String()))
	}
	return cf, nil
}

// Summary tallies the results of the archived cases.
func (r *CaseFileRepository) Summary(ctx context.Context) (map[models.Result]int, error) {
	var rows []struct {
		Result models.Result `db:"result"`
		Count  int           `db:"count"`
	}
	if err := r.db.ReadOnly.SelectContext(ctx, &rows,
		`SELECT result, COUNT(*) AS count FROM case_files GROUP BY result`); err != nil {
		return nil, errors.Wrap(err, "summarize case files")
	}
	summary := make(map[models.Result]int, len(rows))
	for _, row := range rows {
		summary[row.Result] = row.Count
	}
	return summary, nil
}
