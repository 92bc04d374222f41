package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/random"
	"github.com/jmoiron/sqlx"
)

// migrateTo makes the tables of db match schema.
//
// The migration is declarative: schema is created in a scratch database, tables missing from it are dropped, new
// tables are created and changed tables are rebuilt with their common columns copied over, following
// https://www.sqlite.org/lang_altertable.html#otheralter. Indexes and triggers are rebuilt to match too.
func (db *Database) migrateTo(ctx context.Context, schema string) (err error) {
	if _, err = db.ReadWrite.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return errors.Wrap(err, "disable foreign key validation")
	}
	defer func() {
		if _, fkErr := db.ReadWrite.ExecContext(ctx, "PRAGMA foreign_keys = ON"); fkErr != nil {
			err = errors.Join(err, errors.Wrap(fkErr, "re-enable foreign key validation"))
		}
	}()

	var targetName string
	if targetName, err = random.Letters(20); err != nil { //nolint:mnd // long enough to be unique.
		return errors.Wrap(err, "generate random ID")
	}
	targetDSN := fmt.Sprintf("file:%s?mode=memory&cache=shared", targetName)
	target, err := sql.Open("sqlite3", targetDSN)
	if err != nil {
		return errors.Wrap(err, "open schema target database")
	}
	defer func() {
		if closeErr := target.Close(); closeErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelWarn, "failed to close schema target database",
				errors.SlogError(closeErr))
		}
	}()
	if _, err = target.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "create schema target database")
	}

	err = db.syncWith(ctx, targetDSN)
	if _, detachErr := db.ReadWrite.ExecContext(ctx, "DETACH DATABASE schemaTarget"); detachErr != nil {
		db.logger.LogAttrs(ctx, slog.LevelDebug, "schema target not detached", errors.SlogError(detachErr))
	}
	return err
}

// syncWith migrates the tables, indexes and triggers to the schema of the database at targetDSN in one transaction.
func (db *Database) syncWith(ctx context.Context, targetDSN string) error {
	tx, err := db.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "start transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.LogAttrs(ctx, slog.LevelWarn, "failed to rollback transaction", errors.SlogError(rbErr))
		}
	}()
	if _, err = tx.ExecContext(ctx, "ATTACH DATABASE ? AS schemaTarget", targetDSN); err != nil {
		return errors.Wrap(err, "attach schema target database")
	}

	if err = db.migrateTables(ctx, tx); err != nil {
		return errors.Wrap(err, "migrate tables")
	}
	for _, kind := range []string{"index", "trigger"} {
		if err = db.migrateObjects(ctx, tx, kind); err != nil {
			return errors.Wrap(err, "migrate objects", slog.String("type", kind))
		}
	}

	if _, err = tx.ExecContext(ctx, "PRAGMA foreign_key_check"); err != nil {
		return errors.Wrap(err, "foreign key check")
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

type schemaObject struct {
	Name       string         `db:"name"`
	CurrentSQL sql.NullString `db:"current_sql"`
	TargetSQL  sql.NullString `db:"target_sql"`
}

// diff lists the objects of type kind whose definition differs between the current and the target schema. Objects
// missing on one side have a null SQL there.
func diff(ctx context.Context, tx *sqlx.Tx, kind string) ([]schemaObject, error) {
	var objects []schemaObject
	stmt := `SELECT current.name AS name, current.sql AS current_sql, target.sql AS target_sql
FROM sqlite_schema AS current
LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = :type AND current.name NOT LIKE 'sqlite_%' AND target.sql IS NOT current.sql
UNION ALL
SELECT target.name, NULL, target.sql
FROM schemaTarget.sqlite_schema AS target
LEFT JOIN sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type = :type AND target.name NOT LIKE 'sqlite_%' AND current.name IS NULL`
	if err := tx.SelectContext(ctx, &objects, stmt, sql.Named("type", kind)); err != nil {
		return nil, errors.Wrap(err, "select schema diff")
	}
	return objects, nil
}

func (db *Database) migrateTables(ctx context.Context, tx *sqlx.Tx) error {
	tables, err := diff(ctx, tx, "table")
	if err != nil {
		return err
	}
	for _, table := range tables {
		switch {
		case !table.TargetSQL.Valid:
			db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping table", slog.String("table", table.Name))
			if _, err = tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE %q", table.Name)); err != nil {
				return errors.Wrap(err, "drop table", slog.String("table", table.Name))
			}
		case !table.CurrentSQL.Valid:
			db.logger.LogAttrs(ctx, slog.LevelInfo, "creating table", slog.String("table", table.Name))
			if _, err = tx.ExecContext(ctx, table.TargetSQL.String); err != nil {
				return errors.Wrap(err, "create table", slog.String("table", table.Name))
			}
		default:
			if err = db.rebuildTable(ctx, tx, table); err != nil {
				return errors.Wrap(err, "rebuild table", slog.String("table", table.Name))
			}
		}
	}
	return nil
}

func (db *Database) rebuildTable(ctx context.Context, tx *sqlx.Tx, table schemaObject) error {
	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrating table",
		slog.String("table", table.Name),
		slog.String("current_sql", table.CurrentSQL.String),
		slog.String("new_sql", table.TargetSQL.String))

	tempName := table.Name + "_migration_temp"
	if _, err := tx.ExecContext(ctx, strings.Replace(table.TargetSQL.String, table.Name, tempName, 1)); err != nil {
		return errors.Wrap(err, "create table with temporary name")
	}

	// Column names are quoted because they may be SQLite keywords.
	var columns []string
	if err := tx.SelectContext(ctx, &columns, `SELECT '"' || target.name || '"'
FROM PRAGMA_TABLE_INFO(:table_name) AS current
JOIN PRAGMA_TABLE_INFO(:table_name, 'schemaTarget') AS target ON target.name = current.name`,
		sql.Named("table_name", table.Name)); err != nil {
		return errors.Wrap(err, "select common columns")
	}
	if len(columns) > 0 {
		common := strings.Join(columns, ", ")
		//nolint:gosec // names come from the schema.
		stmt := fmt.Sprintf("INSERT INTO %q (%s) SELECT %s FROM %q", tempName, common, common, table.Name)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "copy data")
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE %q", table.Name)); err != nil {
		return errors.Wrap(err, "drop old table")
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s", tempName, table.Name)); err != nil {
		return errors.Wrap(err, "rename new table")
	}
	return nil
}

// migrateObjects recreates indexes or triggers whose definition changed.
func (db *Database) migrateObjects(ctx context.Context, tx *sqlx.Tx, kind string) error {
	objects, err := diff(ctx, tx, kind)
	if err != nil {
		return err
	}
	for _, o := range objects {
		if o.CurrentSQL.Valid {
			stmt := fmt.Sprintf("DROP %s IF EXISTS %q", strings.ToUpper(kind), o.Name)
			if _, err = tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrap(err, "drop", slog.String("name", o.Name))
			}
		}
		if o.TargetSQL.Valid {
			if _, err = tx.ExecContext(ctx, o.TargetSQL.String); err != nil {
				return errors.Wrap(err, "create", slog.String("name", o.Name))
			}
		}
	}
	return nil
}
