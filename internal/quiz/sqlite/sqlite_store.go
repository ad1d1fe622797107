package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"quiz-master/internal/quiz"
)

const DefaultPath = "quiz_master.db"

type SQLiteStore struct {
	db *sql.DB
}

var _ quiz.Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database file at path and
// applies the schema. Schema creation is idempotent.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dependentCheck counts child rows referencing the id being deleted.
type dependentCheck struct {
	countQuery string
	dependents string
}

// deleteGuarded runs every dependent count and the delete in one transaction.
// The foreign-key RESTRICT on the child tables backs up the counts.
func (s *SQLiteStore) deleteGuarded(ctx context.Context, deleteQuery, entity string, id int64, checks ...dependentCheck) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, check := range checks {
		var count int
		if err := tx.QueryRowContext(ctx, check.countQuery, id).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return &quiz.DependentsError{Entity: entity, Dependents: check.dependents, Count: count}
		}
	}

	result, err := tx.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &quiz.DependentsError{Entity: entity, Dependents: "dependent records"}
		}
		return err
	}
	if err := expectAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return quiz.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.ErrNotFound
	}
	return err
}

// insertError maps a failed insert/update: a missing parent row surfaces as
// ErrNotFound, a uniqueness clash as dup.
func insertError(err error, dup error) error {
	switch {
	case isForeignKeyViolation(err):
		return quiz.ErrNotFound
	case dup != nil && isUniqueViolation(err):
		return dup
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func formatTimestamp(at time.Time) string {
	return at.Format(quiz.TimestampLayout)
}

func parseTimestamp(value sql.NullString) time.Time {
	if !value.Valid || value.String == "" {
		return time.Time{}
	}
	parsed, err := time.ParseInLocation(quiz.TimestampLayout, value.String, time.Local)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
