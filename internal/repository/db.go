package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx so repositories can join
// a transaction opened by Store.Apply.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func insertQuery(table string, columns []string) string {
	named := make([]string, len(columns))
	for i, col := range columns {
		named[i] = ":" + col
	}
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(named, ", ") + ")"
}

// updateQuery sets every column except id, keyed on id.
func updateQuery(table string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == "id" || col == "created_at" || col == "created_by" {
			continue
		}
		sets = append(sets, col+" = :"+col)
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = :id"
}

func selectColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func clampLimit(limit, offset int) (uint64, uint64) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uint64(limit), uint64(offset)
}

func ensureAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// mapUnique converts unique violations to ErrDuplicate.
func mapUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
