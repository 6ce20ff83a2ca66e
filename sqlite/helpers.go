package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsnotes"
	"github.com/google/uuid"
)

// newID returns a time-ordered identifier. UUIDv7 strings sort lexically in
// creation order, which is what "newest first" listings rely on.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// queryRower is satisfied by *DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// requireRow returns ENOTFOUND unless table holds a row with the given id.
// The table name must be a trusted constant.
func requireRow(ctx context.Context, q queryRower, table, id string) error {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return newsnotes.Errorf(newsnotes.ENOTFOUND, "%s not found", strings.TrimSuffix(table, "s"))
	}
	return err
}
