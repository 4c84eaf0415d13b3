package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// DB is the slice of *pgxpool.Pool the repositories use. It is
// injected into every repository constructor so tests can substitute
// another store.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

const dateLayout = "2006-01-02"

func dateString(d pgtype.Date) string {
	if d.Status != pgtype.Present {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func datePtr(d pgtype.Date) *string {
	if d.Status != pgtype.Present {
		return nil
	}
	s := d.Time.Format(dateLayout)
	return &s
}
