package sqlc

import (
	"context"
	"database/sql"

	"github.com/sqlc-dev/pqtype"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Querier interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementGamesFinishedCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) error

	GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	GetGamesFinishedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	GetShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

var _ Querier = (*Queries)(nil)
