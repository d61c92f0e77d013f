package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const incrementGamesCreatedCount = `
INSERT INTO game_server_analytics (server_ip, games_created)
VALUES ($1, 1)
ON CONFLICT (server_ip)
DO UPDATE SET games_created = game_server_analytics.games_created + 1
`

func (q *Queries) IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesCreatedCount, serverIp)
	return err
}

const incrementGamesFinishedCount = `
INSERT INTO game_server_analytics (server_ip, games_finished)
VALUES ($1, 1)
ON CONFLICT (server_ip)
DO UPDATE SET games_finished = game_server_analytics.games_finished + 1
`

func (q *Queries) IncrementGamesFinishedCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesFinishedCount, serverIp)
	return err
}

const incrementShotsFiredCount = `
INSERT INTO game_server_analytics (server_ip, shots_fired)
VALUES ($1, 1)
ON CONFLICT (server_ip)
DO UPDATE SET shots_fired = game_server_analytics.shots_fired + 1
`

func (q *Queries) IncrementShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementShotsFiredCount, serverIp)
	return err
}

const getGamesCreatedCount = `
SELECT games_created FROM game_server_analytics WHERE server_ip = $1
`

func (q *Queries) GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesCreatedCount, serverIp)
	var gamesCreated int64
	err := row.Scan(&gamesCreated)
	return gamesCreated, err
}

const getGamesFinishedCount = `
SELECT games_finished FROM game_server_analytics WHERE server_ip = $1
`

func (q *Queries) GetGamesFinishedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesFinishedCount, serverIp)
	var gamesFinished int64
	err := row.Scan(&gamesFinished)
	return gamesFinished, err
}

const getShotsFiredCount = `
SELECT shots_fired FROM game_server_analytics WHERE server_ip = $1
`

func (q *Queries) GetShotsFiredCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getShotsFiredCount, serverIp)
	var shotsFired int64
	err := row.Scan(&shotsFired)
	return shotsFired, err
}
