package postgres

import (
	"context"
	"log/slog"

	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PushTokenRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPushTokenRepo(pool *pgxpool.Pool, logger *slog.Logger) *PushTokenRepo {
	return &PushTokenRepo{pool: pool, logger: logger}
}

func (p *PushTokenRepo) Save(ctx context.Context, userID uuid.UUID, token string) error {
	const op = "postgres.PushToken.Save"

	const query = `
		INSERT INTO push_tokens (user_id, token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, updated_at = now()
	`

	if _, err := p.pool.Exec(ctx, query, userID, token); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// TokensFor resolves the given identities to their registered device
// tokens. Identities without a token simply produce no row.
func (p *PushTokenRepo) TokensFor(ctx context.Context, userIDs []uuid.UUID) ([]string, error) {
	const op = "postgres.PushToken.TokensFor"

	if len(userIDs) == 0 {
		return nil, nil
	}

	const query = `SELECT token FROM push_tokens WHERE user_id = ANY ($1) AND token <> ''`

	rows, err := p.pool.Query(ctx, query, userIDs)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	tokens := make([]string, 0, len(userIDs))
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return tokens, nil
}
