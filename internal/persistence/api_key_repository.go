package persistence

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name ApiKeyStorage
type ApiKeyStorage interface {
	IsActive(ctx context.Context, apiKeyHash string) (bool, error)
}

type ApiKeyRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewApiKeyRepository(db *sql.DB, log *slog.Logger) *ApiKeyRepository {
	return &ApiKeyRepository{
		db:  db,
		log: log,
	}
}

// IsActive reports whether the hashed key is enabled. Unknown keys return ErrNotFound.
func (r *ApiKeyRepository) IsActive(ctx context.Context, apiKeyHash string) (bool, error) {
	var isActive bool
	err := r.db.QueryRowContext(ctx, "SELECT is_active FROM api_key WHERE api_key = ?", apiKeyHash).
		Scan(&isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		r.log.Error("failed to query api key", slog.String("err", err.Error()))
		return false, err
	}

	return isActive, nil
}
