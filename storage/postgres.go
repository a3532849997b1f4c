package storage

import (
	"context"
	"fmt"
	"log/slog"
	"rssread/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertItemQuery = `
	INSERT INTO feed_items (source, title, author, description, pub_date)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (source, title, pub_date) DO NOTHING;
	`

var _ Storage = (*PostgresFeedDB)(nil)

type PostgresFeedDB struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresFeedDB(pool *pgxpool.Pool, log *slog.Logger) *PostgresFeedDB {
	log = log.With(slog.String("component", "storage"))
	log.Info("Initializing Postgres feed storage")
	return &PostgresFeedDB{
		pool: pool,
		log:  log,
	}
}

func (db *PostgresFeedDB) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

// SaveReply сохраняет записи reply одной транзакцией.
// Записи, уже сохраненные для того же источника, пропускаются;
// возвращается количество действительно вставленных строк.
func (db *PostgresFeedDB) SaveReply(ctx context.Context, source string, reply *domain.FeedReply) (saved int, err error) {
	if len(reply.Items) == 0 {
		return 0, nil
	}
	const op = "storage.postgres.SaveReply"
	log := db.log.With(slog.String("op", op), slog.String("url", source))
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil {
				log.Error("Failed to rollback transaction", slog.Any("error", rollbackErr))
			}
		}
	}()
	batch := &pgx.Batch{}
	for _, item := range reply.Items {
		batch.Queue(
			insertItemQuery,
			source,
			item.Title,
			item.Author,
			item.Description,
			item.PubDate,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range reply.Items {
		tag, execErr := results.Exec()
		if execErr != nil {
			results.Close()
			log.Error("Failed to execute batch", slog.Any("error", execErr))
			err = fmt.Errorf("%s: failed to execute batch: %w", op, execErr)
			return 0, err
		}
		saved += int(tag.RowsAffected())
	}
	if err = results.Close(); err != nil {
		log.Error("Failed to close batch", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to close batch: %w", op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	log.Info("Feed items stored", slog.Int("count", saved))
	return saved, nil
}
