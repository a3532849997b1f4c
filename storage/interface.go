package storage

import (
	"context"
	"rssread/internal/domain"
)

// Storage определяет общий интерфейс хранилища записей лент.
type Storage interface {
	SaveReply(ctx context.Context, source string, reply *domain.FeedReply) (int, error)
	Close()
}
