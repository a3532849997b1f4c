package usecase

import (
	"context"
	"rssread/internal/adapter/fetcher"
	"rssread/internal/domain"
)

// FeedFetcher определяет интерфейс для загрузки лент из внешних источников.
// Тело ответа должно быть закрыто после использования.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Response, error)
}

// FeedStorage определяет интерфейс для сохранения извлеченных записей.
// Возвращает количество действительно сохраненных записей.
type FeedStorage interface {
	SaveReply(ctx context.Context, source string, reply *domain.FeedReply) (int, error)
}
