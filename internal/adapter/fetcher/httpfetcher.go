package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"rssread/internal/config"
)

// Response содержит статус, заголовки и тело HTTP-ответа с любым кодом статуса.
// Body должно быть закрыто вызывающей стороной.
type Response struct {
	Status     string
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// HTTPFetcher загружает ленты по HTTP.
// Таймаут клиента берется из конфигурации; нулевой таймаут означает его отсутствие.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	log       *slog.Logger
}

// NewHTTPFetcher создает HTTPFetcher с отдельным HTTP-клиентом.
func NewHTTPFetcher(log *slog.Logger, cfg config.FetchConfig) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.TimeoutDuration(),
		},
		userAgent: cfg.UserAgent,
		log:       log.With(slog.String("component", "fetcher")),
	}
}

// Fetch выполняет GET-запрос по url.
// Ошибкой считаются только сбои транспорта и таймауты; ответ с кодом вне 2xx
// возвращается как есть, решение о нем принимает вызывающая сторона.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	log := f.log.With(slog.String("url", url))
	log.Debug("Fetching URL")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.1")
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error(
			"HTTP request failed",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to fetch url %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("Unexpected status code", slog.Int("status_code", resp.StatusCode))
	} else {
		log.Debug("Successfully fetched URL", slog.Int("status_code", resp.StatusCode))
	}
	return &Response{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}
