package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"rssread/internal/adapter/fetcher"
	"rssread/internal/config"
	"rssread/internal/domain"
	"rssread/internal/logger"
	"rssread/internal/migrations"
	"rssread/internal/ui"
	"rssread/internal/usecase"
	"rssread/storage"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/term"
)

const (
	usage    = "Usage: rssread <url>"
	synopsis = "Usage: rssread [-config file] [-v] [-timeout duration] [-store] <url>"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rssread", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a JSON or YAML config file")
	verbose := flags.Bool("v", false, "print response status and headers")
	timeout := flags.Duration("timeout", 0, "HTTP timeout, overrides fetch.timeout")
	store := flags.Bool("store", false, "save extracted items to Postgres")
	flags.Usage = func() {
		fmt.Fprintln(stderr, synopsis)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(stdout, usage)
		return 2
	}
	url := flags.Arg(0)

	cfg := config.New()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "FATAL: could not load config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *timeout > 0 {
		cfg.Fetch.Timeout = timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "FATAL: invalid config: %v\n", err)
		return 1
	}
	appLogger, closeLogs, err := logger.New(cfg.Logger, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "FATAL: could not setup logger: %v\n", err)
		return 1
	}
	defer closeLogs()
	slog.SetDefault(appLogger)

	var feedStorage usecase.FeedStorage
	if *store {
		db, err := openStorage(ctx, cfg, appLogger)
		if err != nil {
			fmt.Fprintf(stderr, "FATAL: %v\n", err)
			return 1
		}
		defer db.Close()
		feedStorage = db
	}

	reader := usecase.NewFeedReader(fetcher.NewHTTPFetcher(appLogger, cfg.Fetch), feedStorage, appLogger, stdout)
	printer := ui.NewPrinter(stdout, isTerminal(stdout))

	printer.Reading(url)
	var reply domain.FeedReply
	err = reader.ReadFeed(ctx, url, &reply, *verbose)
	printer.Status(err)
	if err == nil && feedStorage != nil {
		if _, storeErr := reader.Store(ctx, url, &reply); storeErr != nil {
			printer.Status(storeErr)
			err = storeErr
		}
	}
	reply.Dump(stdout, wrapFor(cfg.Dump, stdout))
	if err != nil {
		return 1
	}
	return 0
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if !cfg.Database.Enabled {
		return nil, fmt.Errorf("-store requires database.enabled in config")
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(connectCtx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := migrations.Apply(connectCtx, log, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	return storage.NewPostgresFeedDB(pool, log), nil
}

// wrapFor ограничивает ширину переноса шириной терминала, если вывод идет в терминал.
func wrapFor(cfg config.DumpConfig, w io.Writer) domain.Wrap {
	wrap := domain.Wrap{MaxLine: cfg.WrapWidth, MaxWord: cfg.MaxWord}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return wrap
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width >= wrap.MaxLine {
		return wrap
	}
	wrap.MaxLine = width
	if wrap.MaxWord >= wrap.MaxLine {
		wrap.MaxWord = wrap.MaxLine / 4
	}
	return wrap
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
