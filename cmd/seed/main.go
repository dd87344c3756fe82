package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"bookfaker/internal/book"
	"bookfaker/internal/config"
	"bookfaker/internal/locale"
	"bookfaker/internal/logging"
	"bookfaker/internal/metrics"
	"bookfaker/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var (
		seed       = flag.Int64("seed", book.DefaultSeed, "global seed")
		localeCode = flag.String("locale", locale.Default.String(), "locale: en, tr, ru, zh")
		likesAvg   = flag.Float64("likes", book.DefaultLikesAvg, "average likes per record")
		reviewsAvg = flag.Float64("reviews", book.DefaultReviewsAvg, "average reviews per record")
		count      = flag.Int("count", 1000, "number of records to store")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := context.Background()
	pool := mustOpenDB(ctx, cfg.Database.DSN)
	defer pool.Close()

	service := book.NewService(store.NewSnapshotPG(pool, 30*time.Second), metrics.Generation{})

	p := book.Params{
		Seed:       *seed,
		Locale:     locale.Parse(*localeCode),
		LikesAvg:   *likesAvg,
		ReviewsAvg: *reviewsAvg,
	}
	if err := (book.Query{Params: p}).Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid parameters")
	}

	logging.Info().Int64("seed", p.Seed).Str("locale", p.Locale.String()).Int("count", *count).Msg("generating books")
	written := 0
	for _, q := range pages(p, *count) {
		n, err := service.Export(ctx, q)
		if err != nil {
			logging.Fatal().Err(err).Int("offset", q.Offset).Msg("failed to store batch")
		}
		written += n
		logging.Debug().Int("written", written).Msg("batch stored")
	}

	total, err := store.NewSnapshotPG(pool, 5*time.Second).Count(ctx, p.Seed, p.Locale)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to count stored books")
	}
	logging.Info().Int("written", written).Int("stored", total).Msg("seed complete")

	if written > 0 {
		ok, err := service.Verify(ctx, p, 1)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to verify first record")
		}
		if !ok {
			logging.Fatal().Msg("stored record does not match regenerated record")
		}
	}
}

// pages splits count records into queries of at most book.MaxLimit.
func pages(p book.Params, count int) []book.Query {
	var out []book.Query
	for offset := 0; offset < count; offset += book.MaxLimit {
		out = append(out, book.Query{Params: p, Offset: offset, Limit: min(book.MaxLimit, count-offset)})
	}
	return out
}

func mustOpenDB(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot create db pool")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logging.Fatal().Err(err).Str("dsn", redactDSN(dsn)).Msg("cannot ping database")
	}
	logging.Info().Msg("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
