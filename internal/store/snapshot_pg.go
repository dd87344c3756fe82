package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookfaker/internal/book"
	"bookfaker/internal/locale"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 30 * time.Second

// SnapshotPG stores generated batches in Postgres. Records are keyed by
// unique id; saving a record again replaces the stored copy.
type SnapshotPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewSnapshotPG(db *pgxpool.Pool, timeout time.Duration) *SnapshotPG {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SnapshotPG{db: db, timeout: timeout}
}

func (r *SnapshotPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SnapshotPG) Save(ctx context.Context, snap book.Snapshot) error {
	if len(snap.Records) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, len(snap.Records))
	for i, rec := range snap.Records {
		ids[i] = rec.UniqueID
	}
	if _, err := tx.Exec(ctx, `DELETE FROM books WHERE unique_id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete previous rows: %w", err)
	}

	q := snap.Query
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"books"},
		[]string{"unique_id", "seed", "locale", "idx", "likes_avg", "reviews_avg", "isbn", "title", "publisher", "likes"},
		pgx.CopyFromSlice(len(snap.Records), func(i int) ([]any, error) {
			rec := snap.Records[i]
			return []any{rec.UniqueID, q.Seed, q.Locale.String(), rec.Index, q.LikesAvg, q.ReviewsAvg,
				rec.ISBN, rec.Title, rec.Publisher, rec.Likes}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy books: %w", err)
	}

	var authors, reviews [][]any
	for _, rec := range snap.Records {
		for pos, name := range rec.Authors {
			authors = append(authors, []any{rec.UniqueID, int16(pos), name})
		}
		for pos, rev := range rec.Reviews {
			reviews = append(reviews, []any{rec.UniqueID, pos, rev.Text, rev.Author})
		}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"book_authors"}, []string{"unique_id", "position", "name"}, pgx.CopyFromRows(authors)); err != nil {
		return fmt.Errorf("copy authors: %w", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"book_reviews"}, []string{"unique_id", "position", "text", "author"}, pgx.CopyFromRows(reviews)); err != nil {
		return fmt.Errorf("copy reviews: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *SnapshotPG) Count(ctx context.Context, seed int64, l locale.Locale) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE seed = $1 AND locale = $2`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int
	if err := r.db.QueryRow(ctx, query, seed, l.String()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SnapshotPG) GetByUniqueID(ctx context.Context, uniqueID string) (book.Record, error) {
	const query = `
	SELECT unique_id, idx, isbn, title, publisher, likes
	FROM books
	WHERE unique_id = $1
	`
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rec book.Record
	err := r.db.QueryRow(ctx, query, uniqueID).Scan(
		&rec.UniqueID,
		&rec.Index,
		&rec.ISBN,
		&rec.Title,
		&rec.Publisher,
		&rec.Likes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.Record{}, book.ErrNotFound
		}
		return book.Record{}, err
	}

	rows, err := r.db.Query(ctx, `SELECT name FROM book_authors WHERE unique_id = $1 ORDER BY position`, uniqueID)
	if err != nil {
		return book.Record{}, err
	}
	rec.Authors, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return book.Record{}, err
	}

	rows, err = r.db.Query(ctx, `SELECT text, author FROM book_reviews WHERE unique_id = $1 ORDER BY position`, uniqueID)
	if err != nil {
		return book.Record{}, err
	}
	defer rows.Close()

	rec.Reviews = []book.Review{}
	for rows.Next() {
		var rev book.Review
		if err := rows.Scan(&rev.Text, &rev.Author); err != nil {
			return book.Record{}, err
		}
		rec.Reviews = append(rec.Reviews, rev)
	}
	return rec, rows.Err()
}
