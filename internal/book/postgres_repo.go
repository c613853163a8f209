package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableBooks = "books"
	colISBN    = "isbn"
)

var (
	dialect     = goqu.Dialect("postgres")
	bookColumns = []any{colISBN, "amazon_url", "author", "language", "pages", "publisher", "title", "year"}
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func listQuery() (string, []any, error) {
	return dialect.From(tableBooks).
		Select(bookColumns...).
		Order(goqu.I("title").Asc(), goqu.I(colISBN).Asc()).
		Prepared(true).
		ToSQL()
}

func getQuery(isbn string) (string, []any, error) {
	return dialect.From(tableBooks).
		Select(bookColumns...).
		Where(goqu.C(colISBN).Eq(isbn)).
		Prepared(true).
		ToSQL()
}

func insertQuery(b Book) (string, []any, error) {
	return dialect.Insert(tableBooks).
		Rows(goqu.Record{
			colISBN:      b.ISBN,
			"amazon_url": b.AmazonURL,
			"author":     b.Author,
			"language":   b.Language,
			"pages":      b.Pages,
			"publisher":  b.Publisher,
			"title":      b.Title,
			"year":       b.Year,
		}).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
}

// updateQuery sets every column except the key.
func updateQuery(isbn string, b Book) (string, []any, error) {
	return dialect.Update(tableBooks).
		Set(goqu.Record{
			"amazon_url": b.AmazonURL,
			"author":     b.Author,
			"language":   b.Language,
			"pages":      b.Pages,
			"publisher":  b.Publisher,
			"title":      b.Title,
			"year":       b.Year,
		}).
		Where(goqu.C(colISBN).Eq(isbn)).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
}

func deleteQuery(isbn string) (string, []any, error) {
	return dialect.Delete(tableBooks).
		Where(goqu.C(colISBN).Eq(isbn)).
		Prepared(true).
		ToSQL()
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	query, args, err := listQuery()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query, args, err := getQuery(isbn)
	if err != nil {
		return Book{}, fmt.Errorf("build get query: %w", err)
	}
	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepo) Create(ctx context.Context, b Book) (Book, error) {
	query, args, err := insertQuery(b)
	if err != nil {
		return Book{}, fmt.Errorf("build insert query: %w", err)
	}
	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepo) Update(ctx context.Context, isbn string, b Book) (Book, error) {
	query, args, err := updateQuery(isbn, b)
	if err != nil {
		return Book{}, fmt.Errorf("build update query: %w", err)
	}
	return r.queryOne(ctx, query, args)
}

func (r *PostgresRepo) Delete(ctx context.Context, isbn string) error {
	query, args, err := deleteQuery(isbn)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// queryOne runs a statement expected to return a single book row.
func (r *PostgresRepo) queryOne(ctx context.Context, query string, args []any) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ISBN, &b.AmazonURL, &b.Author, &b.Language, &b.Pages, &b.Publisher, &b.Title, &b.Year)
	return b, err
}
