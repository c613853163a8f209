package main

import (
	"context"
	"errors"

	"booksapi/internal/book"
	"booksapi/internal/config"
	"booksapi/internal/database"
	"booksapi/internal/logger"
)

var fixtures = []book.Book{
	{
		ISBN:      "1843430851",
		AmazonURL: "https://www.amazon.com/Gulag-Archipelago-Aleksandr-Solzhenitsyn/dp/1843430851/",
		Author:    "Aleksandr Solzhenitsyn",
		Language:  "english",
		Pages:     496,
		Publisher: "Vintage UK",
		Title:     "The Gulag Archipelago",
		Year:      2002,
	},
	{
		ISBN:      "9780140268867",
		AmazonURL: "https://www.amazon.com/Odyssey-Homer/dp/0140268863",
		Author:    "Homer",
		Language:  "english",
		Pages:     541,
		Publisher: "Penguin Classics",
		Title:     "The Odyssey",
		Year:      1999,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(false, "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.IsProduction(), cfg.LogLevel)

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DBDSN, 2)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()

	inserted, err := seed(ctx, book.NewPostgresRepo(pool, cfg.DBTimeout), fixtures)
	if err != nil {
		log.Fatal().Err(err).Msg("seed books")
	}
	log.Info().Int("inserted", inserted).Int("fixtures", len(fixtures)).Msg("seed complete")
}

// seed inserts each book whose ISBN is not stored yet and returns how many were inserted.
func seed(ctx context.Context, repo book.Repository, books []book.Book) (int, error) {
	inserted := 0
	for _, b := range books {
		_, err := repo.GetByISBN(ctx, b.ISBN)
		if err == nil {
			continue
		}
		if !errors.Is(err, book.ErrNotFound) {
			return inserted, err
		}
		if _, err := repo.Create(ctx, b); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
