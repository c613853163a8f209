package main

import (
	"context"
	"net/http"
	"time"

	"booksapi/internal/book"
	"booksapi/internal/httpx"
)

// pinger reports whether the database is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(bookHandler *book.HTTPHandler, db pinger) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "database not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// The list and create routes accept a trailing slash as well.
	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("GET /books/{$}", bookHandler.List)
	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("POST /books/{$}", bookHandler.Create)
	router.HandleFunc("GET /books/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("PUT /books/{isbn}", bookHandler.Update)
	router.HandleFunc("DELETE /books/{isbn}", bookHandler.Delete)

	router.HandleFunc("/", httpx.NotFoundHandler)

	return router
}
