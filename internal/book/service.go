package book

import (
	"context"
	"errors"

	"booksapi/internal/errs"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return Book{}, notFound(isbn, err)
	}
	return b, nil
}

// Create stores a new book. A duplicate ISBN surfaces as a storage error.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	return s.repo.Create(ctx, b)
}

// Update replaces all non-key fields of the book stored under isbn.
func (s *Service) Update(ctx context.Context, isbn string, b Book) (Book, error) {
	b.ISBN = isbn
	updated, err := s.repo.Update(ctx, isbn, b)
	if err != nil {
		return Book{}, notFound(isbn, err)
	}
	return updated, nil
}

// Delete removes the book stored under isbn.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return notFound(isbn, s.repo.Delete(ctx, isbn))
}

// notFound turns ErrNotFound into a 404 carrying the client-facing message.
// Other errors, and nil, are returned unchanged.
func notFound(isbn string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return errs.NewNotFoundError(notFoundMessage(isbn), err)
	}
	return err
}
