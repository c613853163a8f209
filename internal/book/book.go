package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no book matches an ISBN.
var ErrNotFound = errors.New("book not found")

// Book is the stored record. ISBN is the primary key and never changes.
type Book struct {
	ISBN      string `json:"isbn" db:"isbn"`
	AmazonURL string `json:"amazon_url" db:"amazon_url"`
	Author    string `json:"author" db:"author"`
	Language  string `json:"language" db:"language"`
	Pages     int    `json:"pages" db:"pages"`
	Publisher string `json:"publisher" db:"publisher"`
	Title     string `json:"title" db:"title"`
	Year      int    `json:"year" db:"year"`
}

func notFoundMessage(isbn string) string {
	return fmt.Sprintf("There is no book with an isbn '%s'", isbn)
}
